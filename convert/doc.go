/*
Package convert turns raw user input into typed values.

Every supported target type maps to a [Kind], and each [Kind] has exactly one parser in a fixed table.
The mapping from a type parameter to its [Kind] is a type switch, so no reflection is involved.
Pointer types are the nullable forms of each target, where blank input converts to nil.

Supported targets are string, bool, every integer width, float32, float64, [apd.Decimal], [time.Time], [time.Duration] and [uuid.UUID].
Converters for single characters ([Char]) and name-based enumerations ([Enum]) are selected explicitly.

[apd.Decimal]: https://pkg.go.dev/github.com/cockroachdb/apd/v3#Decimal
[uuid.UUID]: https://pkg.go.dev/github.com/google/uuid#UUID
*/
package convert
