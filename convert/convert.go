package convert

import (
	"errors"
	"fmt"
	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrConversion  = errors.New("could not convert the value")
	ErrUnsupported = errors.New("unsupported conversion target")
)

// Func converts raw user input to a typed value.
type Func[T any] func(raw string) (T, error)

// Kind tags a supported scalar target type.
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDecimal
	KindDateTime
	KindDuration
	KindGUID
)

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

var kindNames = map[Kind]string{
	KindString:   "string",
	KindBool:     "bool",
	KindInt:      "int",
	KindInt8:     "int8",
	KindInt16:    "int16",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindUint:     "uint",
	KindUint8:    "uint8",
	KindUint16:   "uint16",
	KindUint32:   "uint32",
	KindUint64:   "uint64",
	KindFloat32:  "float32",
	KindFloat64:  "float64",
	KindDecimal:  "decimal",
	KindDateTime: "datetime",
	KindDuration: "duration",
	KindGUID:     "guid",
}

type parser func(raw string) (any, error)

// table holds the parser for each supported [Kind].
var table = map[Kind]parser{
	KindString: func(raw string) (any, error) { return raw, nil },
	KindBool:   func(raw string) (any, error) { return parseBool(raw) },
	KindInt:    signed[int](strconv.IntSize),
	KindInt8:   signed[int8](8),
	KindInt16:  signed[int16](16),
	KindInt32:  signed[int32](32),
	KindInt64:  signed[int64](64),
	KindUint:   unsigned[uint](strconv.IntSize),
	KindUint8:  unsigned[uint8](8),
	KindUint16: unsigned[uint16](16),
	KindUint32: unsigned[uint32](32),
	KindUint64: unsigned[uint64](64),
	KindFloat32: func(raw string) (any, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
		if err != nil {
			return nil, conversionErr(raw, KindFloat32, err)
		}
		if !finite(f) {
			return nil, conversionErr(raw, KindFloat32, nil)
		}
		return float32(f), nil
	},
	KindFloat64: func(raw string) (any, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, conversionErr(raw, KindFloat64, err)
		}
		if !finite(f) {
			return nil, conversionErr(raw, KindFloat64, nil)
		}
		return f, nil
	},
	KindDecimal: func(raw string) (any, error) {
		d, _, err := apd.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, conversionErr(raw, KindDecimal, err)
		}
		if d.Form != apd.Finite {
			return nil, conversionErr(raw, KindDecimal, errors.New("not a finite number"))
		}
		return *d, nil
	},
	KindDateTime: func(raw string) (any, error) { return parseDateTime(raw) },
	KindDuration: func(raw string) (any, error) {
		d, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return nil, conversionErr(raw, KindDuration, err)
		}
		return d, nil
	},
	KindGUID: func(raw string) (any, error) {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, conversionErr(raw, KindGUID, err)
		}
		return id, nil
	},
}

// target describes where a type lands in the table.
type target struct {
	kind     Kind
	nullable bool
}

// targetOf maps T to its [Kind], using pointer types for the nullable forms.
func targetOf[T any]() target {
	var zero T
	switch any(zero).(type) {
	case string:
		return target{kind: KindString}
	case *string:
		return target{kind: KindString, nullable: true}
	case bool:
		return target{kind: KindBool}
	case *bool:
		return target{kind: KindBool, nullable: true}
	case int:
		return target{kind: KindInt}
	case *int:
		return target{kind: KindInt, nullable: true}
	case int8:
		return target{kind: KindInt8}
	case *int8:
		return target{kind: KindInt8, nullable: true}
	case int16:
		return target{kind: KindInt16}
	case *int16:
		return target{kind: KindInt16, nullable: true}
	case int32:
		return target{kind: KindInt32}
	case *int32:
		return target{kind: KindInt32, nullable: true}
	case int64:
		return target{kind: KindInt64}
	case *int64:
		return target{kind: KindInt64, nullable: true}
	case uint:
		return target{kind: KindUint}
	case *uint:
		return target{kind: KindUint, nullable: true}
	case uint8:
		return target{kind: KindUint8}
	case *uint8:
		return target{kind: KindUint8, nullable: true}
	case uint16:
		return target{kind: KindUint16}
	case *uint16:
		return target{kind: KindUint16, nullable: true}
	case uint32:
		return target{kind: KindUint32}
	case *uint32:
		return target{kind: KindUint32, nullable: true}
	case uint64:
		return target{kind: KindUint64}
	case *uint64:
		return target{kind: KindUint64, nullable: true}
	case float32:
		return target{kind: KindFloat32}
	case *float32:
		return target{kind: KindFloat32, nullable: true}
	case float64:
		return target{kind: KindFloat64}
	case *float64:
		return target{kind: KindFloat64, nullable: true}
	case apd.Decimal:
		return target{kind: KindDecimal}
	case *apd.Decimal:
		return target{kind: KindDecimal, nullable: true}
	case time.Time:
		return target{kind: KindDateTime}
	case *time.Time:
		return target{kind: KindDateTime, nullable: true}
	case time.Duration:
		return target{kind: KindDuration}
	case *time.Duration:
		return target{kind: KindDuration, nullable: true}
	case uuid.UUID:
		return target{kind: KindGUID}
	case *uuid.UUID:
		return target{kind: KindGUID, nullable: true}
	default:
		return target{kind: KindUnknown}
	}
}

// KindOf returns the [Kind] that T converts through, and whether T is a nullable (pointer) form.
func KindOf[T any]() (Kind, bool) {
	t := targetOf[T]()
	return t.kind, t.nullable
}

// For returns the built-in converter for T.
// Pointer targets are the nullable forms: blank input converts to nil.
func For[T any]() (Func[T], error) {
	t := targetOf[T]()
	parse, ok := table[t.kind]
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, zero)
	}
	if t.nullable {
		return func(raw string) (T, error) {
			var zero T
			if len(strings.TrimSpace(raw)) == 0 {
				return zero, nil
			}
			val, err := parse(raw)
			if err != nil {
				return zero, err
			}
			return toPointer[T](val), nil
		}, nil
	}
	return func(raw string) (T, error) {
		val, err := parse(raw)
		if err != nil {
			var zero T
			return zero, err
		}
		return val.(T), nil
	}, nil
}

// Must is like [For], but panics if T is unsupported.
func Must[T any]() Func[T] {
	fn, err := For[T]()
	if err != nil {
		panic(err)
	}
	return fn
}

// To converts raw to T with the built-in converter.
func To[T any](raw string) (T, error) {
	fn, err := For[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(raw)
}

// Nullable wraps a converter so blank input yields nil.
func Nullable[T any](fn Func[T]) Func[*T] {
	if fn == nil {
		panic("nil converter")
	}
	return func(raw string) (*T, error) {
		if len(strings.TrimSpace(raw)) == 0 {
			return nil, nil
		}
		val, err := fn(raw)
		if err != nil {
			return nil, err
		}
		return &val, nil
	}
}

// Char converts input consisting of exactly one character.
// Go's rune is an int32, so [For] treats rune targets as numbers and this must be selected explicitly.
func Char() Func[rune] {
	return func(raw string) (rune, error) {
		if utf8.RuneCountInString(raw) != 1 {
			return 0, fmt.Errorf("%w: '%s' is not a single character", ErrConversion, raw)
		}
		r, _ := utf8.DecodeRuneInString(raw)
		return r, nil
	}
}

// Enum converts input by name, compared case-insensitive.
func Enum[T any](values map[string]T) Func[T] {
	if len(values) == 0 {
		panic("no enum values")
	}
	lookup := make(map[string]T, len(values))
	for name, val := range values {
		lookup[strings.ToLower(strings.TrimSpace(name))] = val
	}
	return func(raw string) (T, error) {
		val, ok := lookup[strings.ToLower(strings.TrimSpace(raw))]
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: '%s' is not a known value", ErrConversion, raw)
		}
		return val, nil
	}
}

var (
	TrueValues  = []string{"1", "yes", "y", "true", "t", "on"}  // TrueValues are the values considered "true" for bool conversion, and can be changed.
	FalseValues = []string{"0", "no", "n", "false", "f", "off"} // FalseValues are the values considered "false" for bool conversion, and can be changed.
)

func parseBool(raw string) (bool, error) {
	sval := strings.ToLower(strings.TrimSpace(raw))
	for _, v := range TrueValues {
		if sval == strings.ToLower(v) {
			return true, nil
		}
	}
	for _, v := range FalseValues {
		if sval == strings.ToLower(v) {
			return false, nil
		}
	}
	return false, conversionErr(raw, KindBool, nil)
}

// DateTimeLayouts are tried in order when converting to [time.Time].
var DateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDateTime(raw string) (time.Time, error) {
	sval := strings.TrimSpace(raw)
	for _, layout := range DateTimeLayouts {
		if t, err := time.Parse(layout, sval); err == nil {
			return t, nil
		}
	}
	return time.Time{}, conversionErr(raw, KindDateTime, nil)
}

type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func signed[T signedInt](bits int) parser {
	kind := targetOf[T]().kind
	return func(raw string) (any, error) {
		i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, bits)
		if err != nil {
			return nil, conversionErr(raw, kind, err)
		}
		return T(i), nil
	}
}

func unsigned[T unsignedInt](bits int) parser {
	kind := targetOf[T]().kind
	return func(raw string) (any, error) {
		u, err := strconv.ParseUint(strings.TrimSpace(raw), 10, bits)
		if err != nil {
			return nil, conversionErr(raw, kind, err)
		}
		return T(u), nil
	}
}

func conversionErr(raw string, kind Kind, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: '%s' is not a valid %s", ErrConversion, raw, kind)
	}
	return fmt.Errorf("%w: '%s' is not a valid %s: %v", ErrConversion, raw, kind, cause)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// toPointer boxes a parsed scalar as the nullable form T.
func toPointer[T any](val any) T {
	var out any
	switch v := val.(type) {
	case string:
		out = &v
	case bool:
		out = &v
	case int:
		out = &v
	case int8:
		out = &v
	case int16:
		out = &v
	case int32:
		out = &v
	case int64:
		out = &v
	case uint:
		out = &v
	case uint8:
		out = &v
	case uint16:
		out = &v
	case uint32:
		out = &v
	case uint64:
		out = &v
	case float32:
		out = &v
	case float64:
		out = &v
	case apd.Decimal:
		out = &v
	case time.Time:
		out = &v
	case time.Duration:
		out = &v
	case uuid.UUID:
		out = &v
	}
	return out.(T)
}
