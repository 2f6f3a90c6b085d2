package form

import (
	"fmt"
	"github.com/cockroachdb/apd/v3"
	"github.com/saylorsolutions/conkit/message"
	"reflect"
	"time"
)

// Answer is the value a [Field] was finished with.
// It stays bound to the field that produced it.
type Answer struct {
	field   Field
	value   any
	display string
}

func (a Answer) Field() Field {
	return a.field
}

func (a Answer) Value() any {
	return a.value
}

// String returns the value as shown to the user.
func (a Answer) String() string {
	return a.display
}

// Equal reports whether both answers come from the same field with deeply equal values.
func (a Answer) Equal(other Answer) bool {
	return a.field == other.field && reflect.DeepEqual(a.value, other.value)
}

// Summary formats the answer as a numbered summary line, with markup.
func (a Answer) Summary(number int) string {
	title := ""
	if a.field != nil {
		title = a.field.Title()
	}
	return fmt.Sprintf("{color:cyan}%d.{color:default} %s: {color:green}%s{color:default}", number, message.Escape(title), message.Escape(a.display))
}

// ValueOf returns the answer's value as T.
func ValueOf[T any](a Answer) (T, bool) {
	val, ok := a.value.(T)
	return val, ok
}

func formatValue(v any) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		v = rv.Elem().Interface()
	}
	switch x := v.(type) {
	case string:
		return x
	case apd.Decimal:
		return x.String()
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.DateTime)
	case bool:
		if x {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprint(x)
	}
}
