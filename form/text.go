package form

import (
	"cmp"
	"fmt"
	"github.com/cockroachdb/apd/v3"
	"github.com/saylorsolutions/conkit/convert"
	"github.com/saylorsolutions/conkit/message"
	"strings"
)

var _ Field = (*TextField[string])(nil)

// TextField reads a line of text and converts it to T.
//
// Non-empty input goes through a pipeline: the read transform, validation, the validate transform, conversion, and finally the check on the converted value.
// Any failure shows its message above the prompt and asks again.
// Empty input skips the pipeline entirely, yielding the default, or is rejected if the field is required.
type TextField[T any] struct {
	base[T]
	convert           convert.Func[T]
	readTransform     func(string) string
	validate          func(string) string
	validateTransform func(string) string
	check             func(T) string
}

// NewTextField creates a field using the built-in converter for T.
// This will panic if the title is empty, or T has no built-in converter.
func NewTextField[T any](title string) *TextField[T] {
	return NewCustomTextField(title, convert.Must[T]())
}

// NewCustomTextField creates a field with the given converter.
func NewCustomTextField[T any](title string, conv convert.Func[T]) *TextField[T] {
	if conv == nil {
		panic("nil converter")
	}
	f := &TextField[T]{base: newBase[T](title), convert: conv}
	f.self = f
	return f
}

// NewLongField creates a field for whole numbers.
func NewLongField(title string) *TextField[int64] {
	return NewTextField[int64](title)
}

// NewDecimalField creates a field for arbitrary precision decimal numbers.
func NewDecimalField(title string) *TextField[apd.Decimal] {
	return NewTextField[apd.Decimal](title)
}

func (f *TextField[T]) Required(required bool) *TextField[T] {
	f.required = required
	return f
}

// WithDefault sets the value used when the input is empty.
func (f *TextField[T]) WithDefault(val T) *TextField[T] {
	f.def = &val
	return f
}

// WithValue presets the answer, so it's confirmed without prompting.
func (f *TextField[T]) WithValue(val T) *TextField[T] {
	f.preset = &val
	return f
}

func (f *TextField[T]) WithReadTransform(transform func(string) string) *TextField[T] {
	f.readTransform = transform
	return f
}

// WithValidation sets a function that returns an error message for invalid input, or an empty string.
func (f *TextField[T]) WithValidation(validate func(string) string) *TextField[T] {
	f.validate = validate
	return f
}

// WithValidateTransform sets a transform applied to validated input before conversion.
func (f *TextField[T]) WithValidateTransform(transform func(string) string) *TextField[T] {
	f.validateTransform = transform
	return f
}

// WithCheck sets a function that returns an error message for an invalid converted value, or an empty string.
func (f *TextField[T]) WithCheck(check func(T) string) *TextField[T] {
	f.check = check
	return f
}

func (f *TextField[T]) WithDisplay(display func(T) string) *TextField[T] {
	f.display = display
	return f
}

// OnChange sets a function called with each successfully converted input.
func (f *TextField[T]) OnChange(fn func(T)) *TextField[T] {
	f.onChange = fn
	return f
}

func (f *TextField[T]) OnConfirm(fn func(T)) *TextField[T] {
	f.onConfirm = fn
	return f
}

func (f *TextField[T]) OnReset(fn func(prior *Answer)) *TextField[T] {
	f.onReset = fn
	return f
}

func (f *TextField[T]) Run(s *Session) error {
	if f.skip(false) {
		return nil
	}
	prior, editing := f.current()
	editing = editing && f.edit
	hint := ""
	switch {
	case editing:
		hint = formatValue(prior)
	case f.def != nil:
		hint = formatValue(*f.def)
	}

	fr := s.newFrame()
	var errMsg string
	for {
		fr.draw(func(p *message.Printer) {
			if len(errMsg) > 0 {
				p.Printf("{color:red}%s{color:default}\n", message.Escape(errMsg))
			}
			p.Print(prompt(f.title, hint, f.required))
		})
		raw, err := fr.readLine()
		if err != nil {
			return err
		}
		if len(strings.TrimSpace(raw)) == 0 {
			switch {
			case editing:
				f.confirm(prior)
				return nil
			case f.required:
				errMsg = s.texts.Required
				continue
			case f.def != nil:
				f.confirm(*f.def)
				return nil
			default:
				var zero T
				f.confirm(zero)
				return nil
			}
		}
		var val T
		val, errMsg = f.process(s, raw)
		if len(errMsg) == 0 {
			f.confirm(val)
			return nil
		}
	}
}

func (f *TextField[T]) process(s *Session, raw string) (T, string) {
	var zero T
	text := raw
	if f.readTransform != nil {
		text = f.readTransform(text)
	}
	if f.validate != nil {
		if msg := f.validate(text); len(msg) > 0 {
			return zero, msg
		}
	}
	if f.validateTransform != nil {
		text = f.validateTransform(text)
	}
	val, err := f.convert(text)
	if err != nil {
		return zero, s.texts.CouldNotConvert
	}
	f.changed(val)
	if f.check != nil {
		if msg := f.check(val); len(msg) > 0 {
			return zero, msg
		}
	}
	return val, ""
}

// Between returns a check accepting values from lo to hi, inclusive.
func Between[T cmp.Ordered](lo, hi T) func(T) string {
	return func(val T) string {
		if val < lo || val > hi {
			return fmt.Sprintf("The value must be between %v and %v.", lo, hi)
		}
		return ""
	}
}

func prompt(title, hint string, required bool) string {
	var buf strings.Builder
	buf.WriteString("{color:cyan}?{color:default} ")
	buf.WriteString(message.Escape(title))
	if required {
		buf.WriteString("{color:red}*{color:default}")
	}
	if len(hint) > 0 {
		buf.WriteString(" {color:darkgray}[" + message.Escape(hint) + "]{color:default}")
	}
	buf.WriteString(": ")
	return buf.String()
}
