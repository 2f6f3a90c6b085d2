package form

import (
	"github.com/saylorsolutions/conkit/convert"
	"github.com/saylorsolutions/conkit/message"
	"slices"
	"strings"
)

var _ Field = (*TextOption[string])(nil)

// TextOption reads a line of text that must exactly match one of a fixed set of options, and converts it to T.
// The options are listed after the title.
type TextOption[T any] struct {
	base[T]
	options []string
	convert convert.Func[T]
}

// NewTextOption creates an option field using the built-in converter for T.
// This will panic if the title is empty, no options are given, or T has no built-in converter.
func NewTextOption[T any](title string, options ...string) *TextOption[T] {
	return NewCustomTextOption(title, convert.Must[T](), options...)
}

// NewCustomTextOption creates an option field with the given converter.
func NewCustomTextOption[T any](title string, conv convert.Func[T], options ...string) *TextOption[T] {
	if conv == nil {
		panic("nil converter")
	}
	if len(options) == 0 {
		panic("no options given")
	}
	f := &TextOption[T]{base: newBase[T](title), options: slices.Clone(options), convert: conv}
	f.self = f
	return f
}

// NewOptionSelector creates an option field whose answer is the chosen option itself.
func NewOptionSelector(title string, options ...string) *TextOption[string] {
	return NewTextOption[string](title, options...)
}

func (f *TextOption[T]) Required(required bool) *TextOption[T] {
	f.required = required
	return f
}

func (f *TextOption[T]) WithDefault(val T) *TextOption[T] {
	f.def = &val
	return f
}

func (f *TextOption[T]) WithValue(val T) *TextOption[T] {
	f.preset = &val
	return f
}

func (f *TextOption[T]) WithDisplay(display func(T) string) *TextOption[T] {
	f.display = display
	return f
}

func (f *TextOption[T]) OnChange(fn func(T)) *TextOption[T] {
	f.onChange = fn
	return f
}

func (f *TextOption[T]) OnConfirm(fn func(T)) *TextOption[T] {
	f.onConfirm = fn
	return f
}

func (f *TextOption[T]) OnReset(fn func(prior *Answer)) *TextOption[T] {
	f.onReset = fn
	return f
}

// Options returns the accepted inputs.
func (f *TextOption[T]) Options() []string {
	return slices.Clone(f.options)
}

func (f *TextOption[T]) Run(s *Session) error {
	if f.skip(false) {
		return nil
	}
	prior, editing := f.current()
	editing = editing && f.edit
	title := f.title + " (" + strings.Join(f.options, "/") + ")"
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
			p.Print(prompt(title, hint, f.required))
		})
		raw, err := fr.readLine()
		if err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if len(raw) == 0 {
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
		val, err := f.convert(raw)
		if err != nil {
			errMsg = s.texts.CouldNotConvert
			continue
		}
		if !slices.Contains(f.options, raw) {
			errMsg = s.texts.InvalidOption
			continue
		}
		f.changed(val)
		f.confirm(val)
		return nil
	}
}
