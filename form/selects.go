package form

import (
	"github.com/saylorsolutions/conkit/message"
	"github.com/saylorsolutions/conkit/terminal"
	"slices"
)

var (
	_ Field = (*SingleSelect[string])(nil)
	_ Field = (*MultiSelect[string])(nil)
)

// SingleSelect lets the user pick one [Choice] with the arrow keys (or j and k) and space.
//
// When required, the hovered choice is always the checked one, so exactly one choice is checked at any time.
// Otherwise space toggles the hovered choice, and the field may be confirmed with nothing checked.
// Such an answer has a nil value, so it's never mistaken for a choice holding the zero value.
type SingleSelect[T comparable] struct {
	base[T]
	choices []Choice[T]
	cursor  int
	checked int
	errMsg  string
}

// NewSingleSelect creates a single choice field.
// This will panic if the title is empty, or no choices are given.
func NewSingleSelect[T comparable](title string, choices ...Choice[T]) *SingleSelect[T] {
	if len(choices) == 0 {
		panic("no choices given")
	}
	f := &SingleSelect[T]{base: newBase[T](title), choices: slices.Clone(choices), checked: -1}
	f.self = f
	f.format = func(val T) string {
		if i := f.indexOf(val); i >= 0 {
			return f.choices[i].Label
		}
		return formatValue(val)
	}
	return f
}

func (f *SingleSelect[T]) Required(required bool) *SingleSelect[T] {
	f.required = required
	return f
}

// WithDefault sets a value that's confirmed without prompting, unless the field is being edited.
func (f *SingleSelect[T]) WithDefault(val T) *SingleSelect[T] {
	f.def = &val
	return f
}

func (f *SingleSelect[T]) WithValue(val T) *SingleSelect[T] {
	f.preset = &val
	return f
}

func (f *SingleSelect[T]) WithDisplay(display func(T) string) *SingleSelect[T] {
	f.display = display
	return f
}

// OnChange sets a function called whenever a choice becomes checked.
func (f *SingleSelect[T]) OnChange(fn func(T)) *SingleSelect[T] {
	f.onChange = fn
	return f
}

func (f *SingleSelect[T]) OnConfirm(fn func(T)) *SingleSelect[T] {
	f.onConfirm = fn
	return f
}

func (f *SingleSelect[T]) OnReset(fn func(prior *Answer)) *SingleSelect[T] {
	f.onReset = fn
	return f
}

// Value returns the checked value.
// This reports false if the field isn't finished, or was confirmed with nothing checked.
func (f *SingleSelect[T]) Value() (T, bool) {
	return f.value, f.finished && !f.empty
}

func (f *SingleSelect[T]) Run(s *Session) error {
	if f.skip(true) {
		return nil
	}
	f.start()
	defer s.hideCursor()()

	fr := s.newFrame()
	for {
		fr.draw(func(p *message.Printer) {
			renderChoices(p, f.title, f.required, f.choices, f.cursor, f.isChecked, [2]string{"( )", "(*)"}, f.errMsg)
		})
		ev, err := s.Driver().ReadKey(true)
		if err != nil {
			return err
		}
		done, err := f.handleKey(s, ev)
		if err != nil || done {
			return err
		}
	}
}

// start places the cursor on the current, default, or first choice.
// An edition of an answer with nothing checked starts with nothing checked.
func (f *SingleSelect[T]) start() {
	f.cursor, f.checked, f.errMsg = 0, -1, ""
	if val, ok := f.current(); ok {
		f.checked = f.indexOf(val)
	} else if f.def != nil && !f.empty {
		f.checked = f.indexOf(*f.def)
	}
	if f.checked >= 0 {
		f.cursor = f.checked
	}
	if f.required && f.checked < 0 {
		f.checked = f.cursor
		f.changed(f.choices[f.cursor].Value)
	}
}

func (f *SingleSelect[T]) handleKey(s *Session, ev terminal.KeyEvent) (bool, error) {
	switch navigate(ev, &f.cursor, len(f.choices)) {
	case navMove:
		f.errMsg = ""
		if f.required && f.checked != f.cursor {
			f.checked = f.cursor
			f.changed(f.choices[f.cursor].Value)
		}
	case navToggle:
		f.errMsg = ""
		if f.checked == f.cursor {
			if !f.required {
				f.checked = -1
			}
			return false, nil
		}
		f.checked = f.cursor
		f.changed(f.choices[f.cursor].Value)
	case navConfirm:
		if f.checked >= 0 {
			f.confirm(f.choices[f.checked].Value)
			return true, nil
		}
		if !f.required {
			f.confirmEmpty()
			return true, nil
		}
		f.errMsg = s.texts.Required
	case navInterrupt:
		return true, terminal.ErrInterrupted
	}
	return false, nil
}

func (f *SingleSelect[T]) isChecked(i int) bool {
	return i == f.checked
}

func (f *SingleSelect[T]) indexOf(val T) int {
	return slices.IndexFunc(f.choices, func(c Choice[T]) bool {
		return c.Value == val
	})
}

// MultiSelect lets the user check any number of choices with the arrow keys (or j and k) and space.
type MultiSelect[T comparable] struct {
	base[[]T]
	choices []Choice[T]
	cursor  int
	checked []bool
	errMsg  string
}

// NewMultiSelect creates a multiple choice field.
// This will panic if the title is empty, or no choices are given.
func NewMultiSelect[T comparable](title string, choices ...Choice[T]) *MultiSelect[T] {
	if len(choices) == 0 {
		panic("no choices given")
	}
	f := &MultiSelect[T]{base: newBase[[]T](title), choices: slices.Clone(choices)}
	f.self = f
	f.format = func(vals []T) string {
		return joinLabels(f.choices, func(i int) bool {
			return slices.Contains(vals, f.choices[i].Value)
		})
	}
	return f
}

func (f *MultiSelect[T]) Required(required bool) *MultiSelect[T] {
	f.required = required
	return f
}

// WithDefault sets the values confirmed when nothing is checked and the field isn't required.
func (f *MultiSelect[T]) WithDefault(vals ...T) *MultiSelect[T] {
	def := slices.Clone(vals)
	f.def = &def
	return f
}

func (f *MultiSelect[T]) WithValue(vals ...T) *MultiSelect[T] {
	preset := slices.Clone(vals)
	f.preset = &preset
	return f
}

func (f *MultiSelect[T]) WithDisplay(display func([]T) string) *MultiSelect[T] {
	f.display = display
	return f
}

// OnChange sets a function called with the checked values whenever a choice is toggled.
func (f *MultiSelect[T]) OnChange(fn func([]T)) *MultiSelect[T] {
	f.onChange = fn
	return f
}

func (f *MultiSelect[T]) OnConfirm(fn func([]T)) *MultiSelect[T] {
	f.onConfirm = fn
	return f
}

func (f *MultiSelect[T]) OnReset(fn func(prior *Answer)) *MultiSelect[T] {
	f.onReset = fn
	return f
}

func (f *MultiSelect[T]) Run(s *Session) error {
	if f.skip(false) {
		return nil
	}
	f.start()
	defer s.hideCursor()()

	fr := s.newFrame()
	for {
		fr.draw(func(p *message.Printer) {
			renderChoices(p, f.title, f.required, f.choices, f.cursor, f.isChecked, [2]string{"[ ]", "[x]"}, f.errMsg)
		})
		ev, err := s.Driver().ReadKey(true)
		if err != nil {
			return err
		}
		done, err := f.handleKey(s, ev)
		if err != nil || done {
			return err
		}
	}
}

func (f *MultiSelect[T]) start() {
	f.cursor, f.errMsg = 0, ""
	f.checked = make([]bool, len(f.choices))
	if vals, ok := f.current(); ok {
		for i, c := range f.choices {
			f.checked[i] = slices.Contains(vals, c.Value)
		}
	}
}

func (f *MultiSelect[T]) handleKey(s *Session, ev terminal.KeyEvent) (bool, error) {
	switch navigate(ev, &f.cursor, len(f.choices)) {
	case navToggle:
		f.errMsg = ""
		f.checked[f.cursor] = !f.checked[f.cursor]
		f.changed(f.selected())
	case navConfirm:
		selected := f.selected()
		if len(selected) > 0 {
			f.confirm(selected)
			return true, nil
		}
		if f.required {
			f.errMsg = s.texts.SelectAtLeastOne
			return false, nil
		}
		if f.def != nil {
			f.confirm(slices.Clone(*f.def))
			return true, nil
		}
		f.confirm([]T{})
		return true, nil
	case navInterrupt:
		return true, terminal.ErrInterrupted
	}
	return false, nil
}

func (f *MultiSelect[T]) isChecked(i int) bool {
	return f.checked[i]
}

func (f *MultiSelect[T]) selected() []T {
	vals := []T{}
	for i, c := range f.choices {
		if f.checked[i] {
			vals = append(vals, c.Value)
		}
	}
	return vals
}
