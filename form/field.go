package form

// Field is a single interactive prompt.
//
// A field starts out unfinished, and [Field.Run] prompts until a valid answer is confirmed.
// A value set ahead of time is confirmed by Run without prompting, unless [Field.SetEdition] was called.
type Field interface {
	Title() string
	// Run prompts for an answer, blocking on input until one is confirmed.
	Run(s *Session) error
	// Answer returns the confirmed answer, if the field is finished.
	Answer() (Answer, bool)
	Finished() bool
	// Reset returns the field to unfinished, clearing its answer and any preset value.
	Reset()
	// SetEdition makes the next Run prompt interactively, starting from the current answer.
	SetEdition()
}

// base holds what every field kind tracks.
type base[T any] struct {
	self      Field
	title     string
	required  bool
	preset    *T
	def       *T
	edit      bool
	finished  bool
	hasValue  bool
	empty     bool
	value     T
	answer    Answer
	format    func(T) string
	display   func(T) string
	onChange  func(T)
	onConfirm func(T)
	onReset   func(prior *Answer)
}

func newBase[T any](title string) base[T] {
	if len(title) == 0 {
		panic("empty field title")
	}
	return base[T]{title: title}
}

func (b *base[T]) Title() string {
	return b.title
}

func (b *base[T]) Answer() (Answer, bool) {
	return b.answer, b.finished
}

func (b *base[T]) Finished() bool {
	return b.finished
}

// Value returns the confirmed value, if the field is finished.
func (b *base[T]) Value() (T, bool) {
	return b.value, b.finished
}

func (b *base[T]) Reset() {
	var prior *Answer
	if b.finished {
		a := b.answer
		prior = &a
	}
	var zero T
	b.finished = false
	b.hasValue = false
	b.empty = false
	b.edit = false
	b.preset = nil
	b.value = zero
	b.answer = Answer{}
	if b.onReset != nil {
		b.onReset(prior)
	}
}

func (b *base[T]) SetEdition() {
	b.edit = true
	b.finished = false
}

// skip confirms a preset or declared default when the field isn't being edited.
func (b *base[T]) skip(useDefault bool) bool {
	if b.edit {
		return false
	}
	switch {
	case b.preset != nil:
		b.confirm(*b.preset)
		return true
	case useDefault && b.def != nil:
		b.confirm(*b.def)
		return true
	}
	return false
}

// current is the value an edition starts from.
func (b *base[T]) current() (T, bool) {
	if b.hasValue {
		return b.value, true
	}
	if b.preset != nil {
		return *b.preset, true
	}
	return b.value, false
}

func (b *base[T]) changed(val T) {
	if b.onChange != nil {
		b.onChange(val)
	}
}

func (b *base[T]) confirm(val T) {
	var display string
	switch {
	case b.display != nil:
		display = b.display(val)
	case b.format != nil:
		display = b.format(val)
	default:
		display = formatValue(val)
	}
	b.value = val
	b.hasValue = true
	b.empty = false
	b.finished = true
	b.edit = false
	b.preset = nil
	b.answer = Answer{field: b.self, value: val, display: display}
	if b.onConfirm != nil {
		b.onConfirm(val)
	}
}

// confirmEmpty finishes the field without a value.
// The answer's value is nil and displays as an empty string.
func (b *base[T]) confirmEmpty() {
	var zero T
	b.value = zero
	b.hasValue = false
	b.empty = true
	b.finished = true
	b.edit = false
	b.preset = nil
	b.answer = Answer{field: b.self}
	if b.onConfirm != nil {
		b.onConfirm(zero)
	}
}
