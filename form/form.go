package form

import (
	"context"
	"errors"
	"fmt"
	"github.com/saylorsolutions/conkit/message"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrDependencyCycle = errors.New("form items depend on each other")
)

// Form runs an ordered set of fields to completion, showing a numbered summary of the answers so far.
//
// Items may be conditional, and may depend on other fields.
// When a field's answer changes, every item depending on it is reset, along with every finished item whose condition no longer holds.
// Resetting an unanswered dependent also clears any value set on it ahead of time.
// Reset items are asked again, in declaration order.
type Form struct {
	printer *message.Printer
	title   string
	confirm bool
	texts   Texts
	log     *slog.Logger

	mux   sync.Mutex
	items []*item
}

type item struct {
	field Field
	when  func() bool
	deps  []Field
	last  *Answer
}

func (it *item) active() bool {
	return it.when == nil || it.when()
}

func (it *item) dependsOn(field Field) bool {
	for _, dep := range it.deps {
		if dep == field {
			return true
		}
	}
	return false
}

// Option configures a [Form].
type Option func(f *Form)

// WithTitle sets the text shown above the summary.
func WithTitle(title string) Option {
	return func(f *Form) {
		f.title = title
	}
}

// WithConfirm enables or disables asking whether to edit something once every item is answered.
func WithConfirm(confirm bool) Option {
	return func(f *Form) {
		f.confirm = confirm
	}
}

func WithTexts(texts Texts) Option {
	return func(f *Form) {
		f.texts = texts.withDefaults()
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.log = logger
		}
	}
}

// New creates an empty [Form] that prints to the given [message.Printer].
// Confirmation is enabled by default.
func New(printer *message.Printer, opts ...Option) *Form {
	if printer == nil {
		panic("nil printer")
	}
	f := &Form{
		printer: printer,
		confirm: true,
		texts:   DefaultTexts(),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ItemOption configures how a field participates in a [Form].
type ItemOption func(it *item)

// When makes the field only active while cond returns true.
// Passing a nil function will panic.
func When(cond func() bool) ItemOption {
	if cond == nil {
		panic("nil condition")
	}
	return func(it *item) {
		it.when = cond
	}
}

// DependsOn resets the field whenever the answer of any of the given fields changes.
// Passing a nil [Field] will panic.
func DependsOn(fields ...Field) ItemOption {
	for _, field := range fields {
		if field == nil {
			panic("nil dependency")
		}
	}
	return func(it *item) {
		it.deps = append(it.deps, fields...)
	}
}

// Add appends a field to the form.
// Passing a nil [Field] will panic.
func (f *Form) Add(field Field, opts ...ItemOption) *Form {
	if field == nil {
		panic("nil field")
	}
	it := &item{field: field}
	for _, opt := range opts {
		opt(it)
	}
	f.mux.Lock()
	defer f.mux.Unlock()
	f.items = append(f.items, it)
	return f
}

func (f *Form) snapshot() []*item {
	f.mux.Lock()
	defer f.mux.Unlock()
	items := make([]*item, len(f.items))
	copy(items, f.items)
	return items
}

// Answer returns the answer of a finished field in this form.
func (f *Form) Answer(field Field) (Answer, bool) {
	for _, it := range f.snapshot() {
		if it.field == field {
			return it.field.Answer()
		}
	}
	return Answer{}, false
}

// Answers returns the answers of the finished and active items, in order.
func (f *Form) Answers() []Answer {
	var answers []Answer
	for _, it := range f.snapshot() {
		if !it.active() {
			continue
		}
		if ans, ok := it.field.Answer(); ok {
			answers = append(answers, ans)
		}
	}
	return answers
}

// Reset resets the field, and cascades to its dependents as if its answer had changed.
func (f *Form) Reset(field Field) {
	items := f.snapshot()
	for _, it := range items {
		if it.field == field {
			it.field.Reset()
			f.cascade(items, it)
			return
		}
	}
}

// Run asks every unfinished active item, then shows the summary and offers to edit answers until the user declines.
func (f *Form) Run(ctx context.Context) error {
	items := f.snapshot()
	if err := checkCycles(items); err != nil {
		return err
	}
	s := &Session{printer: f.printer, texts: f.texts, header: func(p *message.Printer) {
		f.printSummary(p, items)
	}}
	for {
		if err := f.fill(ctx, s, items); err != nil {
			return err
		}
		s.reprint()
		if !f.confirm || len(displayed(items)) == 0 {
			return nil
		}
		edit, err := f.askEdit(s)
		if err != nil {
			return err
		}
		if !edit {
			return nil
		}
		chosen, err := f.askItem(s, items)
		if err != nil {
			return err
		}
		f.log.Debug("editing field", "title", chosen.field.Title())
		chosen.field.SetEdition()
	}
}

// fill runs the first unfinished active item until there are none left.
func (f *Form) fill(ctx context.Context, s *Session, items []*item) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var next *item
		for _, it := range items {
			if !it.field.Finished() && it.active() {
				next = it
				break
			}
		}
		if next == nil {
			return nil
		}
		s.reprint()
		if err := next.field.Run(s); err != nil {
			return err
		}
		ans, _ := next.field.Answer()
		f.log.Debug("field answered", "title", next.field.Title())
		changed := next.last == nil || !next.last.Equal(ans)
		next.last = &ans
		if changed {
			f.cascade(items, next)
		}
	}
}

// cascade resets every item depending on source, answered or not, and the finished items that are no longer active.
func (f *Form) cascade(items []*item, source *item) {
	for _, it := range items {
		if it == source {
			continue
		}
		if it.dependsOn(source.field) || (it.field.Finished() && !it.active()) {
			f.log.Debug("cascade reset", "title", it.field.Title(), "source", source.field.Title())
			it.field.Reset()
		}
	}
}

// displayed returns the finished active items, numbered from 1 in order.
func displayed(items []*item) []*item {
	var shown []*item
	for _, it := range items {
		if it.field.Finished() && it.active() {
			shown = append(shown, it)
		}
	}
	return shown
}

func (f *Form) printSummary(p *message.Printer, items []*item) {
	if len(f.title) > 0 {
		p.Printf("{color:yellow}%s{color:default}\n", message.Escape(f.title))
	}
	for i, it := range displayed(items) {
		ans, _ := it.field.Answer()
		p.Println(ans.Summary(i + 1))
	}
	p.Println()
}

func (f *Form) askEdit(s *Session) (bool, error) {
	field := NewCustomTextOption(f.texts.EditPrompt, yesNo, "y", "n").WithDefault(false)
	if err := field.Run(s); err != nil {
		return false, err
	}
	edit, _ := field.Value()
	return edit, nil
}

func (f *Form) askItem(s *Session, items []*item) (*item, error) {
	shown := displayed(items)
	options := make([]string, len(shown))
	for i := range shown {
		options[i] = strconv.Itoa(i + 1)
	}
	field := NewTextOption[int](f.texts.EditSelector, options...).Required(true)
	if err := field.Run(s); err != nil {
		return nil, err
	}
	number, _ := field.Value()
	return shown[number-1], nil
}

func yesNo(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, fmt.Errorf("'%s' is not yes or no", raw)
}

// checkCycles rejects items whose dependencies lead back to themselves.
// Dependencies on fields outside the form are ignored.
func checkCycles(items []*item) error {
	byField := make(map[Field]*item, len(items))
	for _, it := range items {
		byField[it.field] = it
	}
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[*item]int, len(items))
	var visit func(it *item, path []string) error
	visit = func(it *item, path []string) error {
		path = append(path, it.field.Title())
		switch state[it] {
		case visiting:
			return fmt.Errorf("%w: %s", ErrDependencyCycle, strings.Join(path, " -> "))
		case done:
			return nil
		}
		state[it] = visiting
		for _, dep := range it.deps {
			next, ok := byField[dep]
			if !ok {
				continue
			}
			if err := visit(next, path); err != nil {
				return err
			}
		}
		state[it] = done
		return nil
	}
	for _, it := range items {
		if err := visit(it, nil); err != nil {
			return err
		}
	}
	return nil
}
