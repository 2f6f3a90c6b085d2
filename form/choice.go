package form

import (
	"fmt"
	"github.com/saylorsolutions/conkit/message"
	"github.com/saylorsolutions/conkit/terminal"
	"strings"
)

// Choice is a selectable item, shown by its label.
type Choice[T any] struct {
	Label string
	Value T
}

// Choices creates a [Choice] for each value, labeled with its default formatting.
func Choices[T any](values ...T) []Choice[T] {
	choices := make([]Choice[T], len(values))
	for i, val := range values {
		choices[i] = Choice[T]{Label: fmt.Sprint(val), Value: val}
	}
	return choices
}

// navigation is the key handling shared by the select fields.
type navigation int

const (
	navNone navigation = iota
	navMove
	navToggle
	navConfirm
	navInterrupt
)

// navigate interprets a key press, moving the cursor within n items.
func navigate(ev terminal.KeyEvent, cursor *int, n int) navigation {
	switch {
	case ev.Key == terminal.KeyUp || ev.Is('k'):
		if *cursor > 0 {
			*cursor--
		}
		return navMove
	case ev.Key == terminal.KeyDown || ev.Is('j'):
		if *cursor < n-1 {
			*cursor++
		}
		return navMove
	case ev.Key == terminal.KeySpace:
		return navToggle
	case ev.Key == terminal.KeyEnter:
		return navConfirm
	case ev.Key == terminal.KeyCtrlC:
		return navInterrupt
	}
	return navNone
}

func renderChoices[T any](p *message.Printer, title string, required bool, choices []Choice[T], cursor int, checked func(i int) bool, marks [2]string, errMsg string) {
	if len(errMsg) > 0 {
		p.Printf("{color:red}%s{color:default}\n", message.Escape(errMsg))
	}
	header := "{color:cyan}?{color:default} " + message.Escape(title)
	if required {
		header += "{color:red}*{color:default}"
	}
	p.Println(header)
	for i, c := range choices {
		pointer := "  "
		if i == cursor {
			pointer = "{color:cyan}>{color:default} "
		}
		mark := marks[0]
		if checked(i) {
			mark = "{color:green}" + marks[1] + "{color:default}"
		}
		p.Println(pointer + mark + " " + message.Escape(c.Label))
	}
}

func joinLabels[T any](choices []Choice[T], include func(i int) bool) string {
	var labels []string
	for i, c := range choices {
		if include(i) {
			labels = append(labels, c.Label)
		}
	}
	return strings.Join(labels, ", ")
}
