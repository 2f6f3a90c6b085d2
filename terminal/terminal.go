package terminal

import (
	"errors"
	"io"
)

var (
	// ErrInterrupted is returned from interactive reads when the user presses Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
)

// Key identifies a key press read by [Driver.ReadKey].
type Key int

const (
	KeyUnknown Key = iota
	KeyRune        // KeyRune is a printable character, held in [KeyEvent.Rune].
	KeyEnter
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBackspace
	KeyTab
	KeyEscape
	KeyCtrlC
)

func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyBackspace:
		return "backspace"
	case KeyTab:
		return "tab"
	case KeyEscape:
		return "escape"
	case KeyCtrlC:
		return "ctrl+c"
	default:
		return "unknown"
	}
}

// KeyEvent is a single key press.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// IsSpecial reports whether the event is anything other than a printable character.
func (e KeyEvent) IsSpecial() bool {
	return e.Key != KeyRune
}

// Is reports whether the event is the printable character r.
func (e KeyEvent) Is(r rune) bool {
	return e.Key == KeyRune && e.Rune == r
}

// Color is a terminal color in the ANSI 256-color palette.
// The first 16 values follow the standard ANSI ordering.
type Color int

const (
	ColorDefault Color = -1 // ColorDefault is the terminal's own foreground or background.
)

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Valid reports whether c can be rendered, including [ColorDefault].
func (c Color) Valid() bool {
	return c >= ColorDefault && c <= 255
}

// Driver is the console surface consumed by the command runner and the form engine.
//
// Implementations that can't move the cursor, hide it, or measure the window report that through the Can* probes, and callers degrade to full reprints.
type Driver interface {
	io.Writer

	// ReadKey blocks for a single key press.
	// When intercept is false, printable characters are echoed.
	ReadKey(intercept bool) (KeyEvent, error)
	// ReadLine blocks for a full line of input, without the line terminator.
	// [io.EOF] is returned when input is closed.
	ReadLine() (string, error)

	CursorPosition() (left, top int)
	SetCursorPosition(left, top int)
	// ClearLines blanks every line in [from, to], inclusive.
	ClearLines(from, to int)
	Clear()
	WindowWidth() int

	CursorVisible() bool
	SetCursorVisible(visible bool)

	Foreground() Color
	SetForeground(c Color)
	Background() Color
	SetBackground(c Color)

	CanSetCursorPosition() bool
	CanSetCursorVisibility() bool
	CanGetWindowWidth() bool
}

// DefaultWidth is reported by drivers that can't measure the window.
const DefaultWidth = 80
