package terminal

import (
	"io"
	"strings"
	"unicode/utf8"
)

var _ Driver = (*Buffer)(nil)

// Buffer is a scripted, in-memory [Driver].
// Input is queued ahead of time, and all output is captured for inspection.
// This is mostly useful for testing interactive code, or for running it with captured output.
//
// By default a Buffer behaves like redirected output: it reports no cursor control, so callers fall back to full reprints.
type Buffer struct {
	keys    []KeyEvent
	lines   []string
	out     strings.Builder
	screen  strings.Builder
	cursor  bool
	width   int
	height  int
	left    int
	top     int
	fg, bg  Color
	visible bool
	clears  int
}

// BufferOption configures a [Buffer].
type BufferOption func(b *Buffer)

// WithKeys queues key presses to be returned from [Buffer.ReadKey].
func WithKeys(keys ...KeyEvent) BufferOption {
	return func(b *Buffer) {
		b.keys = append(b.keys, keys...)
	}
}

// WithLines queues lines to be returned from [Buffer.ReadLine].
func WithLines(lines ...string) BufferOption {
	return func(b *Buffer) {
		b.lines = append(b.lines, lines...)
	}
}

// WithCursorControl makes the Buffer report cursor positioning and visibility support.
func WithCursorControl() BufferOption {
	return func(b *Buffer) {
		b.cursor = true
	}
}

// WithWidth makes the Buffer report a measurable window of the given width.
func WithWidth(width int) BufferOption {
	return func(b *Buffer) {
		b.width = width
	}
}

// WithHeight makes the Buffer scroll like a window of the given height.
// Once the cursor reaches the bottom row, each new line leaves it on that row.
func WithHeight(height int) BufferOption {
	return func(b *Buffer) {
		b.height = height
	}
}

func NewBuffer(opts ...BufferOption) *Buffer {
	b := &Buffer{
		fg:      ColorDefault,
		bg:      ColorDefault,
		visible: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// QueueKeys appends more key presses to the input script.
func (b *Buffer) QueueKeys(keys ...KeyEvent) {
	b.keys = append(b.keys, keys...)
}

// QueueLines appends more lines to the input script.
func (b *Buffer) QueueLines(lines ...string) {
	b.lines = append(b.lines, lines...)
}

// Output returns everything written to the Buffer.
func (b *Buffer) Output() string {
	return b.out.String()
}

// Screen returns everything written since the last call to [Buffer.Clear].
func (b *Buffer) Screen() string {
	return b.screen.String()
}

// Clears returns how many times the screen was cleared.
func (b *Buffer) Clears() int {
	return b.clears
}

func (b *Buffer) Write(p []byte) (int, error) {
	n := len(p)
	b.out.Write(p)
	b.screen.Write(p)
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		p = p[size:]
		if r == '\n' {
			b.top++
			if b.height > 0 && b.top >= b.height {
				b.top = b.height - 1
			}
			b.left = 0
			continue
		}
		b.left++
	}
	return n, nil
}

func (b *Buffer) ReadKey(intercept bool) (KeyEvent, error) {
	if len(b.keys) == 0 {
		return KeyEvent{}, io.EOF
	}
	ev := b.keys[0]
	b.keys = b.keys[1:]
	if !intercept && ev.Key == KeyRune {
		_, _ = b.Write([]byte(string(ev.Rune)))
	}
	return ev, nil
}

func (b *Buffer) ReadLine() (string, error) {
	if len(b.lines) == 0 {
		return "", io.EOF
	}
	line := b.lines[0]
	b.lines = b.lines[1:]
	_, _ = b.Write([]byte(line + "\n"))
	return line, nil
}

func (b *Buffer) CursorPosition() (left, top int) {
	return b.left, b.top
}

func (b *Buffer) SetCursorPosition(left, top int) {
	if !b.cursor {
		return
	}
	b.left, b.top = left, top
}

func (b *Buffer) ClearLines(from, to int) {
	if !b.cursor {
		return
	}
	b.left, b.top = 0, from
}

func (b *Buffer) Clear() {
	b.screen.Reset()
	b.left, b.top = 0, 0
	b.clears++
}

func (b *Buffer) WindowWidth() int {
	if b.width <= 0 {
		return DefaultWidth
	}
	return b.width
}

func (b *Buffer) CursorVisible() bool {
	return b.visible
}

func (b *Buffer) SetCursorVisible(visible bool) {
	if !b.cursor {
		return
	}
	b.visible = visible
}

func (b *Buffer) Foreground() Color {
	return b.fg
}

func (b *Buffer) SetForeground(c Color) {
	if c.Valid() {
		b.fg = c
	}
}

func (b *Buffer) Background() Color {
	return b.bg
}

func (b *Buffer) SetBackground(c Color) {
	if c.Valid() {
		b.bg = c
	}
}

func (b *Buffer) CanSetCursorPosition() bool {
	return b.cursor
}

func (b *Buffer) CanSetCursorVisibility() bool {
	return b.cursor
}

func (b *Buffer) CanGetWindowWidth() bool {
	return b.width > 0
}
