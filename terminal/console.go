package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/muesli/termenv"
	"github.com/peterh/liner"
	"golang.org/x/term"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

var _ Driver = (*Console)(nil)

// Console is a [Driver] backed by the process' standard streams using ANSI escape sequences.
//
// Cursor control is only reported as available when both input and output are terminals.
// In any other case the Console degrades to a line-oriented reader and writer.
type Console struct {
	in      *os.File
	out     *os.File
	output  *termenv.Output
	reader  *bufio.Reader
	line    *liner.State
	tty     bool
	colors  bool
	fg, bg  Color
	visible bool
}

// ConsoleOption configures a [Console].
type ConsoleOption func(c *Console)

// WithInput sets the input stream, which is [os.Stdin] by default.
// Line editing is only used when reading from [os.Stdin].
func WithInput(in *os.File) ConsoleOption {
	return func(c *Console) {
		if in != nil {
			c.in = in
		}
	}
}

// WithOutput sets the output stream, which is [os.Stdout] by default.
// Line editing is only used when writing to [os.Stdout].
func WithOutput(out *os.File) ConsoleOption {
	return func(c *Console) {
		if out != nil {
			c.out = out
		}
	}
}

// WithColors enables or disables color output.
// Colors are also disabled when the output doesn't support them, or NO_COLOR is set.
func WithColors(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.colors = enabled
	}
}

// NewConsole creates a [Console] on the standard streams.
func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{
		in:      os.Stdin,
		out:     os.Stdout,
		colors:  true,
		fg:      ColorDefault,
		bg:      ColorDefault,
		visible: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.output = termenv.NewOutput(c.out)
	c.reader = bufio.NewReader(c.in)
	c.tty = term.IsTerminal(int(c.in.Fd())) && term.IsTerminal(int(c.out.Fd()))
	if c.output.EnvNoColor() || c.output.Profile == termenv.Ascii {
		c.colors = false
	}
	return c
}

// Close restores the cursor and colors, and releases line editing state.
func (c *Console) Close() error {
	if !c.visible {
		c.SetCursorVisible(true)
	}
	if c.fg != ColorDefault || c.bg != ColorDefault {
		c.writeSeq("0")
		c.fg, c.bg = ColorDefault, ColorDefault
	}
	if c.line != nil {
		err := c.line.Close()
		c.line = nil
		return err
	}
	return nil
}

func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func (c *Console) ReadKey(intercept bool) (KeyEvent, error) {
	var (
		ev  KeyEvent
		err error
	)
	if c.tty {
		ev, err = c.readRawKey()
	} else {
		ev, err = c.readBufferedKey()
	}
	if err != nil {
		return ev, err
	}
	if !intercept && ev.Key == KeyRune {
		_, _ = fmt.Fprint(c.out, string(ev.Rune))
	}
	return ev, nil
}

func (c *Console) readRawKey() (KeyEvent, error) {
	fd := int(c.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return KeyEvent{}, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, state)
	}()
	buf := make([]byte, 16)
	n, err := c.in.Read(buf)
	if err != nil {
		return KeyEvent{}, err
	}
	return decodeKey(buf[:n]), nil
}

func (c *Console) readBufferedKey() (KeyEvent, error) {
	r, _, err := c.reader.ReadRune()
	if err != nil {
		return KeyEvent{}, err
	}
	buf := make([]byte, 0, 3)
	buf = utf8.AppendRune(buf, r)
	if r == 0x1b && c.reader.Buffered() >= 2 {
		next, _ := c.reader.Peek(2)
		if next[0] == '[' || next[0] == 'O' {
			buf = append(buf, next...)
			_, _ = c.reader.Discard(2)
		}
	}
	return decodeKey(buf), nil
}

// ReadLine reads a line with history and line editing on an interactive terminal.
// Editing is only available on the process' own standard streams, so any other input is read line by line as typed.
func (c *Console) ReadLine() (string, error) {
	if c.lineEditing() {
		if c.line == nil {
			c.line = liner.NewLiner()
			c.line.SetCtrlCAborts(true)
		}
		text, err := c.line.Prompt("")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return "", ErrInterrupted
			}
			return "", err
		}
		if len(strings.TrimSpace(text)) > 0 {
			c.line.AppendHistory(text)
		}
		return text, nil
	}
	text, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(text) > 0 {
			return strings.TrimRight(text, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}

func (c *Console) lineEditing() bool {
	return c.tty && c.in == os.Stdin && c.out == os.Stdout
}

// CursorPosition queries the terminal with a device status report.
// The origin (0, 0) is returned if the terminal doesn't answer.
func (c *Console) CursorPosition() (left, top int) {
	if !c.tty {
		return 0, 0
	}
	fd := int(c.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, 0
	}
	defer func() {
		_ = term.Restore(fd, state)
	}()
	if _, err := fmt.Fprint(c.out, termenv.CSI+"6n"); err != nil {
		return 0, 0
	}
	var (
		resp []byte
		one  = make([]byte, 1)
	)
	for len(resp) < 32 {
		n, err := c.in.Read(one)
		if err != nil || n == 0 {
			return 0, 0
		}
		resp = append(resp, one[0])
		if one[0] == 'R' {
			break
		}
	}
	var row, col int
	idx := strings.LastIndex(string(resp), "[")
	if idx < 0 {
		return 0, 0
	}
	if _, err := fmt.Sscanf(string(resp[idx:]), "[%d;%dR", &row, &col); err != nil {
		return 0, 0
	}
	return col - 1, row - 1
}

func (c *Console) SetCursorPosition(left, top int) {
	if !c.tty {
		return
	}
	c.output.MoveCursor(top+1, left+1)
}

func (c *Console) ClearLines(from, to int) {
	if !c.tty {
		return
	}
	for row := from; row <= to; row++ {
		c.output.MoveCursor(row+1, 1)
		c.output.ClearLine()
	}
	c.output.MoveCursor(from+1, 1)
}

func (c *Console) Clear() {
	if !c.tty {
		_, _ = fmt.Fprintln(c.out)
		return
	}
	c.output.ClearScreen()
	c.output.MoveCursor(1, 1)
}

func (c *Console) WindowWidth() int {
	width, _, err := term.GetSize(int(c.out.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

func (c *Console) CursorVisible() bool {
	return c.visible
}

func (c *Console) SetCursorVisible(visible bool) {
	if !c.tty {
		return
	}
	if visible {
		c.output.ShowCursor()
	} else {
		c.output.HideCursor()
	}
	c.visible = visible
}

func (c *Console) Foreground() Color {
	return c.fg
}

func (c *Console) SetForeground(color Color) {
	if !color.Valid() {
		return
	}
	c.fg = color
	if color == ColorDefault {
		c.writeSeq("39")
		return
	}
	c.writeSeq(colorSequence(color, false))
}

func (c *Console) Background() Color {
	return c.bg
}

func (c *Console) SetBackground(color Color) {
	if !color.Valid() {
		return
	}
	c.bg = color
	if color == ColorDefault {
		c.writeSeq("49")
		return
	}
	c.writeSeq(colorSequence(color, true))
}

func (c *Console) CanSetCursorPosition() bool {
	return c.tty
}

func (c *Console) CanSetCursorVisibility() bool {
	return c.tty
}

func (c *Console) CanGetWindowWidth() bool {
	_, _, err := term.GetSize(int(c.out.Fd()))
	return err == nil
}

func (c *Console) writeSeq(seq string) {
	if !c.colors {
		return
	}
	_, _ = fmt.Fprint(c.out, termenv.CSI+seq+"m")
}

func colorSequence(color Color, bg bool) string {
	if color < 16 {
		return termenv.ANSIColor(color).Sequence(bg)
	}
	return termenv.ANSI256Color(color).Sequence(bg)
}
