package form

import (
	"github.com/mattn/go-runewidth"
	"github.com/saylorsolutions/conkit/message"
	"github.com/saylorsolutions/conkit/terminal"
)

// Session is what a [Field] draws to and reads from while running.
type Session struct {
	printer *message.Printer
	texts   Texts
	header  func(p *message.Printer)
}

// NewSession creates a [Session] for running fields on their own.
// Blank texts fall back to [DefaultTexts].
func NewSession(printer *message.Printer, texts Texts) *Session {
	if printer == nil {
		panic("nil printer")
	}
	return &Session{printer: printer, texts: texts.withDefaults()}
}

func (s *Session) Printer() *message.Printer {
	return s.printer
}

func (s *Session) Driver() terminal.Driver {
	return s.printer.Driver()
}

func (s *Session) Texts() Texts {
	return s.texts
}

// reprint clears the screen and prints the header again, if there is one.
func (s *Session) reprint() {
	s.Driver().Clear()
	if s.header != nil {
		s.header(s.printer)
	}
}

// frame is the screen region a field draws its prompt into.
// Redrawing clears just that region when the driver can move the cursor, and falls back to reprinting the whole screen when it can't.
//
// The region's top row is tracked by counting the rows written into it.
// When the cursor ends up fewer rows below the top than were written, the terminal scrolled, and the top moves up by the difference.
type frame struct {
	s     *Session
	top   int
	rows  rowCounter
	drawn bool
}

func (s *Session) newFrame() *frame {
	f := &frame{s: s}
	if d := s.Driver(); d.CanSetCursorPosition() {
		_, f.top = d.CursorPosition()
	}
	return f
}

func (f *frame) draw(render func(p *message.Printer)) {
	d := f.s.Driver()
	if f.drawn {
		if d.CanSetCursorPosition() {
			_, bottom := d.CursorPosition()
			if bottom-f.top < f.rows.rows {
				f.top = max(bottom-f.rows.rows, 0)
			}
			d.ClearLines(f.top, bottom)
			d.SetCursorPosition(0, f.top)
		} else {
			f.s.reprint()
		}
	}
	f.rows = rowCounter{Driver: d, width: d.WindowWidth()}
	f.s.printer.Redirect(&f.rows)
	defer f.s.printer.Redirect(d)
	render(f.s.printer)
	f.drawn = true
}

// readLine reads a line of input, accounting for the rows its echo takes up.
func (f *frame) readLine() (string, error) {
	line, err := f.s.Driver().ReadLine()
	if err != nil {
		return line, err
	}
	f.rows.count(line + "\n")
	return line, nil
}

// rowCounter counts the terminal rows written through it, including lines wrapped at the window width.
type rowCounter struct {
	terminal.Driver
	width int
	col   int
	rows  int
}

func (c *rowCounter) Write(p []byte) (int, error) {
	c.count(string(p))
	return c.Driver.Write(p)
}

func (c *rowCounter) count(text string) {
	for _, r := range text {
		if r == '\n' {
			c.rows++
			c.col = 0
			continue
		}
		w := runewidth.RuneWidth(r)
		if c.width > 0 && c.col+w > c.width {
			c.rows++
			c.col = 0
		}
		c.col += w
	}
}

// hideCursor hides the cursor if possible, returning a function restoring it.
func (s *Session) hideCursor() func() {
	d := s.Driver()
	if !d.CanSetCursorVisibility() {
		return func() {}
	}
	visible := d.CursorVisible()
	d.SetCursorVisible(false)
	return func() {
		d.SetCursorVisible(visible)
	}
}
