package message

import (
	"fmt"
	"github.com/saylorsolutions/conkit/terminal"
	"io"
)

// Printer writes user-visible output to a [terminal.Driver], interpreting color markup along the way.
// See [DecipherMessages] for the markup syntax.
type Printer struct {
	out terminal.Driver
}

func NewPrinter(driver terminal.Driver) *Printer {
	if driver == nil {
		panic("nil driver")
	}
	return &Printer{out: driver}
}

func (p *Printer) Redirect(driver terminal.Driver) {
	if driver == nil {
		panic("nil driver")
	}
	p.out = driver
}

// Driver returns the [terminal.Driver] this Printer writes to.
func (p *Printer) Driver() terminal.Driver {
	return p.out
}

func (p *Printer) Print(msg ...any) {
	p.write(fmt.Sprint(msg...))
}

func (p *Printer) Printf(format string, args ...any) {
	p.write(fmt.Sprintf(format, args...))
}

func (p *Printer) Println(msg ...any) {
	p.write(fmt.Sprintln(msg...))
}

// Plain writes without interpreting markup.
func (p *Printer) Plain(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

// Plainf writes a formatted string without interpreting markup.
func (p *Printer) Plainf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) write(markup string) {
	startFg, startBg := p.out.Foreground(), p.out.Background()
	for _, seg := range DecipherMessages(markup) {
		if fg := resolve(seg.Foreground, startFg); fg != p.out.Foreground() {
			p.out.SetForeground(fg)
		}
		if bg := resolve(seg.Background, startBg); bg != p.out.Background() {
			p.out.SetBackground(bg)
		}
		_, _ = io.WriteString(p.out, seg.Text)
	}
	if p.out.Foreground() != startFg {
		p.out.SetForeground(startFg)
	}
	if p.out.Background() != startBg {
		p.out.SetBackground(startBg)
	}
}

func resolve(requested *terminal.Color, start terminal.Color) terminal.Color {
	if requested == nil || IsDefault(*requested) {
		return start
	}
	return *requested
}
