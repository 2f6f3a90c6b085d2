package form

import (
	"github.com/saylorsolutions/conkit/message"
	"github.com/saylorsolutions/conkit/terminal"
)

func testSession(opts ...terminal.BufferOption) (*Session, *terminal.Buffer) {
	buf := terminal.NewBuffer(opts...)
	return NewSession(message.NewPrinter(buf), Texts{}), buf
}

func keys(events ...any) []terminal.KeyEvent {
	var out []terminal.KeyEvent
	for _, ev := range events {
		switch e := ev.(type) {
		case terminal.Key:
			out = append(out, terminal.Press(e))
		case string:
			out = append(out, terminal.Type(e)...)
		}
	}
	return out
}
