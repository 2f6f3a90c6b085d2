package terminal

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDecodeKey(t *testing.T) {
	tests := map[string]struct {
		input    []byte
		expected KeyEvent
	}{
		"Empty":            {input: nil, expected: KeyEvent{Key: KeyUnknown}},
		"Carriage return":  {input: []byte{'\r'}, expected: KeyEvent{Key: KeyEnter}},
		"Line feed":        {input: []byte{'\n'}, expected: KeyEvent{Key: KeyEnter}},
		"Space":            {input: []byte{' '}, expected: KeyEvent{Key: KeySpace, Rune: ' '}},
		"Delete":           {input: []byte{0x7f}, expected: KeyEvent{Key: KeyBackspace}},
		"Backspace":        {input: []byte{0x08}, expected: KeyEvent{Key: KeyBackspace}},
		"Tab":              {input: []byte{'\t'}, expected: KeyEvent{Key: KeyTab}},
		"Ctrl+C":           {input: []byte{0x03}, expected: KeyEvent{Key: KeyCtrlC}},
		"Escape":           {input: []byte{0x1b}, expected: KeyEvent{Key: KeyEscape}},
		"Up":               {input: []byte("\x1b[A"), expected: KeyEvent{Key: KeyUp}},
		"Down":             {input: []byte("\x1b[B"), expected: KeyEvent{Key: KeyDown}},
		"Right":            {input: []byte("\x1b[C"), expected: KeyEvent{Key: KeyRight}},
		"Left":             {input: []byte("\x1b[D"), expected: KeyEvent{Key: KeyLeft}},
		"Application up":   {input: []byte("\x1bOA"), expected: KeyEvent{Key: KeyUp}},
		"Unknown sequence": {input: []byte("\x1b[Z"), expected: KeyEvent{Key: KeyUnknown}},
		"Letter":           {input: []byte("j"), expected: KeyEvent{Key: KeyRune, Rune: 'j'}},
		"Multi-byte rune":  {input: []byte("é"), expected: KeyEvent{Key: KeyRune, Rune: 'é'}},
		"Control char":     {input: []byte{0x01}, expected: KeyEvent{Key: KeyUnknown}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, decodeKey(tc.input))
		})
	}
}

func TestType(t *testing.T) {
	events := Type("a b")
	assert.Equal(t, []KeyEvent{
		{Key: KeyRune, Rune: 'a'},
		{Key: KeySpace, Rune: ' '},
		{Key: KeyRune, Rune: 'b'},
	}, events)
	assert.False(t, events[0].IsSpecial())
	assert.True(t, events[1].IsSpecial())
	assert.True(t, events[2].Is('b'))
}
