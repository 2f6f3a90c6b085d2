package terminal

import (
	"unicode/utf8"
)

// decodeKey translates the raw bytes of a single read into a key press.
// Input that doesn't form a known sequence yields [KeyUnknown].
func decodeKey(buf []byte) KeyEvent {
	if len(buf) == 0 {
		return KeyEvent{Key: KeyUnknown}
	}
	switch buf[0] {
	case '\r', '\n':
		return KeyEvent{Key: KeyEnter}
	case ' ':
		return KeyEvent{Key: KeySpace, Rune: ' '}
	case 0x7f, 0x08:
		return KeyEvent{Key: KeyBackspace}
	case '\t':
		return KeyEvent{Key: KeyTab}
	case 0x03:
		return KeyEvent{Key: KeyCtrlC}
	case 0x1b:
		if len(buf) == 1 {
			return KeyEvent{Key: KeyEscape}
		}
		if len(buf) >= 3 && (buf[1] == '[' || buf[1] == 'O') {
			switch buf[2] {
			case 'A':
				return KeyEvent{Key: KeyUp}
			case 'B':
				return KeyEvent{Key: KeyDown}
			case 'C':
				return KeyEvent{Key: KeyRight}
			case 'D':
				return KeyEvent{Key: KeyLeft}
			}
		}
		return KeyEvent{Key: KeyUnknown}
	}
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		return KeyEvent{Key: KeyUnknown}
	}
	if r < 0x20 {
		return KeyEvent{Key: KeyUnknown}
	}
	return KeyEvent{Key: KeyRune, Rune: r}
}

// Press creates a [KeyEvent] for a special key.
func Press(key Key) KeyEvent {
	if key == KeySpace {
		return KeyEvent{Key: KeySpace, Rune: ' '}
	}
	return KeyEvent{Key: key}
}

// Type creates the key presses for typing text one character at a time.
// Spaces are reported as [KeySpace].
func Type(text string) []KeyEvent {
	events := make([]KeyEvent, 0, len(text))
	for _, r := range text {
		if r == ' ' {
			events = append(events, Press(KeySpace))
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
	}
	return events
}
