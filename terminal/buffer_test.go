package terminal

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

func TestBuffer_ReadKey(t *testing.T) {
	buf := NewBuffer(WithKeys(Press(KeyDown), KeyEvent{Key: KeyRune, Rune: 'x'}))

	ev, err := buf.ReadKey(true)
	require.NoError(t, err)
	assert.Equal(t, KeyDown, ev.Key)

	ev, err = buf.ReadKey(false)
	require.NoError(t, err)
	assert.True(t, ev.Is('x'))
	assert.Equal(t, "x", buf.Output(), "Non-intercepted runes should be echoed")

	_, err = buf.ReadKey(true)
	assert.ErrorIs(t, err, io.EOF)
}

func TestBuffer_ReadLine(t *testing.T) {
	buf := NewBuffer(WithLines("first"))
	buf.QueueLines("second")

	line, err := buf.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "first", line)
	line, err = buf.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "second", line)
	_, err = buf.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "first\nsecond\n", buf.Output())
}

func TestBuffer_Screen(t *testing.T) {
	buf := NewBuffer()
	_, _ = io.WriteString(buf, "before")
	buf.Clear()
	_, _ = io.WriteString(buf, "after")
	assert.Equal(t, "beforeafter", buf.Output())
	assert.Equal(t, "after", buf.Screen())
	assert.Equal(t, 1, buf.Clears())
}

func TestBuffer_Cursor(t *testing.T) {
	buf := NewBuffer()
	assert.False(t, buf.CanSetCursorPosition())
	assert.False(t, buf.CanGetWindowWidth())
	assert.Equal(t, DefaultWidth, buf.WindowWidth())

	_, _ = io.WriteString(buf, "ab\ncde")
	left, top := buf.CursorPosition()
	assert.Equal(t, 3, left)
	assert.Equal(t, 1, top)
	buf.SetCursorPosition(0, 0)
	left, top = buf.CursorPosition()
	assert.Equal(t, 3, left, "Position shouldn't change without cursor control")
	assert.Equal(t, 1, top)

	buf = NewBuffer(WithCursorControl(), WithWidth(120))
	assert.True(t, buf.CanSetCursorPosition())
	assert.Equal(t, 120, buf.WindowWidth())
	buf.SetCursorPosition(4, 2)
	left, top = buf.CursorPosition()
	assert.Equal(t, 4, left)
	assert.Equal(t, 2, top)
	buf.SetCursorVisible(false)
	assert.False(t, buf.CursorVisible())
}

func TestBuffer_Colors(t *testing.T) {
	buf := NewBuffer()
	assert.Equal(t, ColorDefault, buf.Foreground())
	buf.SetForeground(Red)
	buf.SetBackground(Blue)
	assert.Equal(t, Red, buf.Foreground())
	assert.Equal(t, Blue, buf.Background())
	buf.SetForeground(Color(300))
	assert.Equal(t, Red, buf.Foreground(), "Invalid colors should be ignored")
}

func TestBuffer_Height(t *testing.T) {
	buf := NewBuffer(WithCursorControl(), WithHeight(3))
	_, _ = buf.Write([]byte("a\nb\nc\nd"))
	left, top := buf.CursorPosition()
	assert.Equal(t, 1, left)
	assert.Equal(t, 2, top, "The cursor should stay on the bottom row once the window scrolls")
}
