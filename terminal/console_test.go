package terminal

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func TestColorSequence(t *testing.T) {
	assert.Equal(t, "31", colorSequence(Red, false))
	assert.Equal(t, "41", colorSequence(Red, true))
	assert.Equal(t, "91", colorSequence(BrightRed, false))
	assert.Equal(t, "38;5;200", colorSequence(Color(200), false))
	assert.Equal(t, "48;5;200", colorSequence(Color(200), true))
}

func TestConsole_LineEditing(t *testing.T) {
	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	defer func() { _ = inR.Close() }()
	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	defer func() {
		_ = outR.Close()
		_ = outW.Close()
	}()

	assert.True(t, (&Console{in: os.Stdin, out: os.Stdout, tty: true}).lineEditing())
	assert.False(t, (&Console{in: os.Stdin, out: os.Stdout}).lineEditing(), "No editing without a terminal")
	assert.False(t, (&Console{in: inR, out: os.Stdout, tty: true}).lineEditing(), "Editing always reads standard input")
	assert.False(t, (&Console{in: os.Stdin, out: outW, tty: true}).lineEditing(), "Editing always writes standard output")

	c := NewConsole(WithInput(inR), WithOutput(outW), WithColors(false))
	_, err = inW.WriteString("first\r\nsecond")
	require.NoError(t, err)
	require.NoError(t, inW.Close())

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "first", line)
	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "second", line, "A last line without a newline is still read")
	require.NoError(t, c.Close())
}
