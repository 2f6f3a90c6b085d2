package form

import (
	"github.com/saylorsolutions/conkit/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestTextOption_Run(t *testing.T) {
	s, buf := testSession(terminal.WithLines("maybe", "Y", "y"))
	field := NewTextOption[bool]("Continue", "y", "n").Required(true)
	require.NoError(t, field.Run(s))
	assert.True(t, mustValue(field.Value()))
	out := buf.Output()
	assert.Contains(t, out, "? Continue (y/n)*: ")
	assert.Contains(t, out, "Could not convert the value.")
	assert.Contains(t, out, "Invalid option.", "Options are matched case-sensitive")
}

func TestTextOption_Empty(t *testing.T) {
	s, buf := testSession(terminal.WithLines("", "", "3"))
	required := NewTextOption[int]("Size", "1", "2", "3").Required(true)
	require.NoError(t, required.Run(s))
	assert.Equal(t, 3, mustValue(required.Value()))
	assert.Contains(t, buf.Output(), "This field is required.")

	s, _ = testSession(terminal.WithLines(""))
	optional := NewTextOption[int]("Size", "1", "2", "3").WithDefault(2)
	require.NoError(t, optional.Run(s))
	assert.Equal(t, 2, mustValue(optional.Value()))
}

func TestNewOptionSelector(t *testing.T) {
	var confirmed []string
	s, _ := testSession(terminal.WithLines("green"))
	field := NewOptionSelector("Color", "red", "green").OnConfirm(func(v string) {
		confirmed = append(confirmed, v)
	})
	require.NoError(t, field.Run(s))
	assert.Equal(t, []string{"green"}, confirmed)
	assert.Equal(t, []string{"red", "green"}, field.Options())

	assert.Panics(t, func() { NewOptionSelector("Color") })
	assert.Panics(t, func() { NewOptionSelector("", "red") })
}
