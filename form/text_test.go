package form

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/saylorsolutions/conkit/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestTextField_PresetRoundTrip(t *testing.T) {
	s, buf := testSession()
	field := NewTextField[string]("Name").WithValue("X")
	require.NoError(t, field.Run(s))
	assert.Empty(t, buf.Output(), "A preset value should be confirmed without any output")
	ans, ok := field.Answer()
	require.True(t, ok)
	assert.Equal(t, "X", ans.Value())
	assert.Same(t, field, ans.Field())

	field.SetEdition()
	assert.False(t, field.Finished())
	buf.QueueLines("Y")
	require.NoError(t, field.Run(s))
	assert.Contains(t, buf.Output(), "? Name [X]: Y\n")
	val, ok := field.Value()
	assert.True(t, ok)
	assert.Equal(t, "Y", val)
}

func TestTextField_EditKeepsCurrentOnEmpty(t *testing.T) {
	s, _ := testSession(terminal.WithLines("41", ""))
	field := NewTextField[int]("Age").Required(true)
	require.NoError(t, field.Run(s))
	field.SetEdition()
	require.NoError(t, field.Run(s))
	assert.Equal(t, 41, mustValue(field.Value()))
}

func TestTextField_Required(t *testing.T) {
	s, buf := testSession(terminal.WithLines("", "  ", "42"))
	field := NewTextField[int]("Age").Required(true).WithDefault(18)
	require.NoError(t, field.Run(s))
	assert.Equal(t, 42, mustValue(field.Value()))
	assert.Contains(t, buf.Output(), "This field is required.")
	assert.Equal(t, 2, buf.Clears(), "The screen should be reprinted before each retry")
}

func TestTextField_EmptySkipsPipeline(t *testing.T) {
	s, _ := testSession(terminal.WithLines(""))
	field := NewTextField[int]("Age").
		WithDefault(18).
		WithReadTransform(func(string) string { panic("should not transform") }).
		WithValidation(func(string) string { panic("should not validate") })
	require.NoError(t, field.Run(s))
	assert.Equal(t, 18, mustValue(field.Value()))

	s, _ = testSession(terminal.WithLines(""))
	nullable := NewTextField[*int]("Limit")
	require.NoError(t, nullable.Run(s))
	ans, _ := nullable.Answer()
	assert.Nil(t, ans.Value().(*int))
	assert.Empty(t, ans.String())
}

func TestTextField_Pipeline(t *testing.T) {
	var changes []string
	s, buf := testSession(terminal.WithLines("x", "abc", "12", "  7 "))
	field := NewTextField[int]("Level").
		WithReadTransform(strings.TrimSpace).
		WithValidation(func(s string) string {
			if len(s) < 2 && s != "7" {
				return "Too short."
			}
			return ""
		}).
		WithValidateTransform(func(s string) string { return s }).
		WithCheck(Between(1, 10)).
		OnChange(func(v int) { changes = append(changes, "changed") })
	require.NoError(t, field.Run(s))
	assert.Equal(t, 7, mustValue(field.Value()))
	out := buf.Output()
	assert.Contains(t, out, "Too short.")
	assert.Contains(t, out, "Could not convert the value.")
	assert.Contains(t, out, "The value must be between 1 and 10.")
	assert.Len(t, changes, 2, "Both converted inputs should be reported")
}

func TestTextField_CursorControl(t *testing.T) {
	s, buf := testSession(terminal.WithCursorControl(), terminal.WithLines("nope", "3"))
	field := NewLongField("Count")
	require.NoError(t, field.Run(s))
	assert.Equal(t, int64(3), mustValue(field.Value()))
	assert.Zero(t, buf.Clears(), "Only the field's lines should be redrawn")
	assert.Equal(t, "? Count: nope\nCould not convert the value.\n? Count: 3\n", buf.Screen())
}

func TestNewDecimalField(t *testing.T) {
	s, _ := testSession(terminal.WithLines("12.50"))
	field := NewDecimalField("Price")
	require.NoError(t, field.Run(s))
	ans, _ := field.Answer()
	assert.Equal(t, "12.50", ans.String())
	d, ok := ValueOf[apd.Decimal](ans)
	require.True(t, ok)
	assert.Equal(t, int32(-2), d.Exponent)
}

func TestTextField_Reset(t *testing.T) {
	var priors []*Answer
	s, _ := testSession(terminal.WithLines("Jane"))
	field := NewTextField[string]("Name").WithValue("John").OnReset(func(prior *Answer) {
		priors = append(priors, prior)
	})
	field.Reset()
	require.NoError(t, field.Run(s), "The preset is cleared by Reset")
	assert.Equal(t, "Jane", mustValue(field.Value()))
	field.Reset()
	require.Len(t, priors, 2)
	assert.Nil(t, priors[0])
	require.NotNil(t, priors[1])
	assert.Equal(t, "Jane", priors[1].String())
	assert.False(t, field.Finished())
}

func TestTextField_InputErrors(t *testing.T) {
	s, _ := testSession()
	assert.Error(t, NewTextField[string]("Name").Run(s))
	assert.Panics(t, func() { NewTextField[string]("") })
	assert.Panics(t, func() { NewTextField[[]string]("Tags") })
	assert.Panics(t, func() { NewCustomTextField[string]("Name", nil) })
}

func mustValue[T any](val T, ok bool) T {
	if !ok {
		panic("field not finished")
	}
	return val
}
