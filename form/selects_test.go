package form

import (
	"github.com/saylorsolutions/conkit/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func checkedCount(f *SingleSelect[string]) int {
	var n int
	for i := range f.choices {
		if f.isChecked(i) {
			n++
		}
	}
	return n
}

func TestSingleSelect_RequiredAlwaysChecked(t *testing.T) {
	s, _ := testSession()
	f := NewSingleSelect("Plan", Choices("free", "pro", "team")...).Required(true)
	f.start()
	assert.Equal(t, 1, checkedCount(f))
	for _, ev := range keys(terminal.KeyDown, "j", terminal.KeyDown, terminal.KeyUp, terminal.KeySpace, "k", "k", "k", terminal.KeySpace) {
		_, err := f.handleKey(s, ev)
		require.NoError(t, err)
		assert.Equal(t, 1, checkedCount(f), "Exactly one choice should be checked after %s", ev.Key)
		assert.Equal(t, f.cursor, f.checked, "The hovered choice should be the checked one")
	}
}

func TestSingleSelect_OptionalCanBeEmpty(t *testing.T) {
	s, _ := testSession()
	f := NewSingleSelect("Plan", Choices("free", "pro")...)
	f.start()
	assert.Equal(t, 0, checkedCount(f))
	_, _ = f.handleKey(s, terminal.Press(terminal.KeySpace))
	assert.Equal(t, 1, checkedCount(f))
	_, _ = f.handleKey(s, terminal.Press(terminal.KeyDown))
	assert.Equal(t, 1, checkedCount(f), "Moving shouldn't check anything when optional")
	_, _ = f.handleKey(s, terminal.Press(terminal.KeyUp))
	_, _ = f.handleKey(s, terminal.Press(terminal.KeySpace))
	assert.Equal(t, 0, checkedCount(f))
}

func TestSingleSelect_Run(t *testing.T) {
	var changes []string
	s, buf := testSession(terminal.WithKeys(keys(terminal.KeyDown, terminal.KeyDown, terminal.KeyDown, terminal.KeyEnter)...))
	f := NewSingleSelect("Plan",
		Choice[string]{Label: "Free", Value: "free"},
		Choice[string]{Label: "Pro", Value: "pro"},
		Choice[string]{Label: "Team", Value: "team"},
	).Required(true).OnChange(func(v string) { changes = append(changes, v) })
	require.NoError(t, f.Run(s))
	ans, ok := f.Answer()
	require.True(t, ok)
	assert.Equal(t, "team", ans.Value())
	assert.Equal(t, "Team", ans.String())
	assert.Equal(t, []string{"free", "pro", "team"}, changes)
	assert.Contains(t, buf.Output(), "? Plan*\n  ( ) Free\n  ( ) Pro\n> (*) Team\n")
}

func TestSingleSelect_OptionalConfirmNothing(t *testing.T) {
	s, _ := testSession(terminal.WithKeys(terminal.Press(terminal.KeyEnter)))
	f := NewSingleSelect("Plan", Choices("free", "pro")...)
	require.NoError(t, f.Run(s))
	ans, ok := f.Answer()
	require.True(t, ok)
	assert.Nil(t, ans.Value())
	assert.Equal(t, "", ans.String())
	_, ok = f.Value()
	assert.False(t, ok, "Nothing was checked")
}

func TestSingleSelect_NothingCheckedIsNotZeroChoice(t *testing.T) {
	var confirmed int
	s, buf := testSession(terminal.WithKeys(terminal.Press(terminal.KeyEnter)))
	f := NewSingleSelect("Count",
		Choice[int]{Label: "zero", Value: 0},
		Choice[int]{Label: "one", Value: 1},
	).OnConfirm(func(int) { confirmed++ })
	require.NoError(t, f.Run(s))
	assert.Equal(t, 1, confirmed)

	ans, ok := f.Answer()
	require.True(t, ok)
	assert.Nil(t, ans.Value())
	assert.Equal(t, "", ans.String())
	assert.Equal(t, "{color:cyan}1.{color:default} Count: {color:green}{color:default}", ans.Summary(1))
	assert.False(t, ans.Equal(Answer{field: f, value: 0, display: "zero"}), "Nothing checked should differ from the zero-valued choice")

	f.SetEdition()
	f.start()
	assert.Equal(t, -1, f.checked, "An edition should start with nothing checked")

	buf.QueueKeys(terminal.Press(terminal.KeySpace), terminal.Press(terminal.KeyEnter))
	require.NoError(t, f.Run(s))
	val, ok := f.Value()
	require.True(t, ok)
	assert.Equal(t, 0, val)
	ans, _ = f.Answer()
	assert.Equal(t, "zero", ans.String())
}

func TestSingleSelect_EditionIgnoresDefaultAfterNothingChecked(t *testing.T) {
	s, _ := testSession(terminal.WithKeys(terminal.Press(terminal.KeySpace), terminal.Press(terminal.KeyEnter)))
	f := NewSingleSelect("Plan", Choices("free", "pro")...).WithDefault("pro")
	f.SetEdition()
	require.NoError(t, f.Run(s), "The default starts checked, and space unchecks it")
	_, ok := f.Value()
	assert.False(t, ok)

	f.SetEdition()
	f.start()
	assert.Equal(t, -1, f.checked, "The default shouldn't replace an answer with nothing checked")
}

func TestSingleSelect_DefaultAndEdit(t *testing.T) {
	s, buf := testSession()
	f := NewSingleSelect("Plan", Choices("free", "pro", "team")...).WithDefault("pro")
	require.NoError(t, f.Run(s))
	assert.Equal(t, "pro", mustValue(f.Value()))
	assert.Empty(t, buf.Output())

	f.SetEdition()
	buf.QueueKeys(keys(terminal.KeyDown, terminal.KeySpace, terminal.KeyEnter)...)
	require.NoError(t, f.Run(s))
	assert.Equal(t, "team", mustValue(f.Value()), "Editing should start from the current answer")
}

func TestSingleSelect_Interrupted(t *testing.T) {
	s, _ := testSession(terminal.WithKeys(terminal.Press(terminal.KeyCtrlC)))
	f := NewSingleSelect("Plan", Choices("free")...)
	assert.ErrorIs(t, f.Run(s), terminal.ErrInterrupted)
	assert.False(t, f.Finished())
}

func TestMultiSelect_Required(t *testing.T) {
	s, buf := testSession(terminal.WithKeys(keys(
		terminal.KeyEnter,
		terminal.KeySpace, terminal.KeyDown, terminal.KeyDown, terminal.KeySpace, terminal.KeyEnter,
	)...))
	var changes [][]string
	f := NewMultiSelect("Tags", Choices("a", "b", "c")...).Required(true).OnChange(func(v []string) {
		changes = append(changes, v)
	})
	require.NoError(t, f.Run(s))
	assert.Contains(t, buf.Output(), "Select at least one option.")
	assert.Equal(t, []string{"a", "c"}, mustValue(f.Value()))
	assert.Equal(t, [][]string{{"a"}, {"a", "c"}}, changes)
	ans, _ := f.Answer()
	assert.Equal(t, "a, c", ans.String())
}

func TestMultiSelect_RequiredDoesNotConfirmEmpty(t *testing.T) {
	s, buf := testSession(terminal.WithKeys(terminal.Press(terminal.KeyEnter)))
	f := NewMultiSelect("Tags", Choices("a", "b")...).Required(true)
	assert.Error(t, f.Run(s), "Input runs out before anything is confirmed")
	assert.False(t, f.Finished())
	assert.Contains(t, buf.Output(), "Select at least one option.")
}

func TestMultiSelect_Optional(t *testing.T) {
	s, _ := testSession(terminal.WithKeys(terminal.Press(terminal.KeyEnter)))
	f := NewMultiSelect("Tags", Choices("a", "b")...).WithDefault("b")
	require.NoError(t, f.Run(s))
	assert.Equal(t, []string{"b"}, mustValue(f.Value()))

	s, _ = testSession(terminal.WithKeys(terminal.Press(terminal.KeyEnter)))
	f = NewMultiSelect("Tags", Choices("a", "b")...)
	require.NoError(t, f.Run(s))
	assert.Equal(t, []string{}, mustValue(f.Value()))

	s, buf := testSession()
	f = NewMultiSelect("Tags", Choices("a", "b")...).WithValue("a", "b")
	require.NoError(t, f.Run(s))
	assert.Equal(t, []string{"a", "b"}, mustValue(f.Value()))
	assert.Empty(t, buf.Output())
}

func TestSelects_CursorControl(t *testing.T) {
	s, buf := testSession(terminal.WithCursorControl(), terminal.WithKeys(keys(terminal.KeyDown, terminal.KeyEnter)...))
	f := NewSingleSelect("Plan", Choices("free", "pro")...).Required(true)
	require.NoError(t, f.Run(s))
	assert.Zero(t, buf.Clears())
	assert.True(t, buf.CursorVisible(), "The cursor should be restored")
}
