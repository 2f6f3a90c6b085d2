package command

import (
	"github.com/saylorsolutions/conkit/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func testArguments(t *testing.T, args ...string) *Arguments {
	t.Helper()
	b := NewBuilder()
	b.AddGroup(func(g *Group) {
		g.WithName("db").
			AddOption("--timeout", "", SplitByEqual).
			AddCommand(func(c *Command) {
				c.WithName("copy").
					AddOption("--timeout", "", SplitByEqual).
					AddParameter("from", "").
					AddParameter("to", "").
					AddParameter("count", "").
					SetHandler(noop)
			})
	})
	match, err := NewMatcher(b).Match(args)
	require.NoError(t, err)
	require.NotNil(t, match.Command)
	return newArguments(match.Command, args, must(bufferPrinter()))
}

func TestArguments_Lookup(t *testing.T) {
	args := testArguments(t, "db", "--timeout=5s", "copy", "a", "--timeout=10s", "b", "12")
	val, ok := args.Option("--timeout")
	assert.True(t, ok)
	assert.Equal(t, "10s", val, "The deepest level should win")
	assert.Len(t, args.Options(), 2)

	val, ok = args.Parameter("to")
	assert.True(t, ok)
	assert.Equal(t, "b", val)
	_, ok = args.Parameter("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b", "12"}, args.Parameters())
	assert.Equal(t, []string{"db", "--timeout=5s", "copy", "a", "--timeout=10s", "b", "12"}, args.Args())
}

func TestArguments_Conversions(t *testing.T) {
	args := testArguments(t, "db", "copy", "a", "b", "12", "--timeout=1m")
	count, err := ParameterAs[int](args, "count")
	require.NoError(t, err)
	assert.Equal(t, 12, count)

	timeout := MustGet(OptionAs[string](args, "--timeout"))
	assert.Equal(t, "1m", timeout)

	_, err = ParameterAs[int](args, "from")
	assert.ErrorIs(t, err, convert.ErrConversion)
	_, err = OptionAs[int](args, "--missing")
	assert.ErrorIs(t, err, ErrNotBound)
	assert.Panics(t, func() {
		MustGet(ParameterAs[bool](args, "to"))
	})
}

func TestArguments_MapParameters(t *testing.T) {
	args := testArguments(t, "db", "copy", "a", "b")
	var from, to, count string
	require.NoError(t, args.MapParameters(2, &from, &to, &count))
	assert.Equal(t, "a", from)
	assert.Equal(t, "b", to)
	assert.Empty(t, count)

	assert.ErrorIs(t, args.MapParameters(3, &from, &to, &count), ErrArgMap)
	assert.ErrorIs(t, args.MapParameters(2, &from), ErrArgMap)
	assert.ErrorIs(t, args.MapParameters(0, &from, nil), ErrArgMap)
}
