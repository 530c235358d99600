package twopda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildAB builds a tiny automaton accepting the language a^n b^n via a
// single stack symbol counting a's.
func buildAB() *Definition {
	def := NewDefinition("ab", "start")
	def.AddTransition("start", 'a', Wildcard, Transition{Next: "start", Dir: Right, Op: Push, Value: "a"})
	def.AddTransition("start", 'b', "a", Transition{Next: "pop_b", Dir: Right, Op: Pop})
	def.AddTransition("pop_b", 'b', "a", Transition{Next: "pop_b", Dir: Right, Op: Pop})
	def.AddTransition("pop_b", 'b', Wildcard, Transition{Next: "pop_b", Dir: Right, Op: Read})
	return def
}

func TestParse_Accepts(t *testing.T) {
	def := buildAB()
	err := Parse(def, []byte("aaabbb"), DebugSilent, nil)
	assert.NoError(t, err)
}

func TestParse_RejectsUnbalanced(t *testing.T) {
	def := buildAB()
	err := Parse(def, []byte("aaabb"), DebugSilent, nil)
	assert.Error(t, err)
}

func TestParse_EmptyInputAccepts(t *testing.T) {
	def := buildAB()
	err := Parse(def, []byte(""), DebugSilent, nil)
	assert.NoError(t, err)
}

func TestParse_NoTransitionReportsPosition(t *testing.T) {
	def := buildAB()
	err := Parse(def, []byte("aaZbbb"), DebugSilent, nil)
	require := assert.New(t)
	require.Error(err)
	var pdaErr *Error
	require.ErrorAs(err, &pdaErr)
	require.Equal(2, pdaErr.Index)
	require.Equal(byte('Z'), pdaErr.Byte)
}

func TestWildcardPrecedence(t *testing.T) {
	def := NewDefinition("wild", "s")
	def.AddTransition("s", 'x', Wildcard, Transition{Next: "wildcard-hit", Dir: Right, Op: Read})
	def.AddTransition("s", 'x', "top", Transition{Next: "specific-hit", Dir: Right, Op: Read})

	in := New(def, []byte("x"))
	in.stack = []string{"top"}
	advanced, err := in.Step()
	assert.True(t, advanced)
	assert.NoError(t, err)
	assert.Equal(t, "specific-hit", in.State())
}

func TestStats(t *testing.T) {
	def := buildAB()
	stats := def.Stats()
	assert.Greater(t, stats.States, 0)
	assert.Greater(t, stats.Transitions, 0)
}

func TestDuplicateTransitionOverwrites(t *testing.T) {
	def := NewDefinition("dup", "s")
	def.AddTransition("s", 'a', Wildcard, Transition{Next: "s", Dir: Right, Op: Read})
	def.AddTransition("s", 'a', Wildcard, Transition{Next: "t", Dir: Right, Op: Read})

	in := New(def, []byte("a"))
	advanced, err := in.Step()
	assert.True(t, advanced)
	assert.NoError(t, err)
	assert.Equal(t, "t", in.State())
}
