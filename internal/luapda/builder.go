// Package luapda builds the Lua 5.3 transition table consumed by the
// generic internal/twopda engine. It is organized as a sequence of
// parametric "subsystem" builder methods, each installing a named
// fragment of the grammar into a shared twopda.Definition and
// communicating with its caller purely through caller-supplied return
// transitions and uniquely-named stack sentinels.
package luapda

import (
	"github.com/stevenskevin/lua-2pda/internal/twopda"
)

// FailState is a dead state: nothing ever installs a transition out of
// it, so stepping into it always fails the next lookup at the caller's
// chosen position. Subsystems that want to reject a sequence they've
// partially committed to (via lookahead) transition here.
const FailState = "FAIL"

// FailTransition is the canonical "this path does not exist" return
// transition, installed wherever a caller does not supply one of its
// own.
var FailTransition = twopda.Transition{Next: FailState, Dir: twopda.Stay, Op: twopda.Read}

// Builder accumulates the Lua grammar into a twopda.Definition. Build()
// returns the finished, read-only Definition.
type Builder struct {
	def *twopda.Definition

	// MaxEquals bounds how many '='s the long-bracket subsystem will
	// actually count before clamping to its maximum supported level (K
	// in the design notes).
	MaxEquals int
}

// NewBuilder creates a Builder ready to have subsystems wired into it.
// The returned automaton will start in the "start" state.
func NewBuilder() *Builder {
	return &Builder{
		def:       twopda.NewDefinition("lua5.3", "start"),
		MaxEquals: 10,
	}
}

// Definition exposes the in-progress table, mostly for tests that want
// to probe specific transitions directly.
func (b *Builder) Definition() *twopda.Definition {
	return b.def
}

// add installs a transition for every byte in bytes. It is the workhorse
// used by every subsystem builder below, standing in for the source's
// "for c in SOME_SET: transitions[...] = ..." loops. A later call for a
// byte already covered by an earlier, broader call overwrites it --
// this is relied upon to narrow a default before specializing individual
// bytes.
func (b *Builder) add(state string, bytes []byte, top string, t twopda.Transition) {
	for _, by := range bytes {
		b.def.AddTransition(state, by, top, t)
	}
}

// addOne installs a single transition for one byte.
func (b *Builder) addOne(state string, by byte, top string, t twopda.Transition) {
	b.add(state, []byte{by}, top, t)
}

// addAllBytes installs t for every byte value on (state, *, top) -- used
// where the Python source writes "for c in ALL:".
func (b *Builder) addAllBytes(state string, top string, t twopda.Transition) {
	b.add(state, All.Bytes(), top, t)
}

// sentinel formats a uniquely-named stack sentinel for a subsystem
// invocation, suffixed by the caller's state name so that re-uses of the
// same subsystem from different call sites never collide on the stack.
func sentinel(role, callerState string) string {
	return role + "__" + callerState
}

// Build wires every subsystem into the shared Definition, lexical
// fragments first and the statement/entrypoint grammar last since they
// reference the lexical states by name, then returns the finished,
// read-only table.
func (b *Builder) Build() *twopda.Definition {
	b.buildLongBracketSubsystem()
	b.buildWhitespaceCommentGlue()
	b.buildNameKeywordSubsystem()
	b.buildNameListSubsystem()
	b.buildShortStringSubsystem()
	b.buildNumeralSubsystem()
	b.buildLValueRValueSubsystem()
	b.buildExpressionSubsystem()
	b.buildExpressionListSubsystem()
	b.buildTableConstructorSubsystem()
	b.buildFuncBodySubsystem()
	b.buildStatementSubsystem()
	b.buildEntrypoint()
	return b.def
}
