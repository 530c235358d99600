package luapda

import (
	"strings"

	"github.com/stevenskevin/lua-2pda/internal/twopda"
)

// Long brackets (`[=*[ ... ]=*]`) back both multi-line comments and
// long-string literals, so both are recognized by one shared subsystem.
//
// To enter: push a sentinel value you can later match on when exiting,
// then go to state "multiline_comment_or_long_string_start" BEFORE
// consuming the leading '[', or "multiline_comment_or_long_string_start_2"
// AFTER consuming it (used when the caller already had to look at the
// byte after '[' to disambiguate a long bracket from something else,
// e.g. a table constructor's indexed-key field).
//
// To exit: wire a transition from "multiline_comment_or_long_string_end"
// back to your own state, matching on ']' and your sentinel, popping it.
//
// A genuine PDA cannot count an unbounded number of '='s and compare two
// counts, so this only tracks levels 0..maxEquals; anything deeper is
// clamped to maxEquals (a documented limitation, not a bug).
const mcols = "multiline_comment_or_long_string"

func (b *Builder) buildLongBracketSubsystem() {
	maxEquals := b.MaxEquals

	for _, c := range All.Bytes() {
		b.def.AddTransition(mcols+"_start", c, twopda.Wildcard, twopda.Transition{Next: mcols + "_end_opening_fail", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.def.AddTransition(mcols+"_start", '[', twopda.Wildcard, twopda.Transition{Next: mcols + "_start_[", Dir: twopda.Right, Op: twopda.Push, Value: ""})

	for _, c := range All.Bytes() {
		b.def.AddTransition(mcols+"_start_2", c, twopda.Wildcard, twopda.Transition{Next: mcols + "_end_opening_fail", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.def.AddTransition(mcols+"_start_2", '[', twopda.Wildcard, twopda.Transition{Next: mcols + "_start_[", Dir: twopda.Stay, Op: twopda.Push, Value: ""})
	b.def.AddTransition(mcols+"_start_2", '=', twopda.Wildcard, twopda.Transition{Next: mcols + "_start_[", Dir: twopda.Stay, Op: twopda.Push, Value: ""})

	for _, c := range NewByteSet('=').Complement().Bytes() {
		b.def.AddTransition(mcols+"_start_[", c, twopda.Wildcard, twopda.Transition{Next: mcols + "_end_opening_fail", Dir: twopda.Stay, Op: twopda.Pop})
	}
	for i := 1; i <= maxEquals; i++ {
		b.def.AddTransition(mcols+"_start_[", '=', strings.Repeat("=", i-1), twopda.Transition{Next: mcols + "_start_[", Dir: twopda.Right, Op: twopda.Replace, Value: strings.Repeat("=", i)})
	}
	b.def.AddTransition(mcols+"_start_[", '=', twopda.Wildcard, twopda.Transition{Next: mcols + "_start_[", Dir: twopda.Right, Op: twopda.Read})

	b.def.AddTransition(mcols+"_start_[", '[', twopda.Wildcard, twopda.Transition{Next: mcols, Dir: twopda.Right, Op: twopda.Read})

	for _, c := range All.Bytes() {
		b.def.AddTransition(mcols, c, twopda.Wildcard, twopda.Transition{Next: mcols, Dir: twopda.Right, Op: twopda.Read})
	}

	b.def.AddTransition(mcols, ']', twopda.Wildcard, twopda.Transition{Next: mcols + "_possible_end", Dir: twopda.Right, Op: twopda.Push, Value: ""})

	for _, c := range NewByteSet('=', ']').Complement().Bytes() {
		b.def.AddTransition(mcols+"_possible_end", c, twopda.Wildcard, twopda.Transition{Next: mcols, Dir: twopda.Right, Op: twopda.Pop})
	}
	for i := 1; i <= maxEquals; i++ {
		b.def.AddTransition(mcols+"_possible_end", '=', strings.Repeat("=", i-1), twopda.Transition{Next: mcols + "_possible_end", Dir: twopda.Right, Op: twopda.Replace, Value: strings.Repeat("=", i)})
	}
	b.def.AddTransition(mcols+"_possible_end", '=', twopda.Wildcard, twopda.Transition{Next: mcols + "_possible_end", Dir: twopda.Right, Op: twopda.Read})

	b.def.AddTransition(mcols+"_possible_end", ']', twopda.Wildcard, twopda.Transition{Next: mcols + "_possible_end_2", Dir: twopda.Stay, Op: twopda.Read})
	for i := 0; i <= maxEquals; i++ {
		eq := strings.Repeat("=", i)
		b.def.AddTransition(mcols+"_possible_end_2", ']', eq, twopda.Transition{Next: mcols + "_possible_end_" + eq, Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition(mcols+"_possible_end_"+eq, ']', eq, twopda.Transition{Next: mcols + "_end", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition(mcols+"_possible_end_"+eq, ']', twopda.Wildcard, twopda.Transition{Next: mcols + "_possible_end", Dir: twopda.Right, Op: twopda.Push, Value: ""})
	}
}

// MCOLSStartState is the entry point used before the leading '[' has
// been consumed.
const MCOLSStartState = mcols + "_start"

// MCOLSStartAfterBracketState is the entry point used when the caller
// has already consumed the leading '[' (and is positioned on what comes
// right after it).
const MCOLSStartAfterBracketState = mcols + "_start_2"

// MCOLSEndState is where a caller wires its own exit: match ']' against
// your own sentinel, pop it, and go wherever you like next.
const MCOLSEndState = mcols + "_end"

// MCOLSOpeningFailState is reached when what looked like the start of a
// long bracket ("[=*") turns out not to be followed by a second '['.
// Callers that can fall back to treating it as something else (e.g. a
// single-line comment) wire their own exit from here against their
// sentinel.
const MCOLSOpeningFailState = mcols + "_end_opening_fail"
