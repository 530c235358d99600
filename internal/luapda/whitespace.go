package luapda

import "github.com/stevenskevin/lua-2pda/internal/twopda"

// ReadWhitespace installs transitions so that, while in startState, ASCII
// whitespace (and Lua comments, including long-bracket ones) are skipped
// transparently. minusTransition is taken if a lone '-' is read that
// turns out not to start a comment; the '-' has already been consumed at
// that point and cannot be un-consumed.
//
// A state wired with ReadWhitespace must never also carry its own
// transition on '-'.
func (b *Builder) ReadWhitespace(startState string, minusTransition twopda.Transition) {
	b.readWhitespaceRequiring(startState, minusTransition, twopda.Wildcard)
}

func (b *Builder) readWhitespaceRequiring(startState string, minusTransition twopda.Transition, requiredTop string) {
	thisStackValue := sentinel("comment", startState)

	for _, c := range spaceSet.Bytes() {
		b.def.AddTransition(startState, c, requiredTop, twopda.Transition{Next: startState, Dir: twopda.Right, Op: twopda.Read})
	}

	b.def.AddTransition(startState, '-', requiredTop, twopda.Transition{Next: "possible_comment_-", Dir: twopda.Right, Op: twopda.Push, Value: thisStackValue})

	intermediate := sentinel("possible_comment_-", startState)
	for _, c := range NewByteSet('-').Complement().Bytes() {
		b.def.AddTransition("possible_comment_-", c, thisStackValue, twopda.Transition{Next: intermediate, Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition(intermediate, c, twopda.Wildcard, minusTransition)
	}

	b.def.AddTransition("comment_single_line", '\r', thisStackValue, twopda.Transition{Next: startState, Dir: twopda.Right, Op: twopda.Pop})
	b.def.AddTransition("comment_single_line", '\n', thisStackValue, twopda.Transition{Next: startState, Dir: twopda.Right, Op: twopda.Pop})
	b.def.AddTransition("comment_multiline_end", ']', thisStackValue, twopda.Transition{Next: startState, Dir: twopda.Right, Op: twopda.Pop})
}

// buildWhitespaceCommentGlue wires the shared comment-detection states
// that every ReadWhitespace call site funnels into: once a second '-' is
// seen, decide between a single-line comment and a long-bracket
// (multi-line) comment.
func (b *Builder) buildWhitespaceCommentGlue() {
	b.def.AddTransition("possible_comment_-", '-', twopda.Wildcard, twopda.Transition{Next: "comment_start", Dir: twopda.Right, Op: twopda.Read})

	for _, c := range All.Bytes() {
		b.def.AddTransition("comment_start", c, twopda.Wildcard, twopda.Transition{Next: "comment_single_line", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.def.AddTransition("comment_start", '[', twopda.Wildcard, twopda.Transition{Next: "multiline_comment_or_long_string_start", Dir: twopda.Stay, Op: twopda.Push, Value: "multiline_comment"})

	for _, c := range NewByteSet('\r', '\n').Complement().Bytes() {
		b.def.AddTransition("comment_single_line", c, twopda.Wildcard, twopda.Transition{Next: "comment_single_line", Dir: twopda.Right, Op: twopda.Read})
	}

	b.def.AddTransition("multiline_comment_or_long_string_end", ']', "multiline_comment", twopda.Transition{Next: "comment_multiline_end", Dir: twopda.Stay, Op: twopda.Pop})
	for _, c := range All.Bytes() {
		b.def.AddTransition("multiline_comment_or_long_string_end_opening_fail", c, "multiline_comment", twopda.Transition{Next: "comment_single_line", Dir: twopda.Stay, Op: twopda.Pop})
	}
}
