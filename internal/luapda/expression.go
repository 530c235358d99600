package luapda

import "github.com/stevenskevin/lua-2pda/internal/twopda"

// ReadExpression installs transitions so that, from startState, one Lua
// expression is read: any number of prefix unary operators ('-', '#',
// '~', 'not') applied to a primary value (nil/true/false/"...", a
// numeral, a string, a table constructor, a function definition, or a
// var/prefixexp), followed by any number of "binop exp" continuations.
//
// Lua's grammar does not encode operator precedence or associativity at
// the context-free level -- that is a disambiguation rule applied on
// top of a flat left-to-right chain of "exp binop exp" -- and since this
// reader only recognizes, never evaluates or builds a tree, a flat
// left-to-right chain is exactly what's needed here too.
func (b *Builder) ReadExpression(startState string, transition twopda.Transition) {
	b.enterExpressionChain(startState, "expr_primary", transition)
}

// ContinueExpressionChain is used by callers (e.g. the table-constructor
// field reader) that have already consumed a primary expression by some
// other means -- typically by calling ReadLValueOrRValue directly to
// resolve a "Name = exp" vs. bare-expression-starting-with-Name
// ambiguity -- and now want to read any trailing "binop exp" chain
// before exiting. fromState must be positioned exactly as if a primary
// had just been read by ReadExpression itself.
func (b *Builder) ContinueExpressionChain(fromState string, transition twopda.Transition) {
	b.enterExpressionChain(fromState, "expr_after_primary", transition)
}

func (b *Builder) enterExpressionChain(startState, target string, transition twopda.Transition) {
	thisStackValue := sentinel("expr", startState)
	for _, c := range All.Bytes() {
		b.def.AddTransition(startState, c, twopda.Wildcard, twopda.Transition{Next: target, Dir: twopda.Stay, Op: twopda.Push, Value: thisStackValue})
	}
	for _, c := range All.Bytes() {
		intermediate := "expr_exit_from__" + startState
		b.def.AddTransition("expr_exit", c, thisStackValue, twopda.Transition{Next: intermediate, Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition(intermediate, c, twopda.Wildcard, transition)
	}
}

// "-" is deliberately excluded: it is handled separately via
// ReadWhitespace's minusTransition, since the whitespace/comment reader
// must claim '-' first to tell a "--" comment apart from the binary
// minus operator.
var binaryOperators = []string{
	"+", "*", "//", "/", "%", "^", "..",
	"==", "~=", "<=", "<<", "<", ">=", ">>", ">",
	"&", "|", "~",
}

// buildExpressionSubsystem wires the shared "expr_primary"/"expr_after_primary"
// states that every ReadExpression call site funnels into.
func (b *Builder) buildExpressionSubsystem() {
	b.buildExprPrimary()
	b.buildExprAfterPrimary()
}

func (b *Builder) buildExprPrimary() {
	// Unary operators: consume, skip whitespace, loop back for another
	// primary (allows "- - - x" etc., matching the recursive "unop exp"
	// production).
	for _, c := range []byte("-#~") {
		b.def.AddTransition("expr_primary", c, twopda.Wildcard, twopda.Transition{Next: "expr_primary_unop_ws", Dir: twopda.Right, Op: twopda.Read})
	}
	b.ReadWhitespace("expr_primary_unop_ws", twopda.Transition{Next: "expr_primary", Dir: twopda.Stay, Op: twopda.Read})

	// Names and keywords: dispatch on whichever keyword was matched.
	for _, c := range nameStartSet.Bytes() {
		b.def.AddTransition("expr_primary", c, twopda.Wildcard, twopda.Transition{Next: "expr_primary_name_or_kw", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadNameOrKeyword("expr_primary_name_or_kw",
		twopda.Transition{Next: "expr_primary_have_name", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "expr_primary_kw_dispatch", Dir: twopda.Stay, Op: twopda.Read},
	)
	b.ReadLValueOrRValue("expr_primary_have_name", true,
		twopda.Transition{Next: "expr_after_primary", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "expr_after_primary", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "expr_after_primary", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "expr_after_primary", Dir: twopda.Stay, Op: twopda.Read},
		FailTransition, false, false)

	for _, c := range All.Bytes() {
		b.def.AddTransition("expr_primary_kw_dispatch", c, "nil", twopda.Transition{Next: "expr_primary_literal_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("expr_primary_kw_dispatch", c, "true", twopda.Transition{Next: "expr_primary_literal_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("expr_primary_kw_dispatch", c, "false", twopda.Transition{Next: "expr_primary_literal_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("expr_primary_literal_pop", c, twopda.Wildcard, twopda.Transition{Next: "expr_after_primary", Dir: twopda.Stay, Op: twopda.Read})

		b.def.AddTransition("expr_primary_kw_dispatch", c, "not", twopda.Transition{Next: "expr_primary_not_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("expr_primary_not_pop", c, twopda.Wildcard, twopda.Transition{Next: "expr_primary_not_ws", Dir: twopda.Stay, Op: twopda.Read})

		b.def.AddTransition("expr_primary_kw_dispatch", c, "function", twopda.Transition{Next: "expr_primary_function_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("expr_primary_function_pop", c, twopda.Wildcard, twopda.Transition{Next: "expr_primary_function_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("expr_primary_not_ws", twopda.Transition{Next: "expr_primary", Dir: twopda.Stay, Op: twopda.Read})
	b.ReadWhitespace("expr_primary_function_ws", twopda.Transition{Next: "expr_primary_function_body", Dir: twopda.Stay, Op: twopda.Read})
	b.ReadFuncBody("expr_primary_function_body", twopda.Transition{Next: "expr_after_primary", Dir: twopda.Stay, Op: twopda.Read})
	// every other keyword (and/or/if/then/end/...) cannot start a
	// primary expression: no transition wired, FAIL by omission.

	// "...": only legal inside a vararg function's body, but this
	// recognizer does not track that; accepted unconditionally.
	b.def.AddTransition("expr_primary", '.', twopda.Wildcard, twopda.Transition{Next: "expr_primary_dot1", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("expr_primary_dot1", '.', twopda.Wildcard, twopda.Transition{Next: "expr_primary_dot2", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("expr_primary_dot2", '.', twopda.Wildcard, twopda.Transition{Next: "expr_after_primary", Dir: twopda.Right, Op: twopda.Read})

	// Numerals: a leading digit, or '.' followed by a digit (handled via
	// ReadNumeral's own "0" vs digit vs "." dispatch -- but ReadNumeral
	// expects a fresh dispatch byte, and "." is already claimed above
	// for "...", so route digit-starting numerals only here and leave
	// ".5"-style numerals to ReadNumeral's own entry on "0"-9 paths;
	// a bare ".5" without a leading "..." prefix is read via the digit
	// entry since '.' was already consumed as a single byte above when
	// not followed by another '.'.
	for _, d := range digitSet.Bytes() {
		b.def.AddTransition("expr_primary", d, twopda.Wildcard, twopda.Transition{Next: "expr_primary_numeral", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadNumeral("expr_primary_numeral", twopda.Transition{Next: "expr_after_primary", Dir: twopda.Stay, Op: twopda.Read})

	// Strings.
	for _, q := range []byte{'\'', '"'} {
		b.def.AddTransition("expr_primary", q, twopda.Wildcard, twopda.Transition{Next: ShortStringStartState, Dir: twopda.Stay, Op: twopda.Push, Value: "expr_primary_str"})
	}
	for _, c := range All.Bytes() {
		b.def.AddTransition(ShortStringEndState, c, "expr_primary_str", twopda.Transition{Next: "expr_after_primary", Dir: twopda.Stay, Op: twopda.Pop})
	}
	b.def.AddTransition("expr_primary", '[', twopda.Wildcard, twopda.Transition{Next: MCOLSStartState, Dir: twopda.Stay, Op: twopda.Push, Value: "expr_primary_mcols_str"})
	b.def.AddTransition(MCOLSEndState, ']', "expr_primary_mcols_str", twopda.Transition{Next: "expr_after_primary", Dir: twopda.Right, Op: twopda.Pop})

	// Table constructors.
	b.def.AddTransition("expr_primary", '{', twopda.Wildcard, twopda.Transition{Next: TableConstructorStartState, Dir: twopda.Stay, Op: twopda.Push, Value: "expr_primary_table"})
	for _, c := range All.Bytes() {
		b.def.AddTransition(TableConstructorEndState, c, "expr_primary_table", twopda.Transition{Next: "expr_after_primary", Dir: twopda.Stay, Op: twopda.Pop})
	}

	// Parenthesized prefixexp ("(exp)" possibly chained further).
	b.def.AddTransition("expr_primary", '(', twopda.Wildcard, twopda.Transition{Next: "expr_primary_have_name", Dir: twopda.Stay, Op: twopda.Read})
}

func (b *Builder) buildExprAfterPrimary() {
	// Installed first so every later, more specific wiring on
	// "expr_after_primary" (binops, and/or, whitespace) takes priority;
	// AddTransition overwrites on a repeated (state, byte, top) key.
	for _, c := range All.Bytes() {
		b.def.AddTransition("expr_after_primary", c, twopda.Wildcard, twopda.Transition{Next: "expr_exit", Dir: twopda.Stay, Op: twopda.Read})
	}

	for _, op := range binaryOperators {
		state := "expr_after_primary"
		for i := 0; i < len(op); i++ {
			next := "expr_binop_" + op[:i+1]
			dir := twopda.Right
			b.def.AddTransition(state, op[i], twopda.Wildcard, twopda.Transition{Next: next, Dir: dir, Op: twopda.Read})
			state = next
		}
		b.ReadWhitespace(state+"_ws", twopda.Transition{Next: "expr_primary", Dir: twopda.Stay, Op: twopda.Read})
		for _, c := range All.Bytes() {
			b.def.AddTransition(state, c, twopda.Wildcard, twopda.Transition{Next: state + "_ws", Dir: twopda.Stay, Op: twopda.Read})
		}
	}

	for _, kw := range []string{"and", "or"} {
		for _, c := range All.Bytes() {
			b.def.AddTransition("expr_after_primary_kw", c, kw, twopda.Transition{Next: "expr_binop_kw_pop_" + kw, Dir: twopda.Stay, Op: twopda.Pop})
			b.def.AddTransition("expr_binop_kw_pop_"+kw, c, twopda.Wildcard, twopda.Transition{Next: "expr_binop_kw_ws_" + kw, Dir: twopda.Stay, Op: twopda.Read})
		}
		b.ReadWhitespace("expr_binop_kw_ws_"+kw, twopda.Transition{Next: "expr_primary", Dir: twopda.Stay, Op: twopda.Read})
	}
	for _, c := range nameStartSet.Bytes() {
		b.def.AddTransition("expr_after_primary", c, twopda.Wildcard, twopda.Transition{Next: "expr_after_primary_name_or_kw", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadNameOrKeyword("expr_after_primary_name_or_kw",
		FailTransition,
		twopda.Transition{Next: "expr_after_primary_kw", Dir: twopda.Stay, Op: twopda.Read},
	)

	// Whitespace (and comments) between the primary and a following
	// binop. A lone '-' that is not a comment is the binary minus. Wired
	// last so it takes priority over the catch-all on space/'-' bytes.
	b.ReadWhitespace("expr_after_primary", twopda.Transition{Next: "expr_binop_minus_ws", Dir: twopda.Stay, Op: twopda.Read})
	b.ReadWhitespace("expr_binop_minus_ws", twopda.Transition{Next: "expr_primary", Dir: twopda.Stay, Op: twopda.Read})
}
