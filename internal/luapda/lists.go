package luapda

import "github.com/stevenskevin/lua-2pda/internal/twopda"

// ReadExpressionList installs transitions so that, from startState, a
// comma-separated list of one or more expressions is read (no leading
// or trailing whitespace consumed beyond what each expression and
// comma-separator naturally requires). transition is taken once the
// last expression in the list has been read, without consuming the
// byte that ended it.
func (b *Builder) ReadExpressionList(startState string, transition twopda.Transition) {
	thisStackValue := sentinel("expr_list", startState)
	for _, c := range All.Bytes() {
		b.def.AddTransition(startState, c, twopda.Wildcard, twopda.Transition{Next: "expr_list_start", Dir: twopda.Stay, Op: twopda.Push, Value: thisStackValue})
	}
	for _, c := range All.Bytes() {
		intermediate := "expr_list_exit_from__" + startState
		b.def.AddTransition("expr_list_exit", c, thisStackValue, twopda.Transition{Next: intermediate, Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition(intermediate, c, twopda.Wildcard, transition)
	}
}

// buildExpressionListSubsystem wires the shared "expr_list_start" state
// that every ReadExpressionList call site funnels into: read one
// expression, then loop on ", " + another expression.
func (b *Builder) buildExpressionListSubsystem() {
	b.ReadExpression("expr_list_start", twopda.Transition{Next: "expr_list_entry_end", Dir: twopda.Stay, Op: twopda.Read})

	for _, c := range All.Bytes() {
		b.def.AddTransition("expr_list_entry_end", c, twopda.Wildcard, twopda.Transition{Next: "expr_list_exit", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("expr_list_entry_end", FailTransition)
	b.def.AddTransition("expr_list_entry_end", ',', twopda.Wildcard, twopda.Transition{Next: "expr_list_start_2", Dir: twopda.Right, Op: twopda.Read})
	b.ReadWhitespace("expr_list_start_2", FailTransition)

	b.ReadExpression("expr_list_start_2", twopda.Transition{Next: "expr_list_entry_end", Dir: twopda.Stay, Op: twopda.Read})
}
