package luapda

import "github.com/stevenskevin/lua-2pda/internal/twopda"

// Table constructors ("{...}") are recognized by one globally-shared
// subsystem, entered the same way as the long-bracket and short-string
// subsystems: push a sentinel, go to TableConstructorStartState BEFORE
// consuming the leading '{', and wire your own exit from
// TableConstructorEndState matching your sentinel, popping it.
const TableConstructorStartState = "table_constructor_start"
const TableConstructorEndState = "table_constructor_end"

// buildTableConstructorSubsystem wires:
//
//	fieldlist ::= field {fieldsep field} [fieldsep]
//	field     ::= '[' exp ']' '=' exp | Name '=' exp | exp
//	fieldsep  ::= ',' | ';'
func (b *Builder) buildTableConstructorSubsystem() {
	b.def.AddTransition(TableConstructorStartState, '{', twopda.Wildcard, twopda.Transition{Next: "table_ws_open", Dir: twopda.Right, Op: twopda.Read})
	b.ReadWhitespace("table_ws_open", FailTransition)
	b.def.AddTransition("table_ws_open", '}', twopda.Wildcard, twopda.Transition{Next: TableConstructorEndState, Dir: twopda.Right, Op: twopda.Read})

	b.buildTableField("table_ws_open", "table_after_field")

	for _, c := range All.Bytes() {
		b.def.AddTransition("table_after_field", c, twopda.Wildcard, twopda.Transition{Next: TableConstructorEndState, Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("table_after_field", FailTransition)
	b.def.AddTransition("table_after_field", '}', twopda.Wildcard, twopda.Transition{Next: TableConstructorEndState, Dir: twopda.Right, Op: twopda.Read})
	for _, sep := range []byte{',', ';'} {
		b.def.AddTransition("table_after_field", sep, twopda.Wildcard, twopda.Transition{Next: "table_after_sep", Dir: twopda.Right, Op: twopda.Read})
	}
	b.ReadWhitespace("table_after_sep", FailTransition)
	b.def.AddTransition("table_after_sep", '}', twopda.Wildcard, twopda.Transition{Next: TableConstructorEndState, Dir: twopda.Right, Op: twopda.Read})

	b.buildTableField("table_after_sep", "table_after_field")
}

// buildTableField wires one "field" production starting at startState,
// landing on doneState once the field (but not any following fieldsep)
// has been fully read. The broad default -- "just read a bare
// expression" -- is installed first so the more specific "[exp] = exp"
// and "Name = exp" overrides can take priority on their leading bytes.
func (b *Builder) buildTableField(startState, doneState string) {
	b.ReadExpression(startState, twopda.Transition{Next: doneState, Dir: twopda.Stay, Op: twopda.Read})

	bracketState := startState + "_field_["
	b.def.AddTransition(startState, '[', twopda.Wildcard, twopda.Transition{Next: bracketState, Dir: twopda.Right, Op: twopda.Read})
	for _, c := range All.Bytes() {
		b.def.AddTransition(bracketState, c, twopda.Wildcard, twopda.Transition{Next: bracketState + "_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace(bracketState+"_ws", FailTransition)
	b.ReadExpression(bracketState+"_ws", twopda.Transition{Next: bracketState + "_close", Dir: twopda.Stay, Op: twopda.Read})
	b.def.AddTransition(bracketState+"_close", ']', twopda.Wildcard, twopda.Transition{Next: bracketState + "_eq_ws", Dir: twopda.Right, Op: twopda.Read})
	b.ReadWhitespace(bracketState+"_eq_ws", FailTransition)
	b.def.AddTransition(bracketState+"_eq_ws", '=', twopda.Wildcard, twopda.Transition{Next: bracketState + "_val_ws", Dir: twopda.Right, Op: twopda.Read})
	b.ReadWhitespace(bracketState+"_val_ws", FailTransition)
	b.ReadExpression(bracketState+"_val_ws", twopda.Transition{Next: doneState, Dir: twopda.Stay, Op: twopda.Read})

	// "Name = exp" vs. a bare expression starting with a name: only
	// decidable after seeing whether '=' follows the name (skipping
	// whitespace/comments in between).
	nameState := startState + "_field_name_or_kw"
	for _, c := range nameStartSet.Bytes() {
		b.def.AddTransition(startState, c, twopda.Wildcard, twopda.Transition{Next: nameState, Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadNameOrKeyword(nameState,
		twopda.Transition{Next: nameState + "_lookahead", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: nameState + "_kw_as_expr", Dir: twopda.Stay, Op: twopda.Read},
	)

	for _, c := range All.Bytes() {
		b.def.AddTransition(nameState+"_lookahead", c, twopda.Wildcard, twopda.Transition{Next: nameState + "_as_expr", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace(nameState+"_lookahead", twopda.Transition{Next: nameState + "_as_expr", Dir: twopda.Stay, Op: twopda.Read})
	b.def.AddTransition(nameState+"_lookahead", '=', twopda.Wildcard, twopda.Transition{Next: nameState + "_val_ws", Dir: twopda.Right, Op: twopda.Read})
	b.ReadWhitespace(nameState+"_val_ws", FailTransition)
	b.ReadExpression(nameState+"_val_ws", twopda.Transition{Next: doneState, Dir: twopda.Stay, Op: twopda.Read})

	// Not "Name =": the name (already fully consumed) starts a bare
	// var/prefixexp/call expression instead. Re-enter the lrvalue chain
	// with alreadyReadName=true, then continue the binop loop as if
	// ReadExpression itself had read this primary.
	b.ReadLValueOrRValue(nameState+"_as_expr", true,
		twopda.Transition{Next: nameState + "_as_expr_continue", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: nameState + "_as_expr_continue", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: nameState + "_as_expr_continue", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: nameState + "_as_expr_continue", Dir: twopda.Stay, Op: twopda.Read},
		FailTransition, false, false)
	b.ContinueExpressionChain(nameState+"_as_expr_continue", twopda.Transition{Next: doneState, Dir: twopda.Stay, Op: twopda.Read})

	// A keyword cannot start a "Name = exp" field, but "nil"/"true"/
	// "false"/"function"/"not" can start a bare expression field; the
	// keyword is already consumed and sitting on the stack top exactly
	// as ReadNameOrKeyword's own keywordTransition callers expect, so
	// hand off straight to the same dispatch ReadExpression's primary
	// reader uses.
	b.enterExpressionChain(nameState+"_kw_as_expr", "expr_primary_kw_dispatch", twopda.Transition{Next: doneState, Dir: twopda.Stay, Op: twopda.Read})
}
