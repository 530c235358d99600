package luapda

import "github.com/stevenskevin/lua-2pda/internal/twopda"

// blockClosingKeywords lists every keyword that can end a block in some
// context ("end" for if/while/for/function/do, "else"/"elseif" for if,
// "until" for repeat). A given ReadBlock call site only wires exits for
// the subset it actually expects; any other closer falls through
// unwired and fails, exactly like an unexpected token would.
var blockClosingKeywords = []string{"end", "else", "elseif", "until"}

// ReadBlock installs transitions so that, from startState, a sequence of
// zero or more statements (optionally ending in a return statement) is
// read, followed by one of the keywords named in exits. Each exits
// value is taken positioned immediately after the closing keyword has
// been consumed.
func (b *Builder) ReadBlock(startState string, _ []string, exits map[string]twopda.Transition) {
	thisStackValue := sentinel("block", startState)
	for _, c := range All.Bytes() {
		b.def.AddTransition(startState, c, twopda.Wildcard, twopda.Transition{Next: "block_start", Dir: twopda.Stay, Op: twopda.Push, Value: thisStackValue})
	}
	b.def.AddEOFTransition(startState, twopda.Wildcard, twopda.Transition{Next: "block_start", Dir: twopda.Stay, Op: twopda.Push, Value: thisStackValue})

	for _, closer := range blockClosingKeywords {
		transition, ok := exits[closer]
		if !ok {
			continue
		}
		for _, c := range All.Bytes() {
			intermediate := "block_exit_" + closer + "_from__" + startState
			b.def.AddTransition("block_exit_"+closer, c, thisStackValue, twopda.Transition{Next: intermediate, Dir: twopda.Stay, Op: twopda.Pop})
			b.def.AddTransition(intermediate, c, twopda.Wildcard, transition)
		}
	}

	// "eof" is only a legal closer for the top-level chunk.
	if transition, ok := exits["eof"]; ok {
		intermediate := "block_exit_eof_from__" + startState
		b.def.AddEOFTransition("block_exit_eof", thisStackValue, twopda.Transition{Next: intermediate, Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddEOFTransition(intermediate, twopda.Wildcard, transition)
	}
}

// buildStatementSubsystem wires the shared "block_start" loop and every
// statement form it dispatches to.
func (b *Builder) buildStatementSubsystem() {
	b.buildBlockLoop()
	b.buildSimpleStatements()
	b.buildIfStatement()
	b.buildWhileStatement()
	b.buildRepeatStatement()
	b.buildForStatement()
	b.buildFunctionStatement()
	b.buildLocalStatement()
	b.buildAssignmentOrCallStatement()
}

func (b *Builder) buildBlockLoop() {
	// Only the outermost chunk's ReadBlock call wires exits["eof"]; any
	// block nested inside an unclosed construct that runs out of real
	// input before its own closing keyword fails here instead, since no
	// Pop transition exists for its sentinel at "block_exit_eof".
	b.def.AddEOFTransition("block_start", twopda.Wildcard, twopda.Transition{Next: "block_exit_eof", Dir: twopda.Stay, Op: twopda.Read})

	b.ReadWhitespace("block_start", FailTransition)

	b.def.AddTransition("block_start", ';', twopda.Wildcard, twopda.Transition{Next: "block_start", Dir: twopda.Right, Op: twopda.Read})

	b.def.AddTransition("block_start", ':', twopda.Wildcard, twopda.Transition{Next: "block_label_1", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("block_label_1", ':', twopda.Wildcard, twopda.Transition{Next: "block_label_ws", Dir: twopda.Right, Op: twopda.Read})
	b.ReadWhitespace("block_label_ws", FailTransition)
	b.ReadNameOrKeyword("block_label_ws", twopda.Transition{Next: "block_label_close_ws", Dir: twopda.Stay, Op: twopda.Read}, FailTransition)
	b.ReadWhitespace("block_label_close_ws", FailTransition)
	b.def.AddTransition("block_label_close_ws", ':', twopda.Wildcard, twopda.Transition{Next: "block_label_close_2", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("block_label_close_2", ':', twopda.Wildcard, twopda.Transition{Next: "block_start", Dir: twopda.Right, Op: twopda.Read})

	for _, c := range nameStartSet.Bytes() {
		b.def.AddTransition("block_start", c, twopda.Wildcard, twopda.Transition{Next: "block_name_or_kw", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadNameOrKeyword("block_name_or_kw",
		twopda.Transition{Next: "stmt_lrvalue_have_name", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "block_kw_dispatch", Dir: twopda.Stay, Op: twopda.Read},
	)

	b.def.AddTransition("block_start", '(', twopda.Wildcard, twopda.Transition{Next: "stmt_lrvalue_entry", Dir: twopda.Stay, Op: twopda.Read})
}

// buildSimpleStatements wires break and goto, and the keyword dispatch
// gate that every other keyword-led statement (and block closer) routes
// through.
func (b *Builder) buildSimpleStatements() {
	for _, c := range All.Bytes() {
		b.def.AddTransition("block_kw_dispatch", c, "break", twopda.Transition{Next: "stmt_break_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_break_pop", c, twopda.Wildcard, twopda.Transition{Next: "block_start", Dir: twopda.Stay, Op: twopda.Read})

		b.def.AddTransition("block_kw_dispatch", c, "goto", twopda.Transition{Next: "stmt_goto_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_goto_pop", c, twopda.Wildcard, twopda.Transition{Next: "stmt_goto_ws", Dir: twopda.Stay, Op: twopda.Read})

		b.def.AddTransition("block_kw_dispatch", c, "return", twopda.Transition{Next: "stmt_return_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_return_pop", c, twopda.Wildcard, twopda.Transition{Next: "stmt_return_ws", Dir: twopda.Stay, Op: twopda.Read})

		// Block closers land back here too; a caller that wired an exit
		// for this keyword via ReadBlock will have installed a more
		// specific transition on "block_exit_<closer>" already reached
		// from the matching ReadNameOrKeyword keywordTransition below,
		// so here we only need to fan keyword -> the right exit gate.
		for _, closer := range blockClosingKeywords {
			b.def.AddTransition("block_kw_dispatch", c, closer, twopda.Transition{Next: "block_exit_" + closer, Dir: twopda.Stay, Op: twopda.Pop})
		}
	}

	b.ReadWhitespace("stmt_goto_ws", FailTransition)
	b.ReadNameOrKeyword("stmt_goto_ws", twopda.Transition{Next: "block_start", Dir: twopda.Stay, Op: twopda.Read}, FailTransition)

	b.ReadWhitespace("stmt_return_ws", FailTransition)
	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_return_ws", c, twopda.Wildcard, twopda.Transition{Next: "stmt_return_explist_done", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadExpressionList("stmt_return_ws", twopda.Transition{Next: "stmt_return_explist_done", Dir: twopda.Stay, Op: twopda.Read})
	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_return_explist_done", c, twopda.Wildcard, twopda.Transition{Next: "stmt_return_done", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("stmt_return_explist_done", FailTransition)
	b.def.AddTransition("stmt_return_explist_done", ';', twopda.Wildcard, twopda.Transition{Next: "stmt_return_done", Dir: twopda.Right, Op: twopda.Read})
	// A return statement must be the last statement in its block: leave
	// whatever follows for the enclosing ReadBlock's closing-keyword
	// dispatch to find, by routing straight back to "block_start".
	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_return_done", c, twopda.Wildcard, twopda.Transition{Next: "block_start", Dir: twopda.Stay, Op: twopda.Read})
	}
}

func (b *Builder) buildIfStatement() {
	for _, c := range All.Bytes() {
		b.def.AddTransition("block_kw_dispatch", c, "if", twopda.Transition{Next: "stmt_if_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_if_pop", c, twopda.Wildcard, twopda.Transition{Next: "stmt_if_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("stmt_if_ws", FailTransition)
	b.ReadExpression("stmt_if_ws", twopda.Transition{Next: "stmt_if_then_ws", Dir: twopda.Stay, Op: twopda.Read})
	b.ReadWhitespace("stmt_if_then_ws", FailTransition)
	b.ReadNameOrKeyword("stmt_if_then_ws", FailTransition, twopda.Transition{Next: "stmt_if_then_kw", Dir: twopda.Stay, Op: twopda.Read})
	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_if_then_kw", c, "then", twopda.Transition{Next: "stmt_if_block_ws", Dir: twopda.Stay, Op: twopda.Pop})
	}
	b.ReadWhitespace("stmt_if_block_ws", FailTransition)
	b.ReadBlock("stmt_if_block_ws", nil, map[string]twopda.Transition{
		"end":    {Next: "block_start", Dir: twopda.Stay, Op: twopda.Read},
		"else":   {Next: "stmt_if_else_ws", Dir: twopda.Stay, Op: twopda.Read},
		"elseif": {Next: "stmt_if_ws", Dir: twopda.Stay, Op: twopda.Read},
	})
	b.ReadWhitespace("stmt_if_else_ws", FailTransition)
	b.ReadBlock("stmt_if_else_ws", nil, map[string]twopda.Transition{
		"end": {Next: "block_start", Dir: twopda.Stay, Op: twopda.Read},
	})
}

func (b *Builder) buildWhileStatement() {
	for _, c := range All.Bytes() {
		b.def.AddTransition("block_kw_dispatch", c, "while", twopda.Transition{Next: "stmt_while_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_while_pop", c, twopda.Wildcard, twopda.Transition{Next: "stmt_while_ws", Dir: twopda.Stay, Op: twopda.Read})

		b.def.AddTransition("block_kw_dispatch", c, "do", twopda.Transition{Next: "stmt_do_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_do_pop", c, twopda.Wildcard, twopda.Transition{Next: "stmt_do_block_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("stmt_while_ws", FailTransition)
	b.ReadExpression("stmt_while_ws", twopda.Transition{Next: "stmt_while_do_ws", Dir: twopda.Stay, Op: twopda.Read})
	b.ReadWhitespace("stmt_while_do_ws", FailTransition)
	b.ReadNameOrKeyword("stmt_while_do_ws", FailTransition, twopda.Transition{Next: "stmt_while_do_kw", Dir: twopda.Stay, Op: twopda.Read})
	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_while_do_kw", c, "do", twopda.Transition{Next: "stmt_while_block_ws", Dir: twopda.Stay, Op: twopda.Pop})
	}
	b.ReadWhitespace("stmt_while_block_ws", FailTransition)
	b.ReadBlock("stmt_while_block_ws", nil, map[string]twopda.Transition{
		"end": {Next: "block_start", Dir: twopda.Stay, Op: twopda.Read},
	})

	b.ReadWhitespace("stmt_do_block_ws", FailTransition)
	b.ReadBlock("stmt_do_block_ws", nil, map[string]twopda.Transition{
		"end": {Next: "block_start", Dir: twopda.Stay, Op: twopda.Read},
	})
}

func (b *Builder) buildRepeatStatement() {
	for _, c := range All.Bytes() {
		b.def.AddTransition("block_kw_dispatch", c, "repeat", twopda.Transition{Next: "stmt_repeat_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_repeat_pop", c, twopda.Wildcard, twopda.Transition{Next: "stmt_repeat_block_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("stmt_repeat_block_ws", FailTransition)
	b.ReadBlock("stmt_repeat_block_ws", nil, map[string]twopda.Transition{
		"until": {Next: "stmt_repeat_until_ws", Dir: twopda.Stay, Op: twopda.Read},
	})
	b.ReadWhitespace("stmt_repeat_until_ws", FailTransition)
	b.ReadExpression("stmt_repeat_until_ws", twopda.Transition{Next: "block_start", Dir: twopda.Stay, Op: twopda.Read})
}

func (b *Builder) buildForStatement() {
	for _, c := range All.Bytes() {
		b.def.AddTransition("block_kw_dispatch", c, "for", twopda.Transition{Next: "stmt_for_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_for_pop", c, twopda.Wildcard, twopda.Transition{Next: "stmt_for_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("stmt_for_ws", FailTransition)
	b.ReadNameOrKeyword("stmt_for_ws",
		twopda.Transition{Next: "stmt_for_after_name", Dir: twopda.Stay, Op: twopda.Read},
		FailTransition,
	)

	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_for_after_name", c, twopda.Wildcard, twopda.Transition{Next: "stmt_for_numeric_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("stmt_for_after_name", FailTransition)
	b.def.AddTransition("stmt_for_after_name", '=', twopda.Wildcard, twopda.Transition{Next: "stmt_for_numeric_val_ws", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("stmt_for_after_name", ',', twopda.Wildcard, twopda.Transition{Next: "stmt_for_generic_name_ws", Dir: twopda.Right, Op: twopda.Read})

	// Numeric for: "for Name = exp, exp [, exp] do block end".
	b.ReadWhitespace("stmt_for_numeric_val_ws", FailTransition)
	b.ReadExpression("stmt_for_numeric_val_ws", twopda.Transition{Next: "stmt_for_numeric_comma_1_ws", Dir: twopda.Stay, Op: twopda.Read})
	b.ReadWhitespace("stmt_for_numeric_comma_1_ws", FailTransition)
	b.def.AddTransition("stmt_for_numeric_comma_1_ws", ',', twopda.Wildcard, twopda.Transition{Next: "stmt_for_numeric_val_2_ws", Dir: twopda.Right, Op: twopda.Read})
	b.ReadWhitespace("stmt_for_numeric_val_2_ws", FailTransition)
	b.ReadExpression("stmt_for_numeric_val_2_ws", twopda.Transition{Next: "stmt_for_numeric_comma_2_ws", Dir: twopda.Stay, Op: twopda.Read})
	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_for_numeric_comma_2_ws", c, twopda.Wildcard, twopda.Transition{Next: "stmt_for_do_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("stmt_for_numeric_comma_2_ws", FailTransition)
	b.def.AddTransition("stmt_for_numeric_comma_2_ws", ',', twopda.Wildcard, twopda.Transition{Next: "stmt_for_numeric_val_3_ws", Dir: twopda.Right, Op: twopda.Read})
	b.ReadWhitespace("stmt_for_numeric_val_3_ws", FailTransition)
	b.ReadExpression("stmt_for_numeric_val_3_ws", twopda.Transition{Next: "stmt_for_do_ws", Dir: twopda.Stay, Op: twopda.Read})

	// Generic for: "for namelist in explist do block end".
	b.ReadWhitespace("stmt_for_generic_name_ws", FailTransition)
	b.ReadNameList("stmt_for_generic_name_ws",
		twopda.Transition{Next: "stmt_for_in_ws", Dir: twopda.Stay, Op: twopda.Read},
		FailTransition,
	)
	b.ReadWhitespace("stmt_for_in_ws", FailTransition)
	b.ReadNameOrKeyword("stmt_for_in_ws", FailTransition, twopda.Transition{Next: "stmt_for_in_kw", Dir: twopda.Stay, Op: twopda.Read})
	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_for_in_kw", c, "in", twopda.Transition{Next: "stmt_for_explist_ws", Dir: twopda.Stay, Op: twopda.Pop})
	}
	b.ReadWhitespace("stmt_for_explist_ws", FailTransition)
	b.ReadExpressionList("stmt_for_explist_ws", twopda.Transition{Next: "stmt_for_do_ws", Dir: twopda.Stay, Op: twopda.Read})

	b.ReadWhitespace("stmt_for_do_ws", FailTransition)
	b.ReadNameOrKeyword("stmt_for_do_ws", FailTransition, twopda.Transition{Next: "stmt_for_do_kw", Dir: twopda.Stay, Op: twopda.Read})
	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_for_do_kw", c, "do", twopda.Transition{Next: "stmt_for_block_ws", Dir: twopda.Stay, Op: twopda.Pop})
	}
	b.ReadWhitespace("stmt_for_block_ws", FailTransition)
	b.ReadBlock("stmt_for_block_ws", nil, map[string]twopda.Transition{
		"end": {Next: "block_start", Dir: twopda.Stay, Op: twopda.Read},
	})
}

func (b *Builder) buildFunctionStatement() {
	for _, c := range All.Bytes() {
		b.def.AddTransition("block_kw_dispatch", c, "function", twopda.Transition{Next: "stmt_function_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_function_pop", c, twopda.Wildcard, twopda.Transition{Next: "stmt_function_name_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("stmt_function_name_ws", FailTransition)
	// funcname ::= Name {'.' Name} [':' Name]; reuse the lrvalue chain
	// reader (it already knows ".name" and ":name" suffixes) restricted
	// to just those two forms by discarding its call-argument paths --
	// in practice any well-formed funcname is also a valid lrvalue
	// chain ending before "(", so simply read a chain and proceed once
	// whitespace-then-'(' is found.
	b.ReadLValueOrRValue("stmt_function_name_ws", false,
		twopda.Transition{Next: "stmt_funcname_done", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "stmt_funcname_done", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "stmt_funcname_done", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "stmt_funcname_done", Dir: twopda.Stay, Op: twopda.Read},
		FailTransition, false, false)
	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_funcname_done", c, tagLvalueOrRvalue, twopda.Transition{Next: "stmt_function_body_ws", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_funcname_done", c, tagRvalue, twopda.Transition{Next: "stmt_function_body_ws", Dir: twopda.Stay, Op: twopda.Pop})
	}

	b.ReadWhitespace("stmt_function_body_ws", FailTransition)
	b.ReadFuncBody("stmt_function_body_ws", twopda.Transition{Next: "block_start", Dir: twopda.Stay, Op: twopda.Read})
}

func (b *Builder) buildLocalStatement() {
	for _, c := range All.Bytes() {
		b.def.AddTransition("block_kw_dispatch", c, "local", twopda.Transition{Next: "stmt_local_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_local_pop", c, twopda.Wildcard, twopda.Transition{Next: "stmt_local_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("stmt_local_ws", FailTransition)
	b.ReadNameOrKeyword("stmt_local_ws",
		twopda.Transition{Next: "stmt_local_after_first_name", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "stmt_local_kw", Dir: twopda.Stay, Op: twopda.Read},
	)
	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_local_kw", c, "function", twopda.Transition{Next: "stmt_local_function_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_local_function_pop", c, twopda.Wildcard, twopda.Transition{Next: "stmt_local_function_name_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("stmt_local_function_name_ws", FailTransition)
	b.ReadNameOrKeyword("stmt_local_function_name_ws", twopda.Transition{Next: "stmt_local_function_body_ws", Dir: twopda.Stay, Op: twopda.Read}, FailTransition)
	b.ReadWhitespace("stmt_local_function_body_ws", FailTransition)
	b.ReadFuncBody("stmt_local_function_body_ws", twopda.Transition{Next: "block_start", Dir: twopda.Stay, Op: twopda.Read})

	// local namelist ['=' explist] -- attribute syntax ("<const>") is
	// not recognized: a documented simplification.
	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_local_after_first_name", c, twopda.Wildcard, twopda.Transition{Next: "block_start", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("stmt_local_after_first_name", FailTransition)
	b.def.AddTransition("stmt_local_after_first_name", ',', twopda.Wildcard, twopda.Transition{Next: "stmt_local_more_names_ws", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("stmt_local_after_first_name", '=', twopda.Wildcard, twopda.Transition{Next: "stmt_local_val_ws", Dir: twopda.Right, Op: twopda.Read})

	b.ReadWhitespace("stmt_local_more_names_ws", FailTransition)
	b.ReadNameOrKeyword("stmt_local_more_names_ws", twopda.Transition{Next: "stmt_local_after_first_name", Dir: twopda.Stay, Op: twopda.Read}, FailTransition)

	b.ReadWhitespace("stmt_local_val_ws", FailTransition)
	b.ReadExpressionList("stmt_local_val_ws", twopda.Transition{Next: "block_start", Dir: twopda.Stay, Op: twopda.Read})
}

// buildAssignmentOrCallStatement wires the entry point used when a
// statement starts with a name or '(' -- either an assignment
// ("varlist '=' explist") or a standalone function call.
func (b *Builder) buildAssignmentOrCallStatement() {
	b.ReadLValueOrRValue("stmt_lrvalue_entry", false,
		twopda.Transition{Next: "stmt_after_lrvalue", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "stmt_after_lrvalue", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "stmt_after_lrvalue", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "stmt_after_lrvalue", Dir: twopda.Stay, Op: twopda.Read},
		FailTransition, false, true)
	b.ReadLValueOrRValue("stmt_lrvalue_have_name", true,
		twopda.Transition{Next: "stmt_after_lrvalue", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "stmt_after_lrvalue", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "stmt_after_lrvalue", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "stmt_after_lrvalue", Dir: twopda.Stay, Op: twopda.Read},
		FailTransition, false, true)

	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_after_lrvalue", c, tagLvalueOrRvalue, twopda.Transition{Next: "stmt_after_lrvalue_lv_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_after_lrvalue", c, tagRvalue, twopda.Transition{Next: "stmt_after_lrvalue_rv_pop", Dir: twopda.Stay, Op: twopda.Pop})

		b.def.AddTransition("stmt_after_lrvalue_lv_pop", c, tagFunctionCall, twopda.Transition{Next: "stmt_call_or_assign_pop", Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition("stmt_after_lrvalue_lv_pop", c, tagNotFunctionCall, twopda.Transition{Next: "stmt_varlist_cont_pop", Dir: twopda.Stay, Op: twopda.Pop})

		b.def.AddTransition("stmt_after_lrvalue_rv_pop", c, tagFunctionCall, twopda.Transition{Next: "stmt_call_done_pop", Dir: twopda.Stay, Op: twopda.Pop})
		// rvalue + not_function_call (e.g. a bare parenthesized
		// expression) cannot stand alone as a statement: FAIL by
		// omission.

		b.def.AddTransition("stmt_call_or_assign_pop", c, twopda.Wildcard, twopda.Transition{Next: "stmt_varlist_cont", Dir: twopda.Stay, Op: twopda.Read})
		b.def.AddTransition("stmt_varlist_cont_pop", c, twopda.Wildcard, twopda.Transition{Next: "stmt_varlist_cont", Dir: twopda.Stay, Op: twopda.Read})
		b.def.AddTransition("stmt_call_done_pop", c, twopda.Wildcard, twopda.Transition{Next: "block_start", Dir: twopda.Stay, Op: twopda.Read})
	}

	for _, c := range All.Bytes() {
		b.def.AddTransition("stmt_varlist_cont", c, twopda.Wildcard, twopda.Transition{Next: "block_start", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("stmt_varlist_cont", FailTransition)
	b.def.AddTransition("stmt_varlist_cont", '=', twopda.Wildcard, twopda.Transition{Next: "stmt_assign_val_ws", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("stmt_varlist_cont", ',', twopda.Wildcard, twopda.Transition{Next: "stmt_varlist_more_ws", Dir: twopda.Right, Op: twopda.Read})

	b.ReadWhitespace("stmt_varlist_more_ws", FailTransition)
	b.ReadLValueOrRValue("stmt_varlist_more_ws", false,
		twopda.Transition{Next: "stmt_varlist_cont", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "stmt_varlist_cont", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "stmt_varlist_cont", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "stmt_varlist_cont", Dir: twopda.Stay, Op: twopda.Read},
		FailTransition, false, false)

	b.ReadWhitespace("stmt_assign_val_ws", FailTransition)
	b.ReadExpressionList("stmt_assign_val_ws", twopda.Transition{Next: "block_start", Dir: twopda.Stay, Op: twopda.Read})
}
