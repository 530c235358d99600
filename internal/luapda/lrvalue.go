package luapda

import "github.com/stevenskevin/lua-2pda/internal/twopda"

// Tag values used by ReadLValueOrRValue, encoded together on the stack
// as a single "__"-joined symbol while the chain is still being read,
// then decomposed into up to three separate stack entries on exit.
const (
	tagLvalueOrRvalue  = "lvalue_or_rvalue"
	tagRvalue          = "rvalue"
	tagOnlyName        = "only_name"
	tagNotOnlyName     = "not_only_name"
	tagFunctionCall    = "function_call"
	tagNotFunctionCall = "not_function_call"
)

func lrvalueTag(classify, onlyName, functionCall string) string {
	return classify + "__" + onlyName + "__" + functionCall
}

// ReadLValueOrRValue handles the combined grammar for Lua's "var" and
// "prefixexp" productions: a name (or parenthesized expression) followed
// by zero or more chain suffixes (".name", "[exp]", ":name(args)",
// "(args)", a string/table-constructor call argument).
//
// alreadyReadName is true when the caller has already consumed the
// leading name itself; otherwise the reader consumes it itself.
//
// transition is the normal exit, taken without consuming the byte that
// ended the chain. minusTransition/periodTransition/colonTransition let
// a caller special-case a trailing '-'/'.'/':' look-ahead of its own
// (e.g. statement dispatch distinguishing an assignment from a bare
// call); when unused they may be set equal to transition.
// keywordTransition is taken if the very first token was a keyword
// rather than a name (only relevant when alreadyReadName is false).
//
// On exit the reader leaves on the stack (top to bottom):
// "lvalue_or_rvalue"|"rvalue", then optionally "only_name"|"not_only_name"
// (if checkIfOnlyName), then optionally "function_call"|"not_function_call"
// (if checkIfFunctionCall).
func (b *Builder) ReadLValueOrRValue(startState string, alreadyReadName bool,
	transition, minusTransition, periodTransition, colonTransition, keywordTransition twopda.Transition,
	checkIfOnlyName, checkIfFunctionCall bool) {

	thisStackValue := sentinel("lrvalue", startState)
	entryState := "lrvalue_start_1"
	if alreadyReadName {
		entryState = "lrvalue_start_2"
	}
	for _, c := range All.Bytes() {
		b.def.AddTransition(startState, c, twopda.Wildcard, twopda.Transition{Next: entryState, Dir: twopda.Stay, Op: twopda.Push, Value: thisStackValue})
	}

	variants := []struct {
		mod        string
		transition twopda.Transition
	}{
		{"", transition},
		{"_-", minusTransition},
		{"_.", periodTransition},
		{"_:", colonTransition},
	}
	classifyOpts := []string{tagLvalueOrRvalue, tagRvalue}
	onlyNameOpts := []string{tagOnlyName, tagNotOnlyName}
	fnCallOpts := []string{tagFunctionCall, tagNotFunctionCall}

	for _, v := range variants {
		gate := "lrvalue_exit" + v.mod
		for _, classify := range classifyOpts {
			for _, onlyName := range onlyNameOpts {
				for _, fnCall := range fnCallOpts {
					stateStackValue := lrvalueTag(classify, onlyName, fnCall)

					var toPush []string
					if checkIfFunctionCall {
						toPush = append(toPush, fnCall)
					}
					if checkIfOnlyName {
						toPush = append(toPush, onlyName)
					}
					toPush = append(toPush, classify)

					current := gate + "_popped__" + stateStackValue
					for _, c := range All.Bytes() {
						b.def.AddTransition(gate, c, stateStackValue, twopda.Transition{Next: current, Dir: twopda.Stay, Op: twopda.Pop})
					}

					op := twopda.Replace
					checkAgainst := thisStackValue
					for i, tp := range toPush {
						next := current + "__" + itoa(i+1)
						for _, c := range All.Bytes() {
							b.def.AddTransition(current, c, checkAgainst, twopda.Transition{Next: next, Dir: twopda.Stay, Op: op, Value: tp})
						}
						op = twopda.Push
						checkAgainst = twopda.Wildcard
						current = next
					}
					for _, c := range All.Bytes() {
						b.def.AddTransition(current, c, twopda.Wildcard, v.transition)
					}
				}
			}
		}
	}

	for _, keyword := range Keywords {
		i1 := "lrvalue_exit_keyword_popped__" + keyword
		i2 := i1 + "_from__" + thisStackValue
		for _, c := range All.Bytes() {
			b.def.AddTransition("lrvalue_exit_keyword", c, keyword, twopda.Transition{Next: i1, Dir: twopda.Stay, Op: twopda.Pop})
			b.def.AddTransition(i1, c, thisStackValue, twopda.Transition{Next: i2, Dir: twopda.Stay, Op: twopda.Replace, Value: keyword})
			b.def.AddTransition(i2, c, twopda.Wildcard, keywordTransition)
		}
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// setLRValueTagAndContinue replaces (or, on first use from a fresh entry
// state, pushes) the combined classify tag and returns to the shared
// chain-reading loop, or its ':'-suffixed variant (used right after
// ":name", where only "(" or a call argument may legally follow).
func (b *Builder) setLRValueTagAndContinue(fromState string, on []byte, dir twopda.Direction, op twopda.StackOp, classify, onlyName, fnCall string, colonVersion bool) {
	target := "lrvalue_read_next_part"
	if colonVersion {
		target += "_:"
	}
	value := lrvalueTag(classify, onlyName, fnCall)
	for _, c := range on {
		b.def.AddTransition(fromState, c, twopda.Wildcard, twopda.Transition{Next: target, Dir: dir, Op: op, Value: value})
	}
}

// buildLValueRValueSubsystem wires the shared "lrvalue_start_1/2" entry
// glue and the "lrvalue_read_next_part" chain-reading loop that every
// ReadLValueOrRValue call site funnels into.
func (b *Builder) buildLValueRValueSubsystem() {
	// entry_1: no name read yet. A '(' starts a parenthesized prefixexp
	// (always classifies as rvalue, never "only a name", not by itself a
	// function call); anything else must be a name or keyword.
	b.def.AddTransition("lrvalue_start_1", '(', twopda.Wildcard, twopda.Transition{Next: "lrvalue_paren_exp_open", Dir: twopda.Right, Op: twopda.Read})
	for _, c := range All.Bytes() {
		b.def.AddTransition("lrvalue_paren_exp_open", c, twopda.Wildcard, twopda.Transition{Next: "lrvalue_paren_exp_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("lrvalue_paren_exp_ws", FailTransition)
	b.ReadExpression("lrvalue_paren_exp_ws", twopda.Transition{Next: "lrvalue_paren_exp_close", Dir: twopda.Stay, Op: twopda.Read})
	b.def.AddTransition("lrvalue_paren_exp_close", ')', twopda.Wildcard, twopda.Transition{Next: "lrvalue_after_paren", Dir: twopda.Right, Op: twopda.Read})
	b.setLRValueTagAndContinue("lrvalue_after_paren", All.Bytes(), twopda.Stay, twopda.Push, tagRvalue, tagNotOnlyName, tagNotFunctionCall, false)

	for _, c := range nameStartSet.Bytes() {
		b.def.AddTransition("lrvalue_start_1", c, twopda.Wildcard, twopda.Transition{Next: "lrvalue_read_name", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadNameOrKeyword("lrvalue_read_name",
		twopda.Transition{Next: "lrvalue_start_2", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "lrvalue_exit_keyword", Dir: twopda.Stay, Op: twopda.Read},
	)

	// entry_2: a name has already been read. Classify it provisionally
	// as "could still be either, and only a name so far" until a suffix
	// proves otherwise.
	b.setLRValueTagAndContinue("lrvalue_start_2", All.Bytes(), twopda.Stay, twopda.Push, tagLvalueOrRvalue, tagOnlyName, tagNotFunctionCall, false)

	b.buildLRValueChainLoop()
}

// buildLRValueChainLoop wires the main loop: from "lrvalue_read_next_part"
// (or "lrvalue_read_next_part_:", reachable only right after a method
// name), read any recognized chain suffix, or fall through to the exit
// gate once none applies.
func (b *Builder) buildLRValueChainLoop() {
	// ".name": always an lvalue-or-rvalue, never "only a name", never (by
	// itself) a function call. Not legal right after ":name".
	b.def.AddTransition("lrvalue_read_next_part", '.', twopda.Wildcard, twopda.Transition{Next: "lrvalue_period", Dir: twopda.Right, Op: twopda.Read})
	for _, c := range nameStartSet.Bytes() {
		b.def.AddTransition("lrvalue_period", c, twopda.Wildcard, twopda.Transition{Next: "lrvalue_period_name", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadNameOrKeyword("lrvalue_period_name", twopda.Transition{Next: "lrvalue_period_name_done", Dir: twopda.Stay, Op: twopda.Read}, FailTransition)
	b.setLRValueTagAndContinue("lrvalue_period_name_done", All.Bytes(), twopda.Stay, twopda.Replace, tagLvalueOrRvalue, tagNotOnlyName, tagNotFunctionCall, false)

	// "[exp]": indexed access.
	b.def.AddTransition("lrvalue_read_next_part", '[', twopda.Wildcard, twopda.Transition{Next: "lrvalue_bracket_open", Dir: twopda.Right, Op: twopda.Read})
	for _, c := range All.Bytes() {
		b.def.AddTransition("lrvalue_bracket_open", c, twopda.Wildcard, twopda.Transition{Next: "lrvalue_bracket_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("lrvalue_bracket_ws", FailTransition)
	b.ReadExpression("lrvalue_bracket_ws", twopda.Transition{Next: "lrvalue_bracket_close", Dir: twopda.Stay, Op: twopda.Read})
	b.def.AddTransition("lrvalue_bracket_close", ']', twopda.Wildcard, twopda.Transition{Next: "lrvalue_after_bracket", Dir: twopda.Right, Op: twopda.Read})
	b.setLRValueTagAndContinue("lrvalue_after_bracket", All.Bytes(), twopda.Stay, twopda.Replace, tagLvalueOrRvalue, tagNotOnlyName, tagNotFunctionCall, false)

	// ":name" commits to a method call: only "(args)" or a string/table
	// call argument may legally follow.
	b.def.AddTransition("lrvalue_read_next_part", ':', twopda.Wildcard, twopda.Transition{Next: "lrvalue_colon", Dir: twopda.Right, Op: twopda.Read})
	b.ReadNameOrKeyword("lrvalue_colon", twopda.Transition{Next: "lrvalue_colon_name_done", Dir: twopda.Stay, Op: twopda.Read}, FailTransition)
	b.setLRValueTagAndContinue("lrvalue_colon_name_done", All.Bytes(), twopda.Stay, twopda.Replace, tagRvalue, tagNotOnlyName, tagFunctionCall, true)

	// "(args)", a bare string literal, or a table constructor: call
	// arguments. Legal from both the plain loop and its ':' variant.
	b.readCallArgs("lrvalue_read_next_part")
	b.readCallArgs("lrvalue_read_next_part_:")

	// Exit gate: anything not recognized above falls through to the
	// caller-supplied exit, carrying whatever tag was accumulated so far.
	for _, c := range All.Bytes() {
		b.def.AddTransition("lrvalue_read_next_part", c, twopda.Wildcard, twopda.Transition{Next: "lrvalue_exit", Dir: twopda.Stay, Op: twopda.Read})
	}
	// Reaching here via the ':' variant without a call next means a
	// method name was read with no call -- always a syntax error in
	// Lua, so no fallback is wired: FAIL by omission.
}

// readCallArgs wires "(explist)", a bare string literal, or a table
// constructor as call arguments following a function/method call
// prefix, from fromState back into the shared chain loop. A completed
// call always classifies as rvalue + function_call, never "only a name".
func (b *Builder) readCallArgs(fromState string) {
	open := fromState + "_call_paren"
	b.def.AddTransition(fromState, '(', twopda.Wildcard, twopda.Transition{Next: open, Dir: twopda.Right, Op: twopda.Read})
	for _, c := range All.Bytes() {
		b.def.AddTransition(open, c, twopda.Wildcard, twopda.Transition{Next: open + "_ws", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace(open+"_ws", FailTransition)
	b.def.AddTransition(open+"_ws", ')', twopda.Wildcard, twopda.Transition{Next: open + "_done", Dir: twopda.Right, Op: twopda.Read})
	b.ReadExpressionList(open+"_ws", twopda.Transition{Next: open + "_explist_done", Dir: twopda.Stay, Op: twopda.Read})
	b.def.AddTransition(open+"_explist_done", ')', twopda.Wildcard, twopda.Transition{Next: open + "_done", Dir: twopda.Right, Op: twopda.Read})
	b.setLRValueTagAndContinue(open+"_done", All.Bytes(), twopda.Stay, twopda.Replace, tagRvalue, tagNotOnlyName, tagFunctionCall, false)

	strState := fromState + "_call_str"
	for _, q := range []byte{'\'', '"'} {
		b.def.AddTransition(fromState, q, twopda.Wildcard, twopda.Transition{Next: ShortStringStartState, Dir: twopda.Stay, Op: twopda.Push, Value: strState})
	}
	for _, c := range All.Bytes() {
		b.def.AddTransition(ShortStringEndState, c, strState, twopda.Transition{Next: strState + "_done", Dir: twopda.Stay, Op: twopda.Pop})
	}
	b.setLRValueTagAndContinue(strState+"_done", All.Bytes(), twopda.Stay, twopda.Replace, tagRvalue, tagNotOnlyName, tagFunctionCall, false)

	mcolsStr := fromState + "_call_mcols_str"
	b.def.AddTransition(fromState, '[', twopda.Wildcard, twopda.Transition{Next: MCOLSStartState, Dir: twopda.Stay, Op: twopda.Push, Value: mcolsStr})
	b.def.AddTransition(MCOLSEndState, ']', mcolsStr, twopda.Transition{Next: mcolsStr + "_done", Dir: twopda.Right, Op: twopda.Pop})
	b.setLRValueTagAndContinue(mcolsStr+"_done", All.Bytes(), twopda.Stay, twopda.Replace, tagRvalue, tagNotOnlyName, tagFunctionCall, false)

	tableState := fromState + "_call_table"
	b.def.AddTransition(fromState, '{', twopda.Wildcard, twopda.Transition{Next: TableConstructorStartState, Dir: twopda.Stay, Op: twopda.Push, Value: tableState})
	for _, c := range All.Bytes() {
		b.def.AddTransition(TableConstructorEndState, c, tableState, twopda.Transition{Next: tableState + "_done", Dir: twopda.Stay, Op: twopda.Pop})
	}
	b.setLRValueTagAndContinue(tableState+"_done", All.Bytes(), twopda.Stay, twopda.Replace, tagRvalue, tagNotOnlyName, tagFunctionCall, false)
}
