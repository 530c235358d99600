package luapda

import "github.com/stevenskevin/lua-2pda/internal/twopda"

// ReadNameOrKeyword installs transitions so that, from startState, a Lua
// Name (`[A-Za-z_][A-Za-z0-9_]*`) is read character by character. If the
// accumulated text ends up matching one of the fixed keywords exactly,
// keywordTransition is taken with the matched keyword left on the stack
// top; otherwise nameTransition is taken with nothing extra on the
// stack.
func (b *Builder) ReadNameOrKeyword(startState string, nameTransition, keywordTransition twopda.Transition) {
	thisStackValue := sentinel("name_or_keyword", startState)

	for _, c := range nameStartSet.Bytes() {
		b.def.AddTransition(startState, c, twopda.Wildcard, twopda.Transition{Next: "name_or_keyword", Dir: twopda.Stay, Op: twopda.Push, Value: thisStackValue})
	}

	for _, c := range notNameCont.Bytes() {
		intermediate := "name_from__" + startState
		b.def.AddTransition("name", c, thisStackValue, twopda.Transition{Next: intermediate, Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition(intermediate, c, twopda.Wildcard, nameTransition)
	}

	for _, keyword := range Keywords {
		intermediate := "keyword_" + keyword + "_from__" + startState
		for _, c := range notNameCont.Bytes() {
			b.def.AddTransition("keyword_"+keyword, c, thisStackValue, twopda.Transition{Next: intermediate, Dir: twopda.Stay, Op: twopda.Replace, Value: keyword})
			b.def.AddTransition(intermediate, c, twopda.Wildcard, keywordTransition)
		}
	}
}

// buildNameKeywordSubsystem wires the shared "name" and "name_or_keyword"
// states that every ReadNameOrKeyword call site funnels into.
func (b *Builder) buildNameKeywordSubsystem() {
	for _, c := range nameCont.Bytes() {
		b.def.AddTransition("name", c, twopda.Wildcard, twopda.Transition{Next: "name", Dir: twopda.Right, Op: twopda.Read})
	}

	for _, c := range nameCont.Bytes() {
		b.def.AddTransition("name_or_keyword", c, twopda.Wildcard, twopda.Transition{Next: "name", Dir: twopda.Stay, Op: twopda.Read})
	}

	for _, keyword := range Keywords {
		for _, c := range All.Bytes() {
			keywordSoFar := ""
			for _, k := range []byte(keyword) {
				keywordSoFar += string(k)
				b.def.AddTransition("name_or_keyword", c, keywordSoFar, twopda.Transition{Next: "name", Dir: twopda.Stay, Op: twopda.Pop})
			}
		}

		for _, c := range notNameCont.Bytes() {
			b.def.AddTransition("name_or_keyword", c, keyword, twopda.Transition{Next: "keyword_" + keyword, Dir: twopda.Stay, Op: twopda.Pop})
		}

		first := keyword[0]
		b.def.AddTransition("name_or_keyword", first, twopda.Wildcard, twopda.Transition{Next: "name_or_keyword", Dir: twopda.Right, Op: twopda.Push, Value: string(first)})

		keywordSoFar := string(first)
		for i := 1; i < len(keyword); i++ {
			c := keyword[i]
			b.def.AddTransition("name_or_keyword", c, keywordSoFar, twopda.Transition{Next: "name_or_keyword", Dir: twopda.Right, Op: twopda.Replace, Value: keywordSoFar + string(c)})
			keywordSoFar += string(c)
		}
	}
}

// ReadNameList installs transitions so that, from startState, a
// comma-separated list of one or more Names is read (no trailing comma,
// and no leading whitespace -- callers consume that themselves). Unlike
// ReadNameOrKeyword, trailing whitespace after each name IS consumed,
// since a comma might follow after arbitrary whitespace.
//
// nameTransition is taken once the last name in the list has been read;
// keywordTransition is taken if the very first token is a keyword. A
// keyword appearing after the first comma is always a syntax error.
func (b *Builder) ReadNameList(startState string, nameTransition, keywordTransition twopda.Transition) {
	thisStackValue := sentinel("name_list", startState)

	for _, c := range All.Bytes() {
		b.def.AddTransition(startState, c, twopda.Wildcard, twopda.Transition{Next: "name_list_start", Dir: twopda.Stay, Op: twopda.Push, Value: thisStackValue})
	}

	for _, c := range All.Bytes() {
		intermediate := "name_list_exit_name_from__" + startState
		b.def.AddTransition("name_list_exit_name", c, thisStackValue, twopda.Transition{Next: intermediate, Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition(intermediate, c, twopda.Wildcard, nameTransition)
	}

	for _, c := range All.Bytes() {
		for _, k := range Keywords {
			i1 := "name_list_exit_keyword__" + k
			i2 := "name_list_exit_keyword__" + k + "__from__" + startState
			i3 := "name_list_exit_keyword_from__" + startState
			b.def.AddTransition("name_list_exit_keyword", c, k, twopda.Transition{Next: i1, Dir: twopda.Stay, Op: twopda.Pop})
			b.def.AddTransition(i1, c, thisStackValue, twopda.Transition{Next: i2, Dir: twopda.Stay, Op: twopda.Pop})
			b.def.AddTransition(i2, c, twopda.Wildcard, twopda.Transition{Next: i3, Dir: twopda.Stay, Op: twopda.Push, Value: k})
			b.def.AddTransition(i3, c, twopda.Wildcard, keywordTransition)
		}
	}
}

// buildNameListSubsystem wires the shared internal mechanics that every
// ReadNameList call site funnels into after the per-call-site sentinel
// has been pushed: reading the first name/keyword, and then looping on
// ", Name" while whitespace is skipped around the comma.
func (b *Builder) buildNameListSubsystem() {
	b.ReadNameOrKeyword("name_list_start",
		twopda.Transition{Next: "name_list_entry_end", Dir: twopda.Stay, Op: twopda.Read},
		twopda.Transition{Next: "name_list_exit_keyword", Dir: twopda.Stay, Op: twopda.Read},
	)

	for _, c := range All.Bytes() {
		b.def.AddTransition("name_list_entry_end", c, twopda.Wildcard, twopda.Transition{Next: "name_list_exit_name", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("name_list_entry_end", FailTransition)
	b.def.AddTransition("name_list_entry_end", ',', twopda.Wildcard, twopda.Transition{Next: "name_list_start_2", Dir: twopda.Right, Op: twopda.Read})
	b.ReadWhitespace("name_list_start_2", FailTransition)

	b.ReadNameOrKeyword("name_list_start_2",
		twopda.Transition{Next: "name_list_entry_end", Dir: twopda.Stay, Op: twopda.Read},
		FailTransition,
	)
}
