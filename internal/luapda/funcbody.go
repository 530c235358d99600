package luapda

import "github.com/stevenskevin/lua-2pda/internal/twopda"

// ReadFuncBody installs transitions so that, from startState, a
// function body is read:
//
//	funcbody ::= '(' [parlist] ')' block 'end'
//	parlist  ::= namelist [',' '...'] | '...'
func (b *Builder) ReadFuncBody(startState string, transition twopda.Transition) {
	thisStackValue := sentinel("funcbody", startState)
	for _, c := range All.Bytes() {
		b.def.AddTransition(startState, c, twopda.Wildcard, twopda.Transition{Next: "funcbody_open", Dir: twopda.Stay, Op: twopda.Push, Value: thisStackValue})
	}
	for _, c := range All.Bytes() {
		intermediate := "funcbody_exit_from__" + startState
		b.def.AddTransition("funcbody_exit", c, thisStackValue, twopda.Transition{Next: intermediate, Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition(intermediate, c, twopda.Wildcard, transition)
	}
}

func (b *Builder) buildFuncBodySubsystem() {
	b.def.AddTransition("funcbody_open", '(', twopda.Wildcard, twopda.Transition{Next: "funcbody_ws_1", Dir: twopda.Right, Op: twopda.Read})
	b.ReadWhitespace("funcbody_ws_1", FailTransition)
	b.def.AddTransition("funcbody_ws_1", ')', twopda.Wildcard, twopda.Transition{Next: "funcbody_close_ws", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("funcbody_ws_1", '.', twopda.Wildcard, twopda.Transition{Next: "funcbody_vararg_1", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("funcbody_vararg_1", '.', twopda.Wildcard, twopda.Transition{Next: "funcbody_vararg_2", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("funcbody_vararg_2", '.', twopda.Wildcard, twopda.Transition{Next: "funcbody_ws_1", Dir: twopda.Right, Op: twopda.Read})

	b.ReadNameList("funcbody_ws_1",
		twopda.Transition{Next: "funcbody_after_namelist", Dir: twopda.Stay, Op: twopda.Read},
		FailTransition,
	)
	for _, c := range All.Bytes() {
		b.def.AddTransition("funcbody_after_namelist", c, twopda.Wildcard, twopda.Transition{Next: "funcbody_ws_1", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.ReadWhitespace("funcbody_after_namelist", FailTransition)
	b.def.AddTransition("funcbody_after_namelist", ')', twopda.Wildcard, twopda.Transition{Next: "funcbody_close_ws", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("funcbody_after_namelist", ',', twopda.Wildcard, twopda.Transition{Next: "funcbody_vararg_ws", Dir: twopda.Right, Op: twopda.Read})
	b.ReadWhitespace("funcbody_vararg_ws", FailTransition)
	b.def.AddTransition("funcbody_vararg_ws", '.', twopda.Wildcard, twopda.Transition{Next: "funcbody_trail_vararg_1", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("funcbody_trail_vararg_1", '.', twopda.Wildcard, twopda.Transition{Next: "funcbody_trail_vararg_2", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("funcbody_trail_vararg_2", '.', twopda.Wildcard, twopda.Transition{Next: "funcbody_close_ws", Dir: twopda.Right, Op: twopda.Read})

	b.ReadWhitespace("funcbody_close_ws", FailTransition)
	b.ReadBlock("funcbody_close_ws", []string{"end"}, map[string]twopda.Transition{
		"end": {Next: "funcbody_exit", Dir: twopda.Stay, Op: twopda.Read},
	})
}
