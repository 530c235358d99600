package luapda

import "github.com/stevenskevin/lua-2pda/internal/twopda"

// AcceptState is reached only once the whole chunk has been consumed
// successfully, whether that's because real input ran out cleanly or
// because the chunk-end end-of-input transition fired on an empty chunk.
// Nothing is ever wired out of it.
const AcceptState = "ACCEPT"

// buildEntrypoint wires the automaton's "start" state: an optional
// shebang line (only recognized literally at position 0, never again),
// then the top-level chunk, which is a block whose only legal closer is
// end-of-input.
func (b *Builder) buildEntrypoint() {
	for _, c := range All.Bytes() {
		b.def.AddTransition("start", c, twopda.Wildcard, twopda.Transition{Next: "chunk_start", Dir: twopda.Stay, Op: twopda.Read})
	}
	b.def.AddEOFTransition("start", twopda.Wildcard, twopda.Transition{Next: "chunk_start", Dir: twopda.Stay, Op: twopda.Read})
	b.def.AddTransition("start", '#', twopda.Wildcard, twopda.Transition{Next: "shebang_line", Dir: twopda.Right, Op: twopda.Read})

	for _, c := range NewByteSet('\n').Complement().Bytes() {
		b.def.AddTransition("shebang_line", c, twopda.Wildcard, twopda.Transition{Next: "shebang_line", Dir: twopda.Right, Op: twopda.Read})
	}
	b.def.AddTransition("shebang_line", '\n', twopda.Wildcard, twopda.Transition{Next: "chunk_start", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddEOFTransition("shebang_line", twopda.Wildcard, twopda.Transition{Next: "chunk_start", Dir: twopda.Stay, Op: twopda.Read})

	b.ReadBlock("chunk_start", nil, map[string]twopda.Transition{
		"eof": {Next: AcceptState, Dir: twopda.Right, Op: twopda.Read},
	})
}
