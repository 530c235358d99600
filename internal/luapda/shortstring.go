package luapda

import "github.com/stevenskevin/lua-2pda/internal/twopda"

// Short string literals ("...": or '...') are recognized by one shared
// subsystem, entered the same way as the long-bracket subsystem: push a
// sentinel, go to ShortStringStartState, and wire your own exit from
// ShortStringEndState matching your sentinel. Leading/trailing
// whitespace is never consumed here.
//
// Per llex.c, the only things that can make a short string malformed are
// an unescaped raw newline, a malformed escape sequence, or EOF (which
// this recognizer represents as simply never finding a closing quote).
const ShortStringStartState = "short_string_start"
const ShortStringEndState = "short_string_end"

func (b *Builder) buildShortStringSubsystem() {
	b.def.AddTransition(ShortStringStartState, '\'', twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Right, Op: twopda.Push, Value: "'"})
	b.def.AddTransition(ShortStringStartState, '"', twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Right, Op: twopda.Push, Value: "\""})

	for _, c := range NewByteSet('\r', '\n', '\\').Complement().Bytes() {
		b.def.AddTransition("short_string", c, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Right, Op: twopda.Read})
	}

	b.def.AddTransition("short_string", '"', "'", twopda.Transition{Next: "short_string", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("short_string", '\'', "\"", twopda.Transition{Next: "short_string", Dir: twopda.Right, Op: twopda.Read})

	b.def.AddTransition("short_string", '\\', twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq", Dir: twopda.Right, Op: twopda.Read})

	for _, c := range []byte("abfnrtv\\\"'\n") {
		b.def.AddTransition("short_string_esc_seq", c, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Right, Op: twopda.Read})
	}

	// \z skips following raw whitespace (not comments).
	b.def.AddTransition("short_string_esc_seq", 'z', twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_z", Dir: twopda.Right, Op: twopda.Read})
	for _, c := range spaceSet.Bytes() {
		b.def.AddTransition("short_string_esc_seq_z", c, twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_z", Dir: twopda.Right, Op: twopda.Read})
	}
	for _, c := range notSpaceSet.Bytes() {
		b.def.AddTransition("short_string_esc_seq_z", c, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Stay, Op: twopda.Read})
	}

	// \xHH: exactly two hex digits.
	b.def.AddTransition("short_string_esc_seq", 'x', twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_x", Dir: twopda.Right, Op: twopda.Read})
	for _, c := range hexSet.Bytes() {
		b.def.AddTransition("short_string_esc_seq_x", c, twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_x_X", Dir: twopda.Right, Op: twopda.Read})
		b.def.AddTransition("short_string_esc_seq_x_X", c, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Right, Op: twopda.Read})
	}

	b.buildDecimalEscape()
	b.buildUnicodeEscape()

	b.def.AddTransition("short_string", '\'', "'", twopda.Transition{Next: ShortStringEndState, Dir: twopda.Right, Op: twopda.Pop})
	b.def.AddTransition("short_string", '"', "\"", twopda.Transition{Next: ShortStringEndState, Dir: twopda.Right, Op: twopda.Pop})
}

// buildDecimalEscape wires \d, \dd, \ddd with enforcement that the
// decimal value never exceeds 255, via partitioning on the leading
// digit: 0/1 never overflow; 3-9 overflow iff a third digit follows; 2
// needs care on the second digit (0-4 and 6-9 behave like the easy
// cases, 5 needs a third check against 0-5 only).
func (b *Builder) buildDecimalEscape() {
	for _, d := range []byte("01") {
		b.def.AddTransition("short_string_esc_seq", d, twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_01", Dir: twopda.Right, Op: twopda.Read})
	}
	for _, d := range digitSet.Bytes() {
		b.def.AddTransition("short_string_esc_seq_01", d, twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_01_*", Dir: twopda.Right, Op: twopda.Read})
		b.def.AddTransition("short_string_esc_seq_01_*", d, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Right, Op: twopda.Read})
	}
	for _, c := range digitSet.Complement().Bytes() {
		b.def.AddTransition("short_string_esc_seq_01", c, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Stay, Op: twopda.Read})
		b.def.AddTransition("short_string_esc_seq_01_*", c, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Stay, Op: twopda.Read})
	}

	for _, d := range []byte("3456789") {
		b.def.AddTransition("short_string_esc_seq", d, twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_3-9", Dir: twopda.Right, Op: twopda.Read})
	}
	for _, d := range digitSet.Bytes() {
		b.def.AddTransition("short_string_esc_seq_3-9", d, twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_3-9_*", Dir: twopda.Right, Op: twopda.Read})
	}
	for _, c := range digitSet.Complement().Bytes() {
		b.def.AddTransition("short_string_esc_seq_3-9", c, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Stay, Op: twopda.Read})
		b.def.AddTransition("short_string_esc_seq_3-9_*", c, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Stay, Op: twopda.Read})
	}

	b.def.AddTransition("short_string_esc_seq", '2', twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_2", Dir: twopda.Right, Op: twopda.Read})
	for _, d := range []byte("01234") {
		b.def.AddTransition("short_string_esc_seq_2", d, twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_2_0-4", Dir: twopda.Right, Op: twopda.Read})
	}
	b.def.AddTransition("short_string_esc_seq_2", '5', twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_2_5", Dir: twopda.Right, Op: twopda.Read})
	for _, d := range []byte("6789") {
		b.def.AddTransition("short_string_esc_seq_2", d, twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_2_6-9", Dir: twopda.Right, Op: twopda.Read})
	}
	for _, c := range digitSet.Complement().Bytes() {
		b.def.AddTransition("short_string_esc_seq_2", c, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Stay, Op: twopda.Read})
	}

	for _, d := range digitSet.Bytes() {
		b.def.AddTransition("short_string_esc_seq_2_0-4", d, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Right, Op: twopda.Read})
	}
	for _, c := range digitSet.Complement().Bytes() {
		b.def.AddTransition("short_string_esc_seq_2_0-4", c, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Stay, Op: twopda.Read})
		b.def.AddTransition("short_string_esc_seq_2_6-9", c, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Stay, Op: twopda.Read})
	}

	for _, d := range []byte("012345") {
		b.def.AddTransition("short_string_esc_seq_2_5", d, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Right, Op: twopda.Read})
	}
	for _, c := range digitSet.Complement().Bytes() {
		b.def.AddTransition("short_string_esc_seq_2_5", c, twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Stay, Op: twopda.Read})
	}
}

// buildUnicodeEscape wires \u{H+} with value capped at 0x7FFFFFFF,
// enforced by classifying the first nonzero hex digit as 1-7 (up to 7
// more digits allowed) vs 8-F (up to 6 more digits allowed), after
// skipping any number of leading zeros.
func (b *Builder) buildUnicodeEscape() {
	b.def.AddTransition("short_string_esc_seq", 'u', twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_u", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("short_string_esc_seq_u", '{', twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_u{", Dir: twopda.Right, Op: twopda.Read})

	b.def.AddTransition("short_string_esc_seq_u{", '0', twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_u{_0", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("short_string_esc_seq_u{_0", '0', twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_u{_0", Dir: twopda.Right, Op: twopda.Read})

	for _, d := range []byte("1234567") {
		b.def.AddTransition("short_string_esc_seq_u{", d, twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_u{_1-7", Dir: twopda.Right, Op: twopda.Read})
		b.def.AddTransition("short_string_esc_seq_u{_0", d, twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_u{_1-7", Dir: twopda.Right, Op: twopda.Read})
	}
	for _, d := range append([]byte("89"), onlyHexSet.Bytes()...) {
		b.def.AddTransition("short_string_esc_seq_u{", d, twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_u{_8-F", Dir: twopda.Right, Op: twopda.Read})
		b.def.AddTransition("short_string_esc_seq_u{_0", d, twopda.Wildcard, twopda.Transition{Next: "short_string_esc_seq_u{_8-F", Dir: twopda.Right, Op: twopda.Read})
	}

	states17 := []string{"short_string_esc_seq_u{_1-7", "short_string_esc_seq_u{_1-7_+1", "short_string_esc_seq_u{_1-7_+2",
		"short_string_esc_seq_u{_1-7_+3", "short_string_esc_seq_u{_1-7_+4", "short_string_esc_seq_u{_1-7_+5", "short_string_esc_seq_u{_1-7_+6"}
	for i := 0; i < len(states17)-1; i++ {
		for _, d := range hexSet.Bytes() {
			b.def.AddTransition(states17[i], d, twopda.Wildcard, twopda.Transition{Next: states17[i+1], Dir: twopda.Right, Op: twopda.Read})
		}
	}
	lastOf17 := "short_string_esc_seq_u{_1-7_+7"

	states8F := []string{"short_string_esc_seq_u{_8-F", "short_string_esc_seq_u{_8-F_+1", "short_string_esc_seq_u{_8-F_+2",
		"short_string_esc_seq_u{_8-F_+3", "short_string_esc_seq_u{_8-F_+4", "short_string_esc_seq_u{_8-F_+5"}
	for i := 0; i < len(states8F)-1; i++ {
		for _, d := range hexSet.Bytes() {
			b.def.AddTransition(states8F[i], d, twopda.Wildcard, twopda.Transition{Next: states8F[i+1], Dir: twopda.Right, Op: twopda.Read})
		}
	}

	closers := append(append([]string{"short_string_esc_seq_u{_0"}, states17...), lastOf17)
	closers = append(closers, states8F...)
	for _, s := range closers {
		b.def.AddTransition(s, '}', twopda.Wildcard, twopda.Transition{Next: "short_string", Dir: twopda.Right, Op: twopda.Read})
	}
}
