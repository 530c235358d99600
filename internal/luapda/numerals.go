package luapda

import "github.com/stevenskevin/lua-2pda/internal/twopda"

// ReadNumeral installs transitions so that, from startState, a Lua
// numeral is read: decimal (optional fractional part, optional e/E
// exponent) or hexadecimal (0x/0X prefix, optional fractional part,
// optional p/P exponent -- always with decimal exponent digits
// regardless of base). Nothing has been consumed yet when entering
// startState. transition is taken, without consuming the byte that
// ended the numeral, once no further numeral bytes remain.
//
// A simplification relative to the full Lua grammar: a hex fractional
// part is only recognized once at least one hex digit has been read in
// the integer part (i.e. "0x.5" is rejected even though upstream Lua
// accepts it). This keeps the table's hex-numeral states symmetric with
// its decimal ones; see DESIGN.md.
func (b *Builder) ReadNumeral(startState string, transition twopda.Transition) {
	thisStackValue := sentinel("numeral", startState)

	b.def.AddTransition(startState, '0', twopda.Wildcard, twopda.Transition{Next: "numeral_zero", Dir: twopda.Right, Op: twopda.Push, Value: thisStackValue})
	for _, d := range []byte("123456789") {
		b.def.AddTransition(startState, d, twopda.Wildcard, twopda.Transition{Next: "numeral_dec_int", Dir: twopda.Right, Op: twopda.Push, Value: thisStackValue})
	}
	b.def.AddTransition(startState, '.', twopda.Wildcard, twopda.Transition{Next: "numeral_dec_dot_first", Dir: twopda.Right, Op: twopda.Push, Value: thisStackValue})

	for _, c := range All.Bytes() {
		intermediate := "numeral_exit_from__" + startState
		b.def.AddTransition("numeral_exit", c, thisStackValue, twopda.Transition{Next: intermediate, Dir: twopda.Stay, Op: twopda.Pop})
		b.def.AddTransition(intermediate, c, twopda.Wildcard, transition)
	}
}

// exitToNumeralExit installs a catch-all, non-consuming exit from state
// to the shared "numeral_exit" gate, which ReadNumeral's per-call-site
// glue then routes to the caller's transition.
func (b *Builder) exitToNumeralExit(state string) {
	for _, c := range All.Bytes() {
		b.def.AddTransition(state, c, twopda.Wildcard, twopda.Transition{Next: "numeral_exit", Dir: twopda.Stay, Op: twopda.Read})
	}
}

func (b *Builder) buildNumeralSubsystem() {
	b.exitToNumeralExit("numeral_zero")
	b.def.AddTransition("numeral_zero", '.', twopda.Wildcard, twopda.Transition{Next: "numeral_dec_frac", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("numeral_zero", 'x', twopda.Wildcard, twopda.Transition{Next: "numeral_hex_start", Dir: twopda.Right, Op: twopda.Read})
	b.def.AddTransition("numeral_zero", 'X', twopda.Wildcard, twopda.Transition{Next: "numeral_hex_start", Dir: twopda.Right, Op: twopda.Read})
	for _, d := range digitSet.Bytes() {
		b.def.AddTransition("numeral_zero", d, twopda.Wildcard, twopda.Transition{Next: "numeral_dec_int", Dir: twopda.Right, Op: twopda.Read})
	}
	for _, c := range []byte("eE") {
		b.def.AddTransition("numeral_zero", c, twopda.Wildcard, twopda.Transition{Next: "numeral_dec_exp_start", Dir: twopda.Right, Op: twopda.Read})
	}

	b.exitToNumeralExit("numeral_dec_int")
	for _, d := range digitSet.Bytes() {
		b.def.AddTransition("numeral_dec_int", d, twopda.Wildcard, twopda.Transition{Next: "numeral_dec_int", Dir: twopda.Right, Op: twopda.Read})
	}
	b.def.AddTransition("numeral_dec_int", '.', twopda.Wildcard, twopda.Transition{Next: "numeral_dec_frac", Dir: twopda.Right, Op: twopda.Read})
	for _, c := range []byte("eE") {
		b.def.AddTransition("numeral_dec_int", c, twopda.Wildcard, twopda.Transition{Next: "numeral_dec_exp_start", Dir: twopda.Right, Op: twopda.Read})
	}

	// "." with nothing before it: at least one fractional digit required.
	for _, d := range digitSet.Bytes() {
		b.def.AddTransition("numeral_dec_dot_first", d, twopda.Wildcard, twopda.Transition{Next: "numeral_dec_frac", Dir: twopda.Right, Op: twopda.Read})
	}
	// no exit wired for non-digit here: a lone "." is not a numeral (FAIL by omission).

	b.exitToNumeralExit("numeral_dec_frac")
	for _, d := range digitSet.Bytes() {
		b.def.AddTransition("numeral_dec_frac", d, twopda.Wildcard, twopda.Transition{Next: "numeral_dec_frac", Dir: twopda.Right, Op: twopda.Read})
	}
	for _, c := range []byte("eE") {
		b.def.AddTransition("numeral_dec_frac", c, twopda.Wildcard, twopda.Transition{Next: "numeral_dec_exp_start", Dir: twopda.Right, Op: twopda.Read})
	}

	b.buildDecimalExponent("numeral_dec_exp_start", "numeral_dec_exp_sign", "numeral_dec_exp_digits")

	b.buildHexNumeral()
}

// buildDecimalExponent wires a decimal exponent suffix shared by both
// decimal and hex numerals (hex exponents are introduced by p/P but their
// digits are still decimal). startState is positioned right after the
// e/E or p/P marker; signState handles an optional leading '+'/'-'; the
// exponent requires at least one decimal digit, and rejects an empty
// exponent by installing no fallback transition on non-digit bytes from
// startState or signState.
func (b *Builder) buildDecimalExponent(startState, signState, digitsState string) {
	for _, c := range []byte("+-") {
		b.def.AddTransition(startState, c, twopda.Wildcard, twopda.Transition{Next: signState, Dir: twopda.Right, Op: twopda.Read})
	}
	for _, d := range digitSet.Bytes() {
		b.def.AddTransition(startState, d, twopda.Wildcard, twopda.Transition{Next: digitsState, Dir: twopda.Right, Op: twopda.Read})
		b.def.AddTransition(signState, d, twopda.Wildcard, twopda.Transition{Next: digitsState, Dir: twopda.Right, Op: twopda.Read})
	}

	b.exitToNumeralExit(digitsState)
	for _, d := range digitSet.Bytes() {
		b.def.AddTransition(digitsState, d, twopda.Wildcard, twopda.Transition{Next: digitsState, Dir: twopda.Right, Op: twopda.Read})
	}
}

func (b *Builder) buildHexNumeral() {
	for _, d := range hexSet.Bytes() {
		b.def.AddTransition("numeral_hex_start", d, twopda.Wildcard, twopda.Transition{Next: "numeral_hex_int", Dir: twopda.Right, Op: twopda.Read})
	}
	// bare "0x"/"0X" with no hex digits: rejected (no fallback wired).

	b.exitToNumeralExit("numeral_hex_int")
	for _, d := range hexSet.Bytes() {
		b.def.AddTransition("numeral_hex_int", d, twopda.Wildcard, twopda.Transition{Next: "numeral_hex_int", Dir: twopda.Right, Op: twopda.Read})
	}
	b.def.AddTransition("numeral_hex_int", '.', twopda.Wildcard, twopda.Transition{Next: "numeral_hex_frac", Dir: twopda.Right, Op: twopda.Read})
	for _, c := range []byte("pP") {
		b.def.AddTransition("numeral_hex_int", c, twopda.Wildcard, twopda.Transition{Next: "numeral_hex_exp_start", Dir: twopda.Right, Op: twopda.Read})
	}

	b.exitToNumeralExit("numeral_hex_frac")
	for _, d := range hexSet.Bytes() {
		b.def.AddTransition("numeral_hex_frac", d, twopda.Wildcard, twopda.Transition{Next: "numeral_hex_frac", Dir: twopda.Right, Op: twopda.Read})
	}
	for _, c := range []byte("pP") {
		b.def.AddTransition("numeral_hex_frac", c, twopda.Wildcard, twopda.Transition{Next: "numeral_hex_exp_start", Dir: twopda.Right, Op: twopda.Read})
	}

	b.buildDecimalExponent("numeral_hex_exp_start", "numeral_hex_exp_sign", "numeral_hex_exp_digits")
}
