package luapda

// charset.go holds the byte-class constants used throughout the
// subsystem builders, mirroring the character classes llex.c uses
// (lislalnum, lisspace, lisdigit) but expressed as Go byte sets.

// ByteSet is a membership set over the 256 possible byte values.
type ByteSet [256]bool

// NewByteSet builds a ByteSet containing exactly the given bytes.
func NewByteSet(bs ...byte) ByteSet {
	var s ByteSet
	for _, b := range bs {
		s[b] = true
	}
	return s
}

// NewByteRange builds a ByteSet containing [lo, hi] inclusive.
func NewByteRange(lo, hi byte) ByteSet {
	var s ByteSet
	for b := int(lo); b <= int(hi); b++ {
		s[b] = true
	}
	return s
}

// Union returns a new ByteSet containing the members of both sets.
func (s ByteSet) Union(other ByteSet) ByteSet {
	var out ByteSet
	for i := range s {
		out[i] = s[i] || other[i]
	}
	return out
}

// Complement returns the set of all bytes not in s.
func (s ByteSet) Complement() ByteSet {
	var out ByteSet
	for i := range s {
		out[i] = !s[i]
	}
	return out
}

// Without returns a copy of s with the given bytes removed.
func (s ByteSet) Without(bs ...byte) ByteSet {
	out := s
	for _, b := range bs {
		out[b] = false
	}
	return out
}

// Bytes returns the members of s as a slice, in ascending order.
func (s ByteSet) Bytes() []byte {
	out := make([]byte, 0, 16)
	for i := 0; i < 256; i++ {
		if s[i] {
			out = append(out, byte(i))
		}
	}
	return out
}

// All is every one of the 256 possible byte values a real Lua source
// file can contain (long brackets and short strings may legally hold any
// byte, including what elsewhere would be a tempting sentinel choice).
// It is used when a transition applies regardless of the byte consumed:
// as a catch-all default before more specific transitions are layered on
// top by AddTransition ordering, or as a stay-transition keyed only on
// stack top. End-of-input is handled out of band by twopda's
// AddEOFTransition, never by reserving a byte value out of this set.
var All = NewByteRange(0, 0xFF)

var (
	digitSet     = NewByteRange('0', '9')
	lowerSet     = NewByteRange('a', 'z')
	upperSet     = NewByteRange('A', 'Z')
	letterSet    = lowerSet.Union(upperSet)
	underscore   = NewByteSet('_')
	nameStartSet = letterSet.Union(underscore)
	nameCont     = nameStartSet.Union(digitSet)
	notNameCont  = nameCont.Complement()

	spaceSet    = NewByteSet(' ', '\t', '\n', '\v', '\f', '\r')
	notSpaceSet = spaceSet.Complement()

	onlyHexSet = NewByteSet('a', 'b', 'c', 'd', 'e', 'f', 'A', 'B', 'C', 'D', 'E', 'F')
	hexSet     = digitSet.Union(onlyHexSet)
)

// Keywords is the fixed 22-element set of Lua 5.3 reserved words.
var Keywords = []string{
	"and", "break", "do", "else", "elseif", "end", "false", "for",
	"function", "goto", "if", "in", "local", "nil", "not", "or",
	"repeat", "return", "then", "true", "until", "while",
}
