package luapda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stevenskevin/lua-2pda/internal/twopda"
)

func TestParse_EmptyChunkAccepts(t *testing.T) {
	err := Parse([]byte(""), twopda.DebugSilent, nil)
	assert.NoError(t, err)
}

func TestParse_WhitespaceOnlyChunkAccepts(t *testing.T) {
	err := Parse([]byte("  \n\t\n"), twopda.DebugSilent, nil)
	assert.NoError(t, err)
}

func TestParse_LocalAssignmentAccepts(t *testing.T) {
	err := Parse([]byte("local x = 1\n"), twopda.DebugSilent, nil)
	assert.NoError(t, err)
}

func TestParse_UnterminatedStringRejects(t *testing.T) {
	err := Parse([]byte("local x = \"unterminated\n"), twopda.DebugSilent, nil)
	assert.Error(t, err)
}

func TestParse_ShebangLineIsSkipped(t *testing.T) {
	err := Parse([]byte("#!/usr/bin/env lua\nlocal x = 1\n"), twopda.DebugSilent, nil)
	assert.NoError(t, err)
}

func TestParse_LoneHashOutsideShebangRejects(t *testing.T) {
	// '#' only has meaning as a shebang marker at byte offset 0; as the
	// first byte of a statement it is not a valid start of any Lua
	// construct.
	err := Parse([]byte("x = 1\n#comment\n"), twopda.DebugSilent, nil)
	assert.Error(t, err)
}

func TestParse_GarbageRejects(t *testing.T) {
	err := Parse([]byte("@@@not lua@@@"), twopda.DebugSilent, nil)
	assert.Error(t, err)
}

func TestParse_ReturnStatementAccepts(t *testing.T) {
	err := Parse([]byte("return 1\n"), twopda.DebugSilent, nil)
	assert.NoError(t, err)
}

func TestDefinition_IsMemoized(t *testing.T) {
	d1 := Definition()
	d2 := Definition()
	assert.Same(t, d1, d2)
}

func TestDefinition_HasTransitions(t *testing.T) {
	stats := Definition().Stats()
	assert.Greater(t, stats.States, 0)
	assert.Greater(t, stats.Transitions, 0)
}

func TestParse_TestableScenarios(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		ok    bool
	}{
		// 1. empty block
		{"empty do-end block", "do end", true},

		// 2. name must not start with a digit
		{"assignment to plain name", "a = 1;", true},
		{"assignment to digit-led name fails", "123abc = 1;", false},

		// 3. numeric for requires start, stop, and optional step
		{"numeric for with explicit step", "for a = 1, 10, 2 do end", true},
		{"numeric for missing stop fails", "for a = 1 do end", false},

		// 4. return must be the last statement of its block
		{"return followed by end inside nested function", "function x() return nil end do end", true},
		{"return not immediately followed by block end fails", "return nil end end", false},

		// 5. long-bracket close must repeat the opening level exactly
		{"long comment with matching level zero", "--[[multiline\rcomment\n]not yet]]", true},
		{"long comment with mismatched level fails", "--[=[...]]", false},

		// 6. numeral forms, including hex floats with binary exponents
		{"hex float with binary exponent", "a = 0xFFp-2", true},
		{"hex numeral missing digits fails", "a = 0x", false},
		{"decimal numeral with dangling exponent fails", "a = 12e", false},
		{"lone decimal point is not a numeral", "a = .", false},

		// 7. a colon call is a statement, not an assignment target
		{"method-call syntax as assignment target fails", "a:b = 1", false},
		{"method call as a statement", "a:b()", true},

		// 8. "and" the keyword vs. "andz" the identifier
		{"and keyword joining two expressions", "local a = 5 and z", true},
		{"andz is a name, not the and keyword", "local a = 5 andz(nil,nil)", true},
		{"and keyword with no right operand fails", "local a = 5 and", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Parse([]byte(tc.input), twopda.DebugSilent, nil)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
