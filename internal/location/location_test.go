package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate_FirstByte(t *testing.T) {
	pos := Locate([]byte("abc"), 0)
	assert.Equal(t, Position{Byte: 0, Line: 1, Col: 1}, pos)
}

func TestLocate_AfterNewline(t *testing.T) {
	src := []byte("ab\ncd")
	pos := Locate(src, 4)
	assert.Equal(t, Position{Byte: 4, Line: 2, Col: 2}, pos)
}

func TestLocate_ClampsPastEnd(t *testing.T) {
	src := []byte("ab")
	pos := Locate(src, 100)
	assert.Equal(t, 2, pos.Byte)
}

func TestPosition_String(t *testing.T) {
	pos := Position{Line: 3, Col: 7}
	assert.Equal(t, "3:7", pos.String())
}

func TestExcerpt_PointsAtColumn(t *testing.T) {
	src := []byte("local x = 1")
	pos := Locate(src, 6)
	line, caret := Excerpt(src, pos)
	assert.Equal(t, "local x = 1", line)
	assert.Equal(t, 6, len(caret)-1)
}

func TestRender_IncludesLineAndCaret(t *testing.T) {
	out := Render([]byte("local x = 1"), 6, "rejected", 80)
	assert.Contains(t, out, "rejected at 1:7")
	assert.Contains(t, out, "local x = 1")
}

func TestRender_EmptySourceOmitsExcerpt(t *testing.T) {
	out := Render([]byte(""), 0, "rejected", 80)
	assert.Equal(t, "rejected at 1:1", out)
}
