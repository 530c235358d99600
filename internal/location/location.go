// Package location turns a raw byte offset into a chunk into a
// human-readable line/column position and a caret-annotated source
// excerpt, for reporting where recognition failed.
package location

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"golang.org/x/text/width"
)

// Position is a 1-indexed line/column pair plus the raw byte offset it
// was derived from.
type Position struct {
	Byte int
	Line int
	Col  int
}

// String renders the position as "line:col".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Locate walks src up to byteOffset and returns the 1-indexed line and
// column (in runes, not bytes) that offset falls on. If byteOffset is
// past the end of src, the position of the final byte is returned, with
// Line/Col pointing one rune past the last one seen.
func Locate(src []byte, byteOffset int) Position {
	if byteOffset > len(src) {
		byteOffset = len(src)
	}
	line, col := 1, 1
	for i := 0; i < byteOffset; i++ {
		if src[i] == '\n' {
			line++
			col = 1
			continue
		}
		// count only the lead byte of each UTF-8 sequence as one column
		if src[i]&0xC0 != 0x80 {
			col++
		}
	}
	return Position{Byte: byteOffset, Line: line, Col: col}
}

// Excerpt returns the source line containing pos, along with a
// caret line pointing at pos's column. Wide runes (as classified by
// golang.org/x/text/width) advance the caret by two columns instead of
// one, so the caret still lines up visually under the offending rune.
func Excerpt(src []byte, pos Position) (line string, caret string) {
	lines := strings.Split(string(src), "\n")
	idx := pos.Line - 1
	if idx < 0 || idx >= len(lines) {
		return "", ""
	}
	line = lines[idx]

	caretCol := 0
	runes := []rune(line)
	for i, r := range runes {
		if i+1 >= pos.Col {
			break
		}
		if width.LookupRune(r).Kind() == width.EastAsianWide || width.LookupRune(r).Kind() == width.EastAsianFullwidth {
			caretCol += 2
		} else {
			caretCol++
		}
	}
	caret = strings.Repeat(" ", caretCol) + "^"
	return line, caret
}

// Render produces a multi-line, word-wrap-safe diagnostic of the form
// "<msg> at <pos>" followed by the offending source line and a caret
// line beneath it, wrapped to width columns wide.
func Render(src []byte, byteOffset int, msg string, wrapWidth int) string {
	pos := Locate(src, byteOffset)
	line, caret := Excerpt(src, pos)
	header := rosed.Edit(fmt.Sprintf("%s at %s", msg, pos)).Wrap(wrapWidth).String()
	if line == "" {
		return header
	}
	return header + "\n" + line + "\n" + caret
}
