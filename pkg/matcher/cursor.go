package matcher

import "unicode/utf8"

// byteCursor converts the rune indices reported by regexp2 into byte
// offsets. Lookups must be non-decreasing; each call only decodes the runes
// between the previous position and the requested one, so a whole scan
// stays linear in the content length.
//
// Invalid UTF-8 decodes as one RuneError of width 1, which is how the
// string-to-[]rune conversion inside regexp2 counts it too.
type byteCursor struct {
	content []byte
	runes   int // rune index at pos
	pos     int // byte offset
}

func newByteCursor(content []byte) *byteCursor {
	return &byteCursor{content: content}
}

// offset returns the byte offset of rune index idx.
func (c *byteCursor) offset(idx int) int {
	for c.runes < idx && c.pos < len(c.content) {
		_, size := utf8.DecodeRune(c.content[c.pos:])
		c.pos += size
		c.runes++
	}
	return c.pos
}

// lineCursor tracks 1-based line and byte column for non-decreasing offsets,
// giving the same answer as types.ComputeLineColumn without rescanning.
type lineCursor struct {
	content   []byte
	pos       int
	line      int
	lineStart int
}

func newLineCursor(content []byte) *lineCursor {
	return &lineCursor{content: content, line: 1}
}

func (c *lineCursor) at(offset int) (line, column int) {
	for ; c.pos < offset && c.pos < len(c.content); c.pos++ {
		if c.content[c.pos] == '\n' {
			c.line++
			c.lineStart = c.pos + 1
		}
	}
	return c.line, c.pos - c.lineStart + 1
}
