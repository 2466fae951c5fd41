package matcher

import (
	"testing"

	"github.com/praetorian-inc/minigrep/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestByteCursor(t *testing.T) {
	content := []byte("a日\xffb")
	c := newByteCursor(content)

	assert.Equal(t, 0, c.offset(0))
	assert.Equal(t, 1, c.offset(1))
	assert.Equal(t, 4, c.offset(2))
	assert.Equal(t, 5, c.offset(3))
	assert.Equal(t, 6, c.offset(4))
	// past the end clamps to the content length
	assert.Equal(t, 6, c.offset(10))
}

func TestLineCursor_AgreesWithComputeLineColumn(t *testing.T) {
	content := []byte("ab\n\ncd\nef")
	c := newLineCursor(content)

	for off := 0; off <= len(content); off++ {
		line, col := c.at(off)
		wantLine, wantCol := types.ComputeLineColumn(content, off)
		assert.Equal(t, wantLine, line, "line at %d", off)
		assert.Equal(t, wantCol, col, "column at %d", off)
	}
}
