package types

import (
	"bytes"

	"github.com/mattn/go-runewidth"
)

// ComputeLineColumn computes line and column numbers from a byte offset in content.
// Lines and columns are 1-indexed (first line is 1, first column is 1).
func ComputeLineColumn(content []byte, byteOffset int) (line, column int) {
	line = 1
	column = 1
	for i := 0; i < byteOffset && i < len(content); i++ {
		if content[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// LineBounds returns the byte range [start, end) of the line containing
// byteOffset, excluding the trailing newline.
func LineBounds(content []byte, byteOffset int) (start, end int) {
	if byteOffset > len(content) {
		byteOffset = len(content)
	}
	if byteOffset < 0 {
		byteOffset = 0
	}
	start = bytes.LastIndexByte(content[:byteOffset], '\n') + 1
	end = len(content)
	if i := bytes.IndexByte(content[byteOffset:], '\n'); i >= 0 {
		end = byteOffset + i
	}
	return start, end
}

// DisplayColumn returns the 0-based terminal cell position of byteOffset
// within its line. Wide runes (CJK, emoji) count as two cells and tabs
// advance to the next multiple of tabWidth.
func DisplayColumn(content []byte, byteOffset int, tabWidth int) int {
	start, _ := LineBounds(content, byteOffset)
	if byteOffset > len(content) {
		byteOffset = len(content)
	}
	cells := 0
	for _, r := range string(content[start:byteOffset]) {
		if r == '\t' && tabWidth > 0 {
			cells += tabWidth - cells%tabWidth
			continue
		}
		cells += runewidth.RuneWidth(r)
	}
	return cells
}

// DisplayWidth returns the number of terminal cells needed to print b.
func DisplayWidth(b []byte) int {
	return runewidth.StringWidth(string(b))
}
