package matcher

import (
	"bytes"

	"github.com/praetorian-inc/minigrep/pkg/types"
)

// ExtractSnippet returns the matched bytes with up to lines whole lines of
// context on each side. Before starts at the beginning of a line and After
// runs through the end of a line (newline included), so Before+Matching+After
// is one contiguous block of content. All three are copies, so keeping a
// snippet does not pin content in memory.
func ExtractSnippet(content []byte, span types.OffsetSpan, lines int) types.Snippet {
	if span.Start < 0 || span.End > len(content) || span.Start > span.End {
		return types.Snippet{}
	}

	snippet := types.Snippet{
		Matching: append([]byte{}, content[span.Start:span.End]...),
	}
	if lines <= 0 {
		return snippet
	}

	if b := content[contextStart(content, span.Start, lines):span.Start]; len(b) > 0 {
		snippet.Before = append([]byte{}, b...)
	}
	if a := content[span.End:contextEnd(content, span.End, lines)]; len(a) > 0 {
		snippet.After = append([]byte{}, a...)
	}
	return snippet
}

// contextStart walks back from start to the beginning of the line that lies
// lines lines above it.
func contextStart(content []byte, start, lines int) int {
	pos := bytes.LastIndexByte(content[:start], '\n') + 1
	for i := 0; i < lines && pos > 0; i++ {
		pos = bytes.LastIndexByte(content[:pos-1], '\n') + 1
	}
	return pos
}

// contextEnd walks forward from end past the newline of the line that lies
// lines lines below it.
func contextEnd(content []byte, end, lines int) int {
	pos := end
	for i := 0; i <= lines; i++ {
		nl := bytes.IndexByte(content[pos:], '\n')
		if nl < 0 {
			return len(content)
		}
		pos += nl + 1
	}
	return pos
}
