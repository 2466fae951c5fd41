package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/praetorian-inc/minigrep/pkg/types"
)

// lineRange is an inclusive range of 0-based line indices.
type lineRange struct {
	first, last int
}

// lineIndex maps byte offsets to lines. A trailing newline does not start
// a new line.
type lineIndex struct {
	content []byte
	starts  []int
}

func newLineIndex(content []byte) *lineIndex {
	starts := []int{0}
	for i, c := range content {
		if c == '\n' && i+1 < len(content) {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{content: content, starts: starts}
}

func (x *lineIndex) count() int {
	return len(x.starts)
}

func (x *lineIndex) lineOf(offset int) int {
	return sort.Search(len(x.starts), func(i int) bool { return x.starts[i] > offset }) - 1
}

func (x *lineIndex) bounds(line int) (start, end int) {
	return types.LineBounds(x.content, x.starts[line])
}

// lines prints each line holding a match as "name:line:col: text", with
// context lines as "name-line- text" and "--" between separate groups.
// Without color a caret line marks the matched columns.
func (r *Renderer) lines(res *Result) error {
	if res.Matches.Empty() {
		return nil
	}

	idx := newLineIndex(res.Content)
	spans := make(map[int][]types.OffsetSpan)
	var ranges []lineRange

	for _, m := range res.Matches.Matches {
		span := m.Location.Offset
		first := idx.lineOf(span.Start)
		last := first
		if span.End > span.Start {
			last = idx.lineOf(span.End - 1)
		}

		for line := first; line <= last; line++ {
			ls, le := idx.bounds(line)
			clipped := types.OffsetSpan{Start: max(span.Start, ls), End: min(span.End, le)}
			spans[line] = append(spans[line], clipped)
		}

		rng := lineRange{
			first: max(0, first-r.contextLines),
			last:  min(idx.count()-1, last+r.contextLines),
		}
		if n := len(ranges); n > 0 && rng.first <= ranges[n-1].last+1 {
			ranges[n-1].last = max(ranges[n-1].last, rng.last)
			continue
		}
		ranges = append(ranges, rng)
	}

	var b strings.Builder
	for i, rng := range ranges {
		if i > 0 && r.contextLines > 0 {
			b.WriteString(r.styles.separator.Sprint("--"))
			b.WriteByte('\n')
		}
		for line := rng.first; line <= rng.last; line++ {
			r.writeLine(&b, res, idx, line, spans[line])
		}
	}

	_, err := fmt.Fprint(r.out, b.String())
	return err
}

func (r *Renderer) writeLine(b *strings.Builder, res *Result, idx *lineIndex, line int, spans []types.OffsetSpan) {
	ls, le := idx.bounds(line)

	var prefix string
	if len(spans) > 0 {
		col := spans[0].Start - ls + 1
		prefix = fmt.Sprintf("%s:%d:%d:", res.Name, line+1, col)
		b.WriteString(r.styles.name.Sprint(res.Name))
		b.WriteString(r.styles.separator.Sprint(":"))
		b.WriteString(r.styles.lineNo.Sprint(line + 1))
		b.WriteString(r.styles.separator.Sprint(":"))
		fmt.Fprintf(b, "%d", col)
		b.WriteString(r.styles.separator.Sprint(":"))
	} else {
		prefix = fmt.Sprintf("%s-%d-", res.Name, line+1)
		b.WriteString(r.styles.name.Sprint(res.Name))
		b.WriteString(r.styles.separator.Sprint("-"))
		b.WriteString(r.styles.lineNo.Sprint(line + 1))
		b.WriteString(r.styles.separator.Sprint("-"))
	}
	b.WriteByte(' ')

	text := res.Content[ls:le]
	col, pos := 0, 0
	for _, s := range spans {
		col = r.writeExpanded(b, text[pos:s.Start-ls], col, nil)
		col = r.writeExpanded(b, text[s.Start-ls:s.End-ls], col, r.styles.match)
		pos = s.End - ls
	}
	r.writeExpanded(b, text[pos:], col, nil)
	b.WriteByte('\n')

	if r.colored || len(spans) == 0 {
		return
	}

	b.WriteString(strings.Repeat(" ", types.DisplayWidth([]byte(prefix))+1))
	cur := 0
	for _, s := range spans {
		from := types.DisplayColumn(res.Content, s.Start, r.tabWidth)
		to := types.DisplayColumn(res.Content, s.End, r.tabWidth)
		b.WriteString(strings.Repeat(" ", max(0, from-cur)))
		b.WriteString(strings.Repeat("^", max(1, to-from)))
		cur = max(from, to)
	}
	b.WriteByte('\n')
}

// writeExpanded writes seg with tabs expanded to the renderer's tab stops
// and returns the display column after it.
func (r *Renderer) writeExpanded(b *strings.Builder, seg []byte, col int, c *color.Color) int {
	var out strings.Builder
	for _, ru := range string(seg) {
		if ru == '\t' {
			n := r.tabWidth - col%r.tabWidth
			out.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		out.WriteRune(ru)
		col += runewidth.RuneWidth(ru)
	}
	if c != nil {
		b.WriteString(c.Sprint(out.String()))
	} else {
		b.WriteString(out.String())
	}
	return col
}
