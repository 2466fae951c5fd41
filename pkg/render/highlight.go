package render

import "bytes"

// highlight prints the whole content with every match styled. Nothing is
// printed when there are no matches.
func (r *Renderer) highlight(res *Result) error {
	if res.Matches.Empty() {
		return nil
	}

	content := res.Content
	var b bytes.Buffer
	b.Grow(len(content))

	start := 0
	for _, m := range res.Matches.Matches {
		// the run is the matched span, which can differ from the query
		// length when case folding changes byte widths
		span := m.Location.Offset
		b.Write(content[start:span.Start])
		b.WriteString(r.styles.match.Sprint(string(content[span.Start:span.End])))
		start = span.End
	}
	b.Write(content[start:])

	_, err := r.out.Write(b.Bytes())
	return err
}
