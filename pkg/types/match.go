package types

// Match is a single occurrence of the query in the searched content.
type Match struct {
	Location Location `json:"location"`
	Snippet  Snippet  `json:"-"`
}

// Offset returns the byte offset where the match begins.
func (m Match) Offset() int {
	return m.Location.Offset.Start
}

// MatchSet is the ordered result of one scan: matches appear in the order
// they were found, so offsets are strictly ascending and never overlap.
type MatchSet struct {
	Query   string  `json:"query"`
	Matches []Match `json:"matches"`
}

// Offsets returns the starting byte offset of every match.
func (s *MatchSet) Offsets() []int {
	if s == nil {
		return []int{}
	}
	offsets := make([]int, 0, len(s.Matches))
	for _, m := range s.Matches {
		offsets = append(offsets, m.Offset())
	}
	return offsets
}

// Len returns the number of matches.
func (s *MatchSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Matches)
}

// Empty reports whether the scan found nothing.
func (s *MatchSet) Empty() bool {
	return s.Len() == 0
}
