// Package prefilter answers "can this content possibly match?" with a
// single Aho-Corasick pass over literal keywords, before the regex engine
// converts and scans the content.
package prefilter

import (
	"github.com/cloudflare/ahocorasick"
)

// Prefilter uses Aho-Corasick for efficient keyword matching.
type Prefilter struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

// New creates a prefilter from literal keywords. Empty and duplicate
// keywords are ignored.
func New(keywords []string) *Prefilter {
	pf := &Prefilter{}

	seen := make(map[string]bool)
	for _, keyword := range keywords {
		if keyword == "" || seen[keyword] {
			continue
		}
		seen[keyword] = true
		pf.keywords = append(pf.keywords, keyword)
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}

	return pf
}

// MayMatch reports whether any keyword occurs in content. A prefilter
// without keywords cannot rule anything out and always returns true.
func (pf *Prefilter) MayMatch(content []byte) bool {
	if pf == nil || pf.matcher == nil {
		return true
	}
	return pf.matcher.Contains(content)
}
