// Package matcher finds every occurrence of a literal query in content.
//
// A query is always matched literally: regex metacharacters in it are
// escaped before compilation. Options select whole-word matching (the
// escaped query wrapped in \b anchors) and case-insensitive matching. The
// content is scanned once, left to right, and matches never overlap.
package matcher

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/praetorian-inc/minigrep/pkg/config"
	"github.com/praetorian-inc/minigrep/pkg/prefilter"
	"github.com/praetorian-inc/minigrep/pkg/types"
)

// DefaultTimeout bounds a single scan. Zero means no limit.
const DefaultTimeout time.Duration = 0

// wordBoundary is the anchor placed on both sides of an exact-match query.
const wordBoundary = `\b`

type settings struct {
	contextLines int
	timeout      time.Duration
	prefilter    bool
}

// Option configures compilation and scanning.
type Option func(*settings)

// WithContextLines attaches a snippet with n lines of context to every match.
func WithContextLines(n int) Option {
	return func(s *settings) {
		s.contextLines = n
	}
}

// WithTimeout bounds a single scan (0 = no limit).
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

// WithoutPrefilter always runs the regex engine, even when the query
// literal does not occur in the content.
func WithoutPrefilter() Option {
	return func(s *settings) {
		s.prefilter = false
	}
}

// Pattern is a compiled query. It is immutable and can scan any number of
// buffers.
type Pattern struct {
	query    string
	expr     string
	options  config.Options
	re       *regexp2.Regexp
	pf       *prefilter.Prefilter
	settings settings
}

// Expression builds the regular expression for query: the escaped literal,
// wrapped in word boundaries when exact matching is requested.
func Expression(query string, opts *config.Options) string {
	expr := escapeLiteral(query)
	if opts.Has(config.FlagExactMatch) {
		expr = wordBoundary + expr + wordBoundary
	}
	return expr
}

// metaChars are the characters regexp2 gives special meaning outside a class.
const metaChars = `\.+*?()|[]{}^$# `

// escapeLiteral backslash-escapes metacharacters and copies every other rune
// verbatim. regexp2.Escape rewrites non-printable runes as \u escapes that
// its own parser misreads outside U+1000..U+FFFF.
func escapeLiteral(query string) string {
	var b strings.Builder
	b.Grow(len(query) * 2)
	for _, r := range query {
		if strings.ContainsRune(metaChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Compile turns query and opts into a reusable Pattern. A nil opts behaves
// like the zero Options. An empty query is rejected with ErrEmptyPattern.
func Compile(query string, opts *config.Options, options ...Option) (*Pattern, error) {
	s := settings{timeout: DefaultTimeout, prefilter: true}
	for _, opt := range options {
		opt(&s)
	}

	if query == "" {
		return nil, &PatternError{Query: query, Err: ErrEmptyPattern}
	}

	expr := Expression(query, opts)
	flags := regexp2.RegexOptions(regexp2.RE2)
	if opts.Has(config.FlagIgnoreCase) {
		flags |= regexp2.IgnoreCase
	}

	re, err := regexp2.Compile(expr, flags)
	if err != nil {
		return nil, &PatternError{Query: query, Expr: expr, Err: err}
	}
	if s.timeout > 0 {
		re.MatchTimeout = s.timeout
	}

	p := &Pattern{
		query:    query,
		expr:     expr,
		re:       re,
		settings: s,
	}
	if opts != nil {
		p.options = *opts
	}
	// case-folded matches cannot be ruled out by a byte-exact literal search
	if s.prefilter && !p.options.IgnoreCase {
		p.pf = prefilter.New([]string{query})
	}

	slog.Debug("compiled pattern", "query", query, "expr", expr, "flags", p.options.String())
	return p, nil
}

// Query returns the literal query the pattern was compiled from.
func (p *Pattern) Query() string {
	return p.query
}

// String returns the regular expression the query compiled to.
func (p *Pattern) String() string {
	return p.expr
}

// Find scans content once and returns every non-overlapping match in order.
// Finding nothing is not an error.
func (p *Pattern) Find(content []byte) (*types.MatchSet, error) {
	set := &types.MatchSet{Query: p.query, Matches: []types.Match{}}
	if !p.pf.MayMatch(content) {
		slog.Debug("prefilter ruled out content", "query", p.query, "bytes", len(content))
		return set, nil
	}

	runes := newByteCursor(content)
	lines := newLineCursor(content)

	m, err := p.re.FindStringMatch(string(content))
	for ; m != nil && err == nil; m, err = p.re.FindNextMatch(m) {
		start := runes.offset(m.Index)
		end := runes.offset(m.Index + m.Length)
		set.Matches = append(set.Matches, p.newMatch(content, lines, start, end))
	}
	if err != nil {
		return nil, &PatternError{Query: p.query, Expr: p.expr, Err: fmt.Errorf("scan aborted: %w", err)}
	}

	slog.Debug("scan complete", "query", p.query, "matches", len(set.Matches))
	return set, nil
}

func (p *Pattern) newMatch(content []byte, lines *lineCursor, start, end int) types.Match {
	startLine, startCol := lines.at(start)
	endLine, endCol := lines.at(end)
	span := types.OffsetSpan{Start: start, End: end}

	return types.Match{
		Location: types.Location{
			Offset: span,
			Source: types.SourceSpan{
				Start: types.SourcePoint{Line: startLine, Column: startCol},
				End:   types.SourcePoint{Line: endLine, Column: endCol},
			},
		},
		Snippet: ExtractSnippet(content, span, p.settings.contextLines),
	}
}

// FindMatches compiles query and scans content with it. An empty query
// yields an empty MatchSet rather than a match at every position.
func FindMatches(content []byte, query string, opts *config.Options, options ...Option) (*types.MatchSet, error) {
	if query == "" {
		return &types.MatchSet{Matches: []types.Match{}}, nil
	}

	p, err := Compile(query, opts, options...)
	if err != nil {
		return nil, err
	}
	return p.Find(content)
}

// Search runs the query of cfg over the content cfg owns.
func Search(cfg *config.Config, options ...Option) (*types.MatchSet, error) {
	return FindMatches(cfg.Content(), cfg.Query(), cfg.Options(), options...)
}
