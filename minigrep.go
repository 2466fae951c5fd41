// Package minigrep finds every occurrence of a literal query in content.
//
// # Basic Usage
//
// Search a string or a file with a flag string as on the command line:
//
//	offsets, err := minigrep.Search("This is test data.\n", "is", "w")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(offsets) // [5]
//
// # Reusing a Query
//
// A Searcher compiles its query once and can scan any number of inputs,
// concurrently if needed:
//
//	searcher, err := minigrep.NewSearcher("TEST", minigrep.WithIgnoreCase())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	set, err := searcher.SearchFile("/path/to/notes.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range set.Matches {
//	    fmt.Printf("line %d, column %d\n", m.Location.Source.Start.Line, m.Location.Source.Start.Column)
//	}
package minigrep

import (
	"fmt"

	"github.com/praetorian-inc/minigrep/pkg/config"
	"github.com/praetorian-inc/minigrep/pkg/matcher"
	"github.com/praetorian-inc/minigrep/pkg/source"
	"github.com/praetorian-inc/minigrep/pkg/types"
)

// Re-export commonly used types for convenience.
type (
	// Options selects case-insensitive and whole-word matching.
	Options = config.Options

	// Match is a single occurrence of the query.
	Match = types.Match

	// MatchSet is the ordered result of one search.
	MatchSet = types.MatchSet

	// Location describes where a match was found within content.
	Location = types.Location

	// Snippet contains the matched text with surrounding context.
	Snippet = types.Snippet
)

// Re-export the sentinel errors callers are expected to test for.
var (
	ErrInvalidOption     = config.ErrInvalidOption
	ErrEmptyQuery        = config.ErrEmptyQuery
	ErrSourceUnavailable = config.ErrSourceUnavailable
	ErrPattern           = matcher.ErrPattern
)

// Searcher holds a compiled query.
type Searcher struct {
	pattern *matcher.Pattern
	options *Options
	config  *searcherConfig
}

type searcherConfig struct {
	options      Options
	contextLines int
	maxFileSize  int64
	pdf          bool
}

// Option configures a Searcher.
type Option func(*searcherConfig)

// WithIgnoreCase matches regardless of letter case.
func WithIgnoreCase() Option {
	return func(c *searcherConfig) {
		c.options.IgnoreCase = true
	}
}

// WithExactMatch only accepts whole-word occurrences.
func WithExactMatch() Option {
	return func(c *searcherConfig) {
		c.options.ExactMatch = true
	}
}

// WithOptions replaces the matching options with opts. A nil opts clears
// them.
func WithOptions(opts *Options) Option {
	return func(c *searcherConfig) {
		c.options = Options{}
		if opts != nil {
			c.options = *opts
		}
	}
}

// WithContextLines attaches n lines of context to every match snippet.
func WithContextLines(n int) Option {
	return func(c *searcherConfig) {
		c.contextLines = n
	}
}

// WithMaxFileSize limits how much SearchFile reads. Default is 10 MiB.
func WithMaxFileSize(n int64) Option {
	return func(c *searcherConfig) {
		c.maxFileSize = n
	}
}

// WithPDFText makes SearchFile search the text of .pdf files.
func WithPDFText() Option {
	return func(c *searcherConfig) {
		c.pdf = true
	}
}

// NewSearcher compiles query with the given options. The query is matched
// literally and must not be empty.
func NewSearcher(query string, opts ...Option) (*Searcher, error) {
	cfg := &searcherConfig{maxFileSize: source.DefaultMaxSize}
	for _, opt := range opts {
		opt(cfg)
	}

	var options *Options
	if cfg.options != (Options{}) {
		o := cfg.options
		options = &o
	}

	if query == "" {
		return nil, ErrEmptyQuery
	}
	p, err := matcher.Compile(query, options, matcher.WithContextLines(cfg.contextLines))
	if err != nil {
		return nil, fmt.Errorf("compiling query: %w", err)
	}

	return &Searcher{pattern: p, options: options, config: cfg}, nil
}

// Query returns the literal query.
func (s *Searcher) Query() string {
	return s.pattern.Query()
}

// SearchString searches content.
func (s *Searcher) SearchString(content string) (*MatchSet, error) {
	return s.pattern.Find([]byte(content))
}

// SearchBytes searches content.
func (s *Searcher) SearchBytes(content []byte) (*MatchSet, error) {
	return s.pattern.Find(content)
}

// SearchFile reads path once and searches it.
func (s *Searcher) SearchFile(path string) (*MatchSet, error) {
	loaderOpts := []source.Option{source.WithMaxSize(s.config.maxFileSize)}
	if s.config.pdf {
		loaderOpts = append(loaderOpts, source.WithDocumentText())
	}

	cfg, err := config.Build(s.options.String(), s.pattern.Query(), source.File(path, loaderOpts...))
	if err != nil {
		return nil, err
	}
	return s.pattern.Find(cfg.Content())
}

// Search returns the byte offsets of query in content. flags is a string
// of option characters ("i", "w", "iw" or ""), as on the command line.
func Search(content, query, flags string) ([]int, error) {
	opts, err := config.ParseOptions(flags)
	if err != nil {
		return nil, err
	}
	set, err := matcher.FindMatches([]byte(content), query, opts)
	if err != nil {
		return nil, err
	}
	return set.Offsets(), nil
}

// SearchFile returns the matches of query in the file at path.
func SearchFile(path, query, flags string) (*MatchSet, error) {
	cfg, err := config.Build(flags, query, source.File(path))
	if err != nil {
		return nil, err
	}
	return matcher.Search(cfg)
}
