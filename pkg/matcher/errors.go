package matcher

import (
	"errors"
	"fmt"
)

var (
	// ErrPattern is matched by every PatternError.
	ErrPattern = errors.New("invalid pattern")

	// ErrEmptyPattern is the cause reported when compiling an empty query.
	ErrEmptyPattern = errors.New("empty query matches everywhere")
)

// PatternError reports a query that could not be turned into a usable
// pattern, or a scan that the regex engine aborted.
type PatternError struct {
	Query string
	Expr  string
	Err   error
}

func (e *PatternError) Error() string {
	if e.Expr == "" {
		return fmt.Sprintf("pattern for query %q: %v", e.Query, e.Err)
	}
	return fmt.Sprintf("pattern %q for query %q: %v", e.Expr, e.Query, e.Err)
}

func (e *PatternError) Is(target error) bool {
	return target == ErrPattern
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
