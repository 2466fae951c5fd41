package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArguments is returned when the query or the content source is missing.
	ErrMissingArguments = errors.New("missing arguments: expected [-flags] <query> <file>")

	// ErrUnexpectedArgument is returned for positional arguments beyond <query> <file>.
	ErrUnexpectedArgument = errors.New("unexpected argument")

	// ErrInvalidOption is matched by every InvalidOptionError.
	ErrInvalidOption = errors.New("invalid option")

	// ErrEmptyQuery is returned for a zero-length query.
	ErrEmptyQuery = errors.New("query must not be empty")

	// ErrSourceUnavailable is matched by every SourceUnavailableError.
	ErrSourceUnavailable = errors.New("content source unavailable")
)

// InvalidOptionError names the first unrecognized flag character.
type InvalidOptionError struct {
	Char rune
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %q: allowed options are 'i' and 'w'", e.Char)
}

// Is reports ErrInvalidOption as a match so callers need not care about the character.
func (e *InvalidOptionError) Is(target error) bool {
	return target == ErrInvalidOption
}

// SourceUnavailableError wraps the I/O failure that kept a source from being read.
type SourceUnavailableError struct {
	Name string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Name, e.Err)
}

func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}
