// Package config turns validated command-line input into an immutable
// search configuration: the query, the matching options and the content
// that will be searched.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/praetorian-inc/minigrep/pkg/source"
)

// Config is the validated input for one search. It is never mutated after Build.
type Config struct {
	query   string
	options *Options
	name    string
	content []byte
}

// Build validates flags and query, then reads the content source once.
// Flags are checked before any I/O happens.
func Build(flags, query string, src source.Loader) (*Config, error) {
	opts, err := ParseOptions(flags)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrMissingArguments
	}
	if query == "" {
		return nil, ErrEmptyQuery
	}

	content, err := src.Load()
	if err != nil {
		return nil, &SourceUnavailableError{Name: src.Name(), Err: err}
	}

	slog.Debug("config built", "query", query, "flags", opts.String(), "source", src.Name(), "bytes", len(content))
	return &Config{
		query:   query,
		options: opts,
		name:    src.Name(),
		content: content,
	}, nil
}

// Query returns the literal text to search for.
func (c *Config) Query() string {
	return c.query
}

// Options returns a copy of the options, or nil when none were requested.
func (c *Config) Options() *Options {
	if c.options == nil {
		return nil
	}
	opts := *c.options
	return &opts
}

// Name identifies the content source.
func (c *Config) Name() string {
	return c.name
}

// Content returns the buffer read at build time. Callers must not modify it.
func (c *Config) Content() []byte {
	return c.content
}

// Invocation is the explicit shape of the positional command-line input.
type Invocation struct {
	Flags  string // option characters with the marker stripped
	Query  string
	Source string
}

// CollectArgs maps positional arguments of the form [-flags] <query> <source>
// onto an Invocation. The flag token's "-" marker is stripped here; the
// remaining characters are validated later by ParseOptions.
func CollectArgs(args []string) (Invocation, error) {
	if len(args) < 2 {
		return Invocation{}, ErrMissingArguments
	}

	var inv Invocation
	if len(args) > 2 {
		if !strings.HasPrefix(args[0], "-") {
			return Invocation{}, fmt.Errorf("%w %q: options must start with '-'", ErrUnexpectedArgument, args[0])
		}
		inv.Flags = strings.TrimPrefix(args[0], "-")
		args = args[1:]
	}
	if len(args) > 2 {
		return Invocation{}, fmt.Errorf("%w %q", ErrUnexpectedArgument, args[2])
	}

	inv.Query = args[0]
	inv.Source = args[1]
	return inv, nil
}
