package config

import "strings"

// Flag is one recognized option character.
type Flag rune

const (
	// FlagIgnoreCase makes matching ignore letter case.
	FlagIgnoreCase Flag = 'i'

	// FlagExactMatch restricts matches to whole words.
	FlagExactMatch Flag = 'w'
)

// Flags lists every recognized flag in canonical order.
var Flags = []Flag{FlagIgnoreCase, FlagExactMatch}

// Options holds the matching switches. A nil *Options means no options
// were requested and behaves exactly like the zero value.
type Options struct {
	IgnoreCase bool `json:"ignore_case" yaml:"ignore_case"`
	ExactMatch bool `json:"exact_match" yaml:"exact_match"`
}

// ParseOptions validates a flag string (without its leading marker) and
// builds the Options it describes. An empty string yields nil, nil.
// Flags may repeat and appear in any order.
func ParseOptions(flags string) (*Options, error) {
	if flags == "" {
		return nil, nil
	}

	opts := &Options{}
	for _, ch := range flags {
		if err := opts.set(Flag(ch)); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

func (o *Options) set(f Flag) error {
	switch f {
	case FlagIgnoreCase:
		o.IgnoreCase = true
	case FlagExactMatch:
		o.ExactMatch = true
	default:
		return &InvalidOptionError{Char: rune(f)}
	}
	return nil
}

// Has reports whether f is enabled. It is safe to call on a nil receiver.
func (o *Options) Has(f Flag) bool {
	if o == nil {
		return false
	}
	switch f {
	case FlagIgnoreCase:
		return o.IgnoreCase
	case FlagExactMatch:
		return o.ExactMatch
	}
	return false
}

// String renders the enabled flags in canonical order, e.g. "iw".
func (o *Options) String() string {
	var b strings.Builder
	for _, f := range Flags {
		if o.Has(f) {
			b.WriteRune(rune(f))
		}
	}
	return b.String()
}
