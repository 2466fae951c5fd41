package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name  string
		flags string
		want  *Options
	}{
		{name: "empty means no options", flags: "", want: nil},
		{name: "ignore case", flags: "i", want: &Options{IgnoreCase: true}},
		{name: "exact match", flags: "w", want: &Options{ExactMatch: true}},
		{name: "both", flags: "iw", want: &Options{IgnoreCase: true, ExactMatch: true}},
		{name: "any order", flags: "wi", want: &Options{IgnoreCase: true, ExactMatch: true}},
		{name: "repeated flags are idempotent", flags: "iiwi", want: &Options{IgnoreCase: true, ExactMatch: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions(tt.flags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptions_InvalidOption(t *testing.T) {
	tests := []struct {
		flags string
		want  rune
	}{
		{flags: "vi", want: 'v'},
		{flags: "iwx", want: 'x'},
		{flags: "-i", want: '-'},
		{flags: "I", want: 'I'},
		{flags: "iç", want: 'ç'},
	}

	for _, tt := range tests {
		t.Run(tt.flags, func(t *testing.T) {
			got, err := ParseOptions(tt.flags)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrInvalidOption)

			var invalid *InvalidOptionError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.want, invalid.Char)
		})
	}
}

func TestInvalidOptionError_Message(t *testing.T) {
	err := &InvalidOptionError{Char: 'v'}
	assert.Equal(t, `invalid option 'v': allowed options are 'i' and 'w'`, err.Error())
}

func TestOptions_Has(t *testing.T) {
	var none *Options
	assert.False(t, none.Has(FlagIgnoreCase))
	assert.False(t, none.Has(FlagExactMatch))

	opts := &Options{IgnoreCase: true}
	assert.True(t, opts.Has(FlagIgnoreCase))
	assert.False(t, opts.Has(FlagExactMatch))
	assert.False(t, opts.Has(Flag('z')))
}

func TestOptions_String(t *testing.T) {
	var none *Options
	assert.Equal(t, "", none.String())
	assert.Equal(t, "", (&Options{}).String())
	assert.Equal(t, "w", (&Options{ExactMatch: true}).String())

	opts, err := ParseOptions("wiw")
	require.NoError(t, err)
	assert.Equal(t, "iw", opts.String())
}
