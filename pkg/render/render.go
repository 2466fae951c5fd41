// Package render prints the result of a search in one of several formats.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/praetorian-inc/minigrep/pkg/config"
	"github.com/praetorian-inc/minigrep/pkg/types"
	"golang.org/x/term"
)

// Format selects how a Result is printed.
type Format string

const (
	// FormatHighlight prints the whole content with every match highlighted.
	FormatHighlight Format = "highlight"
	// FormatLines prints each matching line, grep style.
	FormatLines Format = "lines"
	// FormatCount prints the number of matches.
	FormatCount Format = "count"
	// FormatJSON prints offsets and positions as JSON.
	FormatJSON Format = "json"
	// FormatSARIF prints a SARIF 2.1.0 log.
	FormatSARIF Format = "sarif"
)

// Formats lists every supported format.
var Formats = []Format{FormatHighlight, FormatLines, FormatCount, FormatJSON, FormatSARIF}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want highlight, lines, count, json or sarif)", s)
}

// ColorMode is the --color setting.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

// Enabled resolves the mode for out. Auto colors only terminals, and
// never when NO_COLOR is set.
func (m ColorMode) Enabled(out io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// styles holds the color formatters for every format
type styles struct {
	match     *color.Color
	name      *color.Color
	lineNo    *color.Color
	separator *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		match:     color.New(color.Bold, color.FgGreen),
		name:      color.New(color.FgMagenta),
		lineNo:    color.New(color.FgGreen),
		separator: color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{s.match, s.name, s.lineNo, s.separator} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Result is everything a renderer needs to print one search.
type Result struct {
	Name    string
	Options *config.Options
	Content []byte
	Matches *types.MatchSet
}

// NewResult pairs a configuration with the matches found in its content.
func NewResult(cfg *config.Config, set *types.MatchSet) *Result {
	return &Result{
		Name:    cfg.Name(),
		Options: cfg.Options(),
		Content: cfg.Content(),
		Matches: set,
	}
}

// DefaultTabWidth is the tab stop used when lining up carets.
const DefaultTabWidth = config.DefaultTabWidth

// Renderer writes results to an output stream.
type Renderer struct {
	out          io.Writer
	format       Format
	colored      bool
	styles       *styles
	contextLines int
	tabWidth     int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor turns ANSI styling on or off.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.colored = enabled
	}
}

// WithContextLines prints n lines around each match in the lines format.
func WithContextLines(n int) Option {
	return func(r *Renderer) {
		r.contextLines = n
	}
}

// WithTabWidth sets the tab stop for the lines format.
func WithTabWidth(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.tabWidth = n
		}
	}
}

// New creates a renderer. Color is off unless WithColor enables it.
func New(out io.Writer, format Format, opts ...Option) *Renderer {
	r := &Renderer{
		out:      out,
		format:   format,
		tabWidth: DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.contextLines < 0 {
		r.contextLines = 0
	}
	r.styles = newStyles(r.colored)
	return r
}

// Render prints res in the renderer's format.
func (r *Renderer) Render(res *Result) error {
	switch r.format {
	case FormatHighlight:
		return r.highlight(res)
	case FormatLines:
		return r.lines(res)
	case FormatCount:
		_, err := fmt.Fprintln(r.out, res.Matches.Len())
		return err
	case FormatJSON:
		return r.writeJSON(res)
	case FormatSARIF:
		return r.writeSARIF(res)
	}
	return fmt.Errorf("unknown output format %q", r.format)
}
