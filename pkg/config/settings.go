package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/praetorian-inc/minigrep/pkg/source"
	"gopkg.in/yaml.v3"
)

// settingsFiles are looked up, in order, under the XDG config directories.
var settingsFiles = []string{
	"minigrep/config.yaml",
	"minigrep/config.yml",
	"minigrep/config.toml",
}

// Settings are user defaults read from a config file. Command-line flags
// override them.
type Settings struct {
	Flags        string `yaml:"flags" toml:"flags"`
	Format       string `yaml:"format" toml:"format"`
	Color        string `yaml:"color" toml:"color"`
	ContextLines int    `yaml:"context_lines" toml:"context_lines"`
	MaxFileSize  int64  `yaml:"max_file_size" toml:"max_file_size"`
	PDF          bool   `yaml:"pdf" toml:"pdf"`
	LogLevel     string `yaml:"log_level" toml:"log_level"`
	LogFile      string `yaml:"log_file" toml:"log_file"`

	// Timeout bounds one scan; zero means no limit.
	Timeout  time.Duration `yaml:"timeout" toml:"timeout"`
	TabWidth int           `yaml:"tab_width" toml:"tab_width"`
}

// DefaultTabWidth is the tab stop used when lining up output columns.
const DefaultTabWidth = 4

// DefaultSettings returns the built-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Flags:        "",
		Format:       "highlight",
		Color:        "auto",
		ContextLines: 0,
		MaxFileSize:  source.DefaultMaxSize,
		PDF:          false,
		LogLevel:     "warn",
		TabWidth:     DefaultTabWidth,
	}
}

// FindSettings returns the first settings file found in the XDG config
// directories, or "" when there is none.
func FindSettings() string {
	for _, rel := range settingsFiles {
		if path, err := xdg.SearchConfigFile(rel); err == nil {
			return path
		}
	}
	return ""
}

// LoadSettings reads path over the defaults. A missing file is not an
// error. The format is chosen by extension: .yaml/.yml or .toml.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil // no config file, return defaults
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse YAML settings %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to decode TOML settings %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported settings format %q (want .yaml, .yml or .toml)", ext)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return settings, nil
}

// Validate checks the values that can be checked without the renderer.
func (s *Settings) Validate() error {
	if _, err := ParseOptions(s.Flags); err != nil {
		return err
	}
	switch s.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", s.Color)
	}
	if s.ContextLines < 0 {
		return fmt.Errorf("context_lines must not be negative, got %d", s.ContextLines)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", s.Timeout)
	}
	if s.TabWidth < 1 {
		return fmt.Errorf("tab_width must be at least 1, got %d", s.TabWidth)
	}
	if s.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must not be negative, got %d", s.MaxFileSize)
	}
	return nil
}
