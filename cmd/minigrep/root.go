package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/praetorian-inc/minigrep/internal/logger"
	"github.com/praetorian-inc/minigrep/pkg/config"
	"github.com/praetorian-inc/minigrep/pkg/matcher"
	"github.com/praetorian-inc/minigrep/pkg/render"
	"github.com/praetorian-inc/minigrep/pkg/source"
	"github.com/spf13/cobra"
)

// searchFlags holds the values bound to the root command's flags.
type searchFlags struct {
	ignoreCase   bool
	word         bool
	format       string
	color        string
	contextLines int
	maxFileSize  int64
	pdf          bool
	configPath   string
	timeout      time.Duration
	tabWidth     int
	logFile      string
	verbose      bool
	quiet        bool
}

func newRootCmd() *cobra.Command {
	f := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "minigrep [flags] [-iw] <query> <file|->",
		Short: "Search a file for every occurrence of a literal query",
		Long: `minigrep reports every place a query string occurs in one file.

The query is always matched literally. -i ignores letter case and -w only
accepts whole-word occurrences; the two combine as -iw. Use - as the file
to read standard input.

Defaults for every flag can be set in $XDG_CONFIG_HOME/minigrep/config.yaml
(or config.toml).`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, f, args)
		},
	}

	cmd.Flags().BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "Ignore letter case when matching")
	cmd.Flags().BoolVarP(&f.word, "word", "w", false, "Match whole words only")
	cmd.Flags().StringVar(&f.format, "format", "highlight", "Output format: highlight, lines, count, json, sarif")
	cmd.Flags().StringVar(&f.color, "color", "auto", "Color output: auto, always, never")
	cmd.Flags().IntVarP(&f.contextLines, "context", "C", 0, "Lines of context around matches (lines format)")
	cmd.Flags().Int64Var(&f.maxFileSize, "max-file-size", source.DefaultMaxSize, "Maximum content size to read (bytes)")
	cmd.Flags().BoolVar(&f.pdf, "pdf", false, "Search the text of .pdf files instead of their raw bytes")
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to a settings file (default: XDG config directory)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Abort a scan that runs longer than this (0 = no limit)")
	cmd.Flags().IntVar(&f.tabWidth, "tab-width", config.DefaultTabWidth, "Tab stop width for the lines format")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "Append log output to this file instead of stderr")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "Verbose output")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// an unknown flag letter is an invalid option, same as a bad -flags token
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrInvalidOption, err)
	})

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// resolveSettings layers the command-line flags the user set over the
// settings file, which is itself layered over the defaults.
func resolveSettings(cmd *cobra.Command, f *searchFlags) (*config.Settings, error) {
	path := f.configPath
	if path == "" {
		path = config.FindSettings()
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		settings.Format = f.format
	}
	if flags.Changed("color") {
		settings.Color = f.color
	}
	if flags.Changed("context") {
		settings.ContextLines = f.contextLines
	}
	if flags.Changed("max-file-size") {
		settings.MaxFileSize = f.maxFileSize
	}
	if flags.Changed("pdf") {
		settings.PDF = f.pdf
	}
	if flags.Changed("timeout") {
		settings.Timeout = f.timeout
	}
	if flags.Changed("tab-width") {
		settings.TabWidth = f.tabWidth
	}
	if flags.Changed("log-file") {
		settings.LogFile = f.logFile
	}
	switch {
	case f.verbose:
		settings.LogLevel = "debug"
	case f.quiet:
		settings.LogLevel = "error"
	}

	if !logger.ValidLevel(settings.LogLevel) {
		return nil, fmt.Errorf("unknown log level %q", settings.LogLevel)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// flagString collects the option letters from the settings file, the -i
// and -w switches, and a positional flag token.
func flagString(settings *config.Settings, f *searchFlags, positional string) string {
	flags := settings.Flags
	if f.ignoreCase {
		flags += string(config.FlagIgnoreCase)
	}
	if f.word {
		flags += string(config.FlagExactMatch)
	}
	return flags + positional
}

func runSearch(cmd *cobra.Command, f *searchFlags, args []string) error {
	settings, err := resolveSettings(cmd, f)
	if err != nil {
		return err
	}
	if settings.LogFile != "" {
		logFile, err := logger.InitFile(settings.LogFile, settings.LogLevel)
		if err != nil {
			return err
		}
		defer logFile.Close()
	} else {
		logger.Init(cmd.ErrOrStderr(), settings.LogLevel)
	}

	format, err := render.ParseFormat(settings.Format)
	if err != nil {
		return err
	}
	colorMode, err := render.ParseColorMode(settings.Color)
	if err != nil {
		return err
	}

	inv, err := config.CollectArgs(args)
	if err != nil {
		return err
	}

	loaderOpts := []source.Option{source.WithMaxSize(settings.MaxFileSize)}
	if settings.PDF {
		loaderOpts = append(loaderOpts, source.WithDocumentText())
	}
	loader := source.Open(inv.Source, cmd.InOrStdin(), loaderOpts...)

	cfg, err := config.Build(flagString(settings, f, inv.Flags), inv.Query, loader)
	if err != nil {
		return err
	}

	set, err := matcher.Search(cfg, matcher.WithTimeout(settings.Timeout))
	if err != nil {
		return err
	}
	slog.Info("search complete", "source", cfg.Name(), "query", cfg.Query(), "matches", set.Len())

	out := cmd.OutOrStdout()
	r := render.New(out, format,
		render.WithColor(colorMode.Enabled(out)),
		render.WithContextLines(settings.ContextLines),
		render.WithTabWidth(settings.TabWidth),
	)
	return r.Render(render.NewResult(cfg, set))
}
