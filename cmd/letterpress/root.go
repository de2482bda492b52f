// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dhm116/letterpress/internal/board"
	"github.com/dhm116/letterpress/internal/config"
	"github.com/dhm116/letterpress/internal/issue"
	"github.com/dhm116/letterpress/internal/suggest"
	"github.com/dhm116/letterpress/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

type (
	// rootFlags holds the values bound to the root command's flags.
	rootFlags struct {
		configPath string
		dictionary string
		limit      int
		minLength  int
		details    bool
		verbose    bool
	}

	// runOptions is the resolved input of one suggestion run: configuration
	// merged with whatever flags the user set explicitly.
	runOptions struct {
		dictionary types.FilesystemPath
		minLength  config.MinWordLength
		limit      config.ResultLimit
		details    bool
		verbose    bool
		scheme     config.ColorScheme
	}
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := newRootCommand(app)

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitFailure))
	}
}

// newRootCommand creates the letterpress command tree bound to app.
func newRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "letterpress <board-letters> [preferred-letters]",
		Short: "Suggest playable words for a Letterpress board",
		Long: TitleStyle.Render("letterpress") + SubtitleStyle.Render(" - Suggest playable words for a Letterpress board") + `

Every word in the dictionary that can be spelled from the board letters is
printed, longest first. Each board letter can be used at most as many times
as it appears on the board. When preferred letters are given, words that use
more of them rank higher among words of the same length.

` + SubtitleStyle.Render("Examples:") + `
  letterpress abcdefghijklmnopqrstuvwxy         All playable words
  letterpress abcdefghijklmnopqrstuvwxy xyz     Favor words using x, y or z
  letterpress -n 10 --details qwertyuiopasdfg   Top 10 with lengths
  letterpress config show                       Show current configuration`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, app, flags, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/letterpress/config.cue)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log progress and the top words to stderr")

	f := rootCmd.Flags()
	f.StringVarP(&flags.dictionary, "dictionary", "d", "", "word list, one word per line (default \"wordsEn.txt\")")
	f.IntVarP(&flags.limit, "limit", "n", 0, "print at most this many words (0 prints all)")
	f.IntVar(&flags.minLength, "min-length", 1, "skip words shorter than this")
	f.BoolVar(&flags.details, "details", false, "print word length and preferred-letter count")

	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

func runSuggest(cmd *cobra.Command, app *App, flags *rootFlags, args []string) error {
	ctx := cmd.Context()

	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return app.usageError(missingBoardError(board.ErrNoBoardLetters))
	}

	loaded, err := app.loadConfig(ctx, flags.configPath)
	if err != nil {
		return err
	}

	opts, err := resolveRunOptions(cmd, flags, loaded.Config)
	if err != nil {
		return app.usageError(err)
	}

	app.setVerbose(opts.verbose)
	applyColorScheme(opts.scheme)
	if loaded.Path != "" {
		app.logger.Debug("Loaded configuration", "path", loaded.Path)
	}

	b, err := board.Parse(args[0])
	if err != nil {
		return app.usageError(missingBoardError(err))
	}
	var preferred board.LetterSet
	if len(args) > 1 {
		preferred = board.NewLetterSet(args[1])
	}

	app.logger.Debug("Loading dictionary", "path", opts.dictionary)
	words, err := app.Lexicon(string(opts.dictionary)).Words(ctx)
	if err != nil {
		app.renderIssue(err, opts.scheme)
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	result, err := suggest.New(app.logger).Suggest(ctx, words, suggest.Request{
		Board:     b,
		Preferred: preferred,
		MinLength: int(opts.minLength),
		Limit:     int(opts.limit),
	})
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	if opts.details {
		return renderDetails(app.stdout, result, b, preferred)
	}
	return renderWords(app.stdout, result)
}

// resolveRunOptions layers explicitly set flags over the loaded configuration.
func resolveRunOptions(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) (runOptions, error) {
	opts := runOptions{
		dictionary: cfg.Dictionary,
		minLength:  cfg.MinLength,
		limit:      cfg.Limit,
		details:    cfg.UI.Details,
		verbose:    cfg.UI.Verbose,
		scheme:     cfg.UI.ColorScheme,
	}

	changed := cmd.Flags().Changed
	if changed("dictionary") {
		opts.dictionary = types.FilesystemPath(flags.dictionary)
		if valid, errs := opts.dictionary.IsValid(); !valid {
			return runOptions{}, flagError("dictionary", errs)
		}
	}
	if changed("min-length") {
		opts.minLength = config.MinWordLength(flags.minLength)
		if valid, errs := opts.minLength.IsValid(); !valid {
			return runOptions{}, flagError("min-length", errs)
		}
	}
	if changed("limit") {
		opts.limit = config.ResultLimit(flags.limit)
		if valid, errs := opts.limit.IsValid(); !valid {
			return runOptions{}, flagError("limit", errs)
		}
	}
	if changed("details") {
		opts.details = flags.details
	}
	if changed("verbose") {
		opts.verbose = flags.verbose
	}

	return opts, nil
}

func flagError(name string, errs []error) error {
	return issue.NewErrorContext().
		WithOperation("parse flags").
		WithResource("--" + name).
		WithSuggestion("Run 'letterpress --help' for accepted values").
		Wrap(errors.Join(errs...)).
		BuildError()
}

func missingBoardError(err error) error {
	return issue.NewErrorContext().
		WithOperation("read board").
		WithIssue(issue.BoardLettersMissingId).
		WithSuggestion("Pass the board letters as the first argument, e.g. 'letterpress abcdefghijklmnopqrstuvwxy'").
		Wrap(err).
		BuildError()
}

// usageError reports err with the usage exit code.
func (a *App) usageError(err error) error {
	a.renderIssue(err, config.ColorSchemeAuto)
	return &ExitError{Code: types.ExitUsage, Err: err}
}

// renderIssue prints the suggestions and the catalog entry attached to err,
// if any, to stderr. The error line itself is printed by fang.
func (a *App) renderIssue(err error, scheme config.ColorScheme) {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		a.logger.Debug(ae.Format(true))
		if ae.HasSuggestions() {
			for _, s := range ae.Suggestions {
				fmt.Fprintln(a.stderr, SubtitleStyle.Render("  • "+s))
			}
			fmt.Fprintln(a.stderr)
		}
	}

	id := issue.IDOf(err)
	if id == 0 {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, renderErr := entry.Render(scheme.GlamourStyle())
	if renderErr != nil {
		a.logger.Debug("Failed to render issue", "id", id, "error", renderErr)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}
