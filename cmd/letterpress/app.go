// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"github.com/dhm116/letterpress/internal/config"
	"github.com/dhm116/letterpress/internal/lexicon"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: Cobra command handlers receive an App reference and reach
	// configuration, the word list and output streams only through it.
	App struct {
		Config  config.Provider
		Lexicon LexiconOpener
		// DotEnvPath is passed to config loading; "" disables .env support.
		DotEnvPath string
		logger     *log.Logger
		stdout     io.Writer
		stderr     io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp. Tests can supply their own
	// implementations to isolate specific behavior.
	Dependencies struct {
		Config     config.Provider
		Lexicon    LexiconOpener
		DotEnvPath *string
		Stdout     io.Writer
		Stderr     io.Writer
	}

	// LexiconOpener returns the word source for a configured dictionary path.
	LexiconOpener func(path string) lexicon.Source
)

// defaultDotEnvPath is the dotenv file read from the working directory.
const defaultDotEnvPath = ".env"

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Lexicon == nil {
		deps.Lexicon = func(path string) lexicon.Source {
			return lexicon.FileSource{Path: path}
		}
	}
	dotEnv := defaultDotEnvPath
	if deps.DotEnvPath != nil {
		dotEnv = *deps.DotEnvPath
	}

	return &App{
		Config:     deps.Config,
		Lexicon:    deps.Lexicon,
		DotEnvPath: dotEnv,
		logger:     newLogger(deps.Stderr),
		stdout:     deps.Stdout,
		stderr:     deps.Stderr,
	}
}

// newLogger builds the pipeline logger. Only warnings are shown until
// --verbose (or ui.verbose) lowers the level to debug.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "letterpress",
		Level:  log.WarnLevel,
	})
}

// setVerbose switches the logger between warning and debug level.
func (a *App) setVerbose(verbose bool) {
	if verbose {
		a.logger.SetLevel(log.DebugLevel)
		return
	}
	a.logger.SetLevel(log.WarnLevel)
}
