// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dhm116/letterpress/internal/board"
	"github.com/dhm116/letterpress/internal/config"
	"github.com/dhm116/letterpress/internal/issue"
	"github.com/dhm116/letterpress/internal/lexicon"
	"github.com/dhm116/letterpress/pkg/types"
)

type (
	stubProvider struct {
		cfg  *config.Config
		path string
		err  error
		opts []config.LoadOptions
	}

	cliRun struct {
		stdout string
		stderr string
		err    error
		// dictionary records the path the lexicon opener was called with.
		dictionary string
	}

	failingSource struct{ err error }
)

func (p *stubProvider) Load(_ context.Context, opts config.LoadOptions) (config.Loaded, error) {
	p.opts = append(p.opts, opts)
	if p.err != nil {
		return config.Loaded{}, p.err
	}
	cfg := config.DefaultConfig()
	if p.cfg != nil {
		copied := *p.cfg
		cfg = &copied
	}
	return config.Loaded{Config: cfg, Path: p.path}, nil
}

func (s failingSource) Words(context.Context) ([]string, error) { return nil, s.err }

// runCLI executes the command tree in-process against a static word list.
func runCLI(t *testing.T, provider config.Provider, words []string, args ...string) cliRun {
	t.Helper()

	var stdout, stderr bytes.Buffer
	var run cliRun
	noDotEnv := ""

	app := NewApp(Dependencies{
		Config: provider,
		Lexicon: func(path string) lexicon.Source {
			run.dictionary = path
			return lexicon.StaticSource(words)
		},
		DotEnvPath: &noDotEnv,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	root := newRootCommand(app)
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	run.err = root.ExecuteContext(context.Background())
	run.stdout = stdout.String()
	run.stderr = stderr.String()
	return run
}

func exitCode(t *testing.T, err error) types.ExitCode {
	t.Helper()

	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error %v (%T) is not an *ExitError", err, err)
	}
	return exitErr.Code
}

func TestRoot_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words []string
		args  []string
		want  string
	}{
		{
			name:  "longest first then dictionary order",
			words: []string{"cat", "at", "act", "dog", "ca"},
			args:  []string{"cat"},
			want:  "cat\nact\nat\nca\n",
		},
		{
			name:  "preferred tie keeps dictionary order",
			words: []string{"cat", "act"},
			args:  []string{"cat", "t"},
			want:  "cat\nact\n",
		},
		{
			name:  "nothing formable prints nothing",
			words: []string{"cat"},
			args:  []string{"xyz"},
			want:  "",
		},
		{
			name:  "limit truncates",
			words: []string{"cat", "at", "act", "dog", "ca"},
			args:  []string{"-n", "2", "cat"},
			want:  "cat\nact\n",
		},
		{
			name:  "min length drops short words",
			words: []string{"a", "at", "cat"},
			args:  []string{"--min-length", "2", "cat"},
			want:  "cat\nat\n",
		},
		{
			name:  "board is case-insensitive",
			words: []string{"Cat", "tac"},
			args:  []string{"TCA"},
			want:  "Cat\ntac\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			run := runCLI(t, &stubProvider{}, tt.words, tt.args...)
			if run.err != nil {
				t.Fatalf("unexpected error: %v (stderr: %s)", run.err, run.stderr)
			}
			if run.stdout != tt.want {
				t.Errorf("stdout = %q, want %q", run.stdout, tt.want)
			}
		})
	}
}

func TestRoot_MissingBoard(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{}, {"  "}, {"123"}} {
		t.Run(fmt.Sprintf("%q", args), func(t *testing.T) {
			t.Parallel()

			run := runCLI(t, &stubProvider{}, []string{"cat"}, args...)
			if got := exitCode(t, run.err); got != types.ExitUsage {
				t.Errorf("exit code = %d, want %d", got, types.ExitUsage)
			}
			if !errors.Is(run.err, board.ErrNoBoardLetters) {
				t.Errorf("error should wrap ErrNoBoardLetters, got %v", run.err)
			}
			if got := issue.IDOf(run.err); got != issue.BoardLettersMissingId {
				t.Errorf("issue id = %d, want %d", got, issue.BoardLettersMissingId)
			}
			if run.stdout != "" {
				t.Errorf("stdout should be empty, got %q", run.stdout)
			}
			if run.stderr == "" {
				t.Error("expected the issue guide on stderr")
			}
		})
	}
}

func TestRoot_TooManyArgs(t *testing.T) {
	t.Parallel()

	run := runCLI(t, &stubProvider{}, nil, "cat", "t", "extra")
	if run.err == nil {
		t.Fatal("expected an argument error")
	}
}

func TestRoot_DictionaryPrecedence(t *testing.T) {
	t.Parallel()

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		run := runCLI(t, &stubProvider{}, []string{"a"}, "a")
		if run.dictionary != lexicon.DefaultPath {
			t.Errorf("dictionary = %q, want %q", run.dictionary, lexicon.DefaultPath)
		}
	})

	t.Run("config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Dictionary = "/usr/share/dict/words"
		run := runCLI(t, &stubProvider{cfg: cfg}, []string{"a"}, "a")
		if run.dictionary != "/usr/share/dict/words" {
			t.Errorf("dictionary = %q, want the configured path", run.dictionary)
		}
	})

	t.Run("flag beats config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Dictionary = "/usr/share/dict/words"
		run := runCLI(t, &stubProvider{cfg: cfg}, []string{"a"}, "-d", "custom.txt", "a")
		if run.dictionary != "custom.txt" {
			t.Errorf("dictionary = %q, want custom.txt", run.dictionary)
		}
	})
}

func TestRoot_ConfigFlagPassedToProvider(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{}
	runCLI(t, provider, []string{"a"}, "--config", "/tmp/custom.cue", "a")

	if len(provider.opts) != 1 {
		t.Fatalf("Load called %d times, want 1", len(provider.opts))
	}
	if provider.opts[0].ConfigFilePath != "/tmp/custom.cue" {
		t.Errorf("ConfigFilePath = %q", provider.opts[0].ConfigFilePath)
	}
}

func TestRoot_ConfigLimitAndFlagOverride(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Limit = 1
	words := []string{"cat", "at", "act"}

	run := runCLI(t, &stubProvider{cfg: cfg}, words, "cat")
	if run.stdout != "cat\n" {
		t.Errorf("configured limit: stdout = %q, want %q", run.stdout, "cat\n")
	}

	run = runCLI(t, &stubProvider{cfg: cfg}, words, "--limit", "0", "cat")
	if run.stdout != "cat\nact\nat\n" {
		t.Errorf("flag override: stdout = %q", run.stdout)
	}
}

func TestRoot_InvalidFlagValues(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"--limit", "-1", "cat"},
		{"--min-length", "0", "cat"},
		{"--dictionary", " ", "cat"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			t.Parallel()

			run := runCLI(t, &stubProvider{}, []string{"cat"}, args...)
			if got := exitCode(t, run.err); got != types.ExitUsage {
				t.Errorf("exit code = %d, want %d", got, types.ExitUsage)
			}
		})
	}
}

func TestRoot_ConfigLoadFailure(t *testing.T) {
	t.Parallel()

	loadErr := issue.NewErrorContext().
		WithOperation("load configuration").
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(errors.New("bad cue")).
		BuildError()

	run := runCLI(t, &stubProvider{err: loadErr}, []string{"cat"}, "cat")
	if got := exitCode(t, run.err); got != types.ExitFailure {
		t.Errorf("exit code = %d, want %d", got, types.ExitFailure)
	}
	if !strings.Contains(run.err.Error(), "bad cue") {
		t.Errorf("error %q should mention the cause", run.err)
	}
}

func TestRoot_LexiconFailure(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	noDotEnv := ""
	loadErr := issue.NewErrorContext().
		WithOperation("load word list").
		WithResource("missing.txt").
		WithIssue(issue.LexiconNotFoundId).
		Wrap(&lexicon.LoadError{Path: "missing.txt", Err: errors.New("no such file")}).
		BuildError()

	app := NewApp(Dependencies{
		Config:     &stubProvider{},
		Lexicon:    func(string) lexicon.Source { return failingSource{err: loadErr} },
		DotEnvPath: &noDotEnv,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})
	root := newRootCommand(app)
	root.SetArgs([]string{"cat"})
	err := root.ExecuteContext(context.Background())

	if got := exitCode(t, err); got != types.ExitFailure {
		t.Errorf("exit code = %d, want %d", got, types.ExitFailure)
	}
	if !errors.Is(err, lexicon.ErrLexiconLoad) {
		t.Errorf("error should wrap ErrLexiconLoad, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}
	if stderr.Len() == 0 {
		t.Error("expected the issue guide on stderr")
	}
}

func TestRoot_Details(t *testing.T) {
	t.Parallel()

	run := runCLI(t, &stubProvider{}, []string{"cat", "at", "act", "dog"}, "--details", "cat", "t")
	if run.err != nil {
		t.Fatalf("unexpected error: %v", run.err)
	}

	for _, want := range []string{"Board act", "Preferred t", "3 of 3 formable words shown", "WORD", "LEN", "PREF", "cat", "act", "at"} {
		if !strings.Contains(run.stdout, want) {
			t.Errorf("details output missing %q:\n%s", want, run.stdout)
		}
	}
	if strings.Contains(run.stdout, "dog") {
		t.Errorf("details output should not list unformable words:\n%s", run.stdout)
	}
}

func TestRoot_DetailsWithoutPreferred(t *testing.T) {
	t.Parallel()

	run := runCLI(t, &stubProvider{}, []string{"cat"}, "--details", "cat")
	if strings.Contains(run.stdout, "PREF") {
		t.Errorf("PREF column should only appear with preferred letters:\n%s", run.stdout)
	}
}

func TestRoot_VerboseLogsSummary(t *testing.T) {
	t.Parallel()

	run := runCLI(t, &stubProvider{}, []string{"cat", "at", "act", "dog", "ca"}, "-v", "cat")
	if run.err != nil {
		t.Fatalf("unexpected error: %v", run.err)
	}
	if !strings.Contains(run.stderr, "#1-4 of 4: cat, act, at, ca") {
		t.Errorf("stderr should carry the summary line, got:\n%s", run.stderr)
	}
	if run.stdout != "cat\nact\nat\nca\n" {
		t.Errorf("stdout = %q", run.stdout)
	}
}

func TestRoot_QuietByDefault(t *testing.T) {
	t.Parallel()

	run := runCLI(t, &stubProvider{}, []string{"cat"}, "cat")
	if run.stderr != "" {
		t.Errorf("stderr should be empty without --verbose, got %q", run.stderr)
	}
}

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2025-06-15T10:00:00Z"

		want := "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"
		if got := getVersionString(); got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got := getVersionString(); got != "dev (built from source)" {
			t.Errorf("getVersionString() = %q", got)
		}
	})
}
