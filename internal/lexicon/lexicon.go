// SPDX-License-Identifier: MPL-2.0

// Package lexicon loads the dictionary that candidate words are drawn from.
//
// A lexicon is a newline-delimited list of words. Loading performs no
// validation or normalization beyond trimming trailing line-ending
// whitespace; malformed entries are left for the formability test to reject.
package lexicon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dhm116/letterpress/internal/issue"
)

const (
	// DefaultPath is the word list used when nothing else is configured.
	DefaultPath = "wordsEn.txt"

	// maxLineBytes bounds a single dictionary line.
	maxLineBytes = 1 << 20

	// cancelCheckInterval is how many lines are scanned between context checks.
	cancelCheckInterval = 4096
)

// ErrLexiconLoad is the sentinel wrapped by every LoadError.
var ErrLexiconLoad = errors.New("lexicon load failed")

type (
	// LoadError reports that a word list could not be opened or read.
	// It matches both ErrLexiconLoad and the underlying cause with errors.Is.
	LoadError struct {
		Path string
		Err  error
	}

	// Source yields the words of a lexicon in dictionary order.
	Source interface {
		Words(ctx context.Context) ([]string, error)
	}

	// FileSource reads a lexicon from a file on disk.
	FileSource struct {
		Path string
	}

	// StaticSource serves an in-memory word list.
	StaticSource []string
)

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read lexicon: %v", e.Err)
	}
	return fmt.Sprintf("read lexicon %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrLexiconLoad and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrLexiconLoad, e.Err}
}

// Words loads the file at s.Path. See Load.
func (s FileSource) Words(ctx context.Context) ([]string, error) {
	return Load(ctx, s.Path)
}

// Words returns a copy of the static list.
func (s StaticSource) Words(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]string(nil), s...), nil
}

// Load reads the word list at path. Failures are returned as an
// *issue.ActionableError wrapping a *LoadError, linked to the issue catalog.
func Load(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load lexicon canceled: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, loadFailure(path, err)
	}
	defer f.Close()

	words, err := read(ctx, f)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("load lexicon canceled: %w", ctxErr)
		}
		return nil, loadFailure(path, err)
	}
	return words, nil
}

// Read reads one word per line from r. Trailing spaces, tabs and carriage
// returns are trimmed from every line; nothing else is altered, so blank
// lines come back as empty strings.
func Read(r io.Reader) ([]string, error) {
	words, err := read(context.Background(), r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return words, nil
}

func read(ctx context.Context, r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var words []string
	for scanner.Scan() {
		words = append(words, strings.TrimRight(scanner.Text(), " \t\r"))
		if len(words)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func loadFailure(path string, err error) error {
	ec := issue.NewErrorContext().
		WithOperation("load lexicon").
		WithResource(path)

	if errors.Is(err, fs.ErrNotExist) {
		ec.WithIssue(issue.LexiconNotFoundId).
			WithSuggestion("Pass --dictionary with the path to a newline-delimited word list").
			WithSuggestion("Or set LETTERPRESS_DICTIONARY / 'dictionary' in the config file")
	} else {
		ec.WithIssue(issue.LexiconReadFailedId).
			WithSuggestion("Check that the path is a readable text file")
	}

	return ec.Wrap(&LoadError{Path: path, Err: err}).BuildError()
}
