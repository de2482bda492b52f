// SPDX-License-Identifier: MPL-2.0

// Package suggest runs the word-suggestion pipeline: every dictionary word is
// tested against the board, the formable ones become ranked candidates.
//
// The pipeline is single-pass and synchronous. The only state is the
// injected Logger; a Suggester can be reused for any number of requests.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dhm116/letterpress/internal/board"
	"github.com/dhm116/letterpress/internal/rank"

	"github.com/dustin/go-humanize"
)

const (
	// DefaultMinLength keeps single-letter words and drops only empty lines.
	DefaultMinLength = 1

	// summarySize is how many leading words the summary log line lists.
	summarySize = 10

	cancelCheckInterval = 8192
)

// ErrInvalidRequest is the sentinel wrapped by InvalidRequestError.
var ErrInvalidRequest = errors.New("invalid suggestion request")

type (
	// Request describes one suggestion run.
	Request struct {
		// Board is the multiset of playable letters.
		Board board.Board
		// Preferred letters raise a word's rank among words of equal length.
		Preferred board.LetterSet
		// MinLength drops shorter words. Values below 1 are treated as 1:
		// the empty word is never a result.
		MinLength int
		// Limit truncates the result to the best Limit words; 0 keeps all.
		Limit int
	}

	// InvalidRequestError is returned when a Request has out-of-range fields.
	InvalidRequestError struct {
		Field string
		Value int
	}

	// Result is the outcome of a suggestion run.
	Result struct {
		// Candidates are the ranked words, truncated to Request.Limit.
		Candidates []rank.Candidate
		// Evaluated is the number of distinct dictionary words tested.
		Evaluated int
		// Matched is the number of formable words before truncation.
		Matched int
	}

	// Suggester filters and ranks dictionary words.
	Suggester struct {
		logger Logger
	}
)

// Error implements the error interface.
func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid suggestion request: %s must not be negative (got %d)", e.Field, e.Value)
}

// Unwrap returns ErrInvalidRequest for errors.Is() compatibility.
func (e *InvalidRequestError) Unwrap() error { return ErrInvalidRequest }

// Validate returns an error if the request has negative bounds.
func (r Request) Validate() error {
	if r.MinLength < 0 {
		return &InvalidRequestError{Field: "min length", Value: r.MinLength}
	}
	if r.Limit < 0 {
		return &InvalidRequestError{Field: "limit", Value: r.Limit}
	}
	return nil
}

// New creates a Suggester. A nil logger discards all messages.
func New(logger Logger) *Suggester {
	if logger == nil {
		logger = NopLogger()
	}
	return &Suggester{logger: logger}
}

// Suggest tests every word against req.Board and returns the formable ones
// in ranking order. words is read but never modified.
//
// Words are compared case-insensitively; when the dictionary lists the same
// word more than once only the first occurrence is kept. The only errors are
// request validation and context cancellation.
func (s *Suggester) Suggest(ctx context.Context, words []string, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	minLength := max(req.MinLength, DefaultMinLength)

	s.logger.Info("Working with board",
		"letters", req.Board.String(),
		"preferred", req.Preferred.String())

	seen := make(map[string]struct{}, len(words))
	var candidates []rank.Candidate
	evaluated := 0

	for i, word := range words {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("suggest canceled: %w", err)
			}
		}

		key := board.Fold(word)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		evaluated++

		n := utf8.RuneCountInString(key)
		if n < minLength || n > req.Board.Len() {
			continue
		}
		if !board.IsFormable(key, req.Board) {
			continue
		}
		candidates = append(candidates, rank.NewCandidate(word, i, req.Preferred))
	}

	s.logger.Debug("Evaluated dictionary",
		"words", humanize.Comma(int64(len(words))),
		"distinct", humanize.Comma(int64(evaluated)),
		"formable", humanize.Comma(int64(len(candidates))))

	ranked := rank.Rank(candidates, req.Preferred)
	s.logSummary(ranked)

	return Result{
		Candidates: rank.Top(ranked, req.Limit),
		Evaluated:  evaluated,
		Matched:    len(ranked),
	}, nil
}

// logSummary reports the leading words the way a player would read them off.
func (s *Suggester) logSummary(ranked []rank.Candidate) {
	if len(ranked) == 0 {
		s.logger.Info("No playable words found")
		return
	}
	top := rank.Words(rank.Top(ranked, summarySize))
	s.logger.Info(fmt.Sprintf("#1-%d of %s: %s",
		len(top), humanize.Comma(int64(len(ranked))), strings.Join(top, ", ")))
}
