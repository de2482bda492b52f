// SPDX-License-Identifier: MPL-2.0

// Package rank orders playable words so the most valuable come first.
//
// Longer words capture more tiles, so length dominates. Among words of equal
// length, words that spend more of the preferred letters (typically letters
// the opponent already holds) rank higher. Remaining ties keep dictionary
// order so repeated runs print the same list.
package rank

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/dhm116/letterpress/internal/board"
)

// Candidate is a dictionary word known to be formable from the board,
// together with the attributes it is ranked by.
type Candidate struct {
	// Word is the dictionary entry as it should be displayed.
	Word string
	// Index is the word's position in the lexicon; it breaks ranking ties.
	Index int
	// Length is the word's length in letters.
	Length int
	// PreferredCount is how many letters of Word are preferred letters,
	// counting repeats.
	PreferredCount int
}

// NewCandidate derives the ranking attributes of word against preferred.
func NewCandidate(word string, index int, preferred board.LetterSet) Candidate {
	return Candidate{
		Word:           word,
		Index:          index,
		Length:         utf8.RuneCountInString(board.Fold(word)),
		PreferredCount: preferred.CountIn(word),
	}
}

// Rank returns a new slice holding candidates in ranking order: descending
// Length, then descending PreferredCount when preferred is non-empty, then
// ascending Index. The input slice is not modified.
func Rank(candidates []Candidate, preferred board.LetterSet) []Candidate {
	ranked := slices.Clone(candidates)
	usePreferred := !preferred.IsEmpty()

	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		if c := cmp.Compare(b.Length, a.Length); c != 0 {
			return c
		}
		if usePreferred {
			if c := cmp.Compare(b.PreferredCount, a.PreferredCount); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.Index, b.Index)
	})
	return ranked
}

// Top returns at most n leading candidates. A non-positive n returns all of
// them. The result shares its backing array with ranked.
func Top(ranked []Candidate, n int) []Candidate {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// Words returns the Word of every candidate, in order.
func Words(candidates []Candidate) []string {
	words := make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = c.Word
	}
	return words
}
