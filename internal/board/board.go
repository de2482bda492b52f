// SPDX-License-Identifier: MPL-2.0

package board

import (
	"errors"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoBoardLetters is returned when a board is requested from input that
// carries no letters at all.
var ErrNoBoardLetters = errors.New("no board letters supplied")

// Board is an immutable multiset of case-folded letters.
// The zero value is an empty board from which only the empty word is formable.
type Board struct {
	counts map[rune]int
	size   int
}

// New builds a Board from the letters in s. Order is irrelevant and every
// occurrence counts: "aab" allows two a's. Runes that are not letters
// (spaces, digits, punctuation) are ignored.
func New(s string) Board {
	b := Board{counts: make(map[rune]int)}
	for _, r := range Fold(s) {
		if !unicode.IsLetter(r) {
			continue
		}
		b.counts[r]++
		b.size++
	}
	return b
}

// Parse is like New but rejects input without a single letter with
// ErrNoBoardLetters. The CLI uses it for the required board argument.
func Parse(s string) (Board, error) {
	b := New(s)
	if b.Len() == 0 {
		return Board{}, ErrNoBoardLetters
	}
	return b, nil
}

// Len returns the number of tiles on the board, counting repeats.
func (b Board) Len() int { return b.size }

// Count returns how many times r (after folding) appears on the board.
func (b Board) Count(r rune) int {
	folded := []rune(Fold(string(r)))
	if len(folded) != 1 {
		return 0
	}
	return b.counts[folded[0]]
}

// IsFormable reports whether word can be spelled from the board's tiles.
// See the package-level IsFormable.
func (b Board) IsFormable(word string) bool {
	return IsFormable(word, b)
}

// String returns the board's letters in sorted order, e.g. "aabct".
func (b Board) String() string {
	letters := make([]rune, 0, b.size)
	for r, n := range b.counts {
		for range n {
			letters = append(letters, r)
		}
	}
	slices.Sort(letters)
	return string(letters)
}

// IsFormable reports whether word can be built from the letters of b: for
// every distinct letter, its count in word must not exceed its count on the
// board. Letters may be taken in any order and need not all be used.
//
// The empty word is vacuously formable. A word containing any rune that is
// not on the board (including non-letters) is never formable.
func IsFormable(word string, b Board) bool {
	folded := Fold(word)
	if utf8.RuneCountInString(folded) > b.size {
		return false
	}

	used := make(map[rune]int, len(b.counts))
	for _, r := range folded {
		used[r]++
		if used[r] > b.counts[r] {
			return false
		}
	}
	return true
}

// normalizeLetters folds s and keeps only its letters.
func normalizeLetters(s string) string {
	var sb strings.Builder
	for _, r := range Fold(s) {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
