// SPDX-License-Identifier: MPL-2.0

package board

import (
	"slices"
)

// LetterSet is a membership-only set of case-folded letters. The preferred
// letters passed on the command line are held in a LetterSet; repeats in the
// input carry no extra weight.
type LetterSet struct {
	members map[rune]struct{}
}

// NewLetterSet builds a LetterSet from the letters in s. Non-letters are
// ignored. An empty or letter-free s yields an empty set.
func NewLetterSet(s string) LetterSet {
	set := LetterSet{members: make(map[rune]struct{})}
	for _, r := range normalizeLetters(s) {
		set.members[r] = struct{}{}
	}
	return set
}

// Len returns the number of distinct letters in the set.
func (s LetterSet) Len() int { return len(s.members) }

// IsEmpty reports whether the set has no letters.
func (s LetterSet) IsEmpty() bool { return len(s.members) == 0 }

// Contains reports whether the folded form of r is in the set.
func (s LetterSet) Contains(r rune) bool {
	folded := []rune(Fold(string(r)))
	if len(folded) != 1 {
		return false
	}
	_, ok := s.members[folded[0]]
	return ok
}

// CountIn returns how many runes of word belong to the set, counting every
// occurrence: with preferred letters "t", CountIn("tatt") is 3.
func (s LetterSet) CountIn(word string) int {
	if len(s.members) == 0 {
		return 0
	}
	n := 0
	for _, r := range Fold(word) {
		if _, ok := s.members[r]; ok {
			n++
		}
	}
	return n
}

// String returns the set's letters in sorted order.
func (s LetterSet) String() string {
	letters := make([]rune, 0, len(s.members))
	for r := range s.members {
		letters = append(letters, r)
	}
	slices.Sort(letters)
	return string(letters)
}
