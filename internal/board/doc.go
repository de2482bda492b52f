// SPDX-License-Identifier: MPL-2.0

// Package board models the letters available on a Letterpress board.
//
// A Board is a case-insensitive multiset of letters: a letter may be used in a
// word at most as many times as it appears on the board. A LetterSet is the
// membership-only set of preferred letters used to bias ranking; it never
// affects whether a word can be played.
//
// Letters are compared after Unicode case folding (golang.org/x/text/cases),
// so "Cat", "CAT" and "cat" are the same word for every operation here.
package board
