// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhm116/letterpress/internal/board"
	"github.com/dhm116/letterpress/internal/rank"
	"github.com/dhm116/letterpress/internal/suggest"

	"github.com/dustin/go-humanize"
)

// renderWords prints one word per line, best first. Nothing else goes to
// stdout so the output can be piped.
func renderWords(w io.Writer, result suggest.Result) error {
	var sb strings.Builder
	for _, word := range rank.Words(result.Candidates) {
		sb.WriteString(word)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// renderDetails prints a styled header followed by one row per word with
// its length and, when preferred letters were given, their count.
func renderDetails(w io.Writer, result suggest.Result, b board.Board, preferred board.LetterSet) error {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Board "+b.String()) + "\n")
	if !preferred.IsEmpty() {
		sb.WriteString(SubtitleStyle.Render("Preferred "+preferred.String()) + "\n")
	}
	fmt.Fprintf(&sb, "%s\n\n", SubtitleStyle.Render(fmt.Sprintf("%s of %s formable words shown, %s checked",
		humanize.Comma(int64(len(result.Candidates))),
		humanize.Comma(int64(result.Matched)),
		humanize.Comma(int64(result.Evaluated)))))

	if len(result.Candidates) == 0 {
		sb.WriteString(WarningStyle.Render("No playable words") + "\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	width := 4
	for _, c := range result.Candidates {
		width = max(width, c.Length)
	}

	header := fmt.Sprintf("%4s  %-*s  %4s", "#", width, "WORD", "LEN")
	if !preferred.IsEmpty() {
		header += fmt.Sprintf("  %4s", "PREF")
	}
	sb.WriteString(SubtitleStyle.Render(header) + "\n")

	for i, c := range result.Candidates {
		// Pad before styling so ANSI sequences do not skew the columns.
		word := WordStyle.Render(fmt.Sprintf("%-*s", width, c.Word))
		fmt.Fprintf(&sb, "%4d  %s  %s", i+1, word, SuccessStyle.Render(fmt.Sprintf("%4d", c.Length)))
		if !preferred.IsEmpty() {
			fmt.Fprintf(&sb, "  %s", SuccessStyle.Render(fmt.Sprintf("%4d", c.PreferredCount)))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
