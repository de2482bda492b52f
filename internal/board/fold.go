// SPDX-License-Identifier: MPL-2.0

package board

import (
	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of s. Board letters, preferred letters and
// dictionary words all pass through Fold before they are compared.
//
// A new Caser is created per call because cases.Caser keeps internal state and
// is not safe for concurrent use.
func Fold(s string) string {
	return cases.Fold().String(s)
}
