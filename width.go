package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// CharWidth reports the terminal-cell width of a single rune: 0 for
// zero-width/combining marks, 1 for ordinary glyphs, 2 for East-Asian wide
// glyphs. It is the extension point spec'd for width measurement — plug in
// a different table (e.g. a stricter code-point-count-only policy) by
// assigning a package-level variable of this type and threading it through
// a custom [SizeConstraints]/[TextWrapper]/[AlignmentStrategy]; the
// built-ins in this package always go through [StringWidth], which calls
// this var.
type CharWidth func(r rune) int

// DefaultCharWidth is the width table used by every built-in
// [SizeConstraints], [TextWrapper], and [AlignmentStrategy] in this
// package. It defers to go-runewidth's East-Asian width table, which is a
// strict upgrade over plain code-point counting for any ASCII input (every
// ASCII rune still costs exactly 1 cell).
var DefaultCharWidth CharWidth = runewidth.RuneWidth

// StringWidth returns the sum of DefaultCharWidth over every rune in s.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += DefaultCharWidth(r)
	}
	return w
}

// Truncate shortens s so that StringWidth(s) <= width, never splitting a
// wide rune in half. No tail or ellipsis is appended.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// padRight right-pads s with spaces until StringWidth(s) == width. It
// assumes StringWidth(s) <= width.
func padRight(s string, width int) string {
	pad := width - StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// longestLineWidth returns the width of the widest line in lines.
func longestLineWidth(lines []string) int {
	max := 0
	for _, l := range lines {
		if w := StringWidth(l); w > max {
			max = w
		}
	}
	return max
}

// longestTokenWidth returns the width of the widest whitespace-delimited
// token across all lines.
func longestTokenWidth(lines []string) int {
	max := 0
	for _, l := range lines {
		for _, tok := range strings.Fields(l) {
			if w := StringWidth(tok); w > max {
				max = w
			}
		}
	}
	return max
}
