package table

import "strings"

// AlignmentStrategy pads a cell's already-wrapped lines to the final
// (width, height) of its cell: horizontally by redistributing the padding
// [TextWrapper] already added, vertically by inserting blank lines of
// width spaces. [Table.Render] validates every call's output against this
// contract (see [checkAligned]).
type AlignmentStrategy func(lines []string, width, height int) []string

// Left leaves each wrapped line's existing right padding untouched.
func Left(lines []string, width, height int) []string {
	return padHeight(lines, width, height, 0)
}

// Right trims each line's trailing padding and reinserts it on the left.
func Right(lines []string, width, height int) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = shiftPadLeft(l, width)
	}
	return padHeight(out, width, height, 0)
}

// Center trims each line's trailing padding and redistributes it evenly on
// both sides, with any odd cell going to the right.
func Center(lines []string, width, height int) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		trimmed := strings.TrimRight(l, " ")
		pad := width - StringWidth(trimmed)
		left := pad / 2
		right := pad - left
		out[i] = strings.Repeat(" ", left) + trimmed + strings.Repeat(" ", right)
	}
	return padHeight(out, width, height, 0)
}

// Top pads with blank lines below the content.
func Top(lines []string, width, height int) []string {
	return padHeight(lines, width, height, 0)
}

// Middle splits the padding between above and below, extra line below.
func Middle(lines []string, width, height int) []string {
	deficit := height - len(lines)
	if deficit <= 0 {
		return lines
	}
	above := deficit / 2
	return padHeight(lines, width, height, above)
}

// Bottom pads with blank lines above the content.
func Bottom(lines []string, width, height int) []string {
	deficit := height - len(lines)
	if deficit <= 0 {
		return lines
	}
	return padHeight(lines, width, height, deficit)
}

// Compose combines a horizontal and a vertical aligner into one
// AlignmentStrategy, applying the horizontal aligner to the content lines
// first and the vertical aligner to the result — matching Java's
// composed SimpleHorizontalAligner/SimpleVerticalAligner pairing (spec.md
// §4.7).
func Compose(horizontal, vertical AlignmentStrategy) AlignmentStrategy {
	return func(lines []string, width, height int) []string {
		return vertical(horizontal(lines, width, len(lines)), width, height)
	}
}

func padHeight(lines []string, width, height, above int) []string {
	blank := strings.Repeat(" ", width)
	out := make([]string, 0, height)
	for i := 0; i < above; i++ {
		out = append(out, blank)
	}
	out = append(out, lines...)
	for len(out) < height {
		out = append(out, blank)
	}
	return out
}

func shiftPadLeft(s string, width int) string {
	trimmed := strings.TrimRight(s, " ")
	pad := width - StringWidth(trimmed)
	if pad <= 0 {
		return trimmed
	}
	return strings.Repeat(" ", pad) + trimmed
}

// checkAligned validates an AlignmentStrategy's output against its
// contract at a given cell: exactly height lines, each of exactly width.
func checkAligned(lines []string, width, height, row, column int) error {
	if len(lines) != height {
		return &ContractViolationError{Row: row, Column: column, Stage: "align", Reason: "line count does not equal the cell height"}
	}
	for _, l := range lines {
		if strings.Contains(l, "\n") {
			return &ContractViolationError{Row: row, Column: column, Stage: "align", Reason: "line contains '\\n'"}
		}
		if StringWidth(l) != width {
			return &ContractViolationError{Row: row, Column: column, Stage: "align", Reason: "line width does not equal the cell width"}
		}
	}
	return nil
}
