package table

// Extent is a desired column-width range in terminal cells: Min <= Max,
// both non-negative.
type Extent struct {
	Min, Max int
}

// SizeConstraints derives a desired column-width Extent from a cell's
// pre-wrap lines. availableContentWidth is the total width left for
// content (borders excluded); columns is the model's column count, so a
// single-column table may legitimately consume the whole available width.
type SizeConstraints func(lines []string, availableContentWidth, columns int) Extent

// AbsoluteWidth pins a column to exactly w cells, regardless of content.
func AbsoluteWidth(w int) SizeConstraints {
	return func(lines []string, availableContentWidth, columns int) Extent {
		return Extent{Min: w, Max: w}
	}
}

// AutoSize derives Min from the widest unbreakable token across all lines
// (tokens split on whitespace) and Max from the widest whole line. Both
// are capped at availableContentWidth when it is finite and non-negative,
// since a single column may legitimately consume the whole line.
func AutoSize(lines []string, availableContentWidth, columns int) Extent {
	min := longestTokenWidth(lines)
	max := longestLineWidth(lines)
	if max < min {
		max = min
	}
	if availableContentWidth >= 0 {
		if min > availableContentWidth {
			min = availableContentWidth
		}
		if max > availableContentWidth {
			max = availableContentWidth
		}
	}
	return Extent{Min: min, Max: max}
}

// NoWrap pins Min and Max to the widest whole line, suppressing wrapping
// even if the result overflows the available width.
func NoWrap(lines []string, availableContentWidth, columns int) Extent {
	w := longestLineWidth(lines)
	return Extent{Min: w, Max: w}
}
