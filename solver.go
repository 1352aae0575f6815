package table

// computeActualColumnWidths resolves per-column widths from the per-column
// min/max extents and the total width available for content, following
// spec.md §4.5 (transcribed from the Java source's
// Table.computeActualColumnWidths, field for field):
//
//   - if the sum of maxima fits, every column gets its max;
//   - else if the sum of minima already overflows, every column gets its
//     min (the render may still overflow the requested width);
//   - else each column gets its min plus a share of the slack,
//     proportional to its own elasticity (max-min), integer division
//     rounding toward zero.
//
// The resulting total may fall short of available by up to columns-1
// cells; that residual is not redistributed unless redistribute is true,
// in which case the leftmost columns with nonzero elasticity each receive
// one extra cell until the residual is exhausted. redistribute is an
// explicit opt-in (see [WithResidualRedistribution]) — off by default, to
// match the Java source exactly when not requested.
func computeActualColumnWidths(available int, minWidth, maxWidth []int, redistribute bool) []int {
	columns := len(minWidth)
	widths := make([]int, columns)

	sumMin, sumMax := 0, 0
	for c := 0; c < columns; c++ {
		sumMin += minWidth[c]
		sumMax += maxWidth[c]
	}

	switch {
	case sumMax <= available:
		copy(widths, maxWidth)
		return widths
	case sumMin >= available:
		copy(widths, minWidth)
		return widths
	}

	w := available - sumMin
	d := sumMax - sumMin
	used := 0
	for c := 0; c < columns; c++ {
		widths[c] = minWidth[c] + w*(maxWidth[c]-minWidth[c])/d
		used += widths[c]
	}

	if redistribute {
		residual := available - used
		for c := 0; c < columns && residual > 0; c++ {
			if maxWidth[c] > minWidth[c] && widths[c] < maxWidth[c] {
				widths[c]++
				residual--
			}
		}
	}

	return widths
}
