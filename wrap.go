package table

import "strings"

// TextWrapper splits a cell's pre-wrap lines into a sequence of lines each
// of exactly StringWidth == width. [Table.Render] checks the output of
// every TextWrapper call against this contract (see [checkWrapped]),
// converting a silent bug into a [ContractViolationError] pointing at the
// offending cell.
type TextWrapper func(lines []string, width int) []string

// DelimiterTextWrapper wraps each pre-wrap line independently, greedily
// packing that line's whitespace-delimited tokens into output lines of at
// most width cells. A token wider than width is hard-broken at width.
// Trailing space runs at a break are consumed. Every emitted line is
// right-padded to exactly width. Tokens never pack across a pre-wrap line
// boundary, so a formatter that splits an embedded newline into several
// lines (spec.md §8) keeps those as separate output lines rather than
// merging them into one paragraph.
func DelimiterTextWrapper(lines []string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	if len(lines) == 0 {
		return []string{padRight("", width)}
	}

	var out []string
	for _, line := range lines {
		out = append(out, wrapDelimiterLine(line, width)...)
	}
	return out
}

func wrapDelimiterLine(line string, width int) []string {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return []string{padRight("", width)}
	}

	var out []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		out = append(out, padRight(current.String(), width))
		current.Reset()
		currentWidth = 0
	}

	for _, tok := range tokens {
		tokWidth := StringWidth(tok)
		for tokWidth > width {
			// Hard-break: take as much of tok as fits, flush, continue with
			// the remainder as a fresh token.
			if currentWidth > 0 {
				flush()
			}
			head := Truncate(tok, width)
			if head == "" {
				// width is narrower than even the widest single rune (e.g.
				// an East-Asian wide glyph at width 1): advance one rune so
				// the loop always makes progress.
				runes := []rune(tok)
				head = string(runes[0])
				tok = string(runes[1:])
			} else {
				tok = tok[len(head):]
			}
			out = append(out, padRight(head, width))
			tokWidth = StringWidth(tok)
		}
		if tokWidth == 0 {
			continue
		}
		sep := 0
		if currentWidth > 0 {
			sep = 1
		}
		if currentWidth+sep+tokWidth > width {
			flush()
			sep = 0
		}
		if sep == 1 {
			current.WriteByte(' ')
			currentWidth++
		}
		current.WriteString(tok)
		currentWidth += tokWidth
	}
	if currentWidth > 0 || len(out) == 0 {
		flush()
	}
	return out
}

// KeyValueTextWrapper is a TextWrapper for cell values that are a mapping:
// it expects each pre-wrap line to already be formatted as "key=value" (see
// a [Formatter] that emits such lines for map values). [DelimiterTextWrapper]
// already wraps each pre-wrap line independently, so a single key=value pair
// never merges with its neighbour; this is just that behaviour under its
// map-shaped name.
func KeyValueTextWrapper(lines []string, width int) []string {
	return DelimiterTextWrapper(lines, width)
}

// checkWrapped validates a TextWrapper's output against its contract at a
// given cell, returning a *ContractViolationError instead of letting a
// malformed result reach the renderer silently. This is the asserting
// wrapper named in spec.md §4.6/§4.7/§7, applied at the call site rather
// than as a second function wrapper, since Go has no checked-exception
// analogue to thread through the TextWrapper type itself.
func checkWrapped(lines []string, width, row, column int) error {
	for _, l := range lines {
		if strings.Contains(l, "\n") {
			return &ContractViolationError{Row: row, Column: column, Stage: "wrap", Reason: "line contains '\\n'"}
		}
		if StringWidth(l) != width {
			return &ContractViolationError{Row: row, Column: column, Stage: "wrap", Reason: "line width does not equal the requested width"}
		}
	}
	return nil
}
