package table

import "strings"

// Table is the central rendering API. It is constructed around a [Model]
// and customized, spreadsheet-style, by registering rules on its four
// pipelines and border rectangles; see the package doc for the big
// picture.
//
// A Table is not safe for concurrent rule/border registration. Once
// registration is done, [Table.Render] is pure with respect to the
// Table's state and may be called concurrently for distinct widths,
// provided the underlying Model returns stable values.
type Table struct {
	model   Model
	rows    int
	columns int

	formatters *ruleSet[Formatter]
	sizers     *ruleSet[SizeConstraints]
	wrappers   *ruleSet[TextWrapper]
	aligners   *ruleSet[AlignmentStrategy]

	borders      []Specification
	redistribute bool
}

// New constructs a Table around model with the default pipeline: values
// stringified by [DefaultFormatter], sized by [AutoSize], wrapped by
// [DelimiterTextWrapper], and left-aligned, matching the Java source's
// constructor defaults (spec.md §4, "Construct a default table").
func New(model Model) *Table {
	return &Table{
		model:      model,
		rows:       model.RowCount(),
		columns:    model.ColumnCount(),
		formatters: newRuleSet[Formatter](DefaultFormatter),
		sizers:     newRuleSet[SizeConstraints](AutoSize),
		wrappers:   newRuleSet[TextWrapper](DelimiterTextWrapper),
		aligners:   newRuleSet[AlignmentStrategy](Left),
	}
}

// Model returns the table's backing model.
func (t *Table) Model() Model { return t.model }

// RenderOption configures a single [Table.Render] call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	redistribute bool
}

// WithResidualRedistribution opts into redistributing the column-width
// solver's rounding residual (spec.md §9, "Open question — solver
// rounding residual"): leftmost elastic columns each receive one extra
// cell until the residual — which the solver otherwise leaves unassigned
// — is exhausted. Off by default, to match the Java source's behaviour
// exactly unless a caller explicitly asks for the nicer distribution.
func WithResidualRedistribution() RenderOption {
	return func(c *renderConfig) { c.redistribute = true }
}

// Format registers a [Formatter] for every cell matched by m. Later calls
// override earlier ones on the cells they both match (spec.md §3,
// last-match-wins). It returns [ErrNullArgument] if m or f is nil, rather
// than registering a rule that would only panic once [Table.Render] tries
// to call it (spec.md §7, "NullArgumentError").
func (t *Table) Format(m Matcher, f Formatter) (*Table, error) {
	if m == nil || f == nil {
		return t, newNullArgumentError("Format: matcher and formatter must be non-nil")
	}
	t.formatters.add(m, f)
	return t, nil
}

// Size registers a [SizeConstraints] for every cell matched by m. It
// returns [ErrNullArgument] if m or s is nil.
func (t *Table) Size(m Matcher, s SizeConstraints) (*Table, error) {
	if m == nil || s == nil {
		return t, newNullArgumentError("Size: matcher and constraints must be non-nil")
	}
	t.sizers.add(m, s)
	return t, nil
}

// Wrap registers a [TextWrapper] for every cell matched by m. It returns
// [ErrNullArgument] if m or w is nil.
func (t *Table) Wrap(m Matcher, w TextWrapper) (*Table, error) {
	if m == nil || w == nil {
		return t, newNullArgumentError("Wrap: matcher and wrapper must be non-nil")
	}
	t.wrappers.add(m, w)
	return t, nil
}

// Align registers an [AlignmentStrategy] for every cell matched by m. It
// returns [ErrNullArgument] if m or a is nil.
func (t *Table) Align(m Matcher, a AlignmentStrategy) (*Table, error) {
	if m == nil || a == nil {
		return t, newNullArgumentError("Align: matcher and strategy must be non-nil")
	}
	t.aligners.add(m, a)
	return t, nil
}

// WithBorder registers a border rectangle [top, bottom) x [left, right)
// with the given match mask and style. It returns [ErrDimension] if the
// rectangle is not a valid sub-range of the model's rows and columns
// (spec.md §7).
func (t *Table) WithBorder(top, left, bottom, right int, match Edge, style Style) (*Table, error) {
	if top < 0 || top >= t.rows {
		return t, newDimensionError("top (%d) must be in [0, %d)", top, t.rows)
	}
	if left < 0 || left >= t.columns {
		return t, newDimensionError("left (%d) must be in [0, %d)", left, t.columns)
	}
	if bottom <= top || bottom > t.rows {
		return t, newDimensionError("bottom (%d) must be in (%d, %d]", bottom, top, t.rows)
	}
	if right <= left || right > t.columns {
		return t, newDimensionError("right (%d) must be in (%d, %d]", right, left, t.columns)
	}
	t.borders = append(t.borders, Specification{Top: top, Left: left, Bottom: bottom, Right: right, Match: match, Style: style})
	return t, nil
}

// MustWithBorder is [Table.WithBorder] for callers that already know the
// rectangle is valid (e.g. it spans the whole model) and would rather
// panic on a programming error than thread one more error return through
// setup code.
func (t *Table) MustWithBorder(top, left, bottom, right int, match Edge, style Style) *Table {
	tt, err := t.WithBorder(top, left, bottom, right, match, style)
	if err != nil {
		panic(err)
	}
	return tt
}

// Render produces the table as a string constrained to totalAvailableWidth
// terminal cells, per spec.md §4.9. If totalAvailableWidth is smaller than
// the minimum sustainable width (sum of minimum column widths plus
// vertical border count), Render still produces output using the minimum
// widths — it overflows the requested width rather than failing — and
// reports that as a non-nil, non-fatal diagnostic error alongside the
// (still usable) string. Any other returned error is a
// [*ContractViolationError] from a misbehaving user-supplied formatter,
// wrapper, or aligner, pinpointing the offending cell.
func (t *Table) Render(totalAvailableWidth int, opts ...RenderOption) (string, error) {
	cfg := renderConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	if t.rows == 0 || t.columns == 0 {
		return "", nil
	}

	b := newGrid(t.rows, t.columns, t.borders)
	availableContent := totalAvailableWidth - b.verticalBorderCount()

	lines := make([][][]string, t.rows)
	for r := range lines {
		lines[r] = make([][]string, t.columns)
	}
	minWidth := make([]int, t.columns)
	maxWidth := make([]int, t.columns)

	for r := 0; r < t.rows; r++ {
		for c := 0; c < t.columns; c++ {
			f, ok := t.formatters.resolve(r, c, t.model)
			if !ok {
				return "", &ContractViolationError{Row: r, Column: c, Stage: "format", Reason: ErrNoMatchingRule.Error()}
			}
			cellLines := f(t.model.Value(r, c))
			if err := checkFormatted(cellLines, r, c); err != nil {
				return "", err
			}
			lines[r][c] = cellLines

			sizer, ok := t.sizers.resolve(r, c, t.model)
			if !ok {
				return "", &ContractViolationError{Row: r, Column: c, Stage: "size", Reason: ErrNoMatchingRule.Error()}
			}
			extent := sizer(cellLines, availableContent, t.columns)
			if extent.Min > minWidth[c] {
				minWidth[c] = extent.Min
			}
			if extent.Max > maxWidth[c] {
				maxWidth[c] = extent.Max
			}
		}
	}

	var widthTooSmall error
	sumMin := 0
	for _, m := range minWidth {
		sumMin += m
	}
	if totalAvailableWidth < sumMin+b.verticalBorderCount() {
		widthTooSmall = &renderWidthTooSmallError{requested: totalAvailableWidth, minimum: sumMin + b.verticalBorderCount()}
	}

	cellWidths := computeActualColumnWidths(availableContent, minWidth, maxWidth, cfg.redistribute)

	cellHeights := make([]int, t.rows)
	for r := 0; r < t.rows; r++ {
		for c := 0; c < t.columns; c++ {
			wrapper, ok := t.wrappers.resolve(r, c, t.model)
			if !ok {
				return "", &ContractViolationError{Row: r, Column: c, Stage: "wrap", Reason: ErrNoMatchingRule.Error()}
			}
			wrapped := wrapper(lines[r][c], cellWidths[c])
			if err := checkWrapped(wrapped, cellWidths[c], r, c); err != nil {
				return "", err
			}
			lines[r][c] = wrapped
			if len(wrapped) > cellHeights[r] {
				cellHeights[r] = len(wrapped)
			}
		}
		for c := 0; c < t.columns; c++ {
			aligner, ok := t.aligners.resolve(r, c, t.model)
			if !ok {
				return "", &ContractViolationError{Row: r, Column: c, Stage: "align", Reason: ErrNoMatchingRule.Error()}
			}
			aligned := aligner(lines[r][c], cellWidths[c], cellHeights[r])
			if err := checkAligned(aligned, cellWidths[c], cellHeights[r], r, c); err != nil {
				return "", err
			}
			lines[r][c] = aligned
		}
	}

	var sb strings.Builder
	for r := 0; r < t.rows; r++ {
		before := sb.Len()
		for c := 0; c < t.columns; c++ {
			b.paintCorner(r, c, &sb)
			b.paintHorizontal(r, c, cellWidths[c], &sb)
		}
		b.paintCorner(r, t.columns, &sb)
		if sb.Len() > before {
			sb.WriteByte('\n')
		}

		for sub := 0; sub < cellHeights[r]; sub++ {
			for c := 0; c < t.columns; c++ {
				b.paintVertical(r, c, &sb)
				sb.WriteString(lines[r][c][sub])
			}
			b.paintVertical(r, t.columns, &sb)
			sb.WriteByte('\n')
		}
	}

	before := sb.Len()
	for c := 0; c < t.columns; c++ {
		b.paintCorner(t.rows, c, &sb)
		b.paintHorizontal(t.rows, c, cellWidths[c], &sb)
	}
	b.paintCorner(t.rows, t.columns, &sb)
	if sb.Len() > before {
		sb.WriteByte('\n')
	}

	return sb.String(), widthTooSmall
}

// renderWidthTooSmallError is the non-fatal diagnostic named
// RenderWidthTooSmall in spec.md §7: Render still succeeds and returns
// usable (overflowing) output, but reports that the requested width could
// not be honoured.
type renderWidthTooSmallError struct {
	requested, minimum int
}

func (e *renderWidthTooSmallError) Error() string {
	return "table: requested width is smaller than the minimum sustainable width"
}

// Requested returns the width that was asked for.
func (e *renderWidthTooSmallError) Requested() int { return e.requested }

// Minimum returns the minimum sustainable width (sum of minimum column
// widths plus vertical border count) that Render fell back to.
func (e *renderWidthTooSmallError) Minimum() int { return e.minimum }
