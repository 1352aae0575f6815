package table

import "strings"

// Edge is a bitmask of the edges within a [Specification]'s rectangle that
// a border applies to.
type Edge int

const (
	TOP Edge = 1 << iota
	BOTTOM
	LEFT
	RIGHT
	INNER_HORIZONTAL
	INNER_VERTICAL
)

// Match-mask constants, per spec.md §6.
const (
	OUTLINE = TOP | BOTTOM | LEFT | RIGHT
	INNER   = INNER_HORIZONTAL | INNER_VERTICAL
	ALL     = OUTLINE | INNER
)

// Style is a closed set of border glyph tables. The pseudo-style NONE
// contributes no glyph at all; AIR contributes a space (a visible gutter
// without drawing); the rest are real box-drawing glyph sets.
type Style int

const (
	STYLE_NONE Style = iota
	AIR
	THIN
	DOUBLE
	THIN_DOUBLE
	FANCY_LIGHT
	OLD_SCHOOL
)

const noGlyph rune = 0

// corner shape bits, local to this file: which of the four neighbouring
// strokes are present at a corner.
const (
	shapeUp = 1 << iota
	shapeDown
	shapeLeft
	shapeRight
)

type styleTable struct {
	horizontal, vertical rune
	corners               map[int]rune
}

// Bit-exact per spec.md §6: THIN uses ─│ with ┌┐└┘├┤┬┴┼, DOUBLE uses ═║
// with ╔╗╚╝╠╣╦╩╬. THIN_DOUBLE, FANCY_LIGHT and OLD_SCHOOL have no
// bit-exact requirement in spec.md §6 beyond "deterministic"; FANCY_LIGHT
// and OLD_SCHOOL reuse the teacher's own BorderRounded/BorderASCII glyph
// sets (bjaus-fmter table.go's borderSets), and THIN_DOUBLE uses the
// standard Unicode "double horizontal, light vertical" box-drawing glyphs.
// Corners are resolved from the stroke glyphs alone (see pickOwner), and
// FANCY_LIGHT draws the same ─ and │ strokes as THIN, so its corners come
// from THIN's table: the rounded ╭╮╰╯ entries below are never emitted.
var styles = map[Style]styleTable{
	STYLE_NONE: {horizontal: noGlyph, vertical: noGlyph, corners: nil},
	AIR:        {horizontal: ' ', vertical: ' ', corners: nil},
	THIN: {
		horizontal: '─', vertical: '│',
		corners: map[int]rune{
			shapeDown | shapeRight:                         '┌',
			shapeDown | shapeLeft:                          '┐',
			shapeUp | shapeRight:                           '└',
			shapeUp | shapeLeft:                             '┘',
			shapeUp | shapeDown | shapeRight:                '├',
			shapeUp | shapeDown | shapeLeft:                 '┤',
			shapeDown | shapeLeft | shapeRight:               '┬',
			shapeUp | shapeLeft | shapeRight:                 '┴',
			shapeUp | shapeDown | shapeLeft | shapeRight:      '┼',
		},
	},
	DOUBLE: {
		horizontal: '═', vertical: '║',
		corners: map[int]rune{
			shapeDown | shapeRight:                         '╔',
			shapeDown | shapeLeft:                          '╗',
			shapeUp | shapeRight:                           '╚',
			shapeUp | shapeLeft:                             '╝',
			shapeUp | shapeDown | shapeRight:                '╠',
			shapeUp | shapeDown | shapeLeft:                 '╣',
			shapeDown | shapeLeft | shapeRight:               '╦',
			shapeUp | shapeLeft | shapeRight:                 '╩',
			shapeUp | shapeDown | shapeLeft | shapeRight:      '╬',
		},
	},
	THIN_DOUBLE: {
		horizontal: '═', vertical: '│',
		corners: map[int]rune{
			shapeDown | shapeRight:                         '╒',
			shapeDown | shapeLeft:                          '╕',
			shapeUp | shapeRight:                           '╘',
			shapeUp | shapeLeft:                             '╛',
			shapeUp | shapeDown | shapeRight:                '╞',
			shapeUp | shapeDown | shapeLeft:                 '╡',
			shapeDown | shapeLeft | shapeRight:               '╤',
			shapeUp | shapeLeft | shapeRight:                 '╧',
			shapeUp | shapeDown | shapeLeft | shapeRight:      '╪',
		},
	},
	FANCY_LIGHT: {
		horizontal: '─', vertical: '│',
		corners: map[int]rune{
			shapeDown | shapeRight:                         '╭',
			shapeDown | shapeLeft:                          '╮',
			shapeUp | shapeRight:                           '╰',
			shapeUp | shapeLeft:                             '╯',
			shapeUp | shapeDown | shapeRight:                '├',
			shapeUp | shapeDown | shapeLeft:                 '┤',
			shapeDown | shapeLeft | shapeRight:               '┬',
			shapeUp | shapeLeft | shapeRight:                 '┴',
			shapeUp | shapeDown | shapeLeft | shapeRight:      '┼',
		},
	},
	OLD_SCHOOL: {
		horizontal: '-', vertical: '|',
		corners: map[int]rune{
			shapeDown | shapeRight:                    '+',
			shapeDown | shapeLeft:                     '+',
			shapeUp | shapeRight:                      '+',
			shapeUp | shapeLeft:                       '+',
			shapeUp | shapeDown | shapeRight:           '+',
			shapeUp | shapeDown | shapeLeft:            '+',
			shapeDown | shapeLeft | shapeRight:         '+',
			shapeUp | shapeLeft | shapeRight:           '+',
			shapeUp | shapeDown | shapeLeft | shapeRight: '+',
		},
	},
}

// glyphOwner maps every glyph in use back to the style that defines it, so
// that a corner whose four neighbouring strokes were painted by different
// [Specification]s (different styles sharing a corner) can still pick one
// consistent, deterministic shape table — see cornerGlyph.
var glyphOwner = buildGlyphOwner()

func buildGlyphOwner() map[rune]Style {
	m := map[rune]Style{}
	for s := STYLE_NONE; s <= OLD_SCHOOL; s++ {
		t := styles[s]
		if _, seen := m[t.horizontal]; !seen && t.horizontal != noGlyph {
			m[t.horizontal] = s
		}
		if _, seen := m[t.vertical]; !seen && t.vertical != noGlyph {
			m[t.vertical] = s
		}
	}
	return m
}

// Specification is a border rectangle: apply style's glyphs to the edges
// of [top, bottom] x [left, right) selected by match.
type Specification struct {
	Top, Left, Bottom, Right int
	Match                    Edge
	Style                    Style
}

func includeHorizontal(spec Specification, r, c int) bool {
	switch {
	case r == spec.Top:
		return spec.Match&TOP != 0
	case r == spec.Bottom:
		return spec.Match&BOTTOM != 0
	case r > spec.Top && r < spec.Bottom:
		return spec.Match&INNER_HORIZONTAL != 0
	}
	return false
}

func includeVertical(spec Specification, r, c int) bool {
	switch {
	case c == spec.Left:
		return spec.Match&LEFT != 0
	case c == spec.Right:
		return spec.Match&RIGHT != 0
	case c > spec.Left && c < spec.Right:
		return spec.Match&INNER_VERTICAL != 0
	}
	return false
}

// grid is the border composer: it resolves per-edge glyphs from
// overlapping [Specification]s and derives intersection corners, per
// spec.md §4.8. Field names mirror the Java source's Borders inner
// class, which this grid replaces — Go has no nested class with implicit
// outer-instance capture, so rows/columns are threaded in explicitly.
type grid struct {
	rows, columns int
	verticals     [][]rune // [rows][columns+1]
	horizontals   [][]rune // [rows+1][columns]
	corners       [][]rune // [rows+1][columns+1]
	vFillers      []bool   // [columns+1]
	hFillers      []bool   // [rows+1]
}

func newGrid(rows, columns int, specs []Specification) *grid {
	g := &grid{
		rows: rows, columns: columns,
		verticals:   make2D(rows, columns+1),
		horizontals: make2D(rows+1, columns),
		corners:     make2D(rows+1, columns+1),
		vFillers:    make([]bool, columns+1),
		hFillers:    make([]bool, rows+1),
	}
	for _, spec := range specs {
		t := styles[spec.Style]
		for r := spec.Top; r <= spec.Bottom; r++ {
			for c := spec.Left; c < spec.Right; c++ {
				if t.horizontal != noGlyph && includeHorizontal(spec, r, c) {
					g.horizontals[r][c] = t.horizontal
					g.hFillers[r] = true
				}
			}
		}
		for r := spec.Top; r < spec.Bottom; r++ {
			for c := spec.Left; c <= spec.Right; c++ {
				if t.vertical != noGlyph && includeVertical(spec, r, c) {
					g.verticals[r][c] = t.vertical
					g.vFillers[c] = true
				}
			}
		}
	}
	for r := 0; r <= rows; r++ {
		for c := 0; c <= columns; c++ {
			var above, below, left, right rune
			if r-1 >= 0 {
				above = g.verticals[r-1][c]
			}
			if r < rows {
				below = g.verticals[r][c]
			}
			if c-1 >= 0 {
				left = g.horizontals[r][c-1]
			}
			if c < columns {
				right = g.horizontals[r][c]
			}
			g.corners[r][c] = cornerGlyph(above, below, left, right)
		}
	}
	return g
}

func make2D(rows, cols int) [][]rune {
	out := make([][]rune, rows)
	for i := range out {
		out[i] = make([]rune, cols)
	}
	return out
}

// cornerGlyph resolves the glyph at a single corner from its up-to-four
// neighbouring strokes. A space (AIR) side never forms a drawn corner on
// its own, but is also never mistaken for "no stroke" when deciding
// whether this position is a pure-filler space, matching AIR's role as a
// gutter rather than a drawn border.
func cornerGlyph(above, below, left, right rune) rune {
	hadAir := above == ' ' || below == ' ' || left == ' ' || right == ' '
	a, b, l, r := dropAir(above), dropAir(below), dropAir(left), dropAir(right)

	shape := 0
	if a != noGlyph {
		shape |= shapeUp
	}
	if b != noGlyph {
		shape |= shapeDown
	}
	if l != noGlyph {
		shape |= shapeLeft
	}
	if r != noGlyph {
		shape |= shapeRight
	}
	if shape == 0 {
		if hadAir {
			return ' '
		}
		return noGlyph
	}

	owner := pickOwner(a, b, l, r)
	if glyph, ok := styles[owner].corners[shape]; ok {
		return glyph
	}
	return noGlyph
}

func dropAir(g rune) rune {
	if g == ' ' {
		return noGlyph
	}
	return g
}

// pickOwner deterministically resolves which style's corner table governs
// a corner: the first style, in declaration order, whose vertical glyph
// matches every present above/below stroke and whose horizontal glyph
// matches every present left/right stroke. A mixed corner that no single
// style fits goes to the owner of the first present stroke, by priority
// above, below, left, right.
func pickOwner(above, below, left, right rune) Style {
	fits := func(g, want rune) bool { return g == noGlyph || g == want }
	for s := AIR; s <= OLD_SCHOOL; s++ {
		t := styles[s]
		if fits(above, t.vertical) && fits(below, t.vertical) && fits(left, t.horizontal) && fits(right, t.horizontal) {
			return s
		}
	}
	for _, g := range []rune{above, below, left, right} {
		if g != noGlyph {
			if s, ok := glyphOwner[g]; ok {
				return s
			}
		}
	}
	return STYLE_NONE
}

func (g *grid) paintCorner(row, column int, sb *strings.Builder) {
	if glyph := g.corners[row][column]; glyph != noGlyph {
		sb.WriteRune(glyph)
	} else if g.vFillers[column] && g.hFillers[row] {
		sb.WriteByte(' ')
	}
}

func (g *grid) paintVertical(row, column int, sb *strings.Builder) {
	if glyph := g.verticals[row][column]; glyph != noGlyph {
		sb.WriteRune(glyph)
	} else if g.vFillers[column] {
		sb.WriteByte(' ')
	}
}

func (g *grid) paintHorizontal(row, column, width int, sb *strings.Builder) {
	if glyph := g.horizontals[row][column]; glyph != noGlyph {
		for i := 0; i < width; i++ {
			sb.WriteRune(glyph)
		}
	} else if g.hFillers[row] {
		for i := 0; i < width; i++ {
			sb.WriteByte(' ')
		}
	}
}

// verticalBorderCount returns the number of inter-column lanes that carry
// at least one glyph — the space those lanes consume out of the total
// available render width, per spec.md §4.9 step 1.
func (g *grid) verticalBorderCount() int {
	n := 0
	for _, b := range g.vFillers {
		if b {
			n++
		}
	}
	return n
}
