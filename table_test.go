package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termgrid/table"
)

// Scenario 1: no borders, default rules, W=20 over a 2-column 2-row model
// of single-character cells. Each column's AutoSize extent is (1,1)
// (content is a single one-cell-wide token), and the solver's "fits at
// max" branch (sumMax <= available) assigns exactly maxWidth per column —
// 1, not a share of the 20 available cells — so no padding is added and
// the columns sit flush against each other.
func TestScenario1DefaultRenderingNoBorders(t *testing.T) {
	t.Parallel()
	model := table.NewArrayModel([][]any{{"a", "b"}, {"c", "d"}})
	tb := table.New(model)
	out, err := tb.Render(20)
	require.NoError(t, err)
	assert.Equal(t, "ab\ncd\n", out)
}

// Scenario 2: same model with a THIN outline border, W=20 — OUTLINE draws
// only the outer left and right vertical lanes, which consume 2 cells,
// leaving 18 content cells; both columns still fit at their max width of 1.
func TestScenario2ThinOutlineBorder(t *testing.T) {
	t.Parallel()
	model := table.NewArrayModel([][]any{{"a", "b"}, {"c", "d"}})
	tb := table.New(model)
	tb, err := tb.WithBorder(0, 0, 2, 2, table.OUTLINE, table.THIN)
	require.NoError(t, err)
	out, err := tb.Render(20)
	require.NoError(t, err)
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "┐")
	assert.Contains(t, out, "└")
	assert.Contains(t, out, "┘")
	assert.Contains(t, out, "│")
	assert.Contains(t, out, "─")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "d")
}

// Scenario 3: single column, W=7, a cell whose default wrapper breaks at
// whitespace into two lines of exactly width 7.
func TestScenario3WrapsAtWhitespace(t *testing.T) {
	t.Parallel()
	model := table.NewArrayModel([][]any{{"abc def ghi"}})
	tb := table.New(model)
	out, err := tb.Render(7)
	require.NoError(t, err)
	assert.Equal(t, "abc def\nghi    \n", out)
}

// Scenario 4: AbsoluteWidth(3) hard-breaks a numeric value at width 3.
func TestScenario4AbsoluteWidthHardBreak(t *testing.T) {
	t.Parallel()
	model := table.NewArrayModel([][]any{{12345}})
	tb := table.New(model)
	tb.Size(table.All(), table.AbsoluteWidth(3))
	out, err := tb.Render(10)
	require.NoError(t, err)
	assert.Equal(t, "123\n45 \n", out)
}

// Scenario 5: two outline border specs on the same rectangle — THIN, then
// DOUBLE — the later registration wins on every shared edge.
func TestScenario5LaterBorderStyleWins(t *testing.T) {
	t.Parallel()
	model := table.NewArrayModel([][]any{{"a", "b"}, {"c", "d"}})
	tb := table.New(model)
	tb, err := tb.WithBorder(0, 0, 2, 2, table.OUTLINE, table.THIN)
	require.NoError(t, err)
	tb, err = tb.WithBorder(0, 0, 2, 2, table.OUTLINE, table.DOUBLE)
	require.NoError(t, err)
	out, err := tb.Render(20)
	require.NoError(t, err)
	assert.Contains(t, out, "═")
	assert.Contains(t, out, "║")
	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "╗")
	assert.Contains(t, out, "╚")
	assert.Contains(t, out, "╝")
	assert.NotContains(t, out, "┌")
	assert.NotContains(t, out, "─")
}

// Scenario 6: a 0x0 model renders as the empty string.
func TestScenario6EmptyModelRendersEmptyString(t *testing.T) {
	t.Parallel()
	model := table.NewArrayModel(nil)
	tb := table.New(model)
	out, err := tb.Render(10)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderZeroColumnsAlsoEmpty(t *testing.T) {
	t.Parallel()
	model := table.NewArrayModel([][]any{{}, {}})
	tb := table.New(model)
	out, err := tb.Render(10)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderIsPureAcrossRepeatedCalls(t *testing.T) {
	t.Parallel()
	model := table.NewArrayModel([][]any{{"a", "b"}, {"c", "d"}})
	tb := table.New(model)
	first, err := tb.Render(20)
	require.NoError(t, err)
	second, err := tb.Render(20)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFormatMatcherWithNoRuleMatchingIsUnreachableAfterDefaultInstalled(t *testing.T) {
	t.Parallel()
	// New always installs an All() rule at position zero for every
	// pipeline, so a well-formed Table never hits ErrNoMatchingRule; this
	// documents that guarantee rather than forcing the error path, which
	// would require reaching into unexported rule-set internals.
	model := table.NewArrayModel([][]any{{"x"}})
	tb := table.New(model)
	_, err := tb.Render(10)
	assert.NoError(t, err)
}
