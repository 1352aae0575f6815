package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/termgrid/table"
)

// computeActualColumnWidths is unexported; exercise its three branches
// indirectly through Render, the only way a caller ever observes it.

func TestRenderUsesMaxWidthsWhenTheyFit(t *testing.T) {
	t.Parallel()
	model := table.NewArrayModel([][]any{{"ab", "cdef"}})
	tb := table.New(model)
	out, err := tb.Render(100)
	assert.NoError(t, err)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cdef")
}

func TestRenderFallsBackToMinWidthsAndReportsWidthTooSmall(t *testing.T) {
	t.Parallel()
	model := table.NewArrayModel([][]any{{"alphabet", "soup"}})
	tb := table.New(model)
	out, err := tb.Render(3)
	assert.Error(t, err)
	// AutoSize caps each cell's extent at the 3 available cells, so both
	// columns fall back to a minimum width of 3 and the tokens hard-break.
	assert.Equal(t, "alpsou\nhabp  \net    \n", out)

	diag, ok := err.(interface{ Minimum() int })
	assert.True(t, ok)
	assert.Equal(t, 6, diag.Minimum())
}

func TestWithResidualRedistributionGivesExtraCellsToElasticColumns(t *testing.T) {
	t.Parallel()
	// Extents (3,7) and (3,7) at width 9: each column gets 3 + 3*4/8 = 4,
	// leaving a residual of 1 that only the opt-in hands to column 0.
	model := table.NewArrayModel([][]any{{"aaa bbb", "ccc ddd"}})
	tb := table.New(model)
	withRedistribution, err := tb.Render(9, table.WithResidualRedistribution())
	assert.NoError(t, err)
	without, err := tb.Render(9)
	assert.NoError(t, err)
	assert.Equal(t, "aaa ccc \nbbb ddd \n", without)
	assert.Equal(t, "aaa  ccc \nbbb  ddd \n", withRedistribution)
}
