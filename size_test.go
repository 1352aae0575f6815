package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/termgrid/table"
)

func TestAutoSize(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		lines     []string
		available int
		want      table.Extent
	}{
		"single short word":     {lines: []string{"hi"}, available: 100, want: table.Extent{Min: 2, Max: 2}},
		"wraps at whitespace":   {lines: []string{"hello world"}, available: 100, want: table.Extent{Min: 5, Max: 11}},
		"capped by available":  {lines: []string{"hello world"}, available: 4, want: table.Extent{Min: 4, Max: 4}},
		"empty":                 {lines: nil, available: 100, want: table.Extent{Min: 0, Max: 0}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := table.AutoSize(tt.lines, tt.available, 1)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAbsoluteWidth(t *testing.T) {
	t.Parallel()
	s := table.AbsoluteWidth(7)
	got := s([]string{"x"}, 100, 1)
	assert.Equal(t, table.Extent{Min: 7, Max: 7}, got)
}

func TestNoWrap(t *testing.T) {
	t.Parallel()
	got := table.NoWrap([]string{"a long single line"}, 5, 1)
	want := table.Extent{Min: 18, Max: 18}
	assert.Equal(t, want, got)
}
