package table

import (
	"fmt"
	"iter"

	"github.com/agnivade/levenshtein"
)

// Model is a read-only rectangular grid of opaque values, indexed by
// (row, column). A zero-row or zero-column model is legal; [Table.Render]
// renders it as the empty string. A Model must return the same value for
// repeated calls with identical (row, column) — [Table.Render] may be
// called concurrently against a single immutable Model.
type Model interface {
	RowCount() int
	ColumnCount() int
	Value(row, column int) any
}

// Header is implemented by a [Model] that has named columns. Models built
// with [NewHeaderModel] and [NewProjectedModel] implement it; the export
// layer (see [Export]) uses it to key JSON/YAML objects and Markdown/HTML
// headers by name instead of position.
type Header interface {
	Model
	ColumnNames() []string
}

// arrayModel is the simplest Model: a rectangular [][]any with no header.
type arrayModel struct {
	rows [][]any
	cols int
}

// NewArrayModel builds a [Model] from a rectangular grid of values. All
// rows must have the same length; shorter rows are padded with nil, which
// the default [Formatter] renders as the empty string.
func NewArrayModel(rows [][]any) Model {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	return &arrayModel{rows: rows, cols: cols}
}

func (m *arrayModel) RowCount() int    { return len(m.rows) }
func (m *arrayModel) ColumnCount() int { return m.cols }
func (m *arrayModel) Value(row, column int) any {
	r := m.rows[row]
	if column >= len(r) {
		return nil
	}
	return r[column]
}

// headerModel is an arrayModel whose row 0 is the header row, with the
// names also kept separately for ColumnNames — the "header+data pair"
// shape.
type headerModel struct {
	arrayModel
	header []string
}

// NewHeaderModel builds a [Model] from a header row and a rectangular data
// body. The header occupies row 0 of the resulting data-facing API the way
// it does in the Java source (spec.md §4.1): RowCount counts header plus
// body rows, and Value(0, c) returns header[c].
func NewHeaderModel(header []string, rows [][]any) Header {
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	all := make([][]any, 0, len(rows)+1)
	all = append(all, headerRow)
	all = append(all, rows...)
	cols := len(header)
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	return &headerModel{arrayModel: arrayModel{rows: all, cols: cols}, header: header}
}

func (m *headerModel) ColumnNames() []string { return m.header }

// projectedModel builds rows lazily from a slice of arbitrary records via a
// projection function, instead of requiring the caller to pre-flatten them.
// Like [headerModel], the header (when non-nil) occupies row 0 so that every
// [Header] model shares one contract: RowCount/Value include the header row,
// ColumnNames is metadata about it. header==nil degenerates to a plain,
// headerless projection.
type projectedModel[T any] struct {
	items    []T
	project  func(T) []any
	header   []string
	hasHead  bool
	cols     int
}

// NewProjectedModel builds a [Model] from a slice of heterogeneous records
// and a projection function, without requiring the caller to flatten
// records into [][]any up front — the "heterogeneous record-per-row
// projection" shape named in spec.md §4.1. header may be nil.
func NewProjectedModel[T any](header []string, items []T, project func(T) []any) Header {
	cols := len(header)
	return &projectedModel[T]{items: items, project: project, header: header, hasHead: header != nil, cols: cols}
}

func (m *projectedModel[T]) RowCount() int {
	if m.hasHead {
		return len(m.items) + 1
	}
	return len(m.items)
}

func (m *projectedModel[T]) ColumnCount() int {
	cols := m.cols
	for _, it := range m.items {
		if n := len(m.project(it)); n > cols {
			cols = n
		}
	}
	return cols
}

func (m *projectedModel[T]) Value(row, column int) any {
	if m.hasHead {
		if row == 0 {
			if column >= len(m.header) {
				return nil
			}
			return m.header[column]
		}
		row--
	}
	r := m.project(m.items[row])
	if column >= len(r) {
		return nil
	}
	return r[column]
}

func (m *projectedModel[T]) ColumnNames() []string { return m.header }

// NewCollectedModel materializes a push-style sequence of rows into a
// stable [Model] — the "stream of rows" construction path named in
// spec.md §6. It must be collected eagerly rather than rendered lazily,
// because a Model is required to return stable values across repeated
// Value(r, c) calls (spec.md §5) and a single-pass sequence cannot honor
// that on its own.
func NewCollectedModel(header []string, seq iter.Seq[[]any]) Header {
	var rows [][]any
	seq(func(row []any) bool {
		rows = append(rows, row)
		return true
	})
	if header == nil {
		return &headerModel{arrayModel: arrayModel{rows: rows, cols: colCountOf(rows)}}
	}
	return NewHeaderModel(header, rows)
}

func colCountOf(rows [][]any) int {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	return cols
}

// ColumnIndex resolves a column name against a [Header] model. If name
// does not match exactly, the returned error names the closest column (by
// Levenshtein distance) as a suggestion, the way a typo'd flag name or
// rule name is reported elsewhere in this ecosystem.
func ColumnIndex(h Header, name string) (int, error) {
	names := h.ColumnNames()
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	best := -1
	bestDist := -1
	for i, n := range names {
		d := levenshtein.ComputeDistance(name, n)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best == -1 {
		return -1, fmt.Errorf("table: no column named %q", name)
	}
	return -1, fmt.Errorf("table: no column named %q, did you mean %q?", name, names[best])
}
