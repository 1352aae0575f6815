package table

import "github.com/gobwas/glob"

// Matcher is a predicate over a cell coordinate and the model it belongs
// to. It is the sole selection mechanism for every pipeline rule and every
// border rectangle's match mask is independent of it — matchers are plain
// predicates, not a type hierarchy, so arbitrary user logic composes with
// the built-ins below without any special-casing.
type Matcher func(row, column int, model Model) bool

// All matches every cell. [New] installs it at position zero of every
// pipeline.
func All() Matcher {
	return func(row, column int, model Model) bool { return true }
}

// Row matches every cell in the given row.
func Row(row int) Matcher {
	return func(r, c int, model Model) bool { return r == row }
}

// Column matches every cell in the given column.
func Column(column int) Matcher {
	return func(r, c int, model Model) bool { return c == column }
}

// Cell matches exactly one coordinate.
func Cell(row, column int) Matcher {
	return func(r, c int, model Model) bool { return r == row && c == column }
}

// RowRange matches every cell whose row is in [from, to).
func RowRange(from, to int) Matcher {
	return func(r, c int, model Model) bool { return r >= from && r < to }
}

// ColumnRange matches every cell whose column is in [from, to).
func ColumnRange(from, to int) Matcher {
	return func(r, c int, model Model) bool { return c >= from && c < to }
}

// Value matches every cell whose value satisfies pred.
func Value(pred func(value any) bool) Matcher {
	return func(r, c int, model Model) bool { return pred(model.Value(r, c)) }
}

// GlobValue matches every cell whose formatted textual value (fmt.Sprintf
// "%v") satisfies the shell-glob pattern. It panics at registration time
// if pattern does not compile, the same fail-fast posture the rest of this
// package takes for registration-time argument errors.
func GlobValue(pattern string) Matcher {
	g, err := glob.Compile(pattern)
	if err != nil {
		panic("table: invalid glob pattern: " + err.Error())
	}
	return func(r, c int, model Model) bool {
		return g.Match(stringify(model.Value(r, c)))
	}
}
