package table

import (
	"fmt"
	"io"
	"strings"
)

// exportPlain writes model one line per data row, cells joined by a single
// space with no column alignment — the loosest possible rendering, named
// in SPEC_FULL.md §6.10 as distinct from the [Table] pipeline's aligned
// output.
func exportPlain(w io.Writer, model Model) error {
	start, _ := bodyRowRange(model)
	for r := start; r < model.RowCount(); r++ {
		cells := make([]string, model.ColumnCount())
		for c := 0; c < model.ColumnCount(); c++ {
			cells[c] = stringify(model.Value(r, c))
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return nil
}
