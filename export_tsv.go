package table

import (
	"fmt"
	"io"
	"strings"
)

// exportTSV is [exportCSV]'s tab-delimited sibling, written directly with
// strings.Join rather than encoding/csv, since TSV has no quoting rules to
// honor.
func exportTSV(w io.Writer, model Model) error {
	start, names := bodyRowRange(model)
	if names != nil {
		if _, err := fmt.Fprintln(w, strings.Join(names, "\t")); err != nil {
			return err
		}
	}
	for r := start; r < model.RowCount(); r++ {
		record := make([]string, model.ColumnCount())
		for c := 0; c < model.ColumnCount(); c++ {
			record[c] = stringify(model.Value(r, c))
		}
		if _, err := fmt.Fprintln(w, strings.Join(record, "\t")); err != nil {
			return err
		}
	}
	return nil
}
