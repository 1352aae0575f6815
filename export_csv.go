package table

import (
	"encoding/csv"
	"io"
)

// exportCSV writes model as CSV: a header row (when model is a [Header]),
// followed by one record per data row.
func exportCSV(w io.Writer, model Model, cfg exportConfig) error {
	cw := csv.NewWriter(w)
	cw.Comma = cfg.delimiter
	start, names := bodyRowRange(model)
	if names != nil {
		if err := cw.Write(names); err != nil {
			return err
		}
	}
	for r := start; r < model.RowCount(); r++ {
		record := make([]string, model.ColumnCount())
		for c := 0; c < model.ColumnCount(); c++ {
			record[c] = stringify(model.Value(r, c))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
