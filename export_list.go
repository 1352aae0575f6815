package table

import (
	"io"
	"strings"
)

// exportList flattens model row-major, one cell value per line, separated
// by cfg.separator. There is no flat Lister shape once the source of truth
// is an N-column grid (unlike a one-dimensional list of records), so this
// is the nearest honest analogue: every cell, in reading order, skipping a
// baked-in header row.
func exportList(w io.Writer, model Model, cfg exportConfig) error {
	start, _ := bodyRowRange(model)
	var all []string
	for r := start; r < model.RowCount(); r++ {
		for c := 0; c < model.ColumnCount(); c++ {
			all = append(all, stringify(model.Value(r, c)))
		}
	}
	if len(all) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(all, cfg.separator)+"\n")
	return err
}
