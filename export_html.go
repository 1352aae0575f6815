package table

import (
	"fmt"
	"html"
	"io"
)

// exportHTML writes model as a minimal <table>: a <thead> when model is a
// [Header], one <tr> per data row in <tbody>. There is no footer/caption
// concept left to carry over — those belonged to the teacher's per-item
// Footered/Titled escape hatches, which have no Model-shaped equivalent.
func exportHTML(w io.Writer, model Model) error {
	start, names := bodyRowRange(model)

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if names != nil {
		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, col := range names {
			if _, err := fmt.Fprintf(w, "      <th>%s</th>\n", html.EscapeString(col)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for r := start; r < model.RowCount(); r++ {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for c := 0; c < model.ColumnCount(); c++ {
			cell := html.EscapeString(stringify(model.Value(r, c)))
			if _, err := fmt.Fprintf(w, "      <td>%s</td>\n", cell); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

