package table

import (
	"fmt"
	"io"
	"text/template"
)

// exportGoTemplate executes tmplStr once per data row, against
// map[string]any (header present, per [rowMaps]) or []any (headerless,
// per [rowSlices]).
func exportGoTemplate(w io.Writer, tmplStr string, model Model) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	exec := func(row any) error {
		if err := tmpl.Execute(w, row); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	if maps := rowMaps(model); maps != nil {
		for _, row := range maps {
			if err := exec(row); err != nil {
				return err
			}
		}
		return nil
	}
	for _, row := range rowSlices(model) {
		if err := exec(row); err != nil {
			return err
		}
	}
	return nil
}
