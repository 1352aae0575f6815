package table

import (
	"encoding/json"
	"io"
)

// exportJSONL writes one JSON value per data row, newline-delimited.
func exportJSONL(w io.Writer, model Model, cfg exportConfig) error {
	enc := json.NewEncoder(w)
	if cfg.indent != "" {
		enc.SetIndent("", cfg.indent)
	}
	if maps := rowMaps(model); maps != nil {
		for _, row := range maps {
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
		return nil
	}
	for _, row := range rowSlices(model) {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
