package table

import (
	"encoding/json"
	"io"
)

// exportJSON encodes model as a JSON array, one object per data row keyed
// by column name when model is a [Header], or one array per row otherwise.
func exportJSON(w io.Writer, model Model, cfg exportConfig) error {
	enc := json.NewEncoder(w)
	if cfg.indent != "" {
		enc.SetIndent("", cfg.indent)
	}
	if maps := rowMaps(model); maps != nil {
		return enc.Encode(maps)
	}
	return enc.Encode(rowSlices(model))
}
