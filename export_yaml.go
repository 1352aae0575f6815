package table

import (
	"io"

	"gopkg.in/yaml.v3"
)

// exportYAML encodes model the same shape as [exportJSON], using YAML.
func exportYAML(w io.Writer, model Model, cfg exportConfig) error {
	enc := yaml.NewEncoder(w)
	if cfg.indent != "" {
		enc.SetIndent(len(cfg.indent))
	}
	var err error
	if maps := rowMaps(model); maps != nil {
		err = enc.Encode(maps)
	} else {
		err = enc.Encode(rowSlices(model))
	}
	if err != nil {
		return err
	}
	return enc.Close()
}
