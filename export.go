package table

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for the export layer.
var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format names an export encoding. Unlike the four render pipelines, the
// export layer never sees a width or a border: it is the lighter-weight
// surface named in SPEC_FULL.md §6.10.
type Format string

const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	JSONL    Format = "jsonl"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	Plain    Format = "plain"
	List     Format = "list"
)

const goTemplatePrefix = "go-template="

var formats = []Format{JSON, YAML, JSONL, CSV, TSV, Markdown, HTML, Plain, List}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names. GoTemplate is not
// included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that executes a Go text/template once per
// row. The row is exposed as map[string]any when model is a [Header] with
// column names, keyed by column name, or as []any otherwise.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// "go-template=<tmpl>" strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// exportConfig collects the knobs the teacher exposed as per-item optional
// interfaces (Indented, Delimited, Separator). A Model has no per-item
// interfaces to probe — there is exactly one model per export call — so
// they become ordinary functional options instead.
type exportConfig struct {
	indent    string
	delimiter rune
	separator string
}

// ExportOption configures a single [Export]/[Marshal] call.
type ExportOption func(*exportConfig)

// WithIndent sets the JSON/YAML indentation string. Default: compact JSON,
// YAML's default indent.
func WithIndent(indent string) ExportOption {
	return func(c *exportConfig) { c.indent = indent }
}

// WithDelimiter sets the CSV field delimiter. Default: comma.
func WithDelimiter(r rune) ExportOption {
	return func(c *exportConfig) { c.delimiter = r }
}

// WithSeparator sets the delimiter between List items. Default: newline.
func WithSeparator(sep string) ExportOption {
	return func(c *exportConfig) { c.separator = sep }
}

// Export writes model to w in the given format. It never goes through the
// [Table] render pipeline — it has no concept of width, wrapping, or
// borders, see SPEC_FULL.md §6.10.
func Export(w io.Writer, format Format, model Model, opts ...ExportOption) error {
	cfg := exportConfig{delimiter: ',', separator: "\n"}
	for _, o := range opts {
		o(&cfg)
	}
	switch format {
	case JSON:
		return exportJSON(w, model, cfg)
	case YAML:
		return exportYAML(w, model, cfg)
	case JSONL:
		return exportJSONL(w, model, cfg)
	case CSV:
		return exportCSV(w, model, cfg)
	case TSV:
		return exportTSV(w, model)
	case Markdown:
		return exportMarkdown(w, model)
	case HTML:
		return exportHTML(w, model)
	case Plain:
		return exportPlain(w, model)
	case List:
		return exportList(w, model, cfg)
	default:
		if tmpl, ok := strings.CutPrefix(string(format), goTemplatePrefix); ok {
			return exportGoTemplate(w, tmpl, model)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Marshal is [Export] into a byte slice.
func Marshal(format Format, model Model, opts ...ExportOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Export(&buf, format, model, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// bodyRowRange returns the first data row index and the column names for
// model. A [Header] model with non-nil column names bakes its header into
// row 0 (see [NewHeaderModel], [NewProjectedModel], [NewCollectedModel]),
// so formats that print a header separately must start at row 1 to avoid
// repeating it as a data row. A projected or collected model built with a
// nil header has no header row and is exported like a plain [Model].
func bodyRowRange(model Model) (start int, names []string) {
	if h, ok := model.(Header); ok && h.ColumnNames() != nil {
		return 1, h.ColumnNames()
	}
	return 0, nil
}

// rowMaps projects every data row of model into a map keyed by column
// name when model is a [Header] with column names, or returns nil if it is
// not — the shared shape JSON, YAML, and JSONL export build on.
func rowMaps(model Model) []map[string]any {
	h, ok := model.(Header)
	if !ok || h.ColumnNames() == nil {
		return nil
	}
	start, names := bodyRowRange(model)
	rows := make([]map[string]any, 0, model.RowCount()-start)
	for r := start; r < model.RowCount(); r++ {
		row := make(map[string]any, h.ColumnCount())
		for c := 0; c < h.ColumnCount(); c++ {
			key := fmt.Sprintf("col%d", c)
			if c < len(names) {
				key = names[c]
			}
			row[key] = model.Value(r, c)
		}
		rows = append(rows, row)
	}
	return rows
}

// rowSlices projects every data row of model into a positional []any
// slice, skipping a baked-in header row when present.
func rowSlices(model Model) [][]any {
	start, _ := bodyRowRange(model)
	rows := make([][]any, 0, model.RowCount()-start)
	for r := start; r < model.RowCount(); r++ {
		row := make([]any, model.ColumnCount())
		for c := 0; c < model.ColumnCount(); c++ {
			row[c] = model.Value(r, c)
		}
		rows = append(rows, row)
	}
	return rows
}
