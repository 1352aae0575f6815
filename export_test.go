package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termgrid/table"
)

func headeredModel() table.Header {
	return table.NewHeaderModel([]string{"Name", "Age"}, [][]any{{"Ann", 30}, {"Bo", 25}})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    table.Format
		wantErr require.ErrorAssertionFunc
	}{
		"json":     {input: "json", want: table.JSON, wantErr: require.NoError},
		"yaml":     {input: "yaml", want: table.YAML, wantErr: require.NoError},
		"csv":      {input: "csv", want: table.CSV, wantErr: require.NoError},
		"markdown": {input: "markdown", want: table.Markdown, wantErr: require.NoError},
		"list":     {input: "list", want: table.List, wantErr: require.NoError},
		"unknown":  {input: "xml", want: "", wantErr: require.Error},
		"template": {input: "go-template={{.Name}}", want: table.GoTemplate("{{.Name}}"), wantErr: require.NoError},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := table.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := table.Formats()
	assert.Contains(t, got, table.JSON)
	assert.Contains(t, got, table.Markdown)
	assert.NotContains(t, got, table.Format("env"))
}

func TestMarshalJSONKeysByColumnName(t *testing.T) {
	t.Parallel()
	out, err := table.Marshal(table.JSON, headeredModel())
	require.NoError(t, err)
	assert.Contains(t, string(out), `"Name":"Ann"`)
	assert.Contains(t, string(out), `"Age":30`)
}

func TestMarshalJSONHeaderlessUsesPositionalArrays(t *testing.T) {
	t.Parallel()
	model := table.NewArrayModel([][]any{{"a", 1}, {"b", 2}})
	out, err := table.Marshal(table.JSON, model)
	require.NoError(t, err)
	assert.Equal(t, `[["a",1],["b",2]]`+"\n", string(out))
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()
	out, err := table.Marshal(table.YAML, headeredModel())
	require.NoError(t, err)
	assert.Contains(t, string(out), "Name: Ann")
}

func TestMarshalJSONL(t *testing.T) {
	t.Parallel()
	out, err := table.Marshal(table.JSONL, headeredModel())
	require.NoError(t, err)
	lines := 0
	for _, b := range out {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, 2, lines)
}

func TestMarshalCSVWritesHeaderThenRows(t *testing.T) {
	t.Parallel()
	out, err := table.Marshal(table.CSV, headeredModel())
	require.NoError(t, err)
	assert.Equal(t, "Name,Age\nAnn,30\nBo,25\n", string(out))
}

func TestMarshalCSVHonorsCustomDelimiter(t *testing.T) {
	t.Parallel()
	out, err := table.Marshal(table.CSV, headeredModel(), table.WithDelimiter(';'))
	require.NoError(t, err)
	assert.Equal(t, "Name;Age\nAnn;30\nBo;25\n", string(out))
}

func TestMarshalTSV(t *testing.T) {
	t.Parallel()
	out, err := table.Marshal(table.TSV, headeredModel())
	require.NoError(t, err)
	assert.Equal(t, "Name\tAge\nAnn\t30\nBo\t25\n", string(out))
}

func TestMarshalMarkdown(t *testing.T) {
	t.Parallel()
	out, err := table.Marshal(table.Markdown, headeredModel())
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "| Name | Age |")
	assert.Contains(t, s, "| ---- | --- |")
	assert.Contains(t, s, "| Ann  | 30  |")
}

func TestMarshalHTML(t *testing.T) {
	t.Parallel()
	out, err := table.Marshal(table.HTML, headeredModel())
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "<thead>")
	assert.Contains(t, s, "<th>Name</th>")
	assert.Contains(t, s, "<td>Ann</td>")
}

func TestMarshalHTMLEscapesContent(t *testing.T) {
	t.Parallel()
	model := table.NewArrayModel([][]any{{"<script>"}})
	out, err := table.Marshal(table.HTML, model)
	require.NoError(t, err)
	assert.Contains(t, string(out), "&lt;script&gt;")
}

func TestMarshalPlainJoinsCellsWithSpace(t *testing.T) {
	t.Parallel()
	out, err := table.Marshal(table.Plain, headeredModel())
	require.NoError(t, err)
	assert.Equal(t, "Ann 30\nBo 25\n", string(out))
}

func TestMarshalListFlattensRowMajor(t *testing.T) {
	t.Parallel()
	out, err := table.Marshal(table.List, headeredModel())
	require.NoError(t, err)
	assert.Equal(t, "Ann\n30\nBo\n25\n", string(out))
}

func TestMarshalListHonorsCustomSeparator(t *testing.T) {
	t.Parallel()
	out, err := table.Marshal(table.List, headeredModel(), table.WithSeparator(", "))
	require.NoError(t, err)
	assert.Equal(t, "Ann, 30, Bo, 25\n", string(out))
}

func TestMarshalGoTemplateExecutesOncePerRow(t *testing.T) {
	t.Parallel()
	out, err := table.Marshal(table.GoTemplate("{{.Name}} is {{.Age}}"), headeredModel())
	require.NoError(t, err)
	assert.Equal(t, "Ann is 30\nBo is 25\n", string(out))
}

func TestMarshalGoTemplateInvalidTemplateIsError(t *testing.T) {
	t.Parallel()
	_, err := table.Marshal(table.GoTemplate("{{.Name"), headeredModel())
	assert.ErrorIs(t, err, table.ErrInvalidTemplate)
}

func TestExportUnsupportedFormat(t *testing.T) {
	t.Parallel()
	_, err := table.Marshal(table.Format("xml"), headeredModel())
	assert.ErrorIs(t, err, table.ErrUnsupportedFormat)
}
