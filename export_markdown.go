package table

import (
	"fmt"
	"io"
	"strings"
)

// exportMarkdown writes model as a GitHub-flavoured Markdown table. Column
// widths and stringification go through width.go/format.go's single width
// authority instead of a second direct runewidth call, so the export layer
// and the render pipeline agree on what a cell "looks like".
func exportMarkdown(w io.Writer, model Model) error {
	start, names := bodyRowRange(model)
	numCols := model.ColumnCount()
	header := names
	if header == nil {
		header = make([]string, numCols)
		for i := range header {
			header[i] = fmt.Sprintf("col%d", i)
		}
	}

	rows := make([][]string, 0, model.RowCount()-start)
	for r := start; r < model.RowCount(); r++ {
		row := make([]string, numCols)
		for c := 0; c < numCols; c++ {
			row[c] = stringify(model.Value(r, c))
		}
		rows = append(rows, row)
	}

	widths := make([]int, numCols)
	for i, col := range header {
		if w := StringWidth(col); i < numCols && w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}
	sep := make([]string, numCols)
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = padRight(cell, width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
