// Package table renders a rectangular grid of values as fixed-width,
// border-decorated text suitable for a monospaced terminal.
//
// # Pipeline
//
// A [Table] is built around a [Model] and customized the way a spreadsheet
// program is: four selector-driven pipelines decide, per cell, how raw data
// becomes screen-ready text:
//
//   - [Table.Format] — [Formatter]s turn a cell's value into pre-wrap lines.
//   - [Table.Size] — [SizeConstraints] turn those lines into a desired
//     (min, max) column-width [Extent].
//   - [Table.Wrap] — [TextWrapper]s split pre-wrap lines into lines of the
//     column's resolved width, once that width is known.
//   - [Table.Align] — [AlignmentStrategy]s pad wrapped lines to the cell's
//     final width and the row's final height.
//
// Each pipeline is an ordered list of (matcher, strategy) rules; for a given
// cell, the last registered rule whose [Matcher] matches wins. A default
// rule matching every cell is installed by [New] at position zero, so a
// fresh [Table] always renders something sensible.
//
// [Table.WithBorder] registers border rectangles independently of the four
// pipelines; overlapping borders are resolved in registration order, and
// corner glyphs are derived from the surrounding strokes.
//
// [Table.Render] is pure with respect to the model and the registered
// rules: it may be called concurrently for different widths once
// registration is done.
//
// # Export
//
// [Export] and [Marshal] offer a lighter-weight, non-bordered path for
// turning the same [Model] into JSON, YAML, CSV, TSV, Markdown, HTML, or a
// few other shapes. They do not go through the four pipelines above; see
// their doc comments for exact shapes.
package table
