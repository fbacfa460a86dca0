package render

import (
	"io"

	datatable "github.com/domonda/go-datatable"
)

// Table converts data with datatable.DataRows and renders it with w.Table.
// The width hints of datatable.ColumnWidths are used if w has no widths set.
func Table[T datatable.ToDataRow](w *Writer, data []T, columns []datatable.DataColumn, styling *datatable.Styling) string {
	rows := datatable.DataRows(data, columns, styling)
	return w.withHints(datatable.ColumnWidths(data)).Table(columns, rows, styling)
}

// Lines converts data with datatable.DataRows and renders it with w.Lines.
// The width hints of datatable.ColumnWidths are used if w has no widths set.
func Lines[T datatable.ToDataRow](w *Writer, data []T, columns []datatable.DataColumn, styling *datatable.Styling) []string {
	rows := datatable.DataRows(data, columns, styling)
	return w.withHints(datatable.ColumnWidths(data)).Lines(columns, rows, styling)
}

// Write converts data with datatable.DataRows and writes it with w.Write.
// The width hints of datatable.ColumnWidths are used if w has no widths set.
func Write[T datatable.ToDataRow](dest io.Writer, w *Writer, data []T, columns []datatable.DataColumn, styling *datatable.Styling) error {
	rows := datatable.DataRows(data, columns, styling)
	return w.withHints(datatable.ColumnWidths(data)).Write(dest, columns, rows, styling)
}
