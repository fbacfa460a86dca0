package render

import (
	"github.com/charmbracelet/bubbles/table"

	datatable "github.com/domonda/go-datatable"
)

// BubbleColumns returns bubbles table columns for columns
// with the passed widths. Missing widths are taken from
// the column's Width or MinWidth.
func BubbleColumns(columns []datatable.DataColumn, widths []int) []table.Column {
	cols := make([]table.Column, len(columns))
	for i, column := range columns {
		width := max(column.Width, column.MinWidth)
		if i < len(widths) && widths[i] > 0 {
			width = widths[i]
		}
		cols[i] = table.Column{Title: column.Title, Width: width}
	}
	return cols
}

// BubbleRows returns the cell contents of rows as bubbles table rows.
// Styles are not used because bubbles tables only support
// header, cell and selected styles.
func BubbleRows(rows []datatable.Row) []table.Row {
	result := make([]table.Row, len(rows))
	for i, row := range rows {
		result[i] = table.Row(row.Strings())
	}
	return result
}

// NewBubbleTable returns a bubbles table model for columns and rows
// using the header and selected styles of styling.
// If widths is nil then datatable.ResolveWidths is used.
// The passed options are applied after the columns, rows and styles.
func NewBubbleTable(columns []datatable.DataColumn, rows []datatable.Row, widths []int, styling *datatable.Styling, opts ...table.Option) table.Model {
	if widths == nil {
		widths = datatable.ResolveWidths(nil, columns, rows)
	}
	styles := table.DefaultStyles()
	styles.Header = styling.HeaderStyle().Padding(0, 1)
	styles.Selected = styling.SelectedStyle()

	options := []table.Option{
		table.WithColumns(BubbleColumns(columns, widths)),
		table.WithRows(BubbleRows(rows)),
		table.WithStyles(styles),
	}
	return table.New(append(options, opts...)...)
}
