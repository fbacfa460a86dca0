package csvrows

import (
	"github.com/charmbracelet/lipgloss"

	datatable "github.com/domonda/go-datatable"
)

var (
	_ datatable.ToDataRow             = Record(nil)
	_ datatable.ColumnWidther[Record] = Record(nil)
)

// Record is one line of CSV fields.
type Record []string

// ToDataRow returns one cell per column with the field
// at the column's position. Missing fields are displayed
// as empty cells. Without columns every field gets a cell.
func (r Record) ToDataRow(columns []datatable.DataColumn, styling *datatable.Styling, index int) datatable.Row {
	numCols := len(columns)
	if numCols == 0 {
		numCols = len(r)
	}
	cells := make([]datatable.Cell, numCols)
	for col := range cells {
		cells[col] = datatable.NewCell(r.Field(col))
		if col < len(columns) && columns[col].Align != lipgloss.Left {
			cells[col].Style = cells[col].Style.Align(columns[col].Align)
		}
	}
	return datatable.NewStyledRow(styling.RowStyle(index), cells...)
}

// ColumnWidths returns the widest field display width of every column.
// The receiver is not used.
func (Record) ColumnWidths(data []Record) []int {
	var widths []int
	for _, record := range data {
		for col, field := range record {
			if col >= len(widths) {
				widths = append(widths, 0)
			}
			widths[col] = max(widths[col], lipgloss.Width(field))
		}
	}
	return widths
}

// Field returns the field at col or an empty string.
func (r Record) Field(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// IsEmpty returns true if all fields are empty.
func (r Record) IsEmpty() bool {
	for _, field := range r {
		if field != "" {
			return false
		}
	}
	return true
}

// Columns returns left aligned columns titled by header.
func Columns(header []string) []datatable.DataColumn {
	return datatable.NewColumns(header...)
}
