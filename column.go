package datatable

import "github.com/charmbracelet/lipgloss"

// RowNumberField can be used as DataColumn.Field
// to display the one based row number.
const RowNumberField = "#"

// DataColumn describes one column of a data table.
type DataColumn struct {
	// Title is displayed in the header row.
	Title string
	// Field is the column name of the struct field
	// displayed in this column by StructRowConverter.
	// If empty, then Title is used.
	Field string
	// Width is a fixed display width, zero means automatic.
	Width int
	// MinWidth is the minimum display width.
	MinWidth int
	// Align is the horizontal alignment of the column cells.
	Align lipgloss.Position
}

// NewColumns returns left aligned columns with automatic width
// for the passed titles.
func NewColumns(titles ...string) []DataColumn {
	columns := make([]DataColumn, len(titles))
	for i, title := range titles {
		columns[i] = DataColumn{Title: title, Align: lipgloss.Left}
	}
	return columns
}

// FieldName returns Field or Title if Field is empty.
func (c *DataColumn) FieldName() string {
	if c.Field != "" {
		return c.Field
	}
	return c.Title
}

// ColumnTitles returns the titles of columns.
func ColumnTitles(columns []DataColumn) []string {
	titles := make([]string, len(columns))
	for i := range columns {
		titles[i] = columns[i].Title
	}
	return titles
}
