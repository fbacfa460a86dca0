package datatable

import "github.com/charmbracelet/lipgloss"

// Cell is a single displayed value of a Row.
type Cell struct {
	Content string
	// Style is applied on top of the style of the Row.
	Style lipgloss.Style
}

// NewCell returns an unstyled Cell with the passed content.
func NewCell(content string) Cell {
	return Cell{Content: content, Style: lipgloss.NewStyle()}
}

// Row is the renderable representation of one domain value.
//
// A Row only contains strings and styles,
// so it does not alias any memory of the value
// it was created from.
type Row struct {
	Cells []Cell
	Style lipgloss.Style
	// Height of the row in lines, zero means one line.
	Height int
	// BottomMargin is the number of empty lines after the row.
	BottomMargin int
}

// NewRow returns a Row with one unstyled Cell per content string.
func NewRow(contents ...string) Row {
	cells := make([]Cell, len(contents))
	for i, content := range contents {
		cells[i] = NewCell(content)
	}
	return Row{Cells: cells, Style: lipgloss.NewStyle()}
}

// NewStyledRow returns a Row from the passed cells.
func NewStyledRow(style lipgloss.Style, cells ...Cell) Row {
	return Row{Cells: cells, Style: style}
}

func (r Row) WithStyle(style lipgloss.Style) Row {
	r.Style = style
	return r
}

func (r Row) WithHeight(height int) Row {
	r.Height = height
	return r
}

func (r Row) WithBottomMargin(margin int) Row {
	r.BottomMargin = margin
	return r
}

// NumCells returns the number of cells of the row.
func (r Row) NumCells() int { return len(r.Cells) }

// Strings returns the content of all cells.
func (r Row) Strings() []string {
	strs := make([]string, len(r.Cells))
	for i, cell := range r.Cells {
		strs[i] = cell.Content
	}
	return strs
}

// Content returns the content of the cell at col
// or an empty string if the row has no such cell.
func (r Row) Content(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col].Content
}

// CellStyle returns the style of the cell at col
// with unset properties inherited from the row style.
func (r Row) CellStyle(col int) lipgloss.Style {
	if col < 0 || col >= len(r.Cells) {
		return r.Style
	}
	return r.Cells[col].Style.Inherit(r.Style)
}

// LineHeight returns the number of lines used by the row
// including its bottom margin.
func (r Row) LineHeight() int {
	return max(r.Height, 1) + max(r.BottomMargin, 0)
}
