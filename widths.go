package datatable

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended by TruncateCell to shortened content.
const Ellipsis = "…"

// ContentWidths returns the display width of every column
// as the maximum of the title and all cell contents of the column.
// ANSI escape sequences are not counted and wide runes count double.
//
// A column's MinWidth is the lower bound of its width,
// a positive Width is used as is.
func ContentWidths(columns []DataColumn, rows []Row) []int {
	numCols := len(columns)
	if numCols == 0 {
		for _, row := range rows {
			numCols = max(numCols, row.NumCells())
		}
		if numCols == 0 {
			return nil
		}
	}
	widths := make([]int, numCols)
	for col := range columns {
		widths[col] = lipgloss.Width(columns[col].Title)
	}
	for _, row := range rows {
		for col := 0; col < numCols && col < len(row.Cells); col++ {
			widths[col] = max(widths[col], cellWidth(row.Cells[col].Content))
		}
	}
	for col := range columns {
		switch {
		case columns[col].Width > 0:
			widths[col] = columns[col].Width
		case widths[col] < columns[col].MinWidth:
			widths[col] = columns[col].MinWidth
		}
	}
	return widths
}

// cellWidth returns the width of the widest line of content.
func cellWidth(content string) int {
	if !strings.ContainsRune(content, '\n') {
		return lipgloss.Width(content)
	}
	width := 0
	for line := range strings.SplitSeq(content, "\n") {
		width = max(width, lipgloss.Width(line))
	}
	return width
}

// ResolveWidths implements the default sizing policy
// for width hints as returned by ColumnWidths.
//
// If there is one hint per column then positive hints are used,
// clamped by the MinWidth of the column.
// Non positive hints and missing or surplus hints
// result in ContentWidths being used.
func ResolveWidths(hints []int, columns []DataColumn, rows []Row) []int {
	widths := ContentWidths(columns, rows)
	if len(hints) == 0 || len(hints) != len(widths) {
		if len(hints) > 0 {
			Logger().Debug("ignoring column width hints", "hints", len(hints), "columns", len(widths))
		}
		return widths
	}
	for col, hint := range hints {
		if hint <= 0 {
			continue
		}
		widths[col] = hint
		if col < len(columns) && widths[col] < columns[col].MinWidth {
			widths[col] = columns[col].MinWidth
		}
	}
	return widths
}

// TruncateCell shortens content to the display width
// ending it with Ellipsis if it had to be truncated.
// A width less or equal zero returns content unchanged.
func TruncateCell(content string, width int) string {
	if width <= 0 || runewidth.StringWidth(content) <= width {
		return content
	}
	if width <= runewidth.StringWidth(Ellipsis) {
		return runewidth.Truncate(content, width, "")
	}
	return runewidth.Truncate(content, width, Ellipsis)
}

// PadCell truncates or right pads content to exactly width
// respecting the horizontal alignment.
func PadCell(content string, width int, align lipgloss.Position) string {
	content = TruncateCell(content, width)
	gap := width - runewidth.StringWidth(content)
	if gap <= 0 {
		return content
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", gap) + content
	case lipgloss.Center:
		left := gap / 2
		return strings.Repeat(" ", left) + content + strings.Repeat(" ", gap-left)
	default:
		return content + strings.Repeat(" ", gap)
	}
}
