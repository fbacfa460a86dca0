// Package render hands rows produced by datatable.ToDataRow
// implementations to terminal table widgets.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	datatable "github.com/domonda/go-datatable"
)

// DefaultOptions are used by NewWriter.
const DefaultOptions = datatable.OptionHeaderRow | datatable.OptionBorder

// Writer renders rows with a set of options.
// A nil *Writer renders like NewWriter()
// and its With methods return a modified NewWriter().
type Writer struct {
	options  datatable.Option
	border   lipgloss.Border
	widths   []int
	selected int
}

// NewWriter returns a Writer with a header row,
// a rounded border and no selected row.
func NewWriter() *Writer {
	return &Writer{
		options:  DefaultOptions,
		border:   lipgloss.RoundedBorder(),
		selected: -1,
	}
}

func (w *Writer) WithOptions(options datatable.Option) *Writer {
	w = w.orNew()
	w.options = options
	return w
}

func (w *Writer) WithBorder(border lipgloss.Border) *Writer {
	w = w.orNew()
	w.border = border
	w.options |= datatable.OptionBorder
	return w
}

// WithWidths sets width hints that are resolved
// with datatable.ResolveWidths for every rendering.
func (w *Writer) WithWidths(widths []int) *Writer {
	w = w.orNew()
	w.widths = widths
	return w
}

// WithSelected sets the index of the selected row,
// a negative index selects no row.
func (w *Writer) WithSelected(index int) *Writer {
	w = w.orNew()
	w.selected = index
	return w
}

func (w *Writer) orNew() *Writer {
	if w == nil {
		return NewWriter()
	}
	return w
}

// withHints returns a copy of w using hints
// if w has no widths set.
func (w *Writer) withHints(hints []int) *Writer {
	c := *w.orNew()
	if len(c.widths) == 0 {
		c.widths = hints
	}
	return &c
}

func (w *Writer) resolveWidths(columns []datatable.DataColumn, rows []datatable.Row) []int {
	return datatable.ResolveWidths(w.widths, columns, rows)
}

// Table renders columns and rows as lipgloss table.
func (w *Writer) Table(columns []datatable.DataColumn, rows []datatable.Row, styling *datatable.Styling) string {
	w = w.orNew()
	widths := w.resolveWidths(columns, rows)
	if len(widths) == 0 {
		return ""
	}

	t := table.New()
	if w.options.Has(datatable.OptionBorder) {
		t = t.Border(w.border).
			BorderStyle(lipgloss.NewStyle().Foreground(styling.HeaderStyle().GetForeground()))
	} else {
		t = t.BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false).
			BorderHeader(false).
			BorderColumn(false)
	}
	if w.options.Has(datatable.OptionHeaderRow) {
		titles := make([]string, len(widths))
		for col := range titles {
			if col < len(columns) {
				titles[col] = datatable.TruncateCell(columns[col].Title, widths[col])
			}
		}
		t = t.Headers(titles...)
	}
	for _, row := range rows {
		cells := make([]string, len(widths))
		for col, width := range widths {
			cells[col] = truncateLines(row.Content(col), width)
		}
		t = t.Row(cells...)
	}

	t = t.StyleFunc(func(r, c int) lipgloss.Style {
		width := 0
		if c < len(widths) {
			width = widths[c] + 2
		}
		if r == table.HeaderRow {
			return styling.HeaderStyle().Padding(0, 1).Width(width)
		}
		if r < 0 || r >= len(rows) {
			return lipgloss.NewStyle().Padding(0, 1).Width(width)
		}
		style := w.cellStyle(rows[r], r, c, columns, styling)
		if h := rows[r].Height; h > 1 {
			style = style.Height(h)
		}
		return style.Padding(0, 1).Width(width)
	})
	return t.Render()
}

func (w *Writer) cellStyle(row datatable.Row, index, col int, columns []datatable.DataColumn, styling *datatable.Styling) lipgloss.Style {
	style := row.CellStyle(col)
	if index == w.selected {
		style = styling.SelectedStyle().Inherit(style)
	}
	if w.options.Has(datatable.OptionZebra) {
		style = style.Inherit(styling.RowStyle(index))
	}
	if col < len(columns) {
		style = style.Inherit(lipgloss.NewStyle().Align(columns[col].Align))
	}
	return style
}

// Lines renders every row as a single styled line of padded cells
// optionally preceded by a header line.
//
// The selected row is prefixed with the highlight symbol of styling
// and rendered with its selected style.
// Only the alignment of cell styles is used,
// the row style is applied to the whole line.
func (w *Writer) Lines(columns []datatable.DataColumn, rows []datatable.Row, styling *datatable.Styling) []string {
	w = w.orNew()
	widths := w.resolveWidths(columns, rows)
	if len(widths) == 0 {
		return nil
	}
	lineWidth := lipgloss.Width(styling.Highlight(false)) + 2*(len(widths)-1)
	for _, width := range widths {
		lineWidth += width
	}

	var lines []string
	if w.options.Has(datatable.OptionHeaderRow) {
		titles := make([]string, len(widths))
		for col, width := range widths {
			title, align := "", lipgloss.Left
			if col < len(columns) {
				title, align = columns[col].Title, columns[col].Align
			}
			titles[col] = datatable.PadCell(title, width, align)
		}
		header := styling.Highlight(false) + strings.Join(titles, "  ")
		lines = append(lines, styling.HeaderStyle().Width(lineWidth).Render(header))
	}

	for i, row := range rows {
		selected := i == w.selected
		cells := make([]string, len(widths))
		for col, width := range widths {
			align := lipgloss.Left
			if col < len(columns) {
				align = columns[col].Align
			}
			content := strings.ReplaceAll(row.Content(col), "\n", " ")
			cells[col] = datatable.PadCell(content, width, align)
		}
		style := row.Style
		switch {
		case selected:
			style = styling.SelectedStyle().Inherit(style)
		case w.options.Has(datatable.OptionZebra):
			style = style.Inherit(styling.RowStyle(i))
		}
		style = style.Width(lineWidth)
		lines = append(lines, style.Render(styling.Highlight(selected)+strings.Join(cells, "  ")))
		for range row.Height - 1 {
			lines = append(lines, style.Render(""))
		}
		for range row.BottomMargin {
			lines = append(lines, "")
		}
	}
	return lines
}

// Write writes a lipgloss table to dest if dest is a terminal,
// else a plain text table without ANSI escape sequences.
func (w *Writer) Write(dest io.Writer, columns []datatable.DataColumn, rows []datatable.Row, styling *datatable.Styling) error {
	w = w.orNew()
	if !IsTerminal(dest) {
		return writePlain(dest, columns, rows, w.options.Has(datatable.OptionHeaderRow))
	}
	_, err := io.WriteString(dest, w.Table(columns, rows, styling)+"\n")
	return err
}

// IsTerminal returns true if dest is a file descriptor of a terminal.
func IsTerminal(dest io.Writer) bool {
	f, ok := dest.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func truncateLines(content string, width int) string {
	if !strings.ContainsRune(content, '\n') {
		return datatable.TruncateCell(content, width)
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = datatable.TruncateCell(line, width)
	}
	return strings.Join(lines, "\n")
}
