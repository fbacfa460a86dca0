package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	datatable "github.com/domonda/go-datatable"
)

// WritePlain writes columns and rows to dest as plain text table
// with a header row. Styles of the rows are not used.
func WritePlain(dest io.Writer, columns []datatable.DataColumn, rows []datatable.Row) error {
	return writePlain(dest, columns, rows, true)
}

func writePlain(dest io.Writer, columns []datatable.DataColumn, rows []datatable.Row, header bool) error {
	numCols := len(columns)
	for _, row := range rows {
		numCols = max(numCols, row.NumCells())
	}
	if numCols == 0 {
		return nil
	}

	ew := &errWriter{w: dest}
	t := tablewriter.NewWriter(ew)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	if header {
		titles := make([]string, numCols)
		copy(titles, datatable.ColumnTitles(columns))
		t.SetHeader(titles)
	}
	alignment := make([]int, numCols)
	for col := range alignment {
		alignment[col] = tablewriter.ALIGN_LEFT
		if col < len(columns) {
			switch columns[col].Align {
			case lipgloss.Right:
				alignment[col] = tablewriter.ALIGN_RIGHT
			case lipgloss.Center:
				alignment[col] = tablewriter.ALIGN_CENTER
			}
		}
	}
	t.SetColumnAlignment(alignment)
	for _, row := range rows {
		cells := make([]string, numCols)
		for col := range cells {
			cells[col] = row.Content(col)
		}
		t.Append(cells)
	}
	t.Render()
	return ew.err
}

// errWriter keeps the first write error
// because tablewriter does not return errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
