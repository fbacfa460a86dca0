package csvrows

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datatable "github.com/domonda/go-datatable"
)

func TestRecord_ToDataRow(t *testing.T) {
	record := Record{"Anna", "Graz", "extra"}
	columns := []datatable.DataColumn{{Title: "Name"}, {Title: "City", Align: lipgloss.Right}}

	row := record.ToDataRow(columns, nil, 0)
	require.Equal(t, []string{"Anna", "Graz"}, row.Strings())
	assert.Equal(t, lipgloss.Right, row.Cells[1].Style.GetAlignHorizontal())

	row = record.ToDataRow(nil, nil, 0)
	assert.Equal(t, []string{"Anna", "Graz", "extra"}, row.Strings())

	row = Record{"only"}.ToDataRow(datatable.NewColumns("a", "b", "c"), nil, 0)
	assert.Equal(t, []string{"only", "", ""}, row.Strings())
}

func TestRecord_ToDataRowStyling(t *testing.T) {
	styling := datatable.DefaultStyling()
	records := []Record{{"a"}, {"b"}}

	rows := datatable.DataRows(records, datatable.NewColumns("x"), styling)
	assert.Equal(t, styling.Row.GetBackground(), rows[0].Style.GetBackground())
	assert.Equal(t, styling.AltRow.GetBackground(), rows[1].Style.GetBackground())
}

func TestRecord_ColumnWidths(t *testing.T) {
	records := []Record{
		{"a", "bbbb"},
		{"ccc"},
		{"", "", "München"},
	}
	assert.Equal(t, []int{3, 4, 7}, datatable.ColumnWidths(records))
	assert.Empty(t, datatable.ColumnWidths([]Record{}))
}

func TestColumns(t *testing.T) {
	assert.Equal(t, []string{"Name", "City"}, datatable.ColumnTitles(Columns([]string{"Name", "City"})))
}
