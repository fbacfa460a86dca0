package render

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datatable "github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/csvrows"
)

type point struct {
	X, Y int
}

func (p point) ToDataRow(columns []datatable.DataColumn, styling *datatable.Styling, index int) datatable.Row {
	return datatable.NewRow(strconv.Itoa(p.X), strconv.Itoa(p.Y)).WithStyle(styling.RowStyle(index))
}

// narrow hints a width of 3 for its single column
type narrow string

func (n narrow) ToDataRow(columns []datatable.DataColumn, styling *datatable.Styling, index int) datatable.Row {
	return datatable.NewRow(string(n))
}

func (narrow) ColumnWidths(data []narrow) []int { return []int{3} }

func TestWriter_Lines(t *testing.T) {
	columns := datatable.NewColumns("x", "y")
	points := []point{{1, 2}, {30, 4}}

	lines := Lines(NewWriter(), points, columns, nil)
	require.Equal(t, []string{"x   y", "1   2", "30  4"}, lines)

	lines = Lines(NewWriter().WithOptions(0), points, columns, nil)
	require.Equal(t, []string{"1   2", "30  4"}, lines)
}

func TestWriter_LinesSelected(t *testing.T) {
	columns := datatable.NewColumns("Name")
	data := []point{{1, 0}, {2, 0}, {3, 0}}
	styling := &datatable.Styling{
		Header:          lipgloss.NewStyle(),
		Row:             lipgloss.NewStyle(),
		AltRow:          lipgloss.NewStyle(),
		Selected:        lipgloss.NewStyle(),
		HighlightSymbol: "> ",
	}

	lines := Lines(NewWriter().WithSelected(1), data, columns, styling)
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "  Name"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  1"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "> 2"), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "  3"), lines[3])
}

func TestWriter_LinesHeightAndMargin(t *testing.T) {
	rows := []datatable.Row{
		datatable.NewRow("a").WithHeight(2).WithBottomMargin(1),
		datatable.NewRow("b"),
	}
	lines := NewWriter().WithOptions(0).Lines(datatable.NewColumns("x"), rows, nil)
	require.Len(t, lines, 4)
	assert.Equal(t, "a", lines[0])
	assert.Empty(t, strings.TrimSpace(lines[1]), "second line of row with height 2")
	assert.Equal(t, "", lines[2], "bottom margin")
	assert.Equal(t, "b", lines[3])
}

func TestWriter_Table(t *testing.T) {
	columns := datatable.NewColumns("Name", "City")
	records := []csvrows.Record{{"Anna", "Graz"}, {"Bernhard", "Wien"}}

	out := Table(NewWriter(), records, columns, datatable.DefaultStyling())
	for _, s := range []string{"Name", "City", "Anna", "Graz", "Bernhard", "Wien", "╭", "╯"} {
		assert.Contains(t, out, s)
	}

	out = Table(NewWriter().WithOptions(datatable.OptionHeaderRow), records, columns, nil)
	assert.Contains(t, out, "Bernhard")
	assert.NotContains(t, out, "│")

	out = Table(NewWriter().WithBorder(lipgloss.NormalBorder()), records, columns, nil)
	assert.Contains(t, out, "┌")

	assert.Equal(t, "", NewWriter().Table(nil, nil, nil))
}

func TestWriter_WidthHints(t *testing.T) {
	columns := datatable.NewColumns("v")
	data := []narrow{"abcdef", "ab"}

	out := Table(NewWriter(), data, columns, nil)
	assert.Contains(t, out, "ab…")
	assert.NotContains(t, out, "abcdef")

	out = Table(NewWriter().WithWidths([]int{6}), data, columns, nil)
	assert.Contains(t, out, "abcdef", "writer widths take precedence")

	lines := Lines(NewWriter().WithOptions(0), data, columns, nil)
	assert.Equal(t, []string{"ab…", "ab "}, lines)
}

func TestWriter_Nil(t *testing.T) {
	var w *Writer
	out := w.Table(datatable.NewColumns("a"), []datatable.Row{datatable.NewRow("1")}, nil)
	assert.Contains(t, out, "1")

	assert.Equal(t, NewWriter().WithSelected(2), w.WithSelected(2))
	assert.Equal(t, NewWriter().WithOptions(datatable.OptionZebra), w.WithOptions(datatable.OptionZebra))
	assert.Equal(t, NewWriter().WithWidths([]int{3}), w.WithWidths([]int{3}))
	assert.Equal(t, NewWriter().WithBorder(lipgloss.NormalBorder()), w.WithBorder(lipgloss.NormalBorder()))
	assert.Nil(t, w, "receiver unchanged")
}

func TestWrite_NotTerminal(t *testing.T) {
	var buf bytes.Buffer
	columns := []datatable.DataColumn{{Title: "x"}, {Title: "y", Align: lipgloss.Right}}

	err := Write(&buf, NewWriter(), []point{{1, 2}, {30, 4}}, columns, datatable.DefaultStyling())
	require.NoError(t, err)

	out := buf.String()
	assert.False(t, IsTerminal(&buf))
	assert.NotContains(t, out, "\x1b")
	for _, s := range []string{"x", "y", "30", "4"} {
		assert.Contains(t, out, s)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestWritePlain(t *testing.T) {
	var buf bytes.Buffer
	rows := []datatable.Row{datatable.NewRow("1", "2", "3")}

	require.NoError(t, WritePlain(&buf, datatable.NewColumns("a", "b"), rows))
	assert.Contains(t, buf.String(), "| a ")
	assert.Contains(t, buf.String(), "| 3 ")

	assert.ErrorIs(t, WritePlain(failWriter{}, datatable.NewColumns("a"), rows), assert.AnError)

	buf.Reset()
	require.NoError(t, WritePlain(&buf, nil, nil))
	assert.Empty(t, buf.String())
}
