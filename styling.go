package datatable

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styling holds the presentation rules applied to a data table.
//
// nil is a valid value for *Styling and results
// in unstyled rows without a highlight symbol.
type Styling struct {
	Header   lipgloss.Style
	Row      lipgloss.Style
	AltRow   lipgloss.Style
	Selected lipgloss.Style
	// HighlightSymbol is prefixed to the selected row.
	HighlightSymbol string
	// Zebra enables AltRow for every odd row index.
	Zebra bool
}

var (
	primaryColor = lipgloss.Color("#7D56F4")
	altRowColor  = lipgloss.Color("#0A0A0A")
	textColor    = lipgloss.Color("#FFFFFF")
)

// DefaultStyling returns a Styling with a bold purple header,
// zebra striped rows and a purple selection.
func DefaultStyling() *Styling {
	return &Styling{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor),
		Row: lipgloss.NewStyle(),
		AltRow: lipgloss.NewStyle().
			Background(altRowColor),
		Selected: lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(textColor).
			Bold(true),
		HighlightSymbol: "> ",
		Zebra:           true,
	}
}

// RowStyle returns the style for the row at index.
func (s *Styling) RowStyle(index int) lipgloss.Style {
	if s == nil {
		return lipgloss.NewStyle()
	}
	if s.Zebra && index%2 == 1 {
		return s.AltRow
	}
	return s.Row
}

// HeaderStyle returns the style for the header row.
func (s *Styling) HeaderStyle() lipgloss.Style {
	if s == nil {
		return lipgloss.NewStyle()
	}
	return s.Header
}

// SelectedStyle returns the style for the selected row.
func (s *Styling) SelectedStyle() lipgloss.Style {
	if s == nil {
		return lipgloss.NewStyle()
	}
	return s.Selected
}

// Highlight returns the symbol prefixed to the selected row
// or spaces of the same width for other rows.
func (s *Styling) Highlight(selected bool) string {
	if s == nil || s.HighlightSymbol == "" {
		return ""
	}
	if selected {
		return s.HighlightSymbol
	}
	return strings.Repeat(" ", lipgloss.Width(s.HighlightSymbol))
}
