package datatable

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	fs "github.com/ungerik/go-fs"
)

// ThemeStyle is the TOML representation of a lipgloss.Style.
type ThemeStyle struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Bold       bool   `toml:"bold"`
	Italic     bool   `toml:"italic"`
	Underline  bool   `toml:"underline"`
}

// IsZero returns true if no property of the style is set.
func (t *ThemeStyle) IsZero() bool {
	return t == nil || *t == ThemeStyle{}
}

// Style returns the lipgloss.Style for t.
func (t *ThemeStyle) Style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if t == nil {
		return style
	}
	if t.Foreground != "" {
		style = style.Foreground(lipgloss.Color(t.Foreground))
	}
	if t.Background != "" {
		style = style.Background(lipgloss.Color(t.Background))
	}
	if t.Bold {
		style = style.Bold(true)
	}
	if t.Italic {
		style = style.Italic(true)
	}
	if t.Underline {
		style = style.Underline(true)
	}
	return style
}

// Theme is a TOML configuration of a Styling.
//
// Example:
//
//	highlight_symbol = "> "
//	zebra = true
//
//	[header]
//	foreground = "#7D56F4"
//	bold = true
//
//	[alt_row]
//	background = "#0A0A0A"
type Theme struct {
	Name            string     `toml:"name"`
	HighlightSymbol *string    `toml:"highlight_symbol"`
	Zebra           *bool      `toml:"zebra"`
	Header          ThemeStyle `toml:"header"`
	Row             ThemeStyle `toml:"row"`
	AltRow          ThemeStyle `toml:"alt_row"`
	Selected        ThemeStyle `toml:"selected"`
}

// ParseTheme parses a Theme from TOML data.
func ParseTheme(data []byte) (*Theme, error) {
	var theme Theme
	err := toml.Unmarshal(data, &theme)
	if err != nil {
		return nil, fmt.Errorf("can't parse TOML theme: %w", err)
	}
	return &theme, nil
}

// LoadTheme reads and parses a TOML Theme file.
func LoadTheme(file fs.FileReader) (*Theme, error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("can't read theme file: %w", err)
	}
	theme, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Name(), err)
	}
	Logger().Debug("loaded theme", "file", file.Name(), "name", theme.Name)
	return theme, nil
}

// Styling returns the Styling configured by the theme.
// Styles and settings not present in the theme
// are taken from DefaultStyling.
func (t *Theme) Styling() *Styling {
	styling := DefaultStyling()
	if t == nil {
		return styling
	}
	if !t.Header.IsZero() {
		styling.Header = t.Header.Style()
	}
	if !t.Row.IsZero() {
		styling.Row = t.Row.Style()
	}
	if !t.AltRow.IsZero() {
		styling.AltRow = t.AltRow.Style()
	}
	if !t.Selected.IsZero() {
		styling.Selected = t.Selected.Style()
	}
	if t.HighlightSymbol != nil {
		styling.HighlightSymbol = *t.HighlightSymbol
	}
	if t.Zebra != nil {
		styling.Zebra = *t.Zebra
	}
	return styling
}
