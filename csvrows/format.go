// Package csvrows reads CSV data as records
// that can be displayed as rows of a data table.
package csvrows

import (
	"errors"
	"fmt"
)

// Format describes the encoding and separator of CSV data.
type Format struct {
	// Encoding of the CSV data as understood by
	// github.com/domonda/go-types/charset.
	// Common values: "UTF-8", "UTF-16LE", "ISO 8859-1", "Windows 1252", "Macintosh"
	Encoding string `json:"encoding"`

	// Separator is the field delimiter character.
	// Common values: "," (comma), ";" (semicolon), "\t" (tab)
	Separator string `json:"separator"`

	// NoHeader is true if the first record is data
	// instead of column titles.
	NoHeader bool `json:"noHeader,omitempty"`
}

// NewFormat returns a UTF-8 Format with the passed separator
// and a header line.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
	}
}

// Validate checks if the Format configuration is valid.
// It can be safely called on a nil receiver.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvrows.Format")
	case f.Encoding == "":
		return errors.New("missing csvrows.Format.Encoding")
	case f.Separator == "":
		return errors.New("missing csvrows.Format.Separator")
	case len([]rune(f.Separator)) != 1:
		return fmt.Errorf("invalid csvrows.Format.Separator: %q", f.Separator)
	case f.Separator == `"` || f.Separator == "\n" || f.Separator == "\r":
		return fmt.Errorf("invalid csvrows.Format.Separator: %q", f.Separator)
	}
	return nil
}

func (f *Format) separatorRune() rune {
	return []rune(f.Separator)[0]
}
