package csvrows

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/domonda/go-types/charset"

	datatable "github.com/domonda/go-datatable"
)

// Writer writes data table rows as CSV lines.
type Writer struct {
	format           *Format
	quoteAllFields   bool
	quoteEmptyFields bool
	newLine          string
}

// NewWriter returns a Writer for format
// that terminates lines with "\r\n".
func NewWriter(format *Format) *Writer {
	return &Writer{
		format:  format,
		newLine: "\r\n",
	}
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	w.quoteAllFields = quoteAllFields
	return w
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	w.quoteEmptyFields = quoteEmptyFields
	return w
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	w.newLine = newLine
	return w
}

// Write writes the contents of rows to dest.
// The column titles are written as first line
// unless the format has NoHeader set.
// If columns is empty then all cells of the rows are written.
func (w *Writer) Write(ctx context.Context, dest io.Writer, columns []datatable.DataColumn, rows []datatable.Row) error {
	err := w.format.Validate()
	if err != nil {
		return err
	}
	var enc charset.Encoding
	if w.format.Encoding != "UTF-8" {
		enc, err = charset.GetEncoding(w.format.Encoding)
		if err != nil {
			return err
		}
	}

	var (
		rowBuf         = bytes.NewBuffer(make([]byte, 0, 1024))
		delimiter      = w.format.separatorRune()
		mustQuoteChars = "\n\"" + string(delimiter)
	)
	if !w.format.NoHeader && len(columns) > 0 {
		err = w.writeLine(ctx, dest, rowBuf, datatable.ColumnTitles(columns), delimiter, mustQuoteChars, enc)
		if err != nil {
			return err
		}
	}
	for _, row := range rows {
		fields := row.Strings()
		if len(columns) > 0 {
			fields = make([]string, len(columns))
			for col := range fields {
				fields[col] = row.Content(col)
			}
		}
		err = w.writeLine(ctx, dest, rowBuf, fields, delimiter, mustQuoteChars, enc)
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeLine(ctx context.Context, dest io.Writer, rowBuf *bytes.Buffer, fields []string, delimiter rune, mustQuoteChars string, enc charset.Encoding) (err error) {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	for col, str := range fields {
		if col > 0 {
			rowBuf.WriteRune(delimiter)
		}
		// \n alone is valid within quotes
		str = strings.ReplaceAll(str, "\r", "")
		switch {
		case w.quoteAllFields || strings.ContainsAny(str, mustQuoteChars):
			rowBuf.WriteByte('"')
			rowBuf.WriteString(strings.ReplaceAll(str, `"`, `""`))
			rowBuf.WriteByte('"')
		case w.quoteEmptyFields && str == "":
			rowBuf.WriteString(`""`)
		default:
			rowBuf.WriteString(str)
		}
	}
	rowBuf.WriteString(w.newLine)
	line := rowBuf.Bytes()
	rowBuf.Reset()
	if enc != nil {
		line, err = enc.Encode(line)
		if err != nil {
			return err
		}
	}
	_, err = dest.Write(line)
	return err
}

// WriteData converts data with datatable.DataRows
// and writes the rows with w.
func WriteData[T datatable.ToDataRow](ctx context.Context, dest io.Writer, w *Writer, data []T, columns []datatable.DataColumn) error {
	return w.Write(ctx, dest, columns, datatable.DataRows(data, columns, nil))
}
