package csvrows

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/domonda/go-types/charset"
	fs "github.com/ungerik/go-fs"

	datatable "github.com/domonda/go-datatable"
)

// Parse decodes CSV data in the passed format.
//
// If format.NoHeader is false then the first non empty record
// is returned as header. Empty records are skipped,
// records may have different numbers of fields.
func Parse(data []byte, format *Format) (header []string, records []Record, err error) {
	err = format.Validate()
	if err != nil {
		return nil, nil, err
	}
	data, err = decode(data, format.Encoding)
	if err != nil {
		return nil, nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = format.separatorRune()
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("can't parse CSV: %w", err)
		}
		record := Record(fields)
		if record.IsEmpty() {
			continue
		}
		if header == nil && !format.NoHeader {
			header = fields
			continue
		}
		records = append(records, record)
	}
	datatable.Logger().Debug("parsed CSV", "encoding", format.Encoding, "columns", len(header), "records", len(records))
	return header, records, nil
}

// Read reads and parses a CSV file in the passed format.
func Read(file fs.FileReader, format *Format) (header []string, records []Record, err error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("can't read CSV file: %w", err)
	}
	header, records, err = Parse(data, format)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", file.Name(), err)
	}
	return header, records, nil
}

func decode(data []byte, encoding string) ([]byte, error) {
	if encoding == "UTF-8" {
		data = charset.TrimBOM(data, charset.BOMUTF8)
	} else {
		enc, err := charset.GetEncoding(encoding)
		if err != nil {
			return nil, err
		}
		data, err = enc.Decode(data)
		if err != nil {
			return nil, err
		}
	}
	if !utf8.Valid(data) {
		data = bytes.ToValidUTF8(data, []byte(string(utf8.RuneError)))
	}
	return data, nil
}
