package csvrows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fs "github.com/ungerik/go-fs"
)

func TestFormat_Validate(t *testing.T) {
	tests := []struct {
		name    string
		format  *Format
		wantErr bool
	}{
		{name: "nil", format: nil, wantErr: true},
		{name: "comma", format: NewFormat(","), wantErr: false},
		{name: "tab", format: NewFormat("\t"), wantErr: false},
		{name: "missing encoding", format: &Format{Separator: ","}, wantErr: true},
		{name: "missing separator", format: &Format{Encoding: "UTF-8"}, wantErr: true},
		{name: "long separator", format: NewFormat(";;"), wantErr: true},
		{name: "quote separator", format: NewFormat(`"`), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.format.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		csv         string
		format      *Format
		wantHeader  []string
		wantRecords []Record
		wantErr     bool
	}{
		{
			name:   "empty",
			csv:    "",
			format: NewFormat(","),
		},
		{
			name:        "header and records",
			csv:         "Name,Age\r\nJohn,30\r\nJane,25\r\n",
			format:      NewFormat(","),
			wantHeader:  []string{"Name", "Age"},
			wantRecords: []Record{{"John", "30"}, {"Jane", "25"}},
		},
		{
			name:        "semicolon with BOM, quotes and empty lines",
			csv:         "\xef\xbb\xbfName;Note\n\n\"Doe; John\";\"Say \"\"Hi\"\"\"\n;\n",
			format:      NewFormat(";"),
			wantHeader:  []string{"Name", "Note"},
			wantRecords: []Record{{"Doe; John", `Say "Hi"`}},
		},
		{
			name:        "ragged records",
			csv:         "a,b,c\n1\n1,2,3,4\n",
			format:      NewFormat(","),
			wantHeader:  []string{"a", "b", "c"},
			wantRecords: []Record{{"1"}, {"1", "2", "3", "4"}},
		},
		{
			name:        "no header",
			csv:         "1,2\n3,4\n",
			format:      &Format{Encoding: "UTF-8", Separator: ",", NoHeader: true},
			wantRecords: []Record{{"1", "2"}, {"3", "4"}},
		},
		{
			name:        "Windows 1252",
			csv:         "Stadt\nWien\nM\xfcnchen\n",
			format:      &Format{Encoding: "Windows 1252", Separator: ","},
			wantHeader:  []string{"Stadt"},
			wantRecords: []Record{{"Wien"}, {"München"}},
		},
		{
			name:    "unknown encoding",
			csv:     "a\n",
			format:  &Format{Encoding: "EBCDIC-Martian", Separator: ","},
			wantErr: true,
		},
		{
			name:    "invalid format",
			csv:     "a\n",
			format:  nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, records, err := Parse([]byte(tt.csv), tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, header)
			assert.Equal(t, tt.wantRecords, records)
		})
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(path, []byte("Name;City\nAnna;Graz\n"), 0o600))

	header, records, err := Read(fs.File(path), NewFormat(";"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "City"}, header)
	assert.Equal(t, []Record{{"Anna", "Graz"}}, records)

	_, _, err = Read(fs.File(filepath.Join(t.TempDir(), "missing.csv")), NewFormat(";"))
	assert.Error(t, err)
}
