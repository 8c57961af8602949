// Package importer loads author rosters from delimited text and extracts
// author records from them.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDelimiter separates roster fields.
const DefaultDelimiter = ';'

// RosterExt is the only accepted roster file extension.
const RosterExt = ".csv"

// Column names as they appear after header normalization.
const (
	ColFirstName = "First Name"
	ColMiddle    = "Middle Name"
	ColLastName  = "Last Name"
	ColInstitute = "Institute/Department/University"
	ColCity      = "City/State"
	ColPostcode  = "Post/Zip Code"
	ColCountry   = "Country"
)

// RequiredColumns lists the base columns every roster header must contain.
var RequiredColumns = []string{
	ColFirstName, ColMiddle, ColLastName,
	ColInstitute, ColCity, ColPostcode, ColCountry,
}

var utf8BOM = []byte("\xef\xbb\xbf")

// Table is a roster loaded into memory.
type Table struct {
	Header []string   // Normalized column names
	Rows   [][]string // Raw cell values; rows may be shorter than Header
	index  map[string]int
}

// NewTable builds a Table from an already-normalized header and rows.
// When a column name repeats, lookups resolve to its first occurrence.
func NewTable(header []string, rows [][]string) *Table {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	return &Table{Header: header, Rows: rows, index: index}
}

// Column returns the index of a normalized column name.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Cell returns the value at col in row, or "" when col is -1 or past the
// end of a short row.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// NormalizeColumn trims a header name and converts it to title case,
// so "post/zip code" and "POST/ZIP CODE" both become "Post/Zip Code".
func NormalizeColumn(name string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}

// LoadRoster reads a delimited roster file from disk.
func LoadRoster(path string, delimiter rune) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &InputNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("checking input file: %w", err)
	}
	if info.IsDir() {
		return nil, &UnsupportedFormatError{Path: path, Reason: "path is a directory"}
	}
	if !strings.EqualFold(filepath.Ext(path), RosterExt) {
		return nil, &UnsupportedFormatError{Path: path, Reason: "input file is not " + RosterExt}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	table, err := ParseRoster(f, delimiter)
	if err != nil {
		var formatErr *UnsupportedFormatError
		if errors.As(err, &formatErr) {
			formatErr.Path = path
		}
		return nil, err
	}
	return table, nil
}

// ParseRoster decodes delimited text with a header row into a Table.
// A leading UTF-8 byte order mark is ignored and blank lines are skipped.
func ParseRoster(r io.Reader, delimiter rune) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &UnsupportedFormatError{Reason: "file is empty"}
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rawHeader, err := cr.Read()
	if err != nil {
		return nil, &UnsupportedFormatError{Reason: fmt.Sprintf("reading header: %v", err)}
	}
	header := make([]string, len(rawHeader))
	for i, name := range rawHeader {
		header[i] = NormalizeColumn(name)
	}

	var rows [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &UnsupportedFormatError{Reason: fmt.Sprintf("reading row: %v", err)}
		}
		rows = append(rows, record)
	}

	return NewTable(header, rows), nil
}

// ValidateColumns checks that every required base column is present.
func ValidateColumns(t *Table) error {
	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := t.Column(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		provided := make([]string, len(t.Header))
		copy(provided, t.Header)
		return &SchemaError{Missing: missing, Provided: provided}
	}
	return nil
}
