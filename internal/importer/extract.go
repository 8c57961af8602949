package importer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/matsen/affil/internal/author"
	"github.com/matsen/affil/internal/reference"
)

// Group holds the column indexes of one repeated affiliation group.
// An index of -1 means the column is absent from the header.
type Group struct {
	Suffix    string
	Institute int
	City      int
	Postcode  int
	Country   int
}

// DiscoverSuffixes returns the suffixes of the affiliation column groups.
//
// Every header name starting with "Country" contributes the rest of the
// name as a suffix ("Country2" -> "2"). Suffixes are distinct, in header
// order, and the empty suffix of the base group always comes first.
func DiscoverSuffixes(header []string) []string {
	suffixes := []string{""}
	seen := map[string]bool{"": true}
	for _, name := range header {
		suffix, ok := strings.CutPrefix(name, ColCountry)
		if !ok || seen[suffix] {
			continue
		}
		seen[suffix] = true
		suffixes = append(suffixes, suffix)
	}
	return suffixes
}

// ResolveGroups maps each suffix to the column indexes of its group.
// It also returns the suffixed column names that are missing from t.
func ResolveGroups(t *Table, suffixes []string) ([]Group, []string) {
	var missing []string
	lookup := func(base, suffix string) int {
		if i, ok := t.Column(base + suffix); ok {
			return i
		}
		missing = append(missing, base+suffix)
		return -1
	}

	groups := make([]Group, len(suffixes))
	for i, suffix := range suffixes {
		groups[i] = Group{
			Suffix:    suffix,
			Institute: lookup(ColInstitute, suffix),
			City:      lookup(ColCity, suffix),
			Postcode:  lookup(ColPostcode, suffix),
			Country:   lookup(ColCountry, suffix),
		}
	}
	return groups, missing
}

// BuildAffiliation formats one affiliation as
// "<institute>, <city> <postcode>, <country>".
//
// Fields are trimmed; each optional part is appended only when present.
// Without an institute the whole group is dropped and "" is returned.
func BuildAffiliation(institute, city, postcode, country string) string {
	institute = strings.TrimSpace(institute)
	if institute == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(institute)
	if city = strings.TrimSpace(city); city != "" {
		b.WriteString(", ")
		b.WriteString(city)
	}
	if postcode = strings.TrimSpace(postcode); postcode != "" {
		b.WriteString(" ")
		b.WriteString(postcode)
	}
	if country = strings.TrimSpace(country); country != "" {
		b.WriteString(", ")
		b.WriteString(country)
	}
	return b.String()
}

// Extractor turns roster rows into author records.
type Extractor struct {
	first, middle, last int
	groups              []Group
}

// NewExtractor validates the roster header and resolves its column layout.
// Suffixed columns missing from the header are logged and read as empty.
func NewExtractor(t *Table, logger *zap.Logger) (*Extractor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ValidateColumns(t); err != nil {
		return nil, err
	}

	groups, missing := ResolveGroups(t, DiscoverSuffixes(t.Header))
	for _, name := range missing {
		logger.Warn("affiliation column missing, treating as empty", zap.String("column", name))
	}

	first, _ := t.Column(ColFirstName)
	middle, _ := t.Column(ColMiddle)
	last, _ := t.Column(ColLastName)

	return &Extractor{first: first, middle: middle, last: last, groups: groups}, nil
}

// Groups returns the resolved affiliation groups in column order.
func (e *Extractor) Groups() []Group {
	return e.groups
}

// Author returns the trimmed name fields of a row.
func (e *Extractor) Author(row []string) reference.Author {
	return author.New(Cell(row, e.first), Cell(row, e.middle), Cell(row, e.last))
}

// Affiliations formats every non-empty affiliation group of a row, in
// group order.
func (e *Extractor) Affiliations(row []string) []string {
	affiliations := []string{}
	for _, g := range e.groups {
		aff := BuildAffiliation(
			Cell(row, g.Institute),
			Cell(row, g.City),
			Cell(row, g.Postcode),
			Cell(row, g.Country),
		)
		if aff != "" {
			affiliations = append(affiliations, aff)
		}
	}
	return affiliations
}

// Record builds the author record for a row.
// Rows whose name fields are all empty must be filtered out beforehand.
func (e *Extractor) Record(row []string) reference.AuthorRecord {
	return reference.AuthorRecord{
		FullName:     author.FullName(e.Author(row)),
		Affiliations: e.Affiliations(row),
	}
}

// FilterAuthors drops rows that name nobody and returns the rest in order,
// with the number of rows dropped.
func (e *Extractor) FilterAuthors(rows [][]string) ([][]string, int) {
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if e.Author(row).IsBlank() {
			continue
		}
		kept = append(kept, row)
	}
	return kept, len(rows) - len(kept)
}

// Extraction is the result of extracting a whole roster.
type Extraction struct {
	Records []reference.AuthorRecord
	Groups  []Group
	Skipped int // Rows with no name fields
}

// Extract validates t, drops rows without names, and builds one record per
// remaining row in row order.
func Extract(t *Table, logger *zap.Logger) (*Extraction, error) {
	e, err := NewExtractor(t, logger)
	if err != nil {
		return nil, err
	}

	rows, skipped := e.FilterAuthors(t.Rows)
	records := make([]reference.AuthorRecord, len(rows))
	for i, row := range rows {
		records[i] = e.Record(row)
	}

	return &Extraction{Records: records, Groups: e.groups, Skipped: skipped}, nil
}
