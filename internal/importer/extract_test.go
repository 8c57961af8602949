package importer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/matsen/affil/internal/reference"
)

func mustParse(t *testing.T, content string) *Table {
	t.Helper()
	table, err := ParseRoster(strings.NewReader(content), DefaultDelimiter)
	require.NoError(t, err)
	return table
}

func TestDiscoverSuffixes(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   []string
	}{
		{
			name:   "base group only",
			header: []string{"First Name", "Country"},
			want:   []string{""},
		},
		{
			name:   "numbered groups in header order",
			header: []string{"Country", "Institute/Department/University2", "Country2", "Country3"},
			want:   []string{"", "2", "3"},
		},
		{
			name:   "non-numeric suffixes and duplicates",
			header: []string{"Country_b", "Country", "Country_a", "Country_b"},
			want:   []string{"", "_b", "_a"},
		},
		{
			name:   "country must start the name",
			header: []string{"Home Country", "Country"},
			want:   []string{""},
		},
		{
			name:   "empty header still yields base group",
			header: nil,
			want:   []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, DiscoverSuffixes(tt.header)); diff != "" {
				t.Errorf("DiscoverSuffixes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildAffiliation(t *testing.T) {
	tests := []struct {
		name                               string
		institute, city, postcode, country string
		want                               string
	}{
		{"all parts", "MIT", "Cambridge", "02139", "USA", "MIT, Cambridge 02139, USA"},
		{"institute only", "MIT", "", "", "", "MIT"},
		{"no institute drops group", "", "Cambridge", "02139", "USA", ""},
		{"whitespace institute drops group", "   ", "Cambridge", "", "USA", ""},
		{"city and country", "MIT", "Cambridge", "", "USA", "MIT, Cambridge, USA"},
		{"postcode without city", "ETH", "", "8092", "Switzerland", "ETH 8092, Switzerland"},
		{"fields are trimmed", " MIT ", " Cambridge", "02139 ", "  USA", "MIT, Cambridge 02139, USA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildAffiliation(tt.institute, tt.city, tt.postcode, tt.country))
		})
	}
}

func TestResolveGroups(t *testing.T) {
	table := mustParse(t, baseHeader+";Institute/Department/University2;Country2\n")

	groups, missing := ResolveGroups(table, DiscoverSuffixes(table.Header))
	require.Len(t, groups, 2)

	assert.Equal(t, Group{Suffix: "", Institute: 3, City: 4, Postcode: 5, Country: 6}, groups[0])
	assert.Equal(t, Group{Suffix: "2", Institute: 7, City: -1, Postcode: -1, Country: 8}, groups[1])
	assert.Equal(t, []string{"City/State2", "Post/Zip Code2"}, missing)
}

func TestNewExtractor_LogsMissingGroupColumns(t *testing.T) {
	table := mustParse(t, baseHeader+";Country2\n")
	core, logs := observer.New(zap.WarnLevel)

	_, err := NewExtractor(table, zap.New(core))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "Institute/Department/University2", entries[0].ContextMap()["column"])
}

func TestNewExtractor_SchemaError(t *testing.T) {
	table := mustParse(t, "First Name;Last Name\n")

	_, err := NewExtractor(table, nil)
	require.Error(t, err)
	assert.True(t, IsSchemaError(err))
}

func TestExtract(t *testing.T) {
	input := baseHeader + ";Institute/Department/University2;City/State2;Post/Zip Code2;Country2\n" +
		"Jane;Q;Doe;MIT;Cambridge;02139;USA;Broad Institute;Cambridge;;USA\n" +
		";;;Orphan Institute;;;\n" +
		"Bob;;Lee;;;;;Stanford;;;\n" +
		"  ; ;Solo\n" +
		"Ann;;Ray\n"

	ex, err := Extract(mustParse(t, input), nil)
	require.NoError(t, err)

	want := []reference.AuthorRecord{
		{FullName: "Jane Q. Doe", Affiliations: []string{"MIT, Cambridge 02139, USA", "Broad Institute, Cambridge, USA"}},
		{FullName: "Bob Lee", Affiliations: []string{"Stanford"}},
		{FullName: "Solo", Affiliations: []string{}},
		{FullName: "Ann Ray", Affiliations: []string{}},
	}
	if diff := cmp.Diff(want, ex.Records); diff != "" {
		t.Errorf("Extract() records mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, ex.Skipped)
	assert.Len(t, ex.Groups, 2)
}

func TestExtractor_FilterAuthors(t *testing.T) {
	table := mustParse(t, baseHeader+"\n"+
		";;;MIT;;;\n"+
		" ;\t; ;MIT;;;\n"+
		";Q;;;;;\n")

	e, err := NewExtractor(table, nil)
	require.NoError(t, err)

	kept, skipped := e.FilterAuthors(table.Rows)
	assert.Equal(t, 2, skipped)
	require.Len(t, kept, 1)
	assert.Equal(t, "Q.", e.Record(kept[0]).FullName)
}
