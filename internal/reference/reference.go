// Package reference defines the core domain types for author rosters.
package reference

// AuthorRecord is one author extracted from a roster row.
type AuthorRecord struct {
	FullName     string   `json:"full_name"`
	Affiliations []string `json:"affiliations"` // Formatted, in column-group order
}

// Binding associates an author with the ids of their affiliations.
type Binding struct {
	FullName string `json:"full_name"`
	IDs      []int  `json:"ids"` // Ascending, no duplicates; empty when unaffiliated
}

// HasAffiliations reports whether the author has at least one affiliation id.
func (b Binding) HasAffiliations() bool {
	return len(b.IDs) > 0
}
