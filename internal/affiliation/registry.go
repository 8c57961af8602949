// Package affiliation numbers distinct affiliations in first-seen order and
// binds each author to the numbers of their affiliations.
package affiliation

import (
	"slices"

	"github.com/matsen/affil/internal/reference"
)

// Registry assigns each distinct affiliation string a stable 1-based id.
// Strings are compared byte for byte, so case and inner whitespace matter.
type Registry struct {
	ids   map[string]int
	order []string // order[id-1] is the affiliation with that id
}

// NewRegistry returns an empty registry whose first id will be 1.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]int)}
}

// Register returns the id of aff, assigning the next id if it is new.
func (r *Registry) Register(aff string) int {
	if id, ok := r.ids[aff]; ok {
		return id
	}
	r.order = append(r.order, aff)
	id := len(r.order)
	r.ids[aff] = id
	return id
}

// ID returns the id of a registered affiliation.
func (r *Registry) ID(aff string) (int, bool) {
	id, ok := r.ids[aff]
	return id, ok
}

// Len returns the number of distinct affiliations registered.
func (r *Registry) Len() int {
	return len(r.order)
}

// Affiliations returns the registered affiliations sorted by id.
// The returned slice is a copy.
func (r *Registry) Affiliations() []string {
	return slices.Clone(r.order)
}

// Bind registers every affiliation of rec in order and returns the author's
// binding. The binding is returned even when rec has no affiliations.
func (r *Registry) Bind(rec reference.AuthorRecord) reference.Binding {
	ids := make([]int, 0, len(rec.Affiliations))
	for _, aff := range rec.Affiliations {
		ids = append(ids, r.Register(aff))
	}
	slices.Sort(ids)
	return reference.Binding{
		FullName: rec.FullName,
		IDs:      slices.Compact(ids),
	}
}

// Process numbers the affiliations of records in row order and returns the
// registry with exactly one binding per record, in the same order.
func Process(records []reference.AuthorRecord) (*Registry, []reference.Binding) {
	reg := NewRegistry()
	bindings := make([]reference.Binding, len(records))
	for i, rec := range records {
		bindings[i] = reg.Bind(rec)
	}
	return reg, bindings
}
