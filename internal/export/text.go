package export

import (
	"fmt"
	"strings"

	"github.com/matsen/affil/internal/reference"
)

// Text renders a plain-text author block:
//
//	Jane Q. Doe^1,2, Bob Lee^2, Ann Ray
//
//	1. MIT, Cambridge 02139, USA
//	2. Stanford
func Text(bindings []reference.Binding, affiliations []string) string {
	names := make([]string, len(bindings))
	for i, bnd := range bindings {
		names[i] = bnd.FullName
		if bnd.HasAffiliations() {
			names[i] += "^" + JoinIDs(bnd.IDs, ",")
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(names, ", "))
	b.WriteString("\n")
	if len(affiliations) > 0 {
		b.WriteString("\n")
	}
	for i, aff := range affiliations {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, aff))
	}
	return b.String()
}
