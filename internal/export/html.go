// Package export renders author bindings and numbered affiliations.
package export

import (
	"strconv"
	"strings"

	"github.com/matsen/affil/internal/reference"
)

// Fixed HTML fragments. Consumers of the generated file depend on this
// exact layout, so names and affiliations are inserted verbatim.
const (
	htmlHead = "<!DOCTYPE html>\n<html>\n<body>\n<div></div>\n\n" +
		`<div style="font-size: 16px; margin-left: 10px">`
	htmlMiddle = "</div>\n\n<div></div><div></div>" +
		`<div style="font-size: 12px; margin-left: 20px">` + "\n\n<ol>"
	htmlTail = "</ol>\n<br>\n</body>\n</html>"
)

// HTML renders the author paragraph followed by the ordered affiliation
// list. affiliations must be sorted by id, as returned by
// Registry.Affiliations, so that list position equals affiliation id.
func HTML(bindings []reference.Binding, affiliations []string) string {
	var b strings.Builder

	b.WriteString(htmlHead)
	for _, bnd := range bindings {
		b.WriteString(bnd.FullName)
		if bnd.HasAffiliations() {
			b.WriteString("<sup>")
			b.WriteString(JoinIDs(bnd.IDs, ","))
			b.WriteString("</sup>")
		}
		b.WriteString(", ")
	}

	b.WriteString(htmlMiddle)
	for _, aff := range affiliations {
		b.WriteString("\t<li>")
		b.WriteString(aff)
		b.WriteString("</li>\n")
	}
	b.WriteString(htmlTail)

	return b.String()
}

// JoinIDs formats affiliation ids as decimal integers joined by sep.
func JoinIDs(ids []int, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, sep)
}
