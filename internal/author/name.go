// Package author provides author name normalization and full-name assembly.
package author

import (
	"strings"

	"github.com/matsen/affil/internal/reference"
)

// New builds an Author from raw cell values, trimming each field.
// Whitespace-only values become empty, i.e. not provided.
func New(first, middle, last string) reference.Author {
	return reference.Author{
		First:  strings.TrimSpace(first),
		Middle: strings.TrimSpace(middle),
		Last:   strings.TrimSpace(last),
	}
}

// Name presence flags, combined into a key for FullName's decision table.
const (
	hasFirst = 1 << iota
	hasMiddle
	hasLast
)

// FullName assembles the display name "<First> <M>. <N>. <Last>".
//
// Each rune of the middle field is one initial, so "QR" yields "Q. R.".
// The result for every combination of provided fields:
//
//	first middle last  ->  "Jane Q. R. Doe"
//	first        last  ->  "Jane Doe"
//	first middle       ->  "Jane Q."
//	first              ->  "Jane"
//	      middle last  ->  "Q. Doe"
//	      middle       ->  "Q."
//	             last  ->  "Doe"
//	(none)             ->  ""
func FullName(a reference.Author) string {
	key := 0
	if a.First != "" {
		key |= hasFirst
	}
	if a.Middle != "" {
		key |= hasMiddle
	}
	if a.Last != "" {
		key |= hasLast
	}

	switch key {
	case hasFirst | hasMiddle | hasLast:
		return a.First + " " + Initials(a.Middle) + " " + a.Last
	case hasFirst | hasLast:
		return a.First + " " + a.Last
	case hasFirst | hasMiddle:
		return a.First + " " + Initials(a.Middle)
	case hasFirst:
		return a.First
	case hasMiddle | hasLast:
		return Initials(a.Middle) + " " + a.Last
	case hasMiddle:
		return Initials(a.Middle)
	case hasLast:
		return a.Last
	default:
		return ""
	}
}

// Initials renders each rune of middle as "X." separated by single spaces.
// Runes are taken verbatim; embedded spaces are not collapsed.
func Initials(middle string) string {
	var b strings.Builder
	for i, r := range []rune(middle) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		b.WriteByte('.')
	}
	return b.String()
}
