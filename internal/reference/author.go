package reference

// Author holds the raw name fields of a roster row.
// Empty strings mean the field was not provided.
type Author struct {
	First  string `json:"first"`            // First/given name
	Middle string `json:"middle,omitempty"` // Middle initials, one rune per initial
	Last   string `json:"last"`             // Last/family name
}

// IsBlank reports whether none of the name fields are set.
func (a Author) IsBlank() bool {
	return a.First == "" && a.Middle == "" && a.Last == ""
}
