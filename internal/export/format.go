package export

import (
	"fmt"

	"github.com/matsen/affil/internal/reference"
)

// Output formats.
const (
	FormatHTML = "html"
	FormatText = "text"
)

// ValidFormats lists the supported output format names.
var ValidFormats = []string{FormatHTML, FormatText}

// Extension returns the file extension used for a format.
func Extension(format string) string {
	if format == FormatText {
		return ".txt"
	}
	return ".html"
}

// Render dispatches to the renderer for format.
func Render(format string, bindings []reference.Binding, affiliations []string) (string, error) {
	switch format {
	case "", FormatHTML:
		return HTML(bindings, affiliations), nil
	case FormatText:
		return Text(bindings, affiliations), nil
	default:
		return "", fmt.Errorf("invalid format %q: must be html or text", format)
	}
}
