package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsen/affil/internal/reference"
)

func TestHTML_SharedAffiliation(t *testing.T) {
	bindings := []reference.Binding{
		{FullName: "Jane Doe", IDs: []int{1}},
		{FullName: "Bob Lee", IDs: []int{1}},
	}

	got := HTML(bindings, []string{"MIT, Cambridge, USA"})

	want := "<!DOCTYPE html>\n<html>\n<body>\n<div></div>\n\n" +
		`<div style="font-size: 16px; margin-left: 10px">` +
		"Jane Doe<sup>1</sup>, Bob Lee<sup>1</sup>, " +
		"</div>\n\n<div></div><div></div>" +
		`<div style="font-size: 12px; margin-left: 20px">` +
		"\n\n<ol>\t<li>MIT, Cambridge, USA</li>\n</ol>\n<br>\n</body>\n</html>"
	assert.Equal(t, want, got)
}

func TestHTML_AuthorBlock(t *testing.T) {
	bindings := []reference.Binding{
		{FullName: "Jane Q. Doe", IDs: []int{1, 3}},
		{FullName: "Ann Ray", IDs: []int{}},
		{FullName: "Bob Lee", IDs: []int{2}},
	}

	got := HTML(bindings, []string{"MIT", "Stanford", "Broad"})

	assert.Contains(t, got, "Jane Q. Doe<sup>1,3</sup>, Ann Ray, Bob Lee<sup>2</sup>, </div>")
	assert.Contains(t, got, "<ol>\t<li>MIT</li>\n\t<li>Stanford</li>\n\t<li>Broad</li>\n</ol>")
	assert.NotContains(t, got, "<sup></sup>")
}

func TestHTML_Empty(t *testing.T) {
	got := HTML(nil, nil)

	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>\n"))
	assert.Contains(t, got, "margin-left: 10px\"></div>")
	assert.Contains(t, got, "<ol></ol>")
}

func TestHTML_VerbatimText(t *testing.T) {
	got := HTML([]reference.Binding{{FullName: "A & B"}}, []string{"<i>Lab</i>"})

	assert.Contains(t, got, "A & B, ")
	assert.Contains(t, got, "<li><i>Lab</i></li>")
}

func TestText(t *testing.T) {
	bindings := []reference.Binding{
		{FullName: "Jane Q. Doe", IDs: []int{1, 2}},
		{FullName: "Bob Lee", IDs: []int{2}},
		{FullName: "Ann Ray", IDs: []int{}},
	}

	got := Text(bindings, []string{"MIT, Cambridge 02139, USA", "Stanford"})

	want := "Jane Q. Doe^1,2, Bob Lee^2, Ann Ray\n\n" +
		"1. MIT, Cambridge 02139, USA\n" +
		"2. Stanford\n"
	assert.Equal(t, want, got)
}

func TestText_NoAffiliations(t *testing.T) {
	got := Text([]reference.Binding{{FullName: "Ann Ray"}}, nil)
	assert.Equal(t, "Ann Ray\n", got)
}

func TestRender(t *testing.T) {
	bindings := []reference.Binding{{FullName: "Jane Doe", IDs: []int{1}}}
	affs := []string{"MIT"}

	tests := []struct {
		format string
		want   string
	}{
		{"", HTML(bindings, affs)},
		{FormatHTML, HTML(bindings, affs)},
		{FormatText, Text(bindings, affs)},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := Render(tt.format, bindings, affs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Render("pdf", bindings, affs)
	assert.Error(t, err)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".html", Extension(FormatHTML))
	assert.Equal(t, ".txt", Extension(FormatText))
	assert.Equal(t, ".html", Extension(""))
}

func TestJoinIDs(t *testing.T) {
	assert.Equal(t, "", JoinIDs(nil, ","))
	assert.Equal(t, "7", JoinIDs([]int{7}, ","))
	assert.Equal(t, "1,2,10", JoinIDs([]int{1, 2, 10}, ","))
}
