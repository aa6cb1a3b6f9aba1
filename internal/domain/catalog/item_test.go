package catalog

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Semax", "semax"},
		{"hyphenated name", "BPC-157", "bpc-157"},
		{"roman numeral suffix", "Melanotan II", "melanotan-ii"},
		{"internal punctuation collapses", "IGF-1 LR3", "igf-1-lr3"},
		{"leading junk trimmed", "  GHK-Cu", "ghk-cu"},
		{"trailing junk trimmed", "Noopept!!", "noopept"},
		{"consecutive separators collapse", "A -- B", "a-b"},
		{"empty input", "", ""},
		{"only separators", "---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugifyShape(t *testing.T) {
	// Every name in the shipped table must slugify to lowercase
	// alphanumerics separated by single hyphens, with no edge hyphens.
	shape := regexp.MustCompile(`^$|^[a-z0-9]+(-[a-z0-9]+)*$`)
	for _, p := range Peptides() {
		slug := Slugify(p.Name)
		assert.Regexp(t, shape, slug, "name %q", p.Name)
	}
}

func TestNewCatalogItemSlugPrefersID(t *testing.T) {
	item := newCatalogItem(Peptide{ID: "melanotan-2", Name: "Melanotan II"})
	assert.Equal(t, "melanotan-2", item.Slug)

	item = newCatalogItem(Peptide{Name: "Melanotan II"})
	assert.Equal(t, "melanotan-ii", item.Slug)
}

func TestNewCatalogItemDefaultsEmptyAdmin(t *testing.T) {
	item := newCatalogItem(Peptide{ID: "x", Name: "X"})
	assert.NotNil(t, item.Admin)
	assert.Empty(t, item.Admin)
}
