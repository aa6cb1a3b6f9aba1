package catalog

import (
	"strings"
	"unicode"
)

// CatalogItem is a normalized compound record used for goal matching.
// Items are derived from the static peptide table on every load and are
// never mutated afterwards.
type CatalogItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Slug       string   `json:"slug"`
	Categories []string `json:"categories"`
	Admin      []string `json:"admin"`
	Tags       []string `json:"tags"`
}

// Slugify converts a display name into a URL-safe identifier: lowercase
// letters and digits with runs of anything else collapsed to a single
// hyphen, and no leading or trailing hyphen.
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLower(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}

// newCatalogItem normalizes a source peptide record. The slug prefers the
// stable id; names are only slugified when the source record has no id.
func newCatalogItem(p Peptide) CatalogItem {
	slug := p.ID
	if slug == "" {
		slug = Slugify(p.Name)
	}
	admin := p.Administration
	if admin == nil {
		admin = []string{}
	}
	return CatalogItem{
		ID:         p.ID,
		Name:       p.Name,
		Slug:       slug,
		Categories: p.Categories,
		Admin:      admin,
		Tags:       DeriveTags(p.Categories, p.Name),
	}
}
