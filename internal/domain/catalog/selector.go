package catalog

import "strings"

// DefaultMaxCandidates bounds the preselected pool handed to the
// recommendation engine.
const DefaultMaxCandidates = 10

// broadenThreshold is the pool size below which the primary tag filter is
// discarded in favour of the looser keyword filter.
const broadenThreshold = 6

// Catalog is an immutable snapshot of the compound table with derived
// search tags, loaded once per process.
type Catalog struct {
	items  []CatalogItem
	bySlug map[string]Peptide
}

// Load builds a catalog snapshot from the static peptide table.
func Load() *Catalog {
	return NewCatalog(Peptides())
}

// NewCatalog normalizes the given source records. Deterministic for the
// same input; absent optional fields default to empty sequences.
func NewCatalog(source []Peptide) *Catalog {
	items := make([]CatalogItem, 0, len(source))
	bySlug := make(map[string]Peptide, len(source))
	for _, p := range source {
		item := newCatalogItem(p)
		items = append(items, item)
		// Last write wins on slug collisions; the shipped table has
		// unique ids so collisions only arise from bad source data.
		bySlug[item.Slug] = p
	}
	return &Catalog{items: items, bySlug: bySlug}
}

// Items returns the normalized entries in catalog order.
func (c *Catalog) Items() []CatalogItem {
	return c.items
}

// Source returns the full source record behind a slug.
func (c *Catalog) Source(slug string) (Peptide, bool) {
	p, ok := c.bySlug[slug]
	return p, ok
}

// PreselectCandidates narrows the catalog to items matching the goal's
// tags, in catalog order. When the primary filter yields fewer than six
// items the tag intersection is dropped and replaced by a keyword match
// on the first word of the first desired tag, trading precision for
// recall. The result is truncated to max and may be empty; it is never
// an error.
func (c *Catalog) PreselectCandidates(goal Goal, max int) []CatalogItem {
	if max <= 0 {
		max = DefaultMaxCandidates
	}

	desired := goal.Tags()
	if len(desired) == 0 {
		return []CatalogItem{}
	}
	desiredSet := make(map[string]bool, len(desired))
	for _, t := range desired {
		desiredSet[t] = true
	}

	pool := make([]CatalogItem, 0, len(c.items))
	for _, item := range c.items {
		for _, t := range item.Tags {
			if desiredSet[t] {
				pool = append(pool, item)
				break
			}
		}
	}

	if len(pool) < broadenThreshold {
		key := strings.SplitN(desired[0], " ", 2)[0]
		if key != "" {
			pool = pool[:0]
			for _, item := range c.items {
				for _, t := range item.Tags {
					if strings.Contains(t, key) {
						pool = append(pool, item)
						break
					}
				}
			}
		}
	}

	if len(pool) > max {
		pool = pool[:max]
	}
	return pool
}
