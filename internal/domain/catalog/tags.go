package catalog

import "strings"

// Canonical semantic tags. Goals match against these, never against the
// free-text category labels on the source records.
const (
	TagTanning         = "tanning"
	TagFatLoss         = "fat loss"
	TagRepair          = "repair"
	TagGrowthSignaling = "growth signaling"
	TagSkinOrHair      = "skin or hair"
	TagAnxiolytic      = "anxiolytic"
	TagFocus           = "focus"
	TagSleep           = "sleep"
	TagGrowthFactor    = "growth factor"
)

// tagRule maps case-insensitive substrings of a category label to one
// canonical tag. Rules are evaluated in order; a single category may
// satisfy several rules.
type tagRule struct {
	keywords []string
	tag      string
}

var tagRules = []tagRule{
	{[]string{"tanning", "pigment"}, TagTanning},
	{[]string{"fat"}, TagFatLoss},
	{[]string{"recomposition"}, TagFatLoss},
	{[]string{"wound", "recovery", "repair"}, TagRepair},
	{[]string{"muscle"}, TagGrowthSignaling},
	{[]string{"growth"}, TagGrowthSignaling},
	{[]string{"skin", "hair", "anti-aging"}, TagSkinOrHair},
	{[]string{"mood", "anxi"}, TagAnxiolytic},
	{[]string{"cognition", "focus"}, TagFocus},
	{[]string{"sleep"}, TagSleep},
}

// Known growth-factor family prefixes. A compound whose name contains one
// of these is tagged "growth factor" regardless of its categories.
var growthFactorMarkers = []string{"ghk", "igf", "egf", "fgf"}

// DeriveTags maps free-text category labels (plus the compound name) to
// the canonical tag set. The result preserves first-seen order and holds
// no duplicates.
func DeriveTags(categories []string, name string) []string {
	var tags []string
	seen := make(map[string]bool)
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	for _, c := range categories {
		lc := strings.ToLower(c)
		for _, rule := range tagRules {
			for _, kw := range rule.keywords {
				if strings.Contains(lc, kw) {
					add(rule.tag)
					break
				}
			}
		}
	}

	ln := strings.ToLower(name)
	for _, marker := range growthFactorMarkers {
		if strings.Contains(ln, marker) {
			add(TagGrowthFactor)
			break
		}
	}

	if tags == nil {
		return []string{}
	}
	return tags
}
