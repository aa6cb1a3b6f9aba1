package stack

import (
	"fmt"
	"strings"
)

// RenderChecklist formats a response as plain text: summary, one bullet
// per item, a synergy line, then the disclaimer, all separated by blank
// lines.
func RenderChecklist(r *Response) string {
	lines := make([]string, 0, len(r.Items)+6)
	lines = append(lines, r.Summary, "")
	for _, it := range r.Items {
		lines = append(lines, fmt.Sprintf("- %s — %s (route: %s)", it.Name, it.Why, it.Route))
	}
	lines = append(lines, "", "Synergy: "+r.Synergy, "", r.Disclaimer)
	return strings.Join(lines, "\n")
}

// RenderMarkdown formats a response as a Markdown document with a
// heading naming the goal, an Overview item list, a synergy section,
// and the disclaimer below a horizontal rule.
func RenderMarkdown(r *Response) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Stack: %s\n\n%s\n\n## Overview\n", r.GoalID, r.Summary)
	for i, it := range r.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- **%s** — %s (route: %s)", it.Name, it.Why, it.Route)
	}
	fmt.Fprintf(&b, "\n\n## How this stack works\n%s\n\n---\n%s\n", r.Synergy, r.Disclaimer)
	return b.String()
}

// ExportFilename returns the download filename for a goal's Markdown export.
func ExportFilename(goalID string) string {
	return fmt.Sprintf("peplike-%s-stack.md", goalID)
}
