package stack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleResponse() *Response {
	return &Response{
		GoalID:  "focus",
		Summary: "Summary line.",
		Items: []Item{
			{Name: "Semax", Slug: "semax", Route: "Intranasal", Why: "supports attention"},
			{Name: "Noopept", Slug: "noopept", Route: "Oral", Why: "supports memory"},
		},
		Synergy:    "They work together.",
		Disclaimer: "Research only.",
	}
}

func TestRenderChecklist(t *testing.T) {
	expected := strings.Join([]string{
		"Summary line.",
		"",
		"- Semax — supports attention (route: Intranasal)",
		"- Noopept — supports memory (route: Oral)",
		"",
		"Synergy: They work together.",
		"",
		"Research only.",
	}, "\n")

	assert.Equal(t, expected, RenderChecklist(sampleResponse()))
}

func TestRenderMarkdown(t *testing.T) {
	expected := "# Stack: focus\n" +
		"\n" +
		"Summary line.\n" +
		"\n" +
		"## Overview\n" +
		"- **Semax** — supports attention (route: Intranasal)\n" +
		"- **Noopept** — supports memory (route: Oral)\n" +
		"\n" +
		"## How this stack works\n" +
		"They work together.\n" +
		"\n" +
		"---\n" +
		"Research only.\n"

	assert.Equal(t, expected, RenderMarkdown(sampleResponse()))
}

func TestRenderSingleItem(t *testing.T) {
	r := sampleResponse()
	r.Items = r.Items[:1]

	md := RenderMarkdown(r)
	assert.Contains(t, md, "## Overview\n- **Semax**")
	assert.Contains(t, md, "\n\n## How this stack works\n")

	text := RenderChecklist(r)
	assert.Equal(t, 1, strings.Count(text, "- "))
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "peplike-focus-stack.md", ExportFilename("focus"))
	assert.Equal(t, "peplike-fat-loss-stack.md", ExportFilename("fat-loss"))
}
