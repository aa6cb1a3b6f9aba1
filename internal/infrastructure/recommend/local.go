package recommend

import (
	"context"
	"strings"

	"github.com/peplike/backend/internal/domain/catalog"
	"github.com/peplike/backend/internal/domain/shared"
	"github.com/peplike/backend/internal/domain/stack"
)

// Disclaimer is appended verbatim to every locally built response.
const Disclaimer = "Educational research context only. Verify legality in your region. Human use may be restricted or illegal."

// LocalEngine builds responses deterministically from the candidate pool,
// with fixed per-goal rationale and synergy sentences. It stands in for
// the hosted model service and produces identical output for identical
// input.
type LocalEngine struct{}

// NewLocalEngine creates a LocalEngine.
func NewLocalEngine() *LocalEngine {
	return &LocalEngine{}
}

// Recommend selects between 4 and 8 candidates, half the pool when that
// falls in range, and renders the response text for the goal.
func (e *LocalEngine) Recommend(_ context.Context, req Request) (*stack.Response, error) {
	if len(req.Candidates) == 0 {
		return nil, shared.NewDomainError("NO_CANDIDATES", "no matching compounds in the catalog")
	}

	count := len(req.Candidates) / 2
	if count < 4 {
		count = 4
	}
	if count > 8 {
		count = 8
	}
	if count > len(req.Candidates) {
		count = len(req.Candidates)
	}
	selected := req.Candidates[:count]

	items := make([]stack.Item, 0, len(selected))
	names := make([]string, 0, len(selected))
	for _, c := range selected {
		tags := c.Tags
		if len(tags) > 2 {
			tags = tags[:2]
		}
		route := "Subcutaneous"
		if len(c.Admin) > 0 && c.Admin[0] != "" {
			route = c.Admin[0]
		}
		items = append(items, stack.Item{
			Name:  c.Name,
			Slug:  c.Slug,
			Tags:  tags,
			Route: route,
			Why:   whySentence(req.Goal, c.Name),
		})
		names = append(names, c.Name)
	}

	summary := "Built a research-only stack for " + req.Goal.Label() + " using complementary signals."
	if strings.TrimSpace(req.UserNotes) != "" {
		summary += " Notes considered."
	}

	return &stack.Response{
		GoalID:     string(req.Goal),
		Summary:    summary,
		Items:      items,
		Synergy:    synergySentence(req.Goal, names),
		Disclaimer: Disclaimer,
	}, nil
}

func whySentence(goal catalog.Goal, name string) string {
	switch goal {
	case catalog.GoalTanning:
		return name + " supports melanocortin signaling relevant to pigmentation research."
	case catalog.GoalInjury:
		return name + " is explored for tissue repair pathways and modulation of inflammation in models."
	case catalog.GoalRecomp:
		return name + " is studied for growth signaling that may aid body composition research."
	case catalog.GoalFatLoss:
		return name + " relates to appetite or metabolic signaling studied for weight management research."
	case catalog.GoalFocus:
		return name + " is investigated for effects on neuroplasticity, attention, or cognitive pathways."
	case catalog.GoalMood:
		return name + " interacts with stress or mood-related pathways under research settings."
	case catalog.GoalSleep:
		return name + " is associated with recovery or sleep architecture mechanisms in research."
	case catalog.GoalSkinHair:
		return name + " is researched for skin or hair tissue remodeling and regenerative signaling."
	}
	return name + " is included for signals relevant to the selected goal."
}

func synergySentence(goal catalog.Goal, names []string) string {
	joined := strings.Join(firstN(names, 3), ", ")
	if len(names) > 3 {
		joined += ", …"
	}
	switch goal {
	case catalog.GoalTanning:
		return "Combines complementary melanocortin and supportive pathways to promote uniform pigmentation signals (" + joined + ")."
	case catalog.GoalInjury:
		return "Blends repair mediators that may support angiogenesis, collagen dynamics, and inflammation balance (" + joined + ")."
	case catalog.GoalRecomp:
		return "Aligns GH/IGF and metabolic cues to support lean mass and composition research (" + joined + ")."
	case catalog.GoalFatLoss:
		return "Pairs appetite and metabolic signaling for coordinated energy balance research (" + joined + ")."
	case catalog.GoalFocus:
		return "Stacks neuromodulatory and neurotrophic signals for attention and plasticity research (" + joined + ")."
	case catalog.GoalMood:
		return "Combines stress-adaptive and calming pathways for mood-related research (" + joined + ")."
	case catalog.GoalSleep:
		return "Coordinates recovery-linked signals that may influence sleep quality and restoration (" + joined + ")."
	case catalog.GoalSkinHair:
		return "Unites regenerative and matrix remodeling signals for skin and hair quality research (" + joined + ")."
	}
	return "Combines complementary signals for the selected goal (" + joined + ")."
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
