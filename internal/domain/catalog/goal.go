package catalog

import "github.com/peplike/backend/internal/domain/shared"

// Goal is one of the fixed research objectives a user can pick to drive
// recommendations. Goals are compile-time constants, not user data.
type Goal string

const (
	GoalTanning  Goal = "tanning"
	GoalInjury   Goal = "injury"
	GoalRecomp   Goal = "recomp"
	GoalFatLoss  Goal = "fat-loss"
	GoalFocus    Goal = "focus"
	GoalMood     Goal = "mood"
	GoalSleep    Goal = "sleep"
	GoalSkinHair Goal = "skin-hair"
)

// Goals returns all supported goals in display order.
func Goals() []Goal {
	return []Goal{
		GoalTanning, GoalInjury, GoalRecomp, GoalFatLoss,
		GoalFocus, GoalMood, GoalSleep, GoalSkinHair,
	}
}

var goalTags = map[Goal][]string{
	GoalTanning:  {TagTanning},
	GoalInjury:   {TagRepair},
	GoalRecomp:   {TagGrowthSignaling, TagFatLoss},
	GoalFatLoss:  {TagFatLoss},
	GoalFocus:    {TagFocus},
	GoalMood:     {TagAnxiolytic},
	GoalSleep:    {TagSleep},
	GoalSkinHair: {TagSkinOrHair},
}

var goalLabels = map[Goal]string{
	GoalTanning:  "Tanning and pigmentation",
	GoalInjury:   "Injury recovery",
	GoalRecomp:   "Recomp and lean mass",
	GoalFatLoss:  "Fat loss and appetite",
	GoalFocus:    "Focus and study",
	GoalMood:     "Stress and mood",
	GoalSleep:    "Sleep and recovery",
	GoalSkinHair: "Skin and hair quality",
}

// Tags returns the canonical tags the goal maps to.
func (g Goal) Tags() []string {
	return goalTags[g]
}

// Label returns the human-readable goal label.
func (g Goal) Label() string {
	return goalLabels[g]
}

// IsValid reports whether g is one of the supported goals.
func (g Goal) IsValid() bool {
	_, ok := goalTags[g]
	return ok
}

// ParseGoal validates a goal identifier from the wire.
func ParseGoal(id string) (Goal, error) {
	g := Goal(id)
	if !g.IsValid() {
		return "", shared.NewDomainError("INVALID_GOAL", "Unknown goal: "+id)
	}
	return g, nil
}
