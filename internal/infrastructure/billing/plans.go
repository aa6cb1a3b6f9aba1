// Package billing integrates the Stripe payment provider for premium
// subscriptions.
package billing

import "github.com/shopspring/decimal"

// Plan describes a purchasable subscription tier.
type Plan struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	Currency     string          `json:"currency"`
	Features     []string        `json:"features"`
}

// Plans returns the available subscription tiers. The free tier has no
// Stripe price; only premium goes through checkout.
func Plans() []Plan {
	return []Plan{
		{
			ID:           "free",
			Name:         "Free",
			MonthlyPrice: decimal.Zero,
			Currency:     "usd",
			Features: []string{
				"Catalog browsing",
				"Goal-based stack recommendations",
				"Stack builder",
			},
		},
		{
			ID:           "premium",
			Name:         "Premium",
			MonthlyPrice: decimal.NewFromInt(10),
			Currency:     "usd",
			Features: []string{
				"Everything in Free",
				"Unlimited favorites",
				"Markdown stack export",
				"Priority recommendation queue",
			},
		},
	}
}

// PlanByID returns the plan with the given id, or false if unknown.
func PlanByID(id string) (Plan, bool) {
	for _, p := range Plans() {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
