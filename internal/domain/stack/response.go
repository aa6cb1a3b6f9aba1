// Package stack holds the two entities that share the "stack" name: the
// server-recommended stack for a goal (Response) and the user-curated
// stack-in-progress (Draft).
package stack

// Item is a single recommended compound inside a Response.
type Item struct {
	Name  string   `json:"name"`
	Slug  string   `json:"slug,omitempty"`
	Tags  []string `json:"tags"`
	Route string   `json:"route"`
	Why   string   `json:"why"`
}

// Response is the result of a recommendation request for a goal. It is
// created by the recommendation engine per request, cached in memory per
// goal for the session, and superseded (never merged) by newer responses.
type Response struct {
	GoalID     string `json:"goalId"`
	Summary    string `json:"summary"`
	Items      []Item `json:"items"`
	Synergy    string `json:"synergy"`
	Disclaimer string `json:"disclaimer"`
}
