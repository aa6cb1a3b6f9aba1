// Package catalog exposes read operations over the compound catalog:
// browsing, search, goal listing, and candidate preselection.
package catalog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/peplike/backend/internal/domain/catalog"
	"github.com/peplike/backend/internal/domain/shared"
	"github.com/peplike/backend/internal/infrastructure/telemetry"
)

// Service handles catalog queries. The catalog is immutable after load,
// so all operations are lock-free reads.
type Service struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewService creates a catalog Service.
func NewService(c *catalog.Catalog, logger *zap.Logger) *Service {
	return &Service{
		catalog: c,
		logger:  logger.Named("catalog"),
	}
}

// ListFilter narrows a catalog listing.
type ListFilter struct {
	Search   string
	Category string
	Tag      string
	Trending bool
}

// List returns catalog items matching the filter, in catalog order.
func (s *Service) List(ctx context.Context, filter ListFilter) []ItemResponse {
	_, span := telemetry.StartServiceSpan(ctx, "catalog", "list")
	defer span.End()

	out := make([]ItemResponse, 0)
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, item := range s.catalog.Items() {
		src, ok := s.catalog.Source(item.Slug)
		if !ok {
			continue
		}
		if filter.Trending && !src.Trending {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && !containsFold(item.Categories, filter.Category) {
			continue
		}
		if filter.Tag != "" && !containsFold(item.Tags, filter.Tag) {
			continue
		}
		if search != "" && !matchesSearch(item, src, search) {
			continue
		}
		out = append(out, toItemResponse(item, src))
	}
	return out
}

// GetBySlug returns the catalog item with the given slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*ItemResponse, error) {
	_, span := telemetry.StartServiceSpan(ctx, "catalog", "get")
	defer span.End()

	src, ok := s.catalog.Source(slug)
	if !ok {
		return nil, shared.ErrNotFound
	}
	for _, item := range s.catalog.Items() {
		if item.Slug == slug {
			resp := toItemResponse(item, src)
			return &resp, nil
		}
	}
	return nil, shared.ErrNotFound
}

// Categories returns the distinct source categories in first-seen
// catalog order.
func (s *Service) Categories(ctx context.Context) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, item := range s.catalog.Items() {
		for _, c := range item.Categories {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// Goals returns all supported goals with their labels and desired tags.
func (s *Service) Goals(ctx context.Context) []GoalResponse {
	goals := catalog.Goals()
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalResponse{
			ID:    string(g),
			Label: g.Label(),
			Tags:  g.Tags(),
		})
	}
	return out
}

// Candidates preselects up to max candidates for a goal.
func (s *Service) Candidates(ctx context.Context, goalID string, max int) ([]ItemResponse, error) {
	_, span := telemetry.StartServiceSpan(ctx, "catalog", "candidates")
	defer span.End()

	goal, err := catalog.ParseGoal(goalID)
	if err != nil {
		return nil, err
	}

	items := s.catalog.PreselectCandidates(goal, max)
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		src, _ := s.catalog.Source(item.Slug)
		out = append(out, toItemResponse(item, src))
	}
	return out, nil
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func matchesSearch(item catalog.CatalogItem, src catalog.Peptide, search string) bool {
	if strings.Contains(strings.ToLower(item.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(src.Description), search) {
		return true
	}
	for _, c := range item.Categories {
		if strings.Contains(strings.ToLower(c), search) {
			return true
		}
	}
	for _, t := range item.Tags {
		if strings.Contains(strings.ToLower(t), search) {
			return true
		}
	}
	return false
}
