// Package stack orchestrates recommendation requests: candidate
// preselection, the engine round trip, the per-goal response cache, and
// the checklist/Markdown renderings.
package stack

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/peplike/backend/internal/domain/catalog"
	"github.com/peplike/backend/internal/domain/shared"
	"github.com/peplike/backend/internal/domain/stack"
	"github.com/peplike/backend/internal/infrastructure/recommend"
	"github.com/peplike/backend/internal/infrastructure/telemetry"
)

// Source distinguishes the two entry paths of a stack request.
type Source string

const (
	// SourceChip is a goal-chip click: eligible for a cache hit.
	SourceChip Source = "chip"
	// SourceCustom is a free-text submission: always calls the engine.
	SourceCustom Source = "custom"
)

// CreateRequest carries one recommendation request.
type CreateRequest struct {
	GoalID    string `json:"goal_id" binding:"required"`
	UserNotes string `json:"user_notes"`
	Source    Source `json:"source"`
}

// Service serves stack requests. Responses are cached in memory keyed
// strictly by goal, never by notes, for the lifetime of the process. At
// most one engine call is in flight at a time; a second request while
// one is pending is rejected rather than queued.
type Service struct {
	catalog *catalog.Catalog
	engine  recommend.Engine
	logger  *zap.Logger

	mu    sync.Mutex
	busy  bool
	cache map[catalog.Goal]*stack.Response
}

// NewService creates a stack Service.
func NewService(c *catalog.Catalog, engine recommend.Engine, logger *zap.Logger) *Service {
	return &Service{
		catalog: c,
		engine:  engine,
		logger:  logger.Named("stack"),
		cache:   make(map[catalog.Goal]*stack.Response),
	}
}

// Create resolves a recommendation request. Chip requests return the
// cached response for the goal verbatim when one exists. Custom requests
// always call the engine and overwrite the cached value on success. An
// engine failure leaves the cache untouched so the prior value survives
// for the next attempt.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*stack.Response, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "stack", "create")
	defer span.End()

	if req.GoalID == "" {
		return nil, shared.ErrNoGoalSelected
	}
	goal, err := catalog.ParseGoal(req.GoalID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	source := req.Source
	if source == "" {
		source = SourceChip
	}

	s.mu.Lock()
	if source == SourceChip {
		if cached, ok := s.cache[goal]; ok {
			s.mu.Unlock()
			s.logger.Debug("cache hit", zap.String("goal", string(goal)))
			return cached, nil
		}
	}
	if s.busy {
		s.mu.Unlock()
		return nil, shared.ErrRequestPending
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	candidates := s.catalog.PreselectCandidates(goal, catalog.DefaultMaxCandidates)
	resp, err := s.engine.Recommend(ctx, recommend.Request{
		Goal:       goal,
		UserNotes:  req.UserNotes,
		Candidates: candidates,
	})
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Warn("recommendation failed",
			zap.String("goal", string(goal)),
			zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	s.cache[goal] = resp
	s.mu.Unlock()

	s.logger.Info("stack created",
		zap.String("goal", string(goal)),
		zap.Int("items", len(resp.Items)),
		zap.String("source", string(source)))
	return resp, nil
}

// Cached returns the cached response for a goal, if any.
func (s *Service) Cached(goalID string) (*stack.Response, error) {
	goal, err := catalog.ParseGoal(goalID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	resp, ok := s.cache[goal]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return resp, nil
}

// Checklist renders the cached response for a goal as plain text.
func (s *Service) Checklist(goalID string) (string, error) {
	resp, err := s.Cached(goalID)
	if err != nil {
		return "", err
	}
	return stack.RenderChecklist(resp), nil
}

// Export renders the cached response for a goal as a Markdown document
// and returns the content alongside its download filename.
func (s *Service) Export(goalID string) (content, filename string, err error) {
	resp, err := s.Cached(goalID)
	if err != nil {
		return "", "", err
	}
	return stack.RenderMarkdown(resp), stack.ExportFilename(resp.GoalID), nil
}
