// Package builder manages the user-curated stack-in-progress, persisted
// in the local store under its well-known key.
package builder

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/peplike/backend/internal/domain/catalog"
	"github.com/peplike/backend/internal/domain/shared"
	"github.com/peplike/backend/internal/domain/stack"
	"github.com/peplike/backend/internal/infrastructure/localstore"
	"github.com/peplike/backend/internal/infrastructure/telemetry"
)

// Service loads, mutates, and persists the stack draft. Capacity and
// duplicate violations abort before anything is written, so a failed
// mutation never changes the stored draft.
type Service struct {
	store   *localstore.Store
	catalog *catalog.Catalog
	logger  *zap.Logger

	mu sync.Mutex
}

// NewService creates a builder Service.
func NewService(store *localstore.Store, c *catalog.Catalog, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		catalog: c,
		logger:  logger.Named("builder"),
	}
}

// Get returns the current draft.
func (s *Service) Get(ctx context.Context) (*stack.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Add puts a compound into the draft.
func (s *Service) Add(ctx context.Context, peptideID, purpose string) (*stack.Draft, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "builder", "add")
	defer span.End()

	name, ok := s.nameByID(peptideID)
	if !ok {
		return nil, shared.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := draft.Add(peptideID, name, purpose); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}

	s.logger.Info("compound added to draft",
		zap.String("peptide_id", peptideID),
		zap.Int("size", len(draft.Entries)))
	return draft, nil
}

// Remove drops a compound from the draft.
func (s *Service) Remove(ctx context.Context, peptideID string) (*stack.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	draft.Remove(peptideID)
	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// TogglePrimary flips the primary flag on a draft entry.
func (s *Service) TogglePrimary(ctx context.Context, peptideID string) (*stack.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := draft.TogglePrimary(peptideID); err != nil {
		return nil, err
	}
	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// UpdatePurpose replaces the purpose note on a draft entry.
func (s *Service) UpdatePurpose(ctx context.Context, peptideID, purpose string) (*stack.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := draft.UpdatePurpose(peptideID, purpose); err != nil {
		return nil, err
	}
	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Clear empties the draft.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(ctx, localstore.KeyStackDraft)
}

// load reads the stored draft; an absent or corrupt value is an empty draft.
func (s *Service) load(ctx context.Context) (*stack.Draft, error) {
	var entries []stack.DraftEntry
	ok, err := s.store.Get(ctx, localstore.KeyStackDraft, &entries)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &stack.Draft{}, nil
	}
	return &stack.Draft{Entries: entries}, nil
}

func (s *Service) save(ctx context.Context, draft *stack.Draft) error {
	entries := draft.Entries
	if entries == nil {
		entries = []stack.DraftEntry{}
	}
	return s.store.Set(ctx, localstore.KeyStackDraft, entries)
}

func (s *Service) nameByID(peptideID string) (string, bool) {
	for _, item := range s.catalog.Items() {
		if item.ID == peptideID {
			return item.Name, true
		}
	}
	return "", false
}
