// Package favorites manages each user's saved compounds plus the global
// reverse index used for quick "who favorited this" lookups.
package favorites

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/peplike/backend/internal/domain/catalog"
	"github.com/peplike/backend/internal/domain/favorites"
	"github.com/peplike/backend/internal/domain/shared"
	"github.com/peplike/backend/internal/infrastructure/localstore"
	"github.com/peplike/backend/internal/infrastructure/telemetry"
)

// Service reads and writes favorites through the local store. The
// per-user list and the global index are updated together on every
// mutation; a mutex makes each read-modify-write sequence atomic.
type Service struct {
	store   *localstore.Store
	catalog *catalog.Catalog
	logger  *zap.Logger

	mu sync.Mutex
}

// NewService creates a favorites Service.
func NewService(store *localstore.Store, c *catalog.Catalog, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		catalog: c,
		logger:  logger.Named("favorites"),
	}
}

// Add favorites a compound for a user. Adding one that is already
// favorited is a silent no-op.
func (s *Service) Add(ctx context.Context, userID, peptideID string) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "favorites", "add")
	defer span.End()

	src, ok := s.sourceByID(peptideID)
	if !ok {
		return shared.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	for _, f := range list {
		if f.ID == peptideID {
			return nil
		}
	}

	fav := favorites.Snapshot(src, time.Now().UTC())
	list = append(list, fav)
	if err := s.store.Set(ctx, localstore.FavoritesKey(userID), list); err != nil {
		return err
	}

	global, err := s.loadGlobal(ctx)
	if err != nil {
		return err
	}
	global[peptideID] = favorites.GlobalEntry{UserID: userID, FavoritedAt: fav.FavoritedAt}
	if err := s.store.Set(ctx, localstore.KeyGlobalFavorites, global); err != nil {
		return err
	}

	s.logger.Info("favorite added",
		zap.String("user_id", userID),
		zap.String("peptide_id", peptideID))
	return nil
}

// Remove unfavorites a compound for a user. Removing one that is not
// favorited is a no-op.
func (s *Service) Remove(ctx context.Context, userID, peptideID string) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "favorites", "remove")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	kept := make([]favorites.Favorite, 0, len(list))
	for _, f := range list {
		if f.ID != peptideID {
			kept = append(kept, f)
		}
	}
	if err := s.store.Set(ctx, localstore.FavoritesKey(userID), kept); err != nil {
		return err
	}

	global, err := s.loadGlobal(ctx)
	if err != nil {
		return err
	}
	delete(global, peptideID)
	return s.store.Set(ctx, localstore.KeyGlobalFavorites, global)
}

// List returns a user's favorites in the order they were added.
func (s *Service) List(ctx context.Context, userID string) ([]favorites.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, userID)
}

// IsFavorited reports whether the user has favorited the compound.
func (s *Service) IsFavorited(ctx context.Context, userID, peptideID string) (bool, error) {
	list, err := s.List(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, f := range list {
		if f.ID == peptideID {
			return true, nil
		}
	}
	return false, nil
}

// Count returns how many favorites the user has.
func (s *Service) Count(ctx context.Context, userID string) (int, error) {
	list, err := s.List(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

// Clear removes all of a user's favorites and their global index entries.
func (s *Service) Clear(ctx context.Context, userID string) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "favorites", "clear")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	global, err := s.loadGlobal(ctx)
	if err != nil {
		return err
	}
	for _, f := range list {
		delete(global, f.ID)
	}
	if err := s.store.Delete(ctx, localstore.FavoritesKey(userID)); err != nil {
		return err
	}
	return s.store.Set(ctx, localstore.KeyGlobalFavorites, global)
}

// Search returns favorites whose name, description, or categories
// contain the term, case-insensitively. An empty term returns everything.
func (s *Service) Search(ctx context.Context, userID, term string) ([]favorites.Favorite, error) {
	list, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return list, nil
	}
	out := make([]favorites.Favorite, 0)
	for _, f := range list {
		if strings.Contains(strings.ToLower(f.Name), term) ||
			strings.Contains(strings.ToLower(f.Description), term) ||
			anyContains(f.Categories, term) {
			out = append(out, f)
		}
	}
	return out, nil
}

// FilterByCategory returns favorites in the given category. The category
// "all" returns everything.
func (s *Service) FilterByCategory(ctx context.Context, userID, category string) ([]favorites.Favorite, error) {
	list, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if category == "" || category == "all" {
		return list, nil
	}
	out := make([]favorites.Favorite, 0)
	for _, f := range list {
		for _, c := range f.Categories {
			if c == category {
				out = append(out, f)
				break
			}
		}
	}
	return out, nil
}

// Categories returns the distinct categories across a user's favorites,
// sorted alphabetically.
func (s *Service) Categories(ctx context.Context, userID string) ([]string, error) {
	list, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, f := range list {
		for _, c := range f.Categories {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// load reads a user's list; an absent or corrupt value is an empty list.
func (s *Service) load(ctx context.Context, userID string) ([]favorites.Favorite, error) {
	var list []favorites.Favorite
	ok, err := s.store.Get(ctx, localstore.FavoritesKey(userID), &list)
	if err != nil {
		return nil, err
	}
	if !ok || list == nil {
		return []favorites.Favorite{}, nil
	}
	return list, nil
}

func (s *Service) loadGlobal(ctx context.Context) (map[string]favorites.GlobalEntry, error) {
	var global map[string]favorites.GlobalEntry
	ok, err := s.store.Get(ctx, localstore.KeyGlobalFavorites, &global)
	if err != nil {
		return nil, err
	}
	if !ok || global == nil {
		return map[string]favorites.GlobalEntry{}, nil
	}
	return global, nil
}

func (s *Service) sourceByID(peptideID string) (catalog.Peptide, bool) {
	for _, item := range s.catalog.Items() {
		if item.ID == peptideID {
			return s.catalog.Source(item.Slug)
		}
	}
	return catalog.Peptide{}, false
}

func anyContains(values []string, term string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}
