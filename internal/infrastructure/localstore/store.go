// Package localstore is a durable key-value store backed by GORM. The
// product's state was originally persisted client-side under a handful of
// well-known string keys; this store keeps the same keyspace so stored
// payloads stay portable, scoping each record by owner where needed.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Well-known keys.
const (
	KeyAccessToken     = "peplike_access_token"
	KeyUser            = "peplike_user"
	KeyGlobalFavorites = "globalFavorites"
	KeyStackDraft      = "peptide-stack"
)

// FavoritesKey returns the per-user favorites key.
func FavoritesKey(userID string) string {
	return fmt.Sprintf("favorites_%s", userID)
}

// Record is the persisted row for one key.
type Record struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the GORM table name
func (Record) TableName() string {
	return "local_records"
}

// Store reads and writes JSON documents by key.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the backing table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Record{})
}

// Get unmarshals the value under key into out. It returns false when the
// key is absent. A stored value that fails to unmarshal is treated as
// absent rather than surfaced as an error, so one corrupt record cannot
// wedge every read of that key.
func (s *Store) Get(ctx context.Context, key string, out any) (bool, error) {
	var rec Record
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("localstore get %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(rec.Value), out); err != nil {
		return false, nil
	}
	return true, nil
}

// GetString returns the raw string stored under key, decoding a JSON
// string value if one was stored.
func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	var v string
	ok, err := s.Get(ctx, key, &v)
	return v, ok, err
}

// Set marshals value and writes it under key, replacing any prior value.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("localstore set %q: %w", key, err)
	}
	rec := Record{Key: key, Value: string(data)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("localstore set %q: %w", key, err)
	}
	return nil
}

// Delete removes the value under key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("localstore delete %q: %w", key, err)
	}
	return nil
}
