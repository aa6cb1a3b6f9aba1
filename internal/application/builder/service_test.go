package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/peplike/backend/internal/domain/catalog"
	"github.com/peplike/backend/internal/domain/shared"
	"github.com/peplike/backend/internal/domain/stack"
	"github.com/peplike/backend/internal/infrastructure/localstore"
)

func newTestService(t *testing.T) (*Service, *localstore.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	store := localstore.NewStore(db)
	require.NoError(t, store.Migrate())
	return NewService(store, catalog.Load(), zap.NewNop()), store
}

func catalogIDs(t *testing.T, n int) []string {
	t.Helper()
	items := catalog.Load().Items()
	require.GreaterOrEqual(t, len(items), n)
	ids := make([]string, 0, n)
	for _, item := range items[:n] {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestBuilderAddAndGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	draft, err := svc.Add(ctx, "bpc-157", "tendon recovery")
	require.NoError(t, err)
	require.Len(t, draft.Entries, 1)
	assert.Equal(t, "BPC-157", draft.Entries[0].Name)
	assert.Equal(t, "tendon recovery", draft.Entries[0].Purpose)

	// The draft persists across service reads.
	got, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "bpc-157", got.Entries[0].PeptideID)
}

func TestBuilderAddUnknownCompound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Add(context.Background(), "unobtainium", "")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestBuilderAddDuplicate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "semax", "")
	require.NoError(t, err)

	_, err = svc.Add(ctx, "semax", "again")
	assert.ErrorIs(t, err, shared.ErrDuplicateInStack)

	draft, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, draft.Entries, 1)
}

func TestBuilderCapacity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ids := catalogIDs(t, stack.MaxDraftSize+1)
	for _, id := range ids[:stack.MaxDraftSize] {
		_, err := svc.Add(ctx, id, "")
		require.NoError(t, err)
	}

	_, err := svc.Add(ctx, ids[stack.MaxDraftSize], "")
	assert.ErrorIs(t, err, shared.ErrStackAtCapacity)

	// The stored draft is untouched by the rejected add.
	draft, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, draft.Entries, stack.MaxDraftSize)
	assert.False(t, draft.Contains(ids[stack.MaxDraftSize]))
}

func TestBuilderRemove(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "semax", "")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "dsip", "")
	require.NoError(t, err)

	draft, err := svc.Remove(ctx, "semax")
	require.NoError(t, err)
	require.Len(t, draft.Entries, 1)
	assert.Equal(t, "dsip", draft.Entries[0].PeptideID)
}

func TestBuilderTogglePrimary(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "semax", "")
	require.NoError(t, err)

	draft, err := svc.TogglePrimary(ctx, "semax")
	require.NoError(t, err)
	assert.True(t, draft.Entries[0].IsPrimary)

	draft, err = svc.TogglePrimary(ctx, "semax")
	require.NoError(t, err)
	assert.False(t, draft.Entries[0].IsPrimary)

	_, err = svc.TogglePrimary(ctx, "dsip")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestBuilderUpdatePurpose(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "semax", "old")
	require.NoError(t, err)

	draft, err := svc.UpdatePurpose(ctx, "semax", "focus support")
	require.NoError(t, err)
	assert.Equal(t, "focus support", draft.Entries[0].Purpose)

	_, err = svc.UpdatePurpose(ctx, "dsip", "x")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestBuilderClear(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "semax", "")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))

	draft, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, draft.Entries)
}

func TestBuilderCorruptStoredDraftReadsAsEmpty(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, localstore.KeyStackDraft, 42))

	draft, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, draft.Entries)
}
