package stack

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peplike/backend/internal/domain/shared"
)

func fullDraft(t *testing.T) *Draft {
	t.Helper()
	d := &Draft{}
	for i := 0; i < MaxDraftSize; i++ {
		require.NoError(t, d.Add(fmt.Sprintf("pep-%02d", i), fmt.Sprintf("Pep %02d", i), ""))
	}
	return d
}

func TestDraftAdd(t *testing.T) {
	d := &Draft{}
	require.NoError(t, d.Add("bpc-157", "BPC-157", "recovery"))

	require.Len(t, d.Entries, 1)
	entry := d.Entries[0]
	assert.Equal(t, "bpc-157", entry.PeptideID)
	assert.Equal(t, "BPC-157", entry.Name)
	assert.Equal(t, "recovery", entry.Purpose)
	assert.False(t, entry.IsPrimary)
	assert.False(t, entry.AddedAt.IsZero())
}

func TestDraftAddDuplicate(t *testing.T) {
	d := &Draft{}
	require.NoError(t, d.Add("bpc-157", "BPC-157", ""))

	err := d.Add("bpc-157", "BPC-157", "again")
	assert.ErrorIs(t, err, shared.ErrDuplicateInStack)
	assert.Len(t, d.Entries, 1)
}

func TestDraftAddAtCapacity(t *testing.T) {
	d := fullDraft(t)
	require.True(t, d.Full())

	err := d.Add("one-more", "One More", "")
	assert.ErrorIs(t, err, shared.ErrStackAtCapacity)
	assert.Len(t, d.Entries, MaxDraftSize)
	assert.False(t, d.Contains("one-more"))
}

func TestDraftRemove(t *testing.T) {
	d := &Draft{}
	require.NoError(t, d.Add("a", "A", ""))
	require.NoError(t, d.Add("b", "B", ""))

	d.Remove("a")
	assert.Len(t, d.Entries, 1)
	assert.False(t, d.Contains("a"))
	assert.True(t, d.Contains("b"))

	// Removing something absent is a no-op.
	d.Remove("a")
	assert.Len(t, d.Entries, 1)
}

func TestDraftRemoveFreesCapacity(t *testing.T) {
	d := fullDraft(t)
	d.Remove("pep-00")
	assert.False(t, d.Full())
	assert.NoError(t, d.Add("pep-new", "Pep New", ""))
}

func TestDraftTogglePrimary(t *testing.T) {
	d := &Draft{}
	require.NoError(t, d.Add("a", "A", ""))

	require.NoError(t, d.TogglePrimary("a"))
	assert.True(t, d.Entries[0].IsPrimary)

	require.NoError(t, d.TogglePrimary("a"))
	assert.False(t, d.Entries[0].IsPrimary)

	assert.ErrorIs(t, d.TogglePrimary("missing"), shared.ErrNotFound)
}

func TestDraftUpdatePurpose(t *testing.T) {
	d := &Draft{}
	require.NoError(t, d.Add("a", "A", "old"))

	require.NoError(t, d.UpdatePurpose("a", "new"))
	assert.Equal(t, "new", d.Entries[0].Purpose)

	assert.ErrorIs(t, d.UpdatePurpose("missing", "x"), shared.ErrNotFound)
}

func TestDraftClear(t *testing.T) {
	d := fullDraft(t)
	d.Clear()
	assert.Empty(t, d.Entries)
	assert.False(t, d.Full())
}
