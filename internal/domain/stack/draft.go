package stack

import (
	"time"

	"github.com/peplike/backend/internal/domain/shared"
)

// MaxDraftSize is the hard cap on compounds in a stack-in-progress.
const MaxDraftSize = 15

// DraftEntry is one compound in a user-built stack.
type DraftEntry struct {
	PeptideID string    `json:"peptide_id"`
	Name      string    `json:"name"`
	IsPrimary bool      `json:"is_primary"`
	Purpose   string    `json:"purpose,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// Draft is a user-curated, client-local stack of up to MaxDraftSize
// compounds. Invariants: no duplicate peptide ids, size never exceeds
// the cap; violating operations abort without partial mutation.
type Draft struct {
	Entries []DraftEntry `json:"entries"`
}

// Add appends a compound. Capacity and duplicate violations leave the
// draft unchanged.
func (d *Draft) Add(peptideID, name, purpose string) error {
	if len(d.Entries) >= MaxDraftSize {
		return shared.ErrStackAtCapacity
	}
	if d.Contains(peptideID) {
		return shared.ErrDuplicateInStack
	}
	d.Entries = append(d.Entries, DraftEntry{
		PeptideID: peptideID,
		Name:      name,
		Purpose:   purpose,
		AddedAt:   time.Now(),
	})
	return nil
}

// Remove drops the entry for the given compound, if present.
func (d *Draft) Remove(peptideID string) {
	kept := d.Entries[:0]
	for _, e := range d.Entries {
		if e.PeptideID != peptideID {
			kept = append(kept, e)
		}
	}
	d.Entries = kept
}

// TogglePrimary flips the primary flag on the given compound.
func (d *Draft) TogglePrimary(peptideID string) error {
	for i := range d.Entries {
		if d.Entries[i].PeptideID == peptideID {
			d.Entries[i].IsPrimary = !d.Entries[i].IsPrimary
			return nil
		}
	}
	return shared.ErrNotFound
}

// UpdatePurpose replaces the purpose note on the given compound.
func (d *Draft) UpdatePurpose(peptideID, purpose string) error {
	for i := range d.Entries {
		if d.Entries[i].PeptideID == peptideID {
			d.Entries[i].Purpose = purpose
			return nil
		}
	}
	return shared.ErrNotFound
}

// Clear empties the draft.
func (d *Draft) Clear() {
	d.Entries = nil
}

// Contains reports whether the compound is already in the draft.
func (d *Draft) Contains(peptideID string) bool {
	for _, e := range d.Entries {
		if e.PeptideID == peptideID {
			return true
		}
	}
	return false
}

// Full reports whether the draft is at capacity.
func (d *Draft) Full() bool {
	return len(d.Entries) >= MaxDraftSize
}
