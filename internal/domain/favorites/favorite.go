// Package favorites models a user's saved compounds. Each favorite
// carries a denormalized snapshot of the compound's descriptive fields
// captured at favorite time, so later catalog edits do not rewrite a
// user's saved view.
package favorites

import (
	"time"

	"github.com/peplike/backend/internal/domain/catalog"
)

// Favorite is a saved compound, keyed by (userID, peptideID).
type Favorite struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Categories        []string  `json:"category"`
	Description       string    `json:"description"`
	Administration    []string  `json:"administration"`
	DosageRange       string    `json:"dosage_range"`
	LegalStatus       string    `json:"legal_status"`
	MechanismOfAction string    `json:"mechanism_of_action"`
	FavoritedAt       time.Time `json:"favorited_at"`
}

// GlobalEntry is the reverse-index record for a favorited compound. The
// global index maps peptideID to the favoriting user and must stay
// consistent with the per-user list on every add/remove.
type GlobalEntry struct {
	UserID      string    `json:"userId"`
	FavoritedAt time.Time `json:"favoritedAt"`
}

// Snapshot captures a catalog record as a favorite.
func Snapshot(p catalog.Peptide, at time.Time) Favorite {
	return Favorite{
		ID:                p.ID,
		Name:              p.Name,
		Categories:        p.Categories,
		Description:       p.Description,
		Administration:    p.Administration,
		DosageRange:       p.DosageRange,
		LegalStatus:       p.LegalStatus,
		MechanismOfAction: p.MechanismOfAction,
		FavoritedAt:       at,
	}
}
