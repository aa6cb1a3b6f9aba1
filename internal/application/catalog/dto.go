package catalog

import "github.com/peplike/backend/internal/domain/catalog"

// ItemResponse is one catalog item as served over HTTP, combining the
// derived view (slug, tags) with the source record's descriptive fields.
type ItemResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Categories        []string `json:"category"`
	Tags              []string `json:"tags"`
	Admin             []string `json:"admin"`
	Description       string   `json:"description,omitempty"`
	HalfLife          string   `json:"half_life,omitempty"`
	LegalStatus       string   `json:"legal_status,omitempty"`
	DosageRange       string   `json:"dosage_range,omitempty"`
	MechanismOfAction string   `json:"mechanism_of_action,omitempty"`
	Trending          bool     `json:"trending,omitempty"`
}

// GoalResponse is one supported goal.
type GoalResponse struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Tags  []string `json:"tags"`
}

func toItemResponse(item catalog.CatalogItem, src catalog.Peptide) ItemResponse {
	return ItemResponse{
		ID:                item.ID,
		Name:              item.Name,
		Slug:              item.Slug,
		Categories:        item.Categories,
		Tags:              item.Tags,
		Admin:             item.Admin,
		Description:       src.Description,
		HalfLife:          src.HalfLife,
		LegalStatus:       src.LegalStatus,
		DosageRange:       src.DosageRange,
		MechanismOfAction: src.MechanismOfAction,
		Trending:          src.Trending,
	}
}
