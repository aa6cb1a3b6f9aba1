// Package recommend produces stack recommendations for a goal. Two
// implementations exist: a remote HTTP client for a hosted model service
// and a deterministic local engine used when no remote is configured.
package recommend

import (
	"context"

	"github.com/peplike/backend/internal/domain/catalog"
	"github.com/peplike/backend/internal/domain/stack"
)

// Request carries the inputs of one recommendation call.
type Request struct {
	Goal       catalog.Goal
	UserNotes  string
	Candidates []catalog.CatalogItem
}

// Engine turns a goal plus preselected candidates into a stack response.
type Engine interface {
	Recommend(ctx context.Context, req Request) (*stack.Response, error)
}
