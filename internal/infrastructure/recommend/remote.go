package recommend

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"resty.dev/v3"

	"github.com/peplike/backend/internal/domain/catalog"
	"github.com/peplike/backend/internal/domain/shared"
	"github.com/peplike/backend/internal/domain/stack"
	"github.com/peplike/backend/internal/infrastructure/config"
)

// RemoteEngine calls the hosted recommendation service. The candidate
// pool is sent along with the request so the remote model only ranks
// within the locally preselected set.
type RemoteEngine struct {
	client  *resty.Client
	baseURL string
	logger  *zap.Logger
}

type remoteCandidate struct {
	Name  string   `json:"name"`
	Slug  string   `json:"slug"`
	Tags  []string `json:"tags"`
	Admin []string `json:"admin,omitempty"`
}

type remoteRequest struct {
	GoalID     string            `json:"goalId"`
	UserNotes  string            `json:"userNotes,omitempty"`
	Candidates []remoteCandidate `json:"candidates"`
}

// NewRemoteEngine creates a RemoteEngine for the configured service.
// Failures are never retried; the caller surfaces them and keeps any
// previously cached response.
func NewRemoteEngine(cfg config.RecommenderConfig, logger *zap.Logger) *RemoteEngine {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &RemoteEngine{
		client:  client,
		baseURL: cfg.BaseURL,
		logger:  logger.Named("recommender"),
	}
}

// Recommend posts the goal and candidates to the remote service and
// decodes its stack response. Any transport or HTTP-level failure is
// surfaced as a remote failure so callers can keep prior cached state.
func (e *RemoteEngine) Recommend(ctx context.Context, req Request) (*stack.Response, error) {
	if len(req.Candidates) == 0 {
		return nil, shared.NewDomainError("NO_CANDIDATES", "no matching compounds in the catalog")
	}

	body := remoteRequest{
		GoalID:     string(req.Goal),
		UserNotes:  req.UserNotes,
		Candidates: toRemoteCandidates(req.Candidates),
	}

	var out stack.Response
	resp, err := e.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post(e.baseURL + "/v1/stacks")
	if err != nil {
		e.logger.Warn("recommendation call failed", zap.String("goal", string(req.Goal)), zap.Error(err))
		return nil, shared.ErrRemoteFailure
	}
	if resp.IsError() {
		e.logger.Warn("recommendation call returned error status",
			zap.String("goal", string(req.Goal)),
			zap.Int("status", resp.StatusCode()))
		return nil, shared.ErrRemoteFailure
	}

	if out.GoalID == "" {
		out.GoalID = string(req.Goal)
	}
	if len(out.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_RESPONSE", fmt.Sprintf("remote service returned no items for %s", req.Goal))
	}

	return &out, nil
}

func toRemoteCandidates(items []catalog.CatalogItem) []remoteCandidate {
	out := make([]remoteCandidate, 0, len(items))
	for _, c := range items {
		out = append(out, remoteCandidate{
			Name:  c.Name,
			Slug:  c.Slug,
			Tags:  c.Tags,
			Admin: c.Admin,
		})
	}
	return out
}
