package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peplike/backend/internal/domain/catalog"
	"github.com/peplike/backend/internal/domain/shared"
	"github.com/peplike/backend/internal/domain/stack"
	"github.com/peplike/backend/internal/infrastructure/config"
)

func newRemoteEngine(baseURL string) *RemoteEngine {
	return NewRemoteEngine(config.RecommenderConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestRemoteEngineRecommend(t *testing.T) {
	var received remoteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/stacks", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(stack.Response{
			GoalID:  "injury",
			Summary: "remote summary",
			Items: []stack.Item{
				{Name: "BPC-157", Slug: "bpc-157", Route: "Subcutaneous", Why: "repair"},
			},
			Synergy:    "remote synergy",
			Disclaimer: "remote disclaimer",
		})
	}))
	defer srv.Close()

	resp, err := newRemoteEngine(srv.URL).Recommend(context.Background(), Request{
		Goal:      catalog.GoalInjury,
		UserNotes: "knee tendon",
		Candidates: []catalog.CatalogItem{
			{Name: "BPC-157", Slug: "bpc-157", Tags: []string{"repair"}, Admin: []string{"Subcutaneous"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "injury", resp.GoalID)
	assert.Equal(t, "remote summary", resp.Summary)
	require.Len(t, resp.Items, 1)

	assert.Equal(t, "injury", received.GoalID)
	assert.Equal(t, "knee tendon", received.UserNotes)
	require.Len(t, received.Candidates, 1)
	assert.Equal(t, "bpc-157", received.Candidates[0].Slug)
}

func TestRemoteEngineFillsMissingGoalID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(stack.Response{
			Items: []stack.Item{{Name: "X", Slug: "x"}},
		})
	}))
	defer srv.Close()

	resp, err := newRemoteEngine(srv.URL).Recommend(context.Background(), Request{
		Goal:       catalog.GoalSleep,
		Candidates: candidates(1),
	})
	require.NoError(t, err)
	assert.Equal(t, "sleep", resp.GoalID)
}

func TestRemoteEngineErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newRemoteEngine(srv.URL).Recommend(context.Background(), Request{
		Goal:       catalog.GoalInjury,
		Candidates: candidates(1),
	})
	assert.ErrorIs(t, err, shared.ErrRemoteFailure)
}

func TestRemoteEngineUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newRemoteEngine(srv.URL).Recommend(context.Background(), Request{
		Goal:       catalog.GoalInjury,
		Candidates: candidates(1),
	})
	assert.ErrorIs(t, err, shared.ErrRemoteFailure)
}

func TestRemoteEngineEmptyItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(stack.Response{GoalID: "injury"})
	}))
	defer srv.Close()

	_, err := newRemoteEngine(srv.URL).Recommend(context.Background(), Request{
		Goal:       catalog.GoalInjury,
		Candidates: candidates(1),
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMPTY_RESPONSE", domainErr.Code)
}

func TestRemoteEngineEmptyPool(t *testing.T) {
	_, err := newRemoteEngine("http://unused.invalid").Recommend(context.Background(), Request{
		Goal: catalog.GoalInjury,
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NO_CANDIDATES", domainErr.Code)
}
