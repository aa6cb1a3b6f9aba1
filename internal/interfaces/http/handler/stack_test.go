package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	stackapp "github.com/peplike/backend/internal/application/stack"
	"github.com/peplike/backend/internal/domain/catalog"
	"github.com/peplike/backend/internal/domain/stack"
	"github.com/peplike/backend/internal/infrastructure/recommend"
)

func newStackRouter() *gin.Engine {
	svc := stackapp.NewService(catalog.Load(), recommend.NewLocalEngine(), zap.NewNop())
	return setupRouter(NewStackHandler(svc))
}

func postJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestStackCreate(t *testing.T) {
	engine := newStackRouter()

	w := postJSON(engine, "/api/v1/stacks", `{"goal_id":"injury","source":"chip"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	require.True(t, resp.Success)

	var created stack.Response
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "injury", created.GoalID)
	assert.NotEmpty(t, created.Items)
	assert.Equal(t, recommend.Disclaimer, created.Disclaimer)
}

func TestStackCreateInvalidGoal(t *testing.T) {
	engine := newStackRouter()

	w := postJSON(engine, "/api/v1/stacks", `{"goal_id":"longevity"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_GOAL", resp.Error.Code)
}

func TestStackCreateMissingGoal(t *testing.T) {
	engine := newStackRouter()

	w := postJSON(engine, "/api/v1/stacks", `{"user_notes":"help"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(engine, "/api/v1/stacks", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStackGetCached(t *testing.T) {
	engine := newStackRouter()

	w := doRequest(engine, http.MethodGet, "/api/v1/stacks/injury")
	require.Equal(t, http.StatusNotFound, w.Code)

	postJSON(engine, "/api/v1/stacks", `{"goal_id":"injury"}`)

	w = doRequest(engine, http.MethodGet, "/api/v1/stacks/injury")
	require.Equal(t, http.StatusOK, w.Code)

	var cached stack.Response
	resp := decodeResponse(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &cached))
	assert.Equal(t, "injury", cached.GoalID)
}

func TestStackChecklist(t *testing.T) {
	engine := newStackRouter()
	postJSON(engine, "/api/v1/stacks", `{"goal_id":"sleep"}`)

	w := doRequest(engine, http.MethodGet, "/api/v1/stacks/sleep/checklist")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "Synergy: ")
	assert.Contains(t, w.Body.String(), recommend.Disclaimer)
}

func TestStackExport(t *testing.T) {
	engine := newStackRouter()
	postJSON(engine, "/api/v1/stacks", `{"goal_id":"focus"}`)

	w := doRequest(engine, http.MethodGet, "/api/v1/stacks/focus/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, w.Header().Get("Content-Disposition"), `"peplike-focus-stack.md"`)
	assert.True(t, strings.HasPrefix(w.Body.String(), "# Stack: focus\n"))
}

func TestStackExportUncached(t *testing.T) {
	engine := newStackRouter()

	w := doRequest(engine, http.MethodGet, "/api/v1/stacks/focus/export")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
