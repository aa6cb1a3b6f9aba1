package stack

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peplike/backend/internal/domain/catalog"
	"github.com/peplike/backend/internal/domain/shared"
	"github.com/peplike/backend/internal/domain/stack"
	"github.com/peplike/backend/internal/infrastructure/recommend"
)

// fakeEngine counts calls and serves a canned response or error. When
// entered and release are set it blocks inside Recommend so tests can
// observe the in-flight state.
type fakeEngine struct {
	mu      sync.Mutex
	calls   int
	err     error
	entered chan struct{}
	release chan struct{}
}

func (e *fakeEngine) Recommend(_ context.Context, req recommend.Request) (*stack.Response, error) {
	e.mu.Lock()
	e.calls++
	n := e.calls
	e.mu.Unlock()

	if e.entered != nil {
		e.entered <- struct{}{}
		<-e.release
	}
	if e.err != nil {
		return nil, e.err
	}
	return &stack.Response{
		GoalID:  string(req.Goal),
		Summary: "response " + string(rune('0'+n)),
		Items: []stack.Item{
			{Name: "BPC-157", Slug: "bpc-157", Route: "Subcutaneous", Why: "repair"},
		},
		Synergy:    "synergy",
		Disclaimer: "disclaimer",
	}, nil
}

func (e *fakeEngine) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

func newTestService(engine recommend.Engine) *Service {
	return NewService(catalog.Load(), engine, zap.NewNop())
}

func TestCreateChipCachesPerGoal(t *testing.T) {
	engine := &fakeEngine{}
	svc := newTestService(engine)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateRequest{GoalID: "injury", Source: SourceChip})
	require.NoError(t, err)

	second, err := svc.Create(ctx, CreateRequest{GoalID: "injury", Source: SourceChip})
	require.NoError(t, err)

	assert.Equal(t, 1, engine.callCount())
	assert.Same(t, first, second)

	// A different goal misses the cache.
	_, err = svc.Create(ctx, CreateRequest{GoalID: "sleep", Source: SourceChip})
	require.NoError(t, err)
	assert.Equal(t, 2, engine.callCount())
}

func TestCreateDefaultsToChipSource(t *testing.T) {
	engine := &fakeEngine{}
	svc := newTestService(engine)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{GoalID: "injury"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{GoalID: "injury"})
	require.NoError(t, err)

	assert.Equal(t, 1, engine.callCount())
}

func TestCreateCustomBypassesAndOverwritesCache(t *testing.T) {
	engine := &fakeEngine{}
	svc := newTestService(engine)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{GoalID: "injury", Source: SourceChip})
	require.NoError(t, err)

	custom, err := svc.Create(ctx, CreateRequest{
		GoalID:    "injury",
		UserNotes: "knee tendon",
		Source:    SourceCustom,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, engine.callCount())

	// The custom response replaces the cached value.
	chip, err := svc.Create(ctx, CreateRequest{GoalID: "injury", Source: SourceChip})
	require.NoError(t, err)
	assert.Same(t, custom, chip)
	assert.Equal(t, 2, engine.callCount())
}

func TestCreateFailureLeavesCache(t *testing.T) {
	engine := &fakeEngine{}
	svc := newTestService(engine)
	ctx := context.Background()

	cached, err := svc.Create(ctx, CreateRequest{GoalID: "injury", Source: SourceChip})
	require.NoError(t, err)

	engine.err = shared.ErrRemoteFailure
	_, err = svc.Create(ctx, CreateRequest{GoalID: "injury", Source: SourceCustom})
	assert.ErrorIs(t, err, shared.ErrRemoteFailure)

	// The prior value survives for the next chip request.
	engine.err = nil
	chip, err := svc.Create(ctx, CreateRequest{GoalID: "injury", Source: SourceChip})
	require.NoError(t, err)
	assert.Same(t, cached, chip)
}

func TestCreateRejectsConcurrentRequests(t *testing.T) {
	engine := &fakeEngine{
		entered: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	svc := newTestService(engine)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Create(ctx, CreateRequest{GoalID: "injury", Source: SourceChip})
		done <- err
	}()

	select {
	case <-engine.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("engine was never called")
	}

	_, err := svc.Create(ctx, CreateRequest{GoalID: "sleep", Source: SourceChip})
	assert.ErrorIs(t, err, shared.ErrRequestPending)

	close(engine.release)
	require.NoError(t, <-done)

	// The flag clears once the first request completes.
	_, err = svc.Create(ctx, CreateRequest{GoalID: "sleep", Source: SourceChip})
	assert.NoError(t, err)
}

func TestCreateValidatesGoal(t *testing.T) {
	svc := newTestService(&fakeEngine{})
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{GoalID: "", UserNotes: "free text"})
	assert.ErrorIs(t, err, shared.ErrNoGoalSelected)

	_, err = svc.Create(ctx, CreateRequest{GoalID: "longevity"})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_GOAL", domainErr.Code)
}

func TestCachedAndRenderings(t *testing.T) {
	svc := newTestService(&fakeEngine{})
	ctx := context.Background()

	_, err := svc.Cached("injury")
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = svc.Checklist("injury")
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, _, err = svc.Export("injury")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	created, err := svc.Create(ctx, CreateRequest{GoalID: "injury"})
	require.NoError(t, err)

	cached, err := svc.Cached("injury")
	require.NoError(t, err)
	assert.Same(t, created, cached)

	text, err := svc.Checklist("injury")
	require.NoError(t, err)
	assert.Contains(t, text, "- BPC-157 — repair (route: Subcutaneous)")

	content, filename, err := svc.Export("injury")
	require.NoError(t, err)
	assert.Equal(t, "peplike-injury-stack.md", filename)
	assert.Contains(t, content, "# Stack: injury")

	_, err = svc.Cached("nope")
	require.Error(t, err)
}
