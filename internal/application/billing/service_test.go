package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peplike/backend/internal/domain/shared"
	"github.com/peplike/backend/internal/infrastructure/billing"
	"github.com/peplike/backend/internal/infrastructure/config"
)

func newTestService() *Service {
	// Unconfigured Stripe: plan validation still runs locally.
	adapter := billing.NewStripeAdapter(config.StripeConfig{}, zap.NewNop())
	return NewService(adapter, zap.NewNop())
}

func TestPlans(t *testing.T) {
	plans := newTestService().Plans(context.Background())
	require.Len(t, plans, 2)
	assert.Equal(t, "free", plans[0].ID)
	assert.True(t, plans[0].MonthlyPrice.IsZero())
	assert.Equal(t, "premium", plans[1].ID)
	assert.False(t, plans[1].MonthlyPrice.IsZero())
}

func TestCreateCheckoutSessionValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateCheckoutSession(ctx, "user-1", "user@example.com", CheckoutRequest{
		PlanID:     "gold",
		SuccessURL: "https://app.example/ok",
		CancelURL:  "https://app.example/no",
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PLAN", domainErr.Code)

	// The free plan has nothing to check out.
	_, err = svc.CreateCheckoutSession(ctx, "user-1", "user@example.com", CheckoutRequest{
		PlanID:     "free",
		SuccessURL: "https://app.example/ok",
		CancelURL:  "https://app.example/no",
	})
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PLAN", domainErr.Code)
}

func TestCreateCheckoutSessionUnconfigured(t *testing.T) {
	_, err := newTestService().CreateCheckoutSession(context.Background(), "user-1", "user@example.com", CheckoutRequest{
		PlanID:     "premium",
		SuccessURL: "https://app.example/ok",
		CancelURL:  "https://app.example/no",
	})
	assert.ErrorIs(t, err, shared.ErrRemoteFailure)
}

func TestCreatePortalSessionWithoutCustomer(t *testing.T) {
	_, err := newTestService().CreatePortalSession(context.Background(), "", "https://app.example/account")
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NO_SUBSCRIPTION", domainErr.Code)
}

func TestPlanByID(t *testing.T) {
	plan, ok := billing.PlanByID("premium")
	require.True(t, ok)
	assert.Equal(t, "Premium", plan.Name)

	_, ok = billing.PlanByID("gold")
	assert.False(t, ok)
}
