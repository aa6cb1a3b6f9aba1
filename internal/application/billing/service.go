// Package billing exposes subscription plans and Stripe session creation.
package billing

import (
	"context"

	"go.uber.org/zap"

	"github.com/peplike/backend/internal/domain/shared"
	"github.com/peplike/backend/internal/infrastructure/billing"
	"github.com/peplike/backend/internal/infrastructure/telemetry"
)

// Service wraps the Stripe adapter with plan lookup and input validation.
type Service struct {
	stripe *billing.StripeAdapter
	logger *zap.Logger
}

// NewService creates a billing Service.
func NewService(stripe *billing.StripeAdapter, logger *zap.Logger) *Service {
	return &Service{
		stripe: stripe,
		logger: logger.Named("billing"),
	}
}

// Plans returns the available subscription tiers.
func (s *Service) Plans(ctx context.Context) []billing.Plan {
	return billing.Plans()
}

// CheckoutRequest carries a checkout session request.
type CheckoutRequest struct {
	PlanID     string `json:"plan_id" binding:"required"`
	SuccessURL string `json:"success_url" binding:"required"`
	CancelURL  string `json:"cancel_url" binding:"required"`
}

// CreateCheckoutSession starts a Stripe Checkout session for the premium
// plan on behalf of the authenticated user.
func (s *Service) CreateCheckoutSession(ctx context.Context, userID, email string, req CheckoutRequest) (*billing.CheckoutSessionOutput, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "billing", "checkout")
	defer span.End()

	plan, ok := billing.PlanByID(req.PlanID)
	if !ok {
		return nil, shared.NewDomainError("INVALID_PLAN", "Unknown subscription plan")
	}
	if plan.MonthlyPrice.IsZero() {
		return nil, shared.NewDomainError("INVALID_PLAN", "The free plan has no checkout")
	}

	out, err := s.stripe.CreateCheckoutSession(ctx, billing.CheckoutSessionInput{
		UserID:     userID,
		Email:      email,
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, shared.ErrRemoteFailure
	}
	return out, nil
}

// CreatePortalSession returns a billing portal URL for subscription
// self-management.
func (s *Service) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*billing.PortalSessionOutput, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "billing", "portal")
	defer span.End()

	if customerID == "" {
		return nil, shared.NewDomainError("NO_SUBSCRIPTION", "User has no billing account")
	}
	out, err := s.stripe.CreatePortalSession(ctx, customerID, returnURL)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, shared.ErrRemoteFailure
	}
	return out, nil
}
