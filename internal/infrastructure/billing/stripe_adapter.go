package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	portalsession "github.com/stripe/stripe-go/v81/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v81/checkout/session"
	"go.uber.org/zap"

	"github.com/peplike/backend/internal/infrastructure/config"
)

// ErrNotConfigured is returned when Stripe credentials are absent.
var ErrNotConfigured = errors.New("stripe is not configured")

// StripeAdapter implements Stripe billing operations for subscription management
type StripeAdapter struct {
	config config.StripeConfig
	logger *zap.Logger
}

// NewStripeAdapter creates a new Stripe adapter
func NewStripeAdapter(cfg config.StripeConfig, logger *zap.Logger) *StripeAdapter {
	if cfg.SecretKey != "" {
		stripe.Key = cfg.SecretKey
	}
	return &StripeAdapter{
		config: cfg,
		logger: logger.Named("stripe"),
	}
}

// Configured reports whether the adapter has credentials.
func (a *StripeAdapter) Configured() bool {
	return a.config.SecretKey != "" && a.config.PremiumPriceID != ""
}

// CheckoutSessionInput carries what checkout needs to start a premium
// subscription for a user.
type CheckoutSessionInput struct {
	UserID     string
	Email      string
	SuccessURL string
	CancelURL  string
}

// CheckoutSessionOutput is the created checkout session.
type CheckoutSessionOutput struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// CreateCheckoutSession creates a Stripe Checkout session for the
// premium subscription.
func (a *StripeAdapter) CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (*CheckoutSessionOutput, error) {
	if !a.Configured() {
		return nil, ErrNotConfigured
	}

	a.logger.Debug("Creating checkout session",
		zap.String("user_id", input.UserID),
		zap.String("email", input.Email))

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(input.Email),
		SuccessURL:    stripe.String(input.SuccessURL),
		CancelURL:     stripe.String(input.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(a.config.PremiumPriceID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.Metadata = map[string]string{
		"user_id": input.UserID,
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		a.logger.Error("Failed to create checkout session",
			zap.String("user_id", input.UserID),
			zap.Error(err))
		return nil, fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}

	a.logger.Info("Created checkout session",
		zap.String("user_id", input.UserID),
		zap.String("session_id", sess.ID))

	return &CheckoutSessionOutput{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// PortalSessionOutput is the created billing portal session.
type PortalSessionOutput struct {
	URL string `json:"url"`
}

// CreatePortalSession creates a Stripe billing portal session so a
// subscribed user can manage or cancel their plan.
func (a *StripeAdapter) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*PortalSessionOutput, error) {
	if !a.Configured() {
		return nil, ErrNotConfigured
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	sess, err := portalsession.New(params)
	if err != nil {
		a.logger.Error("Failed to create portal session",
			zap.String("customer_id", customerID),
			zap.Error(err))
		return nil, fmt.Errorf("stripe: failed to create portal session: %w", err)
	}

	return &PortalSessionOutput{URL: sess.URL}, nil
}
