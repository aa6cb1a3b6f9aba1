// Package identity is an HTTP client for the external auth service. The
// backend proxies register/login/me rather than owning credentials, and
// mirrors the issued token and profile into the local store under the
// product's well-known keys.
package identity

import (
	"context"

	"go.uber.org/zap"
	"resty.dev/v3"

	"github.com/peplike/backend/internal/domain/shared"
	"github.com/peplike/backend/internal/infrastructure/config"
)

// User is the profile shape returned by the auth service.
type User struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name,omitempty"`
	IsActive         bool   `json:"is_active,omitempty"`
	IsVerified       bool   `json:"is_verified,omitempty"`
	SubscriptionTier string `json:"subscription_tier,omitempty"`
	StripeCustomerID string `json:"stripe_customer_id,omitempty"`
}

// AuthResponse is the login response: a profile plus a bearer token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Client talks to the auth service.
type Client struct {
	http    *resty.Client
	baseURL string
	logger  *zap.Logger
}

// NewClient creates a Client for the configured auth service.
func NewClient(cfg config.AuthServiceConfig, logger *zap.Logger) *Client {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &Client{
		http:    client,
		baseURL: cfg.BaseURL,
		logger:  logger.Named("identity"),
	}
}

// Configured reports whether an auth service base URL is set.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Login exchanges credentials for a token and profile.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if !c.Configured() {
		return nil, shared.ErrRemoteFailure
	}

	var out AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post(c.baseURL + "/auth/login")
	if err != nil {
		c.logger.Warn("login call failed", zap.Error(err))
		return nil, shared.ErrRemoteFailure
	}
	if resp.StatusCode() == 401 || resp.StatusCode() == 403 {
		return nil, shared.ErrUnauthorized
	}
	if resp.IsError() {
		c.logger.Warn("login returned error status", zap.Int("status", resp.StatusCode()))
		return nil, shared.ErrRemoteFailure
	}
	return &out, nil
}

// Register creates an account on the auth service.
func (c *Client) Register(ctx context.Context, email, password, name string) (*User, error) {
	if !c.Configured() {
		return nil, shared.ErrRemoteFailure
	}

	var out User
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password, "name": name}).
		SetResult(&out).
		Post(c.baseURL + "/auth/register")
	if err != nil {
		c.logger.Warn("register call failed", zap.Error(err))
		return nil, shared.ErrRemoteFailure
	}
	if resp.StatusCode() == 409 {
		return nil, shared.ErrAlreadyExists
	}
	if resp.IsError() {
		c.logger.Warn("register returned error status", zap.Int("status", resp.StatusCode()))
		return nil, shared.ErrRemoteFailure
	}
	return &out, nil
}

// CurrentUser fetches the profile behind a token.
func (c *Client) CurrentUser(ctx context.Context, token string) (*User, error) {
	if !c.Configured() {
		return nil, shared.ErrRemoteFailure
	}

	var out User
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		Get(c.baseURL + "/auth/me")
	if err != nil {
		return nil, shared.ErrRemoteFailure
	}
	if resp.StatusCode() == 401 {
		return nil, shared.ErrUnauthorized
	}
	if resp.IsError() {
		return nil, shared.ErrRemoteFailure
	}
	return &out, nil
}

// ValidateToken reports whether the auth service accepts the token.
func (c *Client) ValidateToken(ctx context.Context, token string) bool {
	if !c.Configured() {
		return false
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(c.baseURL + "/auth/validate")
	return err == nil && !resp.IsError()
}
