// Package identity proxies the external auth service and mirrors the
// issued token and profile into the local store.
package identity

import (
	"context"

	"go.uber.org/zap"

	"github.com/peplike/backend/internal/domain/shared"
	"github.com/peplike/backend/internal/infrastructure/identity"
	"github.com/peplike/backend/internal/infrastructure/localstore"
	"github.com/peplike/backend/internal/infrastructure/telemetry"
)

// Service handles register/login/logout and current-user lookups.
type Service struct {
	client *identity.Client
	store  *localstore.Store
	logger *zap.Logger
}

// NewService creates an identity Service.
func NewService(client *identity.Client, store *localstore.Store, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		store:  store,
		logger: logger.Named("identity"),
	}
}

// Register creates an account on the auth service.
func (s *Service) Register(ctx context.Context, email, password, name string) (*identity.User, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "identity", "register")
	defer span.End()

	user, err := s.client.Register(ctx, email, password, name)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// Login exchanges credentials for a token and persists the token and
// profile under the product's well-known keys.
func (s *Service) Login(ctx context.Context, email, password string) (*identity.AuthResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "identity", "login")
	defer span.End()

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.store.Set(ctx, localstore.KeyAccessToken, resp.Token); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, localstore.KeyUser, resp.User); err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("user_id", resp.User.ID))
	return resp, nil
}

// Logout drops the stored token and profile.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, localstore.KeyAccessToken); err != nil {
		return err
	}
	return s.store.Delete(ctx, localstore.KeyUser)
}

// CurrentUser returns the cached profile when present, falling back to
// the auth service with the given token. A corrupt cached profile reads
// as absent.
func (s *Service) CurrentUser(ctx context.Context, token string) (*identity.User, error) {
	var cached identity.User
	ok, err := s.store.Get(ctx, localstore.KeyUser, &cached)
	if err != nil {
		return nil, err
	}
	if ok && cached.ID != "" {
		return &cached, nil
	}

	if token == "" {
		return nil, shared.ErrUnauthorized
	}
	user, err := s.client.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, localstore.KeyUser, user); err != nil {
		return nil, err
	}
	return user, nil
}

// StoredToken returns the persisted bearer token, if any.
func (s *Service) StoredToken(ctx context.Context) (string, bool, error) {
	return s.store.GetString(ctx, localstore.KeyAccessToken)
}

// Validate reports whether the auth service accepts the token.
func (s *Service) Validate(ctx context.Context, token string) bool {
	return s.client.ValidateToken(ctx, token)
}
