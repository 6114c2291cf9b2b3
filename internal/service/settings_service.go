package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/bornebyte/notes/internal/auth"
	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/events"
	"github.com/bornebyte/notes/internal/repository"
	apperrors "github.com/bornebyte/notes/pkg/util"
)

// SettingsService owns the admin password and API token management. It is the
// issuer side of the token records the request verifier consumes.
type SettingsService struct {
	password   repository.PasswordRepository
	tokens     repository.TokenRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// SettingsDependencies bundles collaborators for the settings service.
type SettingsDependencies struct {
	PasswordRepo repository.PasswordRepository
	TokenRepo    repository.TokenRepository
	Dispatcher   events.Dispatcher
	BcryptCost   int
}

// NewSettingsService constructs the service.
func NewSettingsService(deps SettingsDependencies) *SettingsService {
	return &SettingsService{
		password:   deps.PasswordRepo,
		tokens:     deps.TokenRepo,
		dispatcher: deps.Dispatcher,
		bcryptCost: deps.BcryptCost,
	}
}

// VerifyPassword compares a login attempt against the stored hash.
func (s *SettingsService) VerifyPassword(ctx context.Context, plain string) error {
	hash, err := s.password.GetHash(ctx)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(hash, plain); err != nil {
		return apperrors.NewUnauthorized("Invalid password")
	}
	return nil
}

// ChangePassword stores a new admin password hash and emits the fixed-title
// passwordchange notification.
func (s *SettingsService) ChangePassword(ctx context.Context, identity, newPassword string) error {
	if len(newPassword) < auth.MinPasswordLength {
		return apperrors.NewValidationError("Password must be at least 6 characters")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.password.UpdateHash(ctx, hash); err != nil {
		return err
	}
	publishMutation(ctx, s.dispatcher, domain.MutationPasswordChanged, "", identity)
	return nil
}

// CreateToken issues a new API token. The opaque 64-character value is
// returned exactly once; listings redact it.
func (s *SettingsService) CreateToken(ctx context.Context, name string) (*domain.APIToken, error) {
	raw := make([]byte, domain.APITokenLength/2)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	token := &domain.APIToken{Token: hex.EncodeToString(raw), Name: name}
	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// ListTokens returns all tokens, including revoked ones.
func (s *SettingsService) ListTokens(ctx context.Context) ([]domain.APIToken, error) {
	return s.tokens.List(ctx)
}

// RevokeToken marks a token revoked; it never authenticates again.
func (s *SettingsService) RevokeToken(ctx context.Context, id int64) error {
	return s.tokens.Revoke(ctx, id)
}
