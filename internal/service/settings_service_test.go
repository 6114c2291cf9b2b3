package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bornebyte/notes/internal/auth"
	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/events"
	apperrors "github.com/bornebyte/notes/pkg/util"
)

func newSettingsFixture(t *testing.T) (*SettingsService, *fakePasswordRepo, *fakeTokenRepo, *fakeNotificationRepo) {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse", bcrypt.MinCost)
	require.NoError(t, err)

	passwordRepo := &fakePasswordRepo{hash: hash}
	tokenRepo := newFakeTokenRepo()
	notificationRepo := newFakeNotificationRepo()
	dispatcher := events.NewInMemoryDispatcher()

	recorder := NewNotificationRecorder(notificationRepo, dispatcher, zap.NewNop())
	recorder.RegisterHandlers()

	svc := NewSettingsService(SettingsDependencies{
		PasswordRepo: passwordRepo,
		TokenRepo:    tokenRepo,
		Dispatcher:   dispatcher,
		BcryptCost:   bcrypt.MinCost,
	})
	return svc, passwordRepo, tokenRepo, notificationRepo
}

func TestVerifyPassword(t *testing.T) {
	svc, _, _, _ := newSettingsFixture(t)

	require.NoError(t, svc.VerifyPassword(context.Background(), "correct-horse"))

	err := svc.VerifyPassword(context.Background(), "wrong")
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestChangePasswordEmitsFixedTitle(t *testing.T) {
	svc, passwordRepo, _, notifications := newSettingsFixture(t)
	oldHash := passwordRepo.hash

	require.NoError(t, svc.ChangePassword(context.Background(), domain.SessionIdentity, "new-password"))
	assert.NotEqual(t, oldHash, passwordRepo.hash)
	require.NoError(t, svc.VerifyPassword(context.Background(), "new-password"))

	require.Len(t, notifications.rows, 1)
	assert.Equal(t, "Admin Password Changed", notifications.rows[0].Title)
	assert.Equal(t, "passwordchange", notifications.rows[0].Category)
	assert.Equal(t, "Password Change", notifications.rows[0].Label)
}

func TestChangePasswordRejectsShort(t *testing.T) {
	svc, passwordRepo, _, notifications := newSettingsFixture(t)
	oldHash := passwordRepo.hash

	err := svc.ChangePassword(context.Background(), domain.SessionIdentity, "tiny")
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)

	assert.Equal(t, oldHash, passwordRepo.hash)
	assert.Empty(t, notifications.rows)
}

func TestCreateToken(t *testing.T) {
	svc, _, tokenRepo, _ := newSettingsFixture(t)

	token, err := svc.CreateToken(context.Background(), "ci")
	require.NoError(t, err)
	assert.Len(t, token.Token, domain.APITokenLength)
	assert.Equal(t, "ci", token.Name)
	assert.NotZero(t, token.ID)

	// Tokens must be unique across issues.
	second, err := svc.CreateToken(context.Background(), "backup")
	require.NoError(t, err)
	assert.NotEqual(t, token.Token, second.Token)
	assert.Len(t, tokenRepo.tokens, 2)
}

func TestRevokeTokenStopsAuthentication(t *testing.T) {
	svc, _, tokenRepo, _ := newSettingsFixture(t)
	token, err := svc.CreateToken(context.Background(), "ci")
	require.NoError(t, err)

	found, err := tokenRepo.GetActiveByValue(context.Background(), token.Token)
	require.NoError(t, err)
	require.NotNil(t, found)

	require.NoError(t, svc.RevokeToken(context.Background(), token.ID))
	_, err = tokenRepo.GetActiveByValue(context.Background(), token.Token)
	require.Error(t, err)
}
