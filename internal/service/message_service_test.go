package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bornebyte/notes/pkg/util"
)

func TestMessageCreate(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo)

	msg, err := svc.Create(context.Background(), "Ada", "ada@example.com", "hello")
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)
	assert.Len(t, repo.messages, 1)
}

func TestMessageCreateRequiresAllFields(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo())

	cases := []struct {
		name, email, body string
	}{
		{"", "ada@example.com", "hello"},
		{"Ada", "", "hello"},
		{"Ada", "ada@example.com", ""},
		{"   ", "ada@example.com", "hello"},
	}
	for _, tc := range cases {
		_, err := svc.Create(context.Background(), tc.name, tc.email, tc.body)
		require.Error(t, err)
		var domainErr *apperrors.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	}
}

func TestMessageCreateRejectsBadEmail(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo())

	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@example.com"} {
		_, err := svc.Create(context.Background(), "Ada", email, "hello")
		require.Error(t, err, "email %q should be rejected", email)
		var domainErr *apperrors.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Invalid email format", domainErr.Message)
	}
}

func TestMessageDelete(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo)
	msg, err := svc.Create(context.Background(), "Ada", "ada@example.com", "hello")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), msg.ID))
	assert.Empty(t, repo.messages)
}
