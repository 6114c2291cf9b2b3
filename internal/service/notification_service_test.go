package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bornebyte/notes/internal/domain"
)

func seedNotifications(t *testing.T, repo *fakeNotificationRepo, kinds ...domain.MutationKind) {
	t.Helper()
	for _, kind := range kinds {
		require.NoError(t, repo.Insert(context.Background(), &domain.Notification{
			Title:    kind.Title("1"),
			Category: kind.Category(),
			Label:    kind.Label(),
		}))
	}
}

func TestNotificationListBuildsMenuFromPresentCategories(t *testing.T) {
	repo := newFakeNotificationRepo()
	seedNotifications(t, repo,
		domain.MutationNoteAdded,
		domain.MutationNoteAdded,
		domain.MutationShareCreated,
	)
	svc := NewNotificationService(repo)

	rows, menu, err := svc.List(context.Background(), "*")
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	// "All" always leads; only categories present in the result follow, in
	// enumeration order, without duplicates.
	require.Len(t, menu, 3)
	assert.Equal(t, domain.NotificationFilter{Category: "*", Label: "All"}, menu[0])
	assert.Equal(t, domain.NotificationFilter{Category: "noteadded", Label: "Note added"}, menu[1])
	assert.Equal(t, domain.NotificationFilter{Category: "shareidcreated", Label: "Share ID Created"}, menu[2])
}

func TestNotificationListFiltersByCategory(t *testing.T) {
	repo := newFakeNotificationRepo()
	seedNotifications(t, repo, domain.MutationNoteAdded, domain.MutationNoteTrashed)
	svc := NewNotificationService(repo)

	rows, menu, err := svc.List(context.Background(), "notetrashed")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "notetrashed", rows[0].Category)

	require.Len(t, menu, 2)
	assert.Equal(t, "notetrashed", menu[1].Category)
}

func TestNotificationListEmpty(t *testing.T) {
	svc := NewNotificationService(newFakeNotificationRepo())

	rows, menu, err := svc.List(context.Background(), "*")
	require.NoError(t, err)
	assert.Empty(t, rows)
	require.Len(t, menu, 1)
	assert.Equal(t, "*", menu[0].Category)
}

func TestNotificationDelete(t *testing.T) {
	repo := newFakeNotificationRepo()
	seedNotifications(t, repo, domain.MutationNoteAdded)
	svc := NewNotificationService(repo)

	require.NoError(t, svc.Delete(context.Background(), repo.rows[0].ID))
	assert.Empty(t, repo.rows)
}
