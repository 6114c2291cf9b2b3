package service

import (
	"context"

	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/repository"
)

// NotificationService serves the audit trail query API.
type NotificationService struct {
	notifications repository.NotificationRepository
}

// NewNotificationService constructs the service.
func NewNotificationService(notifications repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// List returns the newest notifications for the given category filter ("*"
// for all) together with the filter menu. The menu derives from the closed
// mutation-kind enumeration, restricted to categories present in the result,
// so displayed filters can never drift from emitted tags.
func (s *NotificationService) List(ctx context.Context, filter string) ([]domain.Notification, []domain.NotificationFilter, error) {
	rows, err := s.notifications.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	present := make(map[string]bool, len(rows))
	for _, row := range rows {
		present[row.Category] = true
	}

	menu := []domain.NotificationFilter{{Category: "*", Label: "All"}}
	for _, kind := range domain.MutationKinds {
		if present[kind.Category()] {
			menu = append(menu, domain.NotificationFilter{
				Category: kind.Category(),
				Label:    kind.Label(),
			})
		}
	}
	return rows, menu, nil
}

// Delete removes one notification row.
func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	return s.notifications.Delete(ctx, id)
}
