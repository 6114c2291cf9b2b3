package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/events"
	"github.com/bornebyte/notes/internal/repository"
)

// NotificationRecorder turns mutation events into audit trail rows. It runs
// synchronously after the primary mutation has committed; an insert failure
// is logged as a warning and never surfaces to the client.
type NotificationRecorder struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// NewNotificationRecorder constructs the recorder.
func NewNotificationRecorder(notifications repository.NotificationRepository, dispatcher events.Dispatcher, logger *zap.Logger) *NotificationRecorder {
	return &NotificationRecorder{
		notifications: notifications,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// RegisterHandlers subscribes the recorder to every mutation kind.
func (r *NotificationRecorder) RegisterHandlers() {
	for _, kind := range domain.MutationKinds {
		r.dispatcher.Subscribe(kind, r.record)
	}
}

func (r *NotificationRecorder) record(ctx context.Context, event events.Event) error {
	notification := &domain.Notification{
		Title:    event.Kind.Title(event.Ref),
		Category: event.Kind.Category(),
		Label:    event.Kind.Label(),
	}
	if err := r.notifications.Insert(ctx, notification); err != nil {
		r.logger.Warn("notification insert failed",
			zap.String("kind", string(event.Kind)),
			zap.String("ref", event.Ref),
			zap.String("identity", event.Identity),
			zap.Error(err))
		return err
	}
	return nil
}
