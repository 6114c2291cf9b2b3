package service

import (
	"context"
	"strconv"
	"time"

	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/events"
	"github.com/bornebyte/notes/internal/repository"
)

// TargetService coordinates deadline tracker workflows.
type TargetService struct {
	targets    repository.TargetRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewTargetService constructs the service.
func NewTargetService(targets repository.TargetRepository, dispatcher events.Dispatcher) *TargetService {
	return &TargetService{targets: targets, dispatcher: dispatcher, now: time.Now}
}

// List returns all targets annotated with countdown and progress values.
func (s *TargetService) List(ctx context.Context) ([]domain.TargetProgress, error) {
	targets, err := s.targets.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	result := make([]domain.TargetProgress, 0, len(targets))
	for _, t := range targets {
		result = append(result, t.Progress(now))
	}
	return result, nil
}

// Create inserts a target. Target creation is not audited; only deletion is.
func (s *TargetService) Create(ctx context.Context, date time.Time, message string) (*domain.Target, error) {
	target := &domain.Target{Date: date, Message: message}
	if err := s.targets.Create(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

// Delete removes a target and emits the fixed-title targetdeleted notification.
func (s *TargetService) Delete(ctx context.Context, identity string, id int64) error {
	if err := s.targets.Delete(ctx, id); err != nil {
		return err
	}
	publishMutation(ctx, s.dispatcher, domain.MutationTargetDeleted, strconv.FormatInt(id, 10), identity)
	return nil
}
