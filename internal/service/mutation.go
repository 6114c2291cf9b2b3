package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/events"
)

// publishMutation emits a mutation event on the shared dispatcher. The
// primary write has already committed, so publish failures never propagate to
// the caller.
func publishMutation(ctx context.Context, dispatcher events.Dispatcher, kind domain.MutationKind, ref, identity string) {
	if dispatcher == nil {
		return
	}
	_ = dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Ref:       ref,
		Identity:  identity,
		Timestamp: time.Now(),
	})
}
