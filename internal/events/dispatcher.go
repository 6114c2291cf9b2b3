package events

import (
	"context"
	"sync"

	"github.com/bornebyte/notes/internal/domain"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher interface allows event publication/subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(kind domain.MutationKind, handler EventHandler)
}

// inMemoryDispatcher is a simple synchronous dispatcher. Synchronous delivery
// preserves the emission order of notification rows relative to their
// triggering mutations.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	listeners map[domain.MutationKind][]EventHandler
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{
		listeners: make(map[domain.MutationKind][]EventHandler),
	}
}

// Publish synchronously invokes handlers for the given event. Handler errors
// do not stop delivery to the remaining handlers; the triggering mutation has
// already committed.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	handlers := append([]EventHandler{}, d.listeners[event.Kind]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		_ = handler(ctx, event)
	}
	return nil
}

// Subscribe registers a handler for the given mutation kind.
func (d *inMemoryDispatcher) Subscribe(kind domain.MutationKind, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[kind] = append(d.listeners[kind], handler)
}
