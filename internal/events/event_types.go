package events

import (
	"time"

	"github.com/bornebyte/notes/internal/domain"
)

// Event represents a successful mutation emitted by services. Ref is the
// affected record identifier rendered into the notification title; kinds with
// fixed titles leave it empty.
type Event struct {
	ID        string
	Kind      domain.MutationKind
	Ref       string
	Identity  string
	Timestamp time.Time
}
