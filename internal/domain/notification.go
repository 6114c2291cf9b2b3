package domain

import (
	"fmt"
	"time"
)

// MutationKind enumerates every audited mutation. Each kind owns its category
// tag, display label and title template, so the emitted rows and the filter
// menu can never drift apart.
type MutationKind string

const (
	MutationNoteAdded           MutationKind = "noteadded"
	MutationNoteUpdated         MutationKind = "noteupdated"
	MutationNoteTrashed         MutationKind = "notetrashed"
	MutationNoteRecovered       MutationKind = "noterecovered"
	MutationNoteDeleted         MutationKind = "notedeleted"
	MutationNoteFavoriteAdded   MutationKind = "noteaddedfav"
	MutationNoteFavoriteRemoved MutationKind = "noteremovedfav"
	MutationShareCreated        MutationKind = "shareidcreated"
	MutationTargetDeleted       MutationKind = "targetdeleted"
	MutationPasswordChanged     MutationKind = "passwordchange"
)

// MutationKinds lists all kinds in a stable order, used to build filter menus.
var MutationKinds = []MutationKind{
	MutationNoteAdded,
	MutationNoteUpdated,
	MutationNoteTrashed,
	MutationNoteRecovered,
	MutationNoteDeleted,
	MutationNoteFavoriteAdded,
	MutationNoteFavoriteRemoved,
	MutationShareCreated,
	MutationTargetDeleted,
	MutationPasswordChanged,
}

// Category returns the machine tag stored on notification rows.
func (k MutationKind) Category() string {
	return string(k)
}

// Label returns the human-readable category name.
func (k MutationKind) Label() string {
	switch k {
	case MutationNoteAdded:
		return "Note added"
	case MutationNoteUpdated:
		return "Note updated"
	case MutationNoteTrashed:
		return "Note trashed"
	case MutationNoteRecovered:
		return "Note recovered"
	case MutationNoteDeleted:
		return "Note Deleted"
	case MutationNoteFavoriteAdded:
		return "Note Added Favourite"
	case MutationNoteFavoriteRemoved:
		return "Note Removed Favourite"
	case MutationShareCreated:
		return "Share ID Created"
	case MutationTargetDeleted:
		return "Target Deleted"
	case MutationPasswordChanged:
		return "Password Change"
	default:
		return string(k)
	}
}

// Title renders the notification title. ref is the affected record identifier;
// target deletion and password change use fixed titles and ignore it.
func (k MutationKind) Title(ref string) string {
	switch k {
	case MutationNoteAdded:
		return fmt.Sprintf("Note Added with id %s", ref)
	case MutationNoteUpdated:
		return fmt.Sprintf("Note Updated with id %s", ref)
	case MutationNoteTrashed:
		return fmt.Sprintf("Note trashed with id %s", ref)
	case MutationNoteRecovered:
		return fmt.Sprintf("Note recovered with id %s", ref)
	case MutationNoteDeleted:
		return fmt.Sprintf("Note permanently deleted with id %s", ref)
	case MutationNoteFavoriteAdded:
		return fmt.Sprintf("Note added to favourite with id %s", ref)
	case MutationNoteFavoriteRemoved:
		return fmt.Sprintf("Note removed from favourite with id %s", ref)
	case MutationShareCreated:
		return fmt.Sprintf("Share id created with id %s", ref)
	case MutationTargetDeleted:
		return "Target deleted"
	case MutationPasswordChanged:
		return "Admin Password Changed"
	default:
		return string(k)
	}
}

// Notification is an audit trail row created as a side effect of a mutation.
type Notification struct {
	ID        int64
	Title     string
	CreatedAt time.Time
	Category  string
	Label     string
}

// NotificationFilter is one entry of the category filter menu.
type NotificationFilter struct {
	Category string `json:"category"`
	Label    string `json:"label"`
}
