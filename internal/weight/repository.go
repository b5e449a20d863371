package weight

import (
	"context"
	"time"
)

// Repository defines the interface for weight series persistence.
// The series is append-only; entries are never updated in place.
type Repository interface {
	// Add appends an entry to the user's series.
	Add(ctx context.Context, entry *Entry) error

	// List retrieves all entries for a user sorted by date, oldest first.
	List(ctx context.Context, userID string) ([]*Entry, error)

	// ListRange retrieves entries with a date within [from, to], inclusive
	// on both ends, sorted by date, oldest first.
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]*Entry, error)

	// Delete removes one entry from the user's series.
	// Returns ErrEntryNotFound if the entry doesn't exist or belongs to
	// another user.
	Delete(ctx context.Context, userID, entryID string) error
}
