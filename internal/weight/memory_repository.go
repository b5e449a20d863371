package weight

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing and local development. Production should use
// PostgresRepository.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string][]*Entry // keyed by userID
}

// NewInMemoryRepository creates a new in-memory weight repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		entries: make(map[string][]*Entry),
	}
}

// Add appends an entry to the user's series.
func (r *InMemoryRepository) Add(_ context.Context, entry *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *entry
	r.entries[entry.UserID] = append(r.entries[entry.UserID], &cpy)
	return nil
}

// List retrieves all entries for a user sorted by date, oldest first.
func (r *InMemoryRepository) List(_ context.Context, userID string) ([]*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedCopies(userID, nil, nil), nil
}

// ListRange retrieves entries dated within [from, to], oldest first.
func (r *InMemoryRepository) ListRange(_ context.Context, userID string, from, to time.Time) ([]*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedCopies(userID, &from, &to), nil
}

// Delete removes one entry from the user's series.
func (r *InMemoryRepository) Delete(_ context.Context, userID, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.entries[userID]
	for i, e := range entries {
		if e.ID == entryID {
			r.entries[userID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// sortedCopies returns date-sorted copies of a user's entries, optionally
// bounded to [from, to]. Callers must hold the lock.
func (r *InMemoryRepository) sortedCopies(userID string, from, to *time.Time) []*Entry {
	var result []*Entry
	for _, e := range r.entries[userID] {
		if from != nil && e.Date.Before(*from) {
			continue
		}
		if to != nil && e.Date.After(*to) {
			continue
		}
		cpy := *e
		result = append(result, &cpy)
	}

	sort.Slice(result, func(a, b int) bool {
		if result[a].Date.Equal(result[b].Date) {
			return result[a].CreatedAt.Before(result[b].CreatedAt)
		}
		return result[a].Date.Before(result[b].Date)
	})
	return result
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
