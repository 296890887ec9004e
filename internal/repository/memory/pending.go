// Package memory provides in-process stores for transient state.
package memory

import (
	"context"
	"sync"

	"github.com/dkarpov/notes-server/internal/model"
)

var _ model.PendingStore = (*PendingStore)(nil)

// PendingStore holds pending registrations in a process-local map keyed by
// email. Concurrent writes to the same email are last-write-wins. Entries are
// never purged in the background; callers check expiry on read.
type PendingStore struct {
	mu      sync.RWMutex
	entries map[string]model.PendingRegistration
}

// NewPendingStore creates an empty PendingStore.
func NewPendingStore() *PendingStore {
	return &PendingStore{
		entries: make(map[string]model.PendingRegistration),
	}
}

// Put stores a pending registration, overwriting any previous entry for the
// same email.
func (s *PendingStore) Put(_ context.Context, pending model.PendingRegistration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[pending.Email] = pending
	return nil
}

// Get returns the pending registration for email, or ErrNotFound.
func (s *PendingStore) Get(_ context.Context, email string) (model.PendingRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending, ok := s.entries[email]
	if !ok {
		return model.PendingRegistration{}, model.ErrNotFound
	}
	return pending, nil
}

// Delete removes the pending registration for email. Deleting a missing
// entry is not an error.
func (s *PendingStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, email)
	return nil
}
