// Package state holds the process-wide notification enablement flag shared
// between the command layer and the scheduler goroutine.
package state

import "sync"

// NotificationStateStore guards the enabled flag with a mutex. The lock is
// held only for copy-in/copy-out; callers never block on it across network
// calls or sleeps. The flag always starts disabled and is never persisted.
type NotificationStateStore struct {
	mu      sync.Mutex
	enabled bool
}

// NewNotificationStateStore creates a store with notifications disabled
func NewNotificationStateStore() *NotificationStateStore {
	return &NotificationStateStore{}
}

// Toggle replaces the stored flag unconditionally. The error return is part
// of the command contract; Go mutexes cannot fail to acquire, so it is
// always nil today.
func (s *NotificationStateStore) Toggle(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled = enabled
	return nil
}

// Enabled returns a copy of the stored flag without mutating it
func (s *NotificationStateStore) Enabled() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enabled, nil
}
