package session

import (
	"context"
	"sync"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/domain"
)

// Manager is the application-facing accessor for session state. It loads
// the store exactly once at construction and afterwards tracks writes
// through the store's change notifications, so logins that write the
// store directly are observed without a reload.
type Manager struct {
	store *Store

	mu      sync.RWMutex
	user    *domain.Session
	loading bool
}

func NewManager(ctx context.Context, store *Store) *Manager {
	m := &Manager{store: store, loading: true}

	user, err := store.Load(ctx)
	m.mu.Lock()
	m.user = user
	m.loading = false
	m.mu.Unlock()
	_ = err // already logged by the store; treated as logged out

	store.OnChange(func(sess *domain.Session) {
		m.mu.Lock()
		m.user = sess
		m.mu.Unlock()
	})
	return m
}

// User returns the current session, or nil when logged out.
func (m *Manager) User() *domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// IsAuthenticated is true iff a session is present and flagged
// authenticated.
func (m *Manager) IsAuthenticated() bool {
	return m.User().Valid()
}

// Logout clears both backends; local state resets through the store's
// change notification.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Clear(ctx)
}
