// Package session owns the portal's authenticated-user record: one
// logical Session persisted redundantly in the OS keychain (the cookie
// analogue, 7-day expiry) and a local sqlite store (no expiry), kept
// consistent by a read-time reconciliation rule. UI code never touches
// either backend directly.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/domain"
)

// The logical key both backends store the session under.
const storageKey = "user"

// Backend is one of the two storage slots for the serialized session.
type Backend interface {
	Get(ctx context.Context) (value string, ok bool, err error)
	Set(ctx context.Context, value string) error
	Delete(ctx context.Context) error
}

// Store reconciles the two backends behind a single contract: the cookie
// slot wins on read, the local slot heals it when it is missing, and
// writes always land in both.
type Store struct {
	cookie Backend
	local  Backend

	mu        sync.Mutex
	listeners []func(*domain.Session)
}

func NewStore(cookie, local Backend) *Store {
	return &Store{cookie: cookie, local: local}
}

// OnChange registers a listener fired after every Save (with the saved
// session) and Clear (with nil). This is how the rest of the portal
// observes logins that wrote the store directly.
func (s *Store) OnChange(fn func(*domain.Session)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Load reads the cookie slot first and returns it when present. When only
// the local slot has data, that value is returned and written back into
// the cookie slot, so a non-nil Load always leaves both backends equal.
// Malformed stored data is treated as "no session": the bad value is
// deleted and the other slot is consulted. Degrading to logged-out is
// safer than failing startup over a corrupt entry.
func (s *Store) Load(ctx context.Context) (*domain.Session, error) {
	var firstErr error

	if raw, ok, err := s.cookie.Get(ctx); err != nil {
		firstErr = err
		log.Printf("level=warn msg=\"session cookie slot read failed\" err=%v", err)
	} else if ok {
		if sess := s.decode(ctx, s.cookie, raw, "cookie"); sess != nil {
			return sess, nil
		}
	}

	raw, ok, err := s.local.Get(ctx)
	if err != nil {
		if firstErr == nil {
			firstErr = err
		}
		log.Printf("level=warn msg=\"session local slot read failed\" err=%v", err)
		return nil, firstErr
	}
	if !ok {
		return nil, nil
	}
	sess := s.decode(ctx, s.local, raw, "local")
	if sess == nil {
		return nil, nil
	}

	// Heal the missing cookie from the still-valid local copy.
	if err := s.cookie.Set(ctx, raw); err != nil {
		log.Printf("level=warn msg=\"session cookie heal failed\" err=%v", err)
	}
	return sess, nil
}

// Save writes the session to both backends: local slot first, then the
// cookie slot with its fixed expiry. Both hold the same serialized value
// after a successful return.
func (s *Store) Save(ctx context.Context, sess domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.local.Set(ctx, string(raw)); err != nil {
		return fmt.Errorf("save session (local): %w", err)
	}
	if err := s.cookie.Set(ctx, string(raw)); err != nil {
		return fmt.Errorf("save session (cookie): %w", err)
	}
	s.notify(&sess)
	return nil
}

// Clear removes the session from both backends. Both deletes are
// attempted even if the first fails; listeners only hear about the
// logout once both slots are actually empty, so observers never flip to
// logged out while a backend still holds the session.
func (s *Store) Clear(ctx context.Context) error {
	cookieErr := s.cookie.Delete(ctx)
	localErr := s.local.Delete(ctx)
	if cookieErr != nil {
		return fmt.Errorf("clear session (cookie): %w", cookieErr)
	}
	if localErr != nil {
		return fmt.Errorf("clear session (local): %w", localErr)
	}
	s.notify(nil)
	return nil
}

func (s *Store) decode(ctx context.Context, b Backend, raw, slot string) *domain.Session {
	var sess domain.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		log.Printf("level=warn msg=\"discarding malformed stored session\" slot=%s err=%v", slot, err)
		_ = b.Delete(ctx)
		return nil
	}
	return &sess
}

func (s *Store) notify(sess *domain.Session) {
	s.mu.Lock()
	listeners := make([]func(*domain.Session), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(sess)
	}
}
