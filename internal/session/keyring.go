package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/zalando/go-keyring"
)

const (
	// "Service" groups the portal's secrets in the OS keychain.
	KeyringService = "bitsjob-portal"

	// The keychain slot mimics the browser cookie it replaces, expiry
	// included.
	cookieTTL = 7 * 24 * time.Hour
)

// KeyringBackend stores the serialized session in the OS keychain. The
// keychain has no native expiry, so the value is wrapped in a small
// envelope carrying its deadline; an expired envelope reads as absent and
// is deleted.
type KeyringBackend struct {
	Account string
	Now     func() time.Time
}

func NewKeyringBackend() *KeyringBackend {
	return &KeyringBackend{
		Account: KeyringService + ":" + storageKey,
		Now:     time.Now,
	}
}

type envelope struct {
	Session   json.RawMessage `json:"session"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

func (k *KeyringBackend) Get(_ context.Context) (string, bool, error) {
	raw, err := keyring.Get(KeyringService, k.Account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil || env.ExpiresAt.IsZero() {
		// Pre-envelope or corrupt entry; hand it to the store's malformed-
		// data path as-is.
		return raw, true, nil
	}
	if k.Now().After(env.ExpiresAt) {
		_ = keyring.Delete(KeyringService, k.Account)
		return "", false, nil
	}
	return string(env.Session), true, nil
}

func (k *KeyringBackend) Set(_ context.Context, value string) error {
	env := envelope{
		Session:   json.RawMessage(value),
		ExpiresAt: k.Now().Add(cookieTTL),
	}
	b, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return keyring.Set(KeyringService, k.Account, string(b))
}

func (k *KeyringBackend) Delete(_ context.Context) error {
	err := keyring.Delete(KeyringService, k.Account)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
