package session

import (
	"context"
	"database/sql"
	"errors"
)

// LocalBackend stores the serialized session in the portal's sqlite
// database, one row in a kv table. No expiry, matching the browser-local
// store it replaces.
type LocalBackend struct {
	db *sql.DB
}

func NewLocalBackend(db *sql.DB) (*LocalBackend, error) {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	if err != nil {
		return nil, err
	}
	return &LocalBackend{db: db}, nil
}

func (l *LocalBackend) Get(ctx context.Context) (string, bool, error) {
	var value string
	err := l.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?;`, storageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (l *LocalBackend) Set(ctx context.Context, value string) error {
	_, err := l.db.ExecContext(ctx, `
INSERT INTO kv(key, value) VALUES(?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, storageKey, value)
	return err
}

func (l *LocalBackend) Delete(ctx context.Context) error {
	_, err := l.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?;`, storageKey)
	return err
}
