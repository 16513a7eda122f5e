package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "portal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLocalBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	lb, err := NewLocalBackend(openTestDB(t))
	require.NoError(t, err)

	_, ok, err := lb.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, lb.Set(ctx, `{"email":"a@b.c"}`))
	v, ok, err := lb.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"email":"a@b.c"}`, v)

	// Overwrite, not duplicate.
	require.NoError(t, lb.Set(ctx, `{"email":"d@e.f"}`))
	v, _, _ = lb.Get(ctx)
	assert.Equal(t, `{"email":"d@e.f"}`, v)

	require.NoError(t, lb.Delete(ctx))
	_, ok, err = lb.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
