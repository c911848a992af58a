package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres storage test")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestStorageRepository(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewStorageRepository(pool)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))
	t.Cleanup(func() { repo.Delete(context.Background(), "test:token", "test:user") })

	_, ok, err := repo.Get(ctx, "test:token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "test:token", "abc"))
	require.NoError(t, repo.Set(ctx, "test:token", "def"))
	require.NoError(t, repo.Set(ctx, "test:user", `{"id":"1"}`))

	v, ok, err := repo.Get(ctx, "test:token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "def", v)

	require.NoError(t, repo.Delete(ctx, "test:token", "test:user"))
	_, ok, err = repo.Get(ctx, "test:user")
	require.NoError(t, err)
	assert.False(t, ok)
}
