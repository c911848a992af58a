// internal/repository/postgres/storage_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const storageSchema = `
	CREATE TABLE IF NOT EXISTS console_storage (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// StorageRepository keeps the console session keys in a key/value table.
type StorageRepository struct {
	db *pgxpool.Pool
}

func NewStorageRepository(db *pgxpool.Pool) *StorageRepository {
	return &StorageRepository{db: db}
}

// EnsureSchema creates the storage table when missing.
func (r *StorageRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, storageSchema); err != nil {
		return fmt.Errorf("failed to create console_storage: %w", err)
	}
	return nil
}

func (r *StorageRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM console_storage WHERE key = $1`

	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (r *StorageRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO console_storage (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}

// Delete removes keys in one transaction so token and user disappear together.
func (r *StorageRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return NewDB(r.db).WithTx(ctx, func(tx pgx.Tx) error {
		for _, k := range keys {
			if _, err := tx.Exec(ctx, `DELETE FROM console_storage WHERE key = $1`, k); err != nil {
				return fmt.Errorf("failed to delete %s: %w", k, err)
			}
		}
		return nil
	})
}
