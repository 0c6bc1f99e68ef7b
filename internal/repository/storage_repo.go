package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Cheertaboi/storefront-service/internal/storage"
)

const schema = `
	CREATE TABLE IF NOT EXISTS device_storage (
		device_id  TEXT        NOT NULL,
		key        TEXT        NOT NULL,
		value      TEXT        NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (device_id, key)
	)
`

// DeviceStorageRepo keeps device namespaces in Postgres, one row per key.
type DeviceStorageRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewDeviceStorageRepo(db *sql.DB) *DeviceStorageRepo {
	return &DeviceStorageRepo{db: db, now: time.Now}
}

// EnsureSchema creates the device_storage table when it does not exist.
func (r *DeviceStorageRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create device_storage: %w", err)
	}
	return nil
}

func (r *DeviceStorageRepo) Get(ctx context.Context, device, key string) (string, error) {
	query := `
		SELECT value
		FROM device_storage
		WHERE device_id = $1 AND key = $2
	`

	var value string
	err := r.db.QueryRowContext(ctx, query, device, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

func (r *DeviceStorageRepo) Set(ctx context.Context, device, key, value string) error {
	query := `
		INSERT INTO device_storage (device_id, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (device_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, device, key, value, r.now().UTC()); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (r *DeviceStorageRepo) Remove(ctx context.Context, device string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query := `DELETE FROM device_storage WHERE device_id = $1 AND key = ANY($2)`

	if _, err := r.db.ExecContext(ctx, query, device, pq.Array(keys)); err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	return nil
}
