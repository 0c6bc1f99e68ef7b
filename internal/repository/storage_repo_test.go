package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/storefront-service/internal/storage"
)

func newRepo(t *testing.T) (*DeviceStorageRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewDeviceStorageRepo(db)
	repo.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return repo, mock
}

func TestDeviceStorageRepo_Get(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("SELECT value FROM device_storage WHERE device_id = $1 AND key = $2")

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(query).
			WithArgs("dev-1", storage.KeyCart).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[]`))

		v, err := repo.Get(ctx, "dev-1", storage.KeyCart)
		require.NoError(t, err)
		assert.Equal(t, "[]", v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing key maps to ErrNotFound", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(query).
			WithArgs("dev-1", storage.KeyToken).
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, err := repo.Get(ctx, "dev-1", storage.KeyToken)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		repo, mock := newRepo(t)
		boom := errors.New("connection reset")
		mock.ExpectQuery(query).WillReturnError(boom)

		_, err := repo.Get(ctx, "dev-1", storage.KeyToken)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestDeviceStorageRepo_Set(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO device_storage (device_id, key, value, updated_at)")).
		WithArgs("dev-1", storage.KeyNickname, "kim", time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Set(context.Background(), "dev-1", storage.KeyNickname, "kim"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceStorageRepo_Remove(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM device_storage WHERE device_id = $1 AND key = ANY($2)")).
		WithArgs("dev-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 5))

	require.NoError(t, repo.Remove(context.Background(), "dev-1", storage.SessionKeys...))
	assert.NoError(t, mock.ExpectationsWereMet())

	t.Run("no keys is a no-op", func(t *testing.T) {
		repo, mock := newRepo(t)
		require.NoError(t, repo.Remove(context.Background(), "dev-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeviceStorageRepo_EnsureSchema(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS device_storage").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
