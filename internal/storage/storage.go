// Package storage holds the per-device key/value namespace that stands in for
// browser-local persistent storage.
package storage

import (
	"context"
	"errors"
)

// Keys written by the session and cart stores.
const (
	KeyToken    = "token"
	KeyUserID   = "userId"
	KeyNickname = "userNickname"
	KeyName     = "userName"
	KeyEmail    = "userEmail"
	KeyCart     = "cart"
)

// SessionKeys lists every key that belongs to the session.
var SessionKeys = []string{KeyToken, KeyUserID, KeyNickname, KeyName, KeyEmail}

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("storage: key not found")

// Storage is a string key/value store partitioned by device.
type Storage interface {
	Get(ctx context.Context, device, key string) (string, error)
	Set(ctx context.Context, device, key, value string) error
	Remove(ctx context.Context, device string, keys ...string) error
}
