// Package session tracks whether a device is signed in and as whom.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Cheertaboi/storefront-service/internal/models"
	"github.com/Cheertaboi/storefront-service/internal/notify"
	"github.com/Cheertaboi/storefront-service/internal/storage"
)

type Store struct {
	storage     storage.Storage
	bus         *notify.Bus
	log         *slog.Logger
	resetOnBoot bool
	booted      sync.Map // device -> struct{}
	locks       sync.Map // device -> *sync.Mutex
}

type Option func(*Store)

// WithResetOnBoot wipes a device's session the first time this process sees
// the device, forcing a fresh login after every restart.
func WithResetOnBoot() Option {
	return func(s *Store) { s.resetOnBoot = true }
}

func NewStore(s storage.Storage, bus *notify.Bus, log *slog.Logger, opts ...Option) *Store {
	st := &Store{storage: s, bus: bus, log: log}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

func (s *Store) lock(ctx context.Context, device string) func() {
	v, _ := s.locks.LoadOrStore(device, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	if s.resetOnBoot {
		if _, seen := s.booted.LoadOrStore(device, struct{}{}); !seen {
			if err := s.storage.Remove(ctx, device, storage.SessionKeys...); err != nil {
				s.log.WarnContext(ctx, "session reset failed", "device", device, "error", err)
			}
		}
	}
	return mu.Unlock
}

// SignIn persists every session field. The token is written last and all
// fields are rolled back on failure, so a partial session is never visible as
// signed in.
func (s *Store) SignIn(ctx context.Context, device string, sess models.Session) error {
	if sess.Token == "" || sess.DisplayName == "" || sess.UserID == "" {
		return models.NewValidationError("session", "token, user id and display name are required")
	}

	unlock := s.lock(ctx, device)
	defer unlock()

	fields := []struct{ key, value string }{
		{storage.KeyUserID, sess.UserID},
		{storage.KeyNickname, sess.DisplayName},
		{storage.KeyName, sess.FullName},
		{storage.KeyEmail, sess.Email},
		{storage.KeyToken, sess.Token},
	}
	for _, f := range fields {
		if err := s.storage.Set(ctx, device, f.key, f.value); err != nil {
			if rmErr := s.storage.Remove(ctx, device, storage.SessionKeys...); rmErr != nil {
				s.log.ErrorContext(ctx, "session rollback failed", "device", device, "error", rmErr)
			}
			return fmt.Errorf("save session %s: %w", f.key, err)
		}
	}

	s.bus.NotifySessionChanged(device)
	return nil
}

// SignOut removes every session field.
func (s *Store) SignOut(ctx context.Context, device string) error {
	unlock := s.lock(ctx, device)
	defer unlock()

	err := s.storage.Remove(ctx, device, storage.SessionKeys...)
	s.bus.NotifySessionChanged(device)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current reads the session fields as they are now. Unreadable fields are
// logged and treated as absent.
func (s *Store) Current(ctx context.Context, device string) models.Session {
	unlock := s.lock(ctx, device)
	defer unlock()

	get := func(key string) string {
		v, err := s.storage.Get(ctx, device, key)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				s.log.WarnContext(ctx, "session read failed", "device", device, "key", key, "error", err)
			}
			return ""
		}
		return v
	}

	return models.Session{
		Token:       get(storage.KeyToken),
		UserID:      get(storage.KeyUserID),
		DisplayName: get(storage.KeyNickname),
		FullName:    get(storage.KeyName),
		Email:       get(storage.KeyEmail),
	}
}

// IsSignedIn is true iff both the token and the display name are present.
func (s *Store) IsSignedIn(ctx context.Context, device string) bool {
	return s.Current(ctx, device).SignedIn()
}

// UpdateDisplayName replaces the stored nickname after a profile edit.
func (s *Store) UpdateDisplayName(ctx context.Context, device, name string) error {
	if name == "" {
		return models.NewValidationError("nickname", "must not be empty")
	}

	unlock := s.lock(ctx, device)
	defer unlock()

	if err := s.storage.Set(ctx, device, storage.KeyNickname, name); err != nil {
		return fmt.Errorf("save nickname: %w", err)
	}
	s.bus.NotifySessionChanged(device)
	return nil
}
