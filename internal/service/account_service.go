package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Cheertaboi/storefront-service/internal/backend"
	"github.com/Cheertaboi/storefront-service/internal/cart"
	"github.com/Cheertaboi/storefront-service/internal/models"
	"github.com/Cheertaboi/storefront-service/internal/session"
)

type AccountService struct {
	backend  Backend
	sessions *session.Store
	carts    *cart.Store
	log      *slog.Logger
}

func NewAccountService(b Backend, sessions *session.Store, carts *cart.Store, log *slog.Logger) *AccountService {
	return &AccountService{backend: b, sessions: sessions, carts: carts, log: log}
}

// Login checks the credentials with the backend and signs the device in.
func (s *AccountService) Login(ctx context.Context, device, email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return models.Session{}, models.NewValidationError("email", "must not be empty")
	case !strings.Contains(email, "@"):
		return models.Session{}, models.NewValidationError("email", "must be an email address")
	case password == "":
		return models.Session{}, models.NewValidationError("password", "must not be empty")
	}

	c, err := s.backend.Login(ctx, email, password)
	if err != nil {
		switch backend.StatusCode(err) {
		case http.StatusUnauthorized:
			return models.Session{}, ErrBadCredentials
		case http.StatusNotFound:
			return models.Session{}, ErrUnknownAccount
		}
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	sess := models.Session{
		Token:       uuid.NewString(),
		UserID:      strconv.FormatInt(c.ID, 10),
		DisplayName: c.Nickname,
		FullName:    c.Name,
		Email:       c.Email,
	}
	if sess.DisplayName == "" {
		sess.DisplayName = c.Name
	}
	if err := s.sessions.SignIn(ctx, device, sess); err != nil {
		return models.Session{}, fmt.Errorf("sign in: %w", err)
	}
	s.log.InfoContext(ctx, "signed in", "device", device, "customer_id", c.ID)
	return sess, nil
}

func (s *AccountService) Logout(ctx context.Context, device string) error {
	return s.sessions.SignOut(ctx, device)
}

type SessionView struct {
	SignedIn bool           `json:"signedIn"`
	Session  models.Session `json:"session"`
}

func (s *AccountService) Session(ctx context.Context, device string) SessionView {
	sess := s.sessions.Current(ctx, device)
	if !sess.SignedIn() {
		return SessionView{}
	}
	return SessionView{SignedIn: true, Session: sess}
}

// HomeView is the landing page state: who is signed in and the cart badge.
type HomeView struct {
	SignedIn    bool   `json:"signedIn"`
	DisplayName string `json:"displayName,omitempty"`
	CartCount   int    `json:"cartCount"`
}

func (s *AccountService) Home(ctx context.Context, device string) HomeView {
	sess := s.sessions.Current(ctx, device)
	v := HomeView{CartCount: s.carts.Load(ctx, device).ItemCount()}
	if sess.SignedIn() {
		v.SignedIn = true
		v.DisplayName = sess.DisplayName
	}
	return v
}

type Profile struct {
	Customer models.Customer `json:"customer"`
	// Stale is set when the backend could not be reached and the profile
	// was rebuilt from the session.
	Stale bool `json:"stale,omitempty"`
}

func (s *AccountService) Profile(ctx context.Context, device string) (Profile, error) {
	sess := s.sessions.Current(ctx, device)
	id, err := signedInCustomer(sess)
	if err != nil {
		return Profile{}, err
	}

	c, err := s.backend.GetCustomer(ctx, id)
	if err != nil {
		s.log.WarnContext(ctx, "profile fetch failed, using session", "customer_id", id, "error", err)
		return Profile{
			Customer: models.Customer{ID: id, Name: sess.FullName, Email: sess.Email, Nickname: sess.DisplayName},
			Stale:    true,
		}, nil
	}
	return Profile{Customer: *c}, nil
}

// UpdateProfile changes password and nickname. The session's display name
// follows the new nickname.
func (s *AccountService) UpdateProfile(ctx context.Context, device, password, nickname string) (*models.Customer, error) {
	nickname = strings.TrimSpace(nickname)
	if password == "" {
		return nil, models.NewValidationError("password", "must not be empty")
	}
	if nickname == "" {
		return nil, models.NewValidationError("nickname", "must not be empty")
	}

	id, err := signedInCustomer(s.sessions.Current(ctx, device))
	if err != nil {
		return nil, err
	}

	c, err := s.backend.UpdateCustomer(ctx, id, models.ProfileUpdate{Password: password, Nickname: nickname})
	if err != nil {
		return nil, fmt.Errorf("update customer %d: %w", id, err)
	}
	if err := s.sessions.UpdateDisplayName(ctx, device, nickname); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return c, nil
}
