package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Cheertaboi/storefront-service/internal/api/middleware"
	"github.com/Cheertaboi/storefront-service/internal/service"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionHandler struct {
	accounts *service.AccountService
	log      *slog.Logger
}

func NewSessionHandler(accounts *service.AccountService, log *slog.Logger) *SessionHandler {
	return &SessionHandler{accounts: accounts, log: log}
}

// Home handles GET /
func (h *SessionHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.accounts.Home(r.Context(), middleware.DeviceID(r.Context())))
}

// Session handles GET /session
func (h *SessionHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.accounts.Session(r.Context(), middleware.DeviceID(r.Context())))
}

// Login handles POST /session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sess, err := h.accounts.Login(r.Context(), middleware.DeviceID(r.Context()), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, service.SessionView{SignedIn: true, Session: sess})
}

// Logout handles POST /session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.Logout(r.Context(), middleware.DeviceID(r.Context())); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, service.SessionView{})
}
