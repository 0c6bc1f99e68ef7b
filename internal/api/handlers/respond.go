package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Cheertaboi/storefront-service/internal/backend"
	"github.com/Cheertaboi/storefront-service/internal/cart"
	"github.com/Cheertaboi/storefront-service/internal/models"
	"github.com/Cheertaboi/storefront-service/internal/service"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_body"})
		return false
	}
	return true
}

// idParam parses a positive int64 URL parameter and answers 400 otherwise.
func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_" + name})
		return 0, false
	}
	return id, true
}

// writeError maps service errors onto HTTP responses.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "validation_failed",
			"field":   verr.Field,
			"message": verr.Message,
		})
	case errors.Is(err, cart.ErrQuantityOutOfRange):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "quantity_out_of_range"})
	case errors.Is(err, cart.ErrLineNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "line_not_found"})
	case errors.Is(err, service.ErrEmptyCart):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "empty_cart"})
	case errors.Is(err, service.ErrMixedStores):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "mixed_stores"})
	case errors.Is(err, service.ErrNotSignedIn):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not_signed_in"})
	case errors.Is(err, service.ErrBadCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "bad_credentials"})
	case errors.Is(err, service.ErrUnknownAccount):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown_account"})
	case backend.StatusCode(err) == http.StatusNotFound:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
	case backend.StatusCode(err) != 0, errors.Is(err, backend.ErrDecode):
		log.WarnContext(r.Context(), "backend error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":          "backend_error",
			"backend_status": backend.StatusCode(err),
		})
	default:
		log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal_error"})
	}
}
