package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Cheertaboi/storefront-service/internal/api/middleware"
	"github.com/Cheertaboi/storefront-service/internal/service"
)

type AddCartItemRequest struct {
	MenuID int64 `json:"menuId"`
	// Quantity defaults to 1 when omitted.
	Quantity *int `json:"quantity,omitempty"`
}

type SetQuantityRequest struct {
	Delta int `json:"delta"`
}

type CartHandler struct {
	carts *service.CartService
	log   *slog.Logger
}

func NewCartHandler(carts *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{carts: carts, log: log}
}

// Get handles GET /cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.carts.View(r.Context(), middleware.DeviceID(r.Context())))
}

// Add handles POST /cart/items
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.MenuID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_menu_id"})
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	v, err := h.carts.Add(r.Context(), middleware.DeviceID(r.Context()), req.MenuID, qty)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// SetQuantity handles PATCH /cart/items/{menuID}
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	menuID, ok := idParam(w, r, "menuID")
	if !ok {
		return
	}
	var req SetQuantityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, err := h.carts.SetQuantity(r.Context(), middleware.DeviceID(r.Context()), menuID, req.Delta)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Remove handles DELETE /cart/items/{menuID}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	menuID, ok := idParam(w, r, "menuID")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.carts.Remove(r.Context(), middleware.DeviceID(r.Context()), menuID))
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.carts.Clear(r.Context(), middleware.DeviceID(r.Context())))
}
