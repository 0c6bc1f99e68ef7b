package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Cheertaboi/storefront-service/internal/api/middleware"
	"github.com/Cheertaboi/storefront-service/internal/models"
	"github.com/Cheertaboi/storefront-service/internal/service"
)

type OrderResponse struct {
	Message string        `json:"message"`
	Order   *models.Order `json:"order,omitempty"`
}

type OrderHandler struct {
	orders *service.OrderService
	log    *slog.Logger
}

func NewOrderHandler(orders *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

// Submit handles POST /orders
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Submit(r.Context(), middleware.DeviceID(r.Context()))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, OrderResponse{Message: "order_placed", Order: order})
}
