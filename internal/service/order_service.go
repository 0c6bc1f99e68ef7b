package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Cheertaboi/storefront-service/internal/backend"
	"github.com/Cheertaboi/storefront-service/internal/cart"
	"github.com/Cheertaboi/storefront-service/internal/metrics"
	"github.com/Cheertaboi/storefront-service/internal/models"
	"github.com/Cheertaboi/storefront-service/internal/session"
)

type OrderService struct {
	backend  Backend
	carts    *cart.Store
	sessions *session.Store
	metrics  *metrics.Metrics
	log      *slog.Logger
}

func NewOrderService(b Backend, carts *cart.Store, sessions *session.Store, m *metrics.Metrics, log *slog.Logger) *OrderService {
	return &OrderService{backend: b, carts: carts, sessions: sessions, metrics: m, log: log}
}

// OrderRequest builds the backend request for the device's current cart.
// Nothing is sent; the checks here all run before any network call.
func (s *OrderService) OrderRequest(ctx context.Context, device string) (models.OrderRequest, error) {
	c := s.carts.Load(ctx, device)
	if len(c) == 0 {
		return models.OrderRequest{}, ErrEmptyCart
	}

	customerID, err := signedInCustomer(s.sessions.Current(ctx, device))
	if err != nil {
		return models.OrderRequest{}, err
	}

	storeID := c[0].StoreID
	req := models.OrderRequest{
		CustomerID: customerID,
		StoreID:    storeID,
		Items:      make([]models.OrderRequestItem, 0, len(c)),
	}
	for _, l := range c {
		if l.StoreID != storeID {
			return models.OrderRequest{}, ErrMixedStores
		}
		req.Items = append(req.Items, models.OrderRequestItem{MenuID: l.MenuID, Quantity: l.Quantity})
	}
	return req, nil
}

// Submit places the device's cart as one order. On a non-2xx answer the cart
// is left as it was. Any 2xx clears the cart, including one whose body could
// not be decoded; the returned order is nil in that case.
func (s *OrderService) Submit(ctx context.Context, device string) (*models.Order, error) {
	req, err := s.OrderRequest(ctx, device)
	if err != nil {
		s.metrics.IncOrdersFailed()
		return nil, err
	}

	order, err := s.backend.CreateOrder(ctx, req)
	if err != nil {
		if !errors.Is(err, backend.ErrDecode) {
			s.metrics.IncOrdersFailed()
			s.log.ErrorContext(ctx, "order submission failed",
				"device", device, "store_id", req.StoreID, "error", err)
			return nil, fmt.Errorf("create order: %w", err)
		}
		s.log.WarnContext(ctx, "order accepted with unreadable response", "device", device, "error", err)
	}

	s.carts.Clear(ctx, device)
	s.metrics.IncOrdersSubmitted()
	s.log.InfoContext(ctx, "order submitted",
		"device", device, "store_id", req.StoreID, "customer_id", req.CustomerID, "lines", len(req.Items))
	return order, nil
}

// signedInCustomer returns the backend customer id of a signed-in session.
func signedInCustomer(sess models.Session) (int64, error) {
	if !sess.SignedIn() || sess.UserID == "" {
		return 0, ErrNotSignedIn
	}
	id, err := strconv.ParseInt(sess.UserID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad user id %q", ErrNotSignedIn, sess.UserID)
	}
	return id, nil
}
