package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/storefront-service/internal/metrics"
	"github.com/Cheertaboi/storefront-service/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *metrics.Metrics) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	m := metrics.New(prometheus.NewRegistry())
	return NewClient(Config{BaseURL: srv.URL + "/", Timeout: 5 * time.Second}, m, slog.New(slog.NewTextHandler(io.Discard, nil))), m
}

func TestClient_Login(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/customers/login", r.URL.Path)
		assert.Equal(t, "kim+1@example.com", r.URL.Query().Get("email"))
		assert.Equal(t, "p&ss", r.URL.Query().Get("password"))
		_ = json.NewEncoder(w).Encode(models.Customer{ID: 12, Name: "김철수", Email: "kim+1@example.com", Nickname: "밥도둑"})
	})

	cust, err := c.Login(context.Background(), "kim+1@example.com", "p&ss")
	require.NoError(t, err)
	assert.Equal(t, int64(12), cust.ID)
	assert.Equal(t, "밥도둑", cust.Nickname)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	c, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})

	_, err := c.Login(context.Background(), "a@b.c", "x")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "bad credentials", apiErr.Body)
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
	assert.Equal(t, 1, testutil.CollectAndCount(m.BackendRequests))
}

func TestClient_CreateOrder(t *testing.T) {
	t.Run("sends body and decodes order", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req models.OrderRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, models.OrderRequest{
				CustomerID: 12,
				StoreID:    1,
				Items:      []models.OrderRequestItem{{MenuID: 3, Quantity: 2}},
			}, req)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(models.Order{OrderID: 99, StoreID: 1, TotalPrice: 6000})
		})

		order, err := c.CreateOrder(context.Background(), models.OrderRequest{
			CustomerID: 12,
			StoreID:    1,
			Items:      []models.OrderRequestItem{{MenuID: 3, Quantity: 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(99), order.OrderID)
	})

	t.Run("undecodable success body", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("order created"))
		})

		order, err := c.CreateOrder(context.Background(), models.OrderRequest{})
		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrDecode)
		assert.Equal(t, 0, StatusCode(err))
	})
}

func TestClient_UseCoupon(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/stamps/coupons/5/status", r.URL.Path)
		var body models.CouponStatusUpdate
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.Used)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.UseCoupon(context.Background(), 5))
}

func TestClient_DeleteEndpoints(t *testing.T) {
	var paths []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		paths = append(paths, r.URL.Path)
	})
	ctx := context.Background()

	require.NoError(t, c.DeleteReview(ctx, 1))
	require.NoError(t, c.DeleteStamp(ctx, 2))
	require.NoError(t, c.DeleteCoupon(ctx, 3))

	assert.Equal(t, []string{"/api/reviews/1", "/api/stamps/2", "/api/stamps/coupons/3"}, paths)
}

func TestClient_ListStoreMenus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stores/1/menus", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"storeId":1,"name":"참치김밥","price":4000,"imageUri":"/images/1.png"}]`))
	})

	menus, err := c.ListStoreMenus(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "/images/1.png", menus[0].ImageURI)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(Config{BaseURL: srv.URL}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.GetMenu(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, 0, StatusCode(err))
	assert.False(t, errors.Is(err, ErrDecode))
}

func TestClient_ResolveImageURL(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://localhost:8080/"}, nil, slog.Default())

	tests := []struct {
		ref  string
		want string
	}{
		{"", ""},
		{"https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"http://cdn.example.com/a.png", "http://cdn.example.com/a.png"},
		{"/images/a.png", "http://localhost:8080/images/a.png"},
		{"a.png", "http://localhost:8080/a.png"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ResolveImageURL(tt.ref))
		})
	}
}
