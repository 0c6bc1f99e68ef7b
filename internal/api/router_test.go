package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Cheertaboi/storefront-service/internal/api/middleware"
	"github.com/Cheertaboi/storefront-service/internal/backend"
	"github.com/Cheertaboi/storefront-service/internal/cache"
	"github.com/Cheertaboi/storefront-service/internal/cart"
	"github.com/Cheertaboi/storefront-service/internal/metrics"
	"github.com/Cheertaboi/storefront-service/internal/models"
	"github.com/Cheertaboi/storefront-service/internal/notify"
	"github.com/Cheertaboi/storefront-service/internal/service"
	"github.com/Cheertaboi/storefront-service/internal/service/mocks"
	"github.com/Cheertaboi/storefront-service/internal/session"
	"github.com/Cheertaboi/storefront-service/internal/storage"
)

type testEnv struct {
	handler http.Handler
	backend *mocks.MockBackend
	bus     *notify.Bus
	device  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	b := mocks.NewMockBackend(ctrl)
	b.EXPECT().ResolveImageURL(gomock.Any()).Return("").AnyTimes()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	mem := storage.NewMemory()
	bus := notify.NewBus()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ObserveBus(bus)

	carts := cart.NewStore(mem, bus, log)
	sessions := session.NewStore(mem, bus, log)
	stores := cache.NewStoreCache(time.Minute)
	accounts := service.NewAccountService(b, sessions, carts, log)

	svcs := Services{
		Accounts: accounts,
		Catalog:  service.NewCatalogService(b, stores, carts, log),
		Carts:    service.NewCartService(b, stores, carts, sessions, service.PricingSnapshot, log),
		Orders:   service.NewOrderService(b, carts, sessions, m, log),
		MyPage:   service.NewMyPageService(b, stores, sessions, accounts, time.UTC, log),
	}
	return &testEnv{
		handler: NewRouter(svcs, bus, Options{Gatherer: reg, KeepAlive: time.Hour}, log),
		backend: b,
		bus:     bus,
		device:  uuid.NewString(),
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.AddCookie(&http.Cookie{Name: middleware.DeviceCookie, Value: e.device})
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRouter_Health(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_OrderFlow(t *testing.T) {
	env := newTestEnv(t)
	env.backend.EXPECT().GetMenu(gomock.Any(), int64(1)).
		Return(&models.Menu{ID: 1, StoreID: 7, Name: "참치김밥", Price: 6000}, nil)
	env.backend.EXPECT().GetStore(gomock.Any(), int64(7)).Return(&models.Store{ID: 7, Name: "분식집"}, nil)

	rec := env.do(t, http.MethodPost, "/cart/items", map[string]any{"menuId": 1, "quantity": 4})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decode[service.CartView](t, rec)
	assert.Equal(t, int64(24000), view.Total)

	rec = env.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, 4, decode[service.HomeView](t, rec).CartCount)

	rec = env.do(t, http.MethodPost, "/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "not_signed_in", decode[map[string]any](t, rec)["error"])

	env.backend.EXPECT().Login(gomock.Any(), "hong@example.com", "pw").
		Return(&models.Customer{ID: 42, Name: "홍길동", Nickname: "길동", Email: "hong@example.com"}, nil)
	rec = env.do(t, http.MethodPost, "/session/login", loginBody("hong@example.com", "pw"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[service.SessionView](t, rec).SignedIn)

	env.backend.EXPECT().CreateOrder(gomock.Any(), models.OrderRequest{
		CustomerID: 42, StoreID: 7, Items: []models.OrderRequestItem{{MenuID: 1, Quantity: 4}},
	}).Return(&models.Order{OrderID: 5}, nil)
	rec = env.do(t, http.MethodPost, "/orders", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/cart", nil)
	assert.Empty(t, decode[service.CartView](t, rec).Lines)
}

func loginBody(email, password string) map[string]string {
	return map[string]string{"email": email, "password": password}
}

func TestRouter_LoginErrors(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/session/login", loginBody("no-at-sign", "pw"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email", decode[map[string]string](t, rec)["field"])

	env.backend.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &backend.APIError{StatusCode: http.StatusUnauthorized})
	rec = env.do(t, http.MethodPost, "/session/login", loginBody("a@b.c", "bad"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "bad_credentials", decode[map[string]string](t, rec)["error"])

	rec = env.do(t, http.MethodPost, "/session/login", strings.Repeat("x", 3))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_BackendErrors(t *testing.T) {
	env := newTestEnv(t)
	env.backend.EXPECT().GetMenu(gomock.Any(), int64(404)).
		Return(nil, &backend.APIError{StatusCode: http.StatusNotFound})
	env.backend.EXPECT().GetMenu(gomock.Any(), int64(500)).
		Return(nil, &backend.APIError{StatusCode: http.StatusInternalServerError})

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/menus/404", nil).Code)
	assert.Equal(t, http.StatusBadGateway, env.do(t, http.MethodGet, "/menus/500", nil).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/menus/abc", nil).Code)
}

func TestRouter_CartQuantityErrors(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/cart/items", map[string]any{"menuId": 1, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "quantity_out_of_range", decode[map[string]string](t, rec)["error"])

	rec = env.do(t, http.MethodPatch, "/cart/items/1", map[string]int{"delta": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MyPageRequiresSignIn(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/mypage", "/mypage/orders", "/mypage/reviews", "/mypage/stamps", "/mypage/coupons", "/mypage/map", "/mypage/profile"} {
		assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, path, nil).Code, path)
	}
}

func TestRouter_Metrics(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodDelete, "/cart", nil)

	rec := env.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `storefront_notifications_total{signal="cart-changed"} 1`)
}

func TestRouter_EventsRelaysSignals(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.handler)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: middleware.DeviceCookie, Value: env.device})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	rd := bufio.NewReader(resp.Body)
	line, err := rd.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, ": connected\n", line)
	_, _ = rd.ReadString('\n')

	env.bus.NotifyCartChanged("someone-else")
	env.bus.NotifyCartChanged(env.device)

	line, err = rd.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: cart-changed\n", line)
}
