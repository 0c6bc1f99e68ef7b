package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Cheertaboi/storefront-service/internal/cache"
	"github.com/Cheertaboi/storefront-service/internal/cart"
	"github.com/Cheertaboi/storefront-service/internal/models"
	"github.com/Cheertaboi/storefront-service/internal/notify"
	"github.com/Cheertaboi/storefront-service/internal/service/mocks"
	"github.com/Cheertaboi/storefront-service/internal/session"
	"github.com/Cheertaboi/storefront-service/internal/storage"
)

const device = "device-1"

type fixture struct {
	backend  *mocks.MockBackend
	mem      *storage.Memory
	bus      *notify.Bus
	carts    *cart.Store
	sessions *session.Store
	stores   *cache.StoreCache
	log      *slog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	mem := storage.NewMemory()
	bus := notify.NewBus()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	b := mocks.NewMockBackend(ctrl)
	b.EXPECT().ResolveImageURL(gomock.Any()).DoAndReturn(func(ref string) string {
		if ref == "" {
			return ""
		}
		return "http://backend" + ref
	}).AnyTimes()

	return &fixture{
		backend:  b,
		mem:      mem,
		bus:      bus,
		carts:    cart.NewStore(mem, bus, log),
		sessions: session.NewStore(mem, bus, log),
		stores:   cache.NewStoreCache(time.Minute),
		log:      log,
	}
}

func (f *fixture) signIn(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, f.sessions.SignIn(context.Background(), device, models.Session{
		Token:       "tok",
		UserID:      userID,
		DisplayName: "길동",
		FullName:    "홍길동",
		Email:       "hong@example.com",
	}))
}

func (f *fixture) addLine(t *testing.T, menuID, storeID, price int64, qty int) {
	t.Helper()
	_, err := f.carts.Add(context.Background(), device,
		models.Menu{ID: menuID, StoreID: storeID, Name: "김밥", Price: price}, "분식집", qty)
	require.NoError(t, err)
}
