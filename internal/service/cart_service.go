package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Cheertaboi/storefront-service/internal/cache"
	"github.com/Cheertaboi/storefront-service/internal/cart"
	"github.com/Cheertaboi/storefront-service/internal/catalog"
	"github.com/Cheertaboi/storefront-service/internal/concurrency"
	"github.com/Cheertaboi/storefront-service/internal/models"
	"github.com/Cheertaboi/storefront-service/internal/session"
)

// Pricing selects how cart totals are computed.
type Pricing string

const (
	// PricingSnapshot uses the price captured when the line was added.
	PricingSnapshot Pricing = "snapshot"
	// PricingLive rereads every menu before the cart is shown.
	PricingLive Pricing = "live"
)

type CartService struct {
	backend  Backend
	stores   storeLookup
	carts    *cart.Store
	sessions *session.Store
	pricing  Pricing
	log      *slog.Logger
}

func NewCartService(b Backend, stores *cache.StoreCache, carts *cart.Store, sessions *session.Store, pricing Pricing, log *slog.Logger) *CartService {
	return &CartService{
		backend:  b,
		stores:   storeLookup{backend: b, cache: stores, log: log},
		carts:    carts,
		sessions: sessions,
		pricing:  pricing,
		log:      log,
	}
}

type CartLineView struct {
	models.CartLine
	ImageURL string `json:"imageUrl,omitempty"`
	Subtotal int64  `json:"subtotal"`
}

type CartView struct {
	Lines     []CartLineView `json:"lines"`
	Total     int64          `json:"total"`
	ItemCount int            `json:"itemCount"`
	SignedIn  bool           `json:"signedIn"`
}

func (s *CartService) view(ctx context.Context, device string, c models.Cart) CartView {
	v := CartView{
		Lines:     make([]CartLineView, 0, len(c)),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
		SignedIn:  s.sessions.IsSignedIn(ctx, device),
	}
	for _, l := range c {
		v.Lines = append(v.Lines, CartLineView{
			CartLine: l,
			ImageURL: s.backend.ResolveImageURL(l.ImageRef),
			Subtotal: l.Subtotal(),
		})
	}
	return v
}

// View returns the cart with totals. In live pricing mode every line's menu is
// refetched first; menus that fail to load keep their snapshot.
func (s *CartService) View(ctx context.Context, device string) CartView {
	c := s.carts.Load(ctx, device)
	if s.pricing == PricingLive && len(c) > 0 {
		c = s.reprice(ctx, device, c)
	}
	return s.view(ctx, device, c)
}

func (s *CartService) reprice(ctx context.Context, device string, c models.Cart) models.Cart {
	var mu sync.Mutex
	menus := make(map[int64]models.Menu, len(c))
	_ = concurrency.ForEach(ctx, concurrency.DefaultLimit, len(c), func(ctx context.Context, i int) error {
		m, err := s.backend.GetMenu(ctx, c[i].MenuID)
		if err != nil {
			s.log.WarnContext(ctx, "menu reprice failed", "device", device, "menu_id", c[i].MenuID, "error", err)
			return nil
		}
		mu.Lock()
		menus[m.ID] = *m
		mu.Unlock()
		return nil
	})
	return s.carts.Reprice(ctx, device, menus)
}

// Add fetches the menu and adds quantity of it. A store that cannot be
// loaded is recorded under cart.UnknownStoreName.
func (s *CartService) Add(ctx context.Context, device string, menuID int64, quantity int) (CartView, error) {
	if quantity < models.MinLineQuantity || quantity > models.MaxLineQuantity {
		return CartView{}, cart.ErrQuantityOutOfRange
	}

	m, err := s.backend.GetMenu(ctx, menuID)
	if err != nil {
		return CartView{}, fmt.Errorf("get menu %d: %w", menuID, err)
	}
	menu := *m
	menu.Category = catalog.Categorize(menu.Name)

	storeName := cart.UnknownStoreName
	if st, err := s.stores.get(ctx, menu.StoreID); err != nil {
		s.log.WarnContext(ctx, "store lookup failed", "menu_id", menuID, "store_id", menu.StoreID, "error", err)
	} else if st.Name != "" {
		storeName = st.Name
	}

	c, err := s.carts.Add(ctx, device, menu, storeName, quantity)
	if err != nil {
		return CartView{}, err
	}
	return s.view(ctx, device, c), nil
}

func (s *CartService) SetQuantity(ctx context.Context, device string, menuID int64, delta int) (CartView, error) {
	c, err := s.carts.SetQuantity(ctx, device, menuID, delta)
	if err != nil {
		return CartView{}, err
	}
	return s.view(ctx, device, c), nil
}

func (s *CartService) Remove(ctx context.Context, device string, menuID int64) CartView {
	return s.view(ctx, device, s.carts.Remove(ctx, device, menuID))
}

func (s *CartService) Clear(ctx context.Context, device string) CartView {
	s.carts.Clear(ctx, device)
	return s.view(ctx, device, models.Cart{})
}
