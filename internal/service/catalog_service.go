package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Cheertaboi/storefront-service/internal/cache"
	"github.com/Cheertaboi/storefront-service/internal/cart"
	"github.com/Cheertaboi/storefront-service/internal/catalog"
	"github.com/Cheertaboi/storefront-service/internal/models"
)

type CatalogService struct {
	backend Backend
	stores  storeLookup
	carts   *cart.Store
	log     *slog.Logger
}

func NewCatalogService(b Backend, stores *cache.StoreCache, carts *cart.Store, log *slog.Logger) *CatalogService {
	return &CatalogService{
		backend: b,
		stores:  storeLookup{backend: b, cache: stores, log: log},
		carts:   carts,
		log:     log,
	}
}

// MenuEntry is a menu as listed on the store page.
type MenuEntry struct {
	models.Menu
	ImageURL string `json:"imageUrl,omitempty"`
	InCart   int    `json:"inCart"`
}

type StoreView struct {
	Store      models.Store `json:"store"`
	Categories []string     `json:"categories"`
	Category   string       `json:"category"`
	Menus      []MenuEntry  `json:"menus"`
	CartCount  int          `json:"cartCount"`
}

// StoreView loads a store and its menus, categorised and filtered to
// category. Each entry carries the quantity already in the device's cart.
func (s *CatalogService) StoreView(ctx context.Context, device string, storeID int64, category string) (StoreView, error) {
	var (
		store models.Store
		menus []models.Menu
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.stores.get(gctx, storeID)
		if err != nil {
			return fmt.Errorf("get store %d: %w", storeID, err)
		}
		store = st
		return nil
	})
	g.Go(func() error {
		ms, err := s.backend.ListStoreMenus(gctx, storeID)
		if err != nil {
			return fmt.Errorf("list menus of store %d: %w", storeID, err)
		}
		menus = ms
		return nil
	})
	if err := g.Wait(); err != nil {
		return StoreView{}, err
	}

	if category == "" {
		category = catalog.All
	}
	menus = catalog.Apply(menus)
	c := s.carts.Load(ctx, device)

	view := StoreView{
		Store:      store,
		Categories: catalog.Categories(menus),
		Category:   category,
		CartCount:  c.ItemCount(),
	}
	for _, m := range catalog.Filter(menus, category) {
		e := MenuEntry{Menu: m, ImageURL: s.backend.ResolveImageURL(m.ImageURI)}
		if i := c.Index(m.ID); i >= 0 {
			e.InCart = c[i].Quantity
		}
		view.Menus = append(view.Menus, e)
	}
	if view.Menus == nil {
		view.Menus = []MenuEntry{}
	}
	return view, nil
}

type MenuView struct {
	Menu     models.Menu   `json:"menu"`
	ImageURL string        `json:"imageUrl,omitempty"`
	Store    *models.Store `json:"store,omitempty"`
	InCart   int           `json:"inCart"`
}

// MenuView loads one menu. The store is optional: a failed store lookup is
// logged and the view is returned without it.
func (s *CatalogService) MenuView(ctx context.Context, device string, menuID int64) (MenuView, error) {
	m, err := s.backend.GetMenu(ctx, menuID)
	if err != nil {
		return MenuView{}, fmt.Errorf("get menu %d: %w", menuID, err)
	}
	menu := *m
	menu.Category = catalog.Categorize(menu.Name)

	view := MenuView{Menu: menu, ImageURL: s.backend.ResolveImageURL(menu.ImageURI)}
	if st, err := s.stores.get(ctx, menu.StoreID); err != nil {
		s.log.WarnContext(ctx, "store lookup failed", "menu_id", menuID, "store_id", menu.StoreID, "error", err)
	} else {
		view.Store = &st
	}

	c := s.carts.Load(ctx, device)
	if i := c.Index(menuID); i >= 0 {
		view.InCart = c[i].Quantity
	}
	return view, nil
}
