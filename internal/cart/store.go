// Package cart owns the device-local cart. Every read-modify-write goes through
// Store so two views of the same device cannot overwrite each other.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/Cheertaboi/storefront-service/internal/models"
	"github.com/Cheertaboi/storefront-service/internal/notify"
	"github.com/Cheertaboi/storefront-service/internal/storage"
)

var (
	ErrQuantityOutOfRange = errors.New("cart: quantity out of range")
	ErrLineNotFound       = errors.New("cart: line not found")
)

// UnknownStoreName labels lines whose store could not be resolved.
const UnknownStoreName = "알 수 없는 가게"

type Store struct {
	storage storage.Storage
	bus     *notify.Bus
	log     *slog.Logger
	locks   sync.Map // device -> *sync.Mutex
}

func NewStore(s storage.Storage, bus *notify.Bus, log *slog.Logger) *Store {
	return &Store{storage: s, bus: bus, log: log}
}

func (s *Store) lock(device string) func() {
	v, _ := s.locks.LoadOrStore(device, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Load returns the persisted cart. A missing or unreadable value is an empty
// cart; the failure is logged, never returned.
func (s *Store) Load(ctx context.Context, device string) models.Cart {
	raw, err := s.storage.Get(ctx, device, storage.KeyCart)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.WarnContext(ctx, "cart load failed", "device", device, "error", err)
		}
		return models.Cart{}
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		s.log.WarnContext(ctx, "cart parse failed", "device", device, "error", err)
		return models.Cart{}
	}

	valid := make(models.Cart, 0, len(c))
	for _, l := range c {
		if l.Quantity < models.MinLineQuantity || l.Quantity > models.MaxLineQuantity {
			s.log.WarnContext(ctx, "dropping cart line with invalid quantity",
				"device", device, "menu_id", l.MenuID, "quantity", l.Quantity)
			continue
		}
		valid = append(valid, l)
	}
	return valid
}

// Save replaces the persisted cart with c and notifies listeners.
func (s *Store) Save(ctx context.Context, device string, c models.Cart) {
	unlock := s.lock(device)
	defer unlock()
	s.commit(ctx, device, c)
}

// commit persists c and fires cart-changed. A write failure is logged and the
// caller keeps its in-memory copy.
func (s *Store) commit(ctx context.Context, device string, c models.Cart) {
	if c == nil {
		c = models.Cart{}
	}
	raw, err := json.Marshal(c)
	if err != nil {
		s.log.ErrorContext(ctx, "cart encode failed", "device", device, "error", err)
	} else if err := s.storage.Set(ctx, device, storage.KeyCart, string(raw)); err != nil {
		s.log.ErrorContext(ctx, "cart save failed", "device", device, "error", err)
	}
	s.bus.NotifyCartChanged(device)
}

// Add puts quantity units of menu into the cart. An existing line for the same
// menu is incremented; otherwise a new line snapshots the menu's display
// fields. Any result outside [1,99] is rejected and the cart is unchanged.
func (s *Store) Add(ctx context.Context, device string, menu models.Menu, storeName string, quantity int) (models.Cart, error) {
	if quantity < models.MinLineQuantity || quantity > models.MaxLineQuantity {
		return nil, ErrQuantityOutOfRange
	}

	unlock := s.lock(device)
	defer unlock()

	c := s.Load(ctx, device)
	if i := c.Index(menu.ID); i >= 0 {
		next := c[i].Quantity + quantity
		if next > models.MaxLineQuantity {
			return c.Clone(), ErrQuantityOutOfRange
		}
		c[i].Quantity = next
	} else {
		if storeName == "" {
			storeName = UnknownStoreName
		}
		c = append(c, models.CartLine{
			MenuID:      menu.ID,
			Name:        menu.Name,
			UnitPrice:   menu.Price,
			Description: menu.Description,
			ImageRef:    menu.ImageURI,
			Category:    menu.Category,
			StoreID:     menu.StoreID,
			StoreName:   storeName,
			Quantity:    quantity,
		})
	}

	s.commit(ctx, device, c)
	return c.Clone(), nil
}

// SetQuantity adds delta to the line for menuID. A result of zero or less
// removes the line; a result above 99 is rejected.
func (s *Store) SetQuantity(ctx context.Context, device string, menuID int64, delta int) (models.Cart, error) {
	unlock := s.lock(device)
	defer unlock()

	c := s.Load(ctx, device)
	i := c.Index(menuID)
	if i < 0 {
		return c.Clone(), ErrLineNotFound
	}

	next := c[i].Quantity + delta
	switch {
	case next < models.MinLineQuantity:
		c = append(c[:i], c[i+1:]...)
	case next > models.MaxLineQuantity:
		return c.Clone(), ErrQuantityOutOfRange
	default:
		c[i].Quantity = next
	}

	s.commit(ctx, device, c)
	return c.Clone(), nil
}

// Remove drops the line for menuID if present.
func (s *Store) Remove(ctx context.Context, device string, menuID int64) models.Cart {
	unlock := s.lock(device)
	defer unlock()

	c := s.Load(ctx, device)
	if i := c.Index(menuID); i >= 0 {
		c = append(c[:i], c[i+1:]...)
	}
	s.commit(ctx, device, c)
	return c.Clone()
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context, device string) {
	unlock := s.lock(device)
	defer unlock()
	s.commit(ctx, device, models.Cart{})
}

// Reprice refreshes name, price, description and image of lines whose menu is
// in menus. Quantities are untouched. Listeners are notified only on change.
func (s *Store) Reprice(ctx context.Context, device string, menus map[int64]models.Menu) models.Cart {
	unlock := s.lock(device)
	defer unlock()

	c := s.Load(ctx, device)
	changed := false
	for i, l := range c {
		m, ok := menus[l.MenuID]
		if !ok {
			continue
		}
		next := l
		next.Name = m.Name
		next.UnitPrice = m.Price
		next.Description = m.Description
		next.ImageRef = m.ImageURI
		if next != l {
			c[i] = next
			changed = true
		}
	}
	if changed {
		s.commit(ctx, device, c)
	}
	return c.Clone()
}
