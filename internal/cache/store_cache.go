package cache

import (
	"sync"
	"time"

	"github.com/Cheertaboi/storefront-service/internal/models"
)

// StoreCache keeps store records looked up for the my-page views so a page
// listing several stamps or coupons does not refetch the same store.
type StoreCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	store map[int64]cachedStore
}

type cachedStore struct {
	record   models.Store
	storedAt time.Time
}

func NewStoreCache(ttl time.Duration) *StoreCache {
	return &StoreCache{
		ttl:   ttl,
		now:   time.Now,
		store: make(map[int64]cachedStore),
	}
}

func (c *StoreCache) Get(id int64) (models.Store, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.store[id]
	if !ok || c.now().Sub(val.storedAt) >= c.ttl {
		return models.Store{}, false
	}
	return val.record, true
}

func (c *StoreCache) Set(s models.Store) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[s.ID] = cachedStore{record: s, storedAt: c.now()}
}
