package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Cheertaboi/storefront-service/internal/cache"
	"github.com/Cheertaboi/storefront-service/internal/concurrency"
	"github.com/Cheertaboi/storefront-service/internal/models"
)

// storeLookup fetches store records through the shared cache.
type storeLookup struct {
	backend Backend
	cache   *cache.StoreCache
	log     *slog.Logger
}

func (l storeLookup) get(ctx context.Context, id int64) (models.Store, error) {
	if s, ok := l.cache.Get(id); ok {
		return s, nil
	}
	s, err := l.backend.GetStore(ctx, id)
	if err != nil {
		return models.Store{}, err
	}
	l.cache.Set(*s)
	return *s, nil
}

// many fetches every distinct id concurrently. Stores that fail to load are
// logged and left out of the result.
func (l storeLookup) many(ctx context.Context, ids []int64) map[int64]models.Store {
	distinct := make([]int64, 0, len(ids))
	seen := map[int64]bool{}
	for _, id := range ids {
		if id != 0 && !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}

	var mu sync.Mutex
	out := make(map[int64]models.Store, len(distinct))
	_ = concurrency.ForEach(ctx, concurrency.DefaultLimit, len(distinct), func(ctx context.Context, i int) error {
		s, err := l.get(ctx, distinct[i])
		if err != nil {
			l.log.WarnContext(ctx, "store lookup failed", "store_id", distinct[i], "error", err)
			return nil
		}
		mu.Lock()
		out[s.ID] = s
		mu.Unlock()
		return nil
	})
	return out
}
