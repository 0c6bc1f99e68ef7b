package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Cheertaboi/storefront-service/internal/models"
)

func TestStoreCache_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewStoreCache(time.Minute)
	c.now = func() time.Time { return now }

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(models.Store{ID: 1, Name: "분식집"})
	s, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "분식집", s.Name)

	now = now.Add(time.Minute)
	_, ok = c.Get(1)
	assert.False(t, ok)
}
