// Package cache keeps derived snapshots in process memory.
package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rogerio-castellano/inventory-insights/internal/models"
)

// MemoryCache is a bounded LRU of snapshots keyed by dataset fingerprint.
type MemoryCache struct {
	entries *lru.Cache[string, *models.Snapshot]
}

func NewMemoryCache(size int) (*MemoryCache, error) {
	if size <= 0 {
		size = 1
	}
	entries, err := lru.New[string, *models.Snapshot](size)
	if err != nil {
		return nil, err
	}
	return &MemoryCache{entries: entries}, nil
}

func (c *MemoryCache) GetSnapshot(_ context.Context, fingerprint string) (*models.Snapshot, bool, error) {
	s, ok := c.entries.Get(fingerprint)
	return s, ok, nil
}

func (c *MemoryCache) SetSnapshot(_ context.Context, fingerprint string, s *models.Snapshot) error {
	c.entries.Add(fingerprint, s)
	return nil
}

func (c *MemoryCache) Len() int {
	return c.entries.Len()
}
