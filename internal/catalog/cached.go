package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"storefront/internal/domain"
)

const cacheTTL = time.Minute

// CachedCatalog is a read-through cache in front of another Repository.
// Cache failures are ignored; the inner repository is the source of truth.
type CachedCatalog struct {
	inner Repository
	rdb   *redis.Client
}

func NewCachedCatalog(inner Repository, rdb *redis.Client) *CachedCatalog {
	return &CachedCatalog{inner: inner, rdb: rdb}
}

func (c *CachedCatalog) Resolve(ctx context.Context, id string) (domain.Product, error) {
	cacheKey := "product:" + id

	if cached, err := c.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var p domain.Product
		if err := json.Unmarshal([]byte(cached), &p); err == nil {
			return p, nil
		}
	}

	p, err := c.inner.Resolve(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	if data, err := json.Marshal(p); err == nil {
		c.rdb.Set(ctx, cacheKey, data, cacheTTL)
	}
	return p, nil
}

var _ Repository = (*CachedCatalog)(nil)
