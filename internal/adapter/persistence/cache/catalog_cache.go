package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/usecase/interfaces"
	"bemu_storefront/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const catalogKeyPrefix = "catalog:"

// CatalogCache decorates a catalog repository with a Redis read-through cache.
// Lookups that find nothing are not cached so new records show up immediately.
type CatalogCache struct {
	next  interfaces.ICatalogRepository
	redis *redis.Client
	ttl   time.Duration
}

var _ interfaces.ICatalogRepository = (*CatalogCache)(nil)

func NewCatalogCache(next interfaces.ICatalogRepository, client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{next: next, redis: client, ttl: ttl}
}

func (c *CatalogCache) ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	key := fmt.Sprintf("products:%s:%t:%d", filter.CategorySlug, filter.Featured, filter.Limit)
	return readThrough(ctx, c, key, func() ([]entities.Product, error) {
		return c.next.ListProducts(ctx, filter)
	}, func(v []entities.Product) bool { return len(v) == 0 })
}

func (c *CatalogCache) GetProductBySlug(ctx context.Context, slug string) (entities.Product, error) {
	return readThrough(ctx, c, "product:slug:"+slug, func() (entities.Product, error) {
		return c.next.GetProductBySlug(ctx, slug)
	}, func(p entities.Product) bool { return p.ID == "" })
}

func (c *CatalogCache) GetProductByID(ctx context.Context, id string) (entities.Product, error) {
	return readThrough(ctx, c, "product:id:"+id, func() (entities.Product, error) {
		return c.next.GetProductByID(ctx, id)
	}, func(p entities.Product) bool { return p.ID == "" })
}

func (c *CatalogCache) ListCategories(ctx context.Context) ([]entities.Category, error) {
	return readThrough(ctx, c, "categories", func() ([]entities.Category, error) {
		return c.next.ListCategories(ctx)
	}, func(v []entities.Category) bool { return len(v) == 0 })
}

func (c *CatalogCache) GetCategoryBySlug(ctx context.Context, slug string) (entities.Category, error) {
	return readThrough(ctx, c, "category:slug:"+slug, func() (entities.Category, error) {
		return c.next.GetCategoryBySlug(ctx, slug)
	}, func(v entities.Category) bool { return v.ID == "" })
}

func (c *CatalogCache) ListOrganiziroProducts(ctx context.Context) ([]entities.GridBase, error) {
	return readThrough(ctx, c, "organiziro", func() ([]entities.GridBase, error) {
		return c.next.ListOrganiziroProducts(ctx)
	}, func(v []entities.GridBase) bool { return len(v) == 0 })
}

// readThrough serves key from Redis or loads and stores it. Redis errors only degrade to a miss.
func readThrough[T any](ctx context.Context, c *CatalogCache, key string, load func() (T, error), empty func(T) bool) (T, error) {
	log := logger.Component(ctx, "catalog", "cache")
	key = catalogKeyPrefix + key

	var out T
	raw, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(raw, &out); jsonErr == nil {
			log.Debug().Str("cache_key", key).Msg("Cache hit")
			return out, nil
		}
		log.Warn().Str("cache_key", key).Msg("Discarding undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("cache_key", key).Msg("Cache read failed")
	}

	out, err = load()
	if err != nil || empty(out) {
		return out, err
	}

	raw, err = json.Marshal(out)
	if err == nil {
		err = c.redis.Set(ctx, key, raw, c.ttl).Err()
	}
	if err != nil {
		log.Warn().Err(err).Str("cache_key", key).Msg("Failed to cache catalog read")
	}
	return out, nil
}
