// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

const (
	defaultTTL       = 5 * time.Minute
	defaultNamespace = "products"
	scanCount        = 200
)

// CachingProductRepository decorates a ProductRepository with Redis caching.
// Only the product list is cached. Existence checks always hit the database
// because they guard cart writes.
type CachingProductRepository struct {
	inner     usecase.ProductRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ProductRepository = (*CachingProductRepository)(nil)

// NewCachingProductRepository decorates a ProductRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "products".
// A nil rdb disables caching entirely.
func NewCachingProductRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProductRepository, namespace string) *CachingProductRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CachingProductRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListAll returns all products, checking the cache first then falling back to the database.
func (c *CachingProductRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	if c.rdb == nil {
		return c.inner.ListAll(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Product
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Exists delegates to the underlying repository.
func (c *CachingProductRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return c.inner.Exists(ctx, id)
}

// Invalidate drops every cached entry in this repository's namespace.
// It is called after the catalog is written, e.g. by seeding.
func (c *CachingProductRepository) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.namespace+":*")
}

func (c *CachingProductRepository) listKey() string {
	return c.namespace + ":list"
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingProductRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
