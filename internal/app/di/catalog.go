package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogadapters "shop_backend/internal/feature/catalog/adapters"
	"shop_backend/internal/platform/cache"
)

// NewProductRepository creates the catalog repository.
// The database repository is always wrapped by the cache decorator; with a nil rdb
// the decorator passes every call through, so callers can Invalidate unconditionally.
func NewProductRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) *cache.CachingProductRepository {
	return cache.NewCachingProductRepository(rdb, ttl, catalogadapters.NewProductRepository(db), "products")
}
