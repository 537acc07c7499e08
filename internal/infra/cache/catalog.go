package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/doctors-portal-api/internal/domain/booking"
	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

const catalogKey = "catalog:services"

// CatalogCache is a read-through cache for the immutable service catalog.
// Availability reads bypass it: they must see the live booking state, the
// catalog listing does not. A redis failure falls through to the store.
type CatalogCache struct {
	rdb  *redis.Client
	repo domain.Repository
	ttl  time.Duration
	log  *zap.Logger
}

func NewCatalogCache(rdb *redis.Client, repo domain.Repository, ttl time.Duration, log *zap.Logger) *CatalogCache {
	return &CatalogCache{
		rdb:  rdb,
		repo: repo,
		ttl:  ttl,
		log:  log,
	}
}

func (c *CatalogCache) ListServices(ctx context.Context) ([]models.Service, error) {
	if cached, err := c.rdb.Get(ctx, catalogKey).Result(); err == nil {
		var services []models.Service
		if err := json.Unmarshal([]byte(cached), &services); err == nil {
			return services, nil
		}
	} else if err != redis.Nil {
		c.log.Warn("catalog cache read failed", zap.Error(err))
	}

	services, err := c.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(services); err == nil {
		if err := c.rdb.Set(ctx, catalogKey, encoded, c.ttl).Err(); err != nil {
			c.log.Warn("catalog cache write failed", zap.Error(err))
		}
	}

	return services, nil
}
