package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"frushh/models"

	"github.com/go-logr/logr"
	"github.com/redis/go-redis/v9"
)

// CachedCatalog is a read-through Redis cache in front of a CatalogRepository.
// Cache errors fall back to the underlying store.
type CachedCatalog struct {
	next CatalogRepository
	rdb  *redis.Client
	ttl  time.Duration
	log  logr.Logger
}

func NewCachedCatalog(next CatalogRepository, rdb *redis.Client, ttl time.Duration, logger logr.Logger) CatalogRepository {
	if rdb == nil {
		return next
	}
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}
	return &CachedCatalog{next: next, rdb: rdb, ttl: ttl, log: logger.WithName("catalog-cache")}
}

func productKey(id int) string { return fmt.Sprintf("catalog:product:%d", id) }
func addonKey(id int) string   { return fmt.Sprintf("catalog:addon:%d", id) }

func (c *CachedCatalog) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var cached models.Product
	if c.load(ctx, productKey(id), &cached) {
		return &cached, nil
	}

	product, err := c.next.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, productKey(id), product)
	return product, nil
}

func (c *CachedCatalog) GetAddons(ctx context.Context, ids []int) ([]models.CatalogAddon, error) {
	addons := make([]models.CatalogAddon, 0, len(ids))
	missing := []int{}

	for _, id := range ids {
		var cached models.CatalogAddon
		if c.load(ctx, addonKey(id), &cached) {
			addons = append(addons, cached)
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return addons, nil
	}

	fetched, err := c.next.GetAddons(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, a := range fetched {
		c.store(ctx, addonKey(a.ID), a)
	}
	return append(addons, fetched...), nil
}

func (c *CachedCatalog) load(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Error(err, "cache read failed", "key", key)
		}
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (c *CachedCatalog) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Error(err, "cache write failed", "key", key)
	}
}
