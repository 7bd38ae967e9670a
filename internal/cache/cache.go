package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

// Client exposes the underlying connection so it can be shared, e.g. for health checks.
func (c *Cache) Client() *redis.Client {
	return c.client
}

func (c *Cache) GetDetails(ctx context.Context, res port.Resource, id uuid.UUID) ([]byte, error) {
	logger.Debugf(ctx, "getting entry in cache for %s #%s...", res, id)

	val, err := c.client.Get(ctx, detailsKey(res, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtag(ctx context.Context, res port.Resource, id uuid.UUID) (string, error) {
	val, err := c.client.Get(ctx, etagKey(res, id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

// SetDetails is best effort: a failed write only costs a future cache miss.
func (c *Cache) SetDetails(ctx context.Context, res port.Resource, id uuid.UUID, data []byte, validUntil time.Time) {
	logger.Debugf(ctx, "creating entry in cache for %s #%s, valid until %s...", res, id, validUntil.Format(time.RFC1123))

	if err := c.client.Set(ctx, detailsKey(res, id), data, time.Until(validUntil)).Err(); err != nil {
		logger.Warnf(ctx, "failed to cache %s #%s: %v", res, id, err)
	}
}

func (c *Cache) SetEtag(ctx context.Context, res port.Resource, id uuid.UUID, etag string, validUntil time.Time) {
	if err := c.client.Set(ctx, etagKey(res, id), etag, time.Until(validUntil)).Err(); err != nil {
		logger.Warnf(ctx, "failed to cache etag of %s #%s: %v", res, id, err)
	}
}

// DeleteDetails drops both the details and their ETag.
func (c *Cache) DeleteDetails(ctx context.Context, res port.Resource, id uuid.UUID) error {
	logger.Infof(ctx, "deleting entry in cache for %s #%s...", res, id)

	if err := c.client.Del(ctx, detailsKey(res, id), etagKey(res, id)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func detailsKey(res port.Resource, id uuid.UUID) string {
	return string(res) + ":" + id.String()
}

func etagKey(res port.Resource, id uuid.UUID) string {
	return "etag:" + detailsKey(res, id)
}
