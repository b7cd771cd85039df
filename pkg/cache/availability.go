// Package cache keeps short-lived snapshots of booked slot labels in Redis.
// It is an optimization for the availability display, never a source of
// truth: confirmation-time checks always go to the database.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cricket-booking/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewAvailability connects to Redis. A failed ping is logged and the cache
// runs disabled; availability then reads straight from the database.
func NewAvailability(addr, password string, db int, ttl time.Duration, log *zap.Logger) *AvailabilityCache {
	c := &AvailabilityCache{
		ttl: ttl,
		log: log.With(zap.String("cache", "availability")),
	}

	if addr == "" {
		c.log.Info("Redis address not configured, availability cache disabled")
		return c
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		c.log.Warn("Redis unreachable, availability cache disabled", zap.Error(err))
		return c
	}

	c.client = client
	return c
}

// Close releases the Redis connection. Safe to call when disabled.
func (c *AvailabilityCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func key(date time.Time, pitch entity.PitchType) string {
	return fmt.Sprintf("booked:%s:%s", date.Format("2006-01-02"), pitch)
}

// GetBookedLabels returns the cached label list and whether it was present.
// Any Redis error counts as a miss.
func (c *AvailabilityCache) GetBookedLabels(ctx context.Context, date time.Time, pitch entity.PitchType) ([]string, bool) {
	if c.client == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, key(date, pitch)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("Availability cache read failed", zap.Error(err))
		return nil, false
	}

	var labels []string
	if err := json.Unmarshal([]byte(val), &labels); err != nil {
		c.log.Warn("Availability cache entry corrupt", zap.Error(err))
		return nil, false
	}

	return labels, true
}

// SetBookedLabels stores the label list with the configured TTL, best effort.
func (c *AvailabilityCache) SetBookedLabels(ctx context.Context, date time.Time, pitch entity.PitchType, labels []string) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(labels)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(date, pitch), data, c.ttl).Err(); err != nil {
		c.log.Warn("Availability cache write failed", zap.Error(err))
	}
}

// Invalidate drops the snapshot after a booking insert or cancellation.
func (c *AvailabilityCache) Invalidate(ctx context.Context, date time.Time, pitch entity.PitchType) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, key(date, pitch)).Err(); err != nil {
		c.log.Warn("Availability cache invalidation failed", zap.Error(err))
	}
}
