package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"group-reviews/internal/domain"

	"github.com/redis/go-redis/v9"
)

const statsKey = "group-reviews:stats:v1"

// StatsCache хранит ответ статистики в Redis.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache создает новый экземпляр StatsCache.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{
		client: client,
		ttl:    ttl,
	}
}

// NewStatsCacheWithURL подключается к Redis по URL вида redis://host:port/db.
func NewStatsCacheWithURL(url string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return NewStatsCache(redis.NewClient(opts), ttl), nil
}

// Ping проверяет доступность Redis.
func (c *StatsCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close закрывает соединение с Redis.
func (c *StatsCache) Close() error {
	return c.client.Close()
}

// Get возвращает статистику из кэша. Второе значение false при промахе.
func (c *StatsCache) Get(ctx context.Context) ([]*domain.GroupStats, bool, error) {
	data, err := c.client.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read stats cache: %w", err)
	}

	var stats []*domain.GroupStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, false, fmt.Errorf("failed to decode stats cache: %w", err)
	}

	return stats, true, nil
}

// Set сохраняет статистику на время ttl.
func (c *StatsCache) Set(ctx context.Context, stats []*domain.GroupStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats cache: %w", err)
	}

	if err := c.client.Set(ctx, statsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write stats cache: %w", err)
	}
	return nil
}

// Invalidate удаляет закэшированную статистику.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, statsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stats cache: %w", err)
	}
	return nil
}
