package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopeasy/shopeasy-commerce-service/internal/config"
	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
)

const (
	historyKeyPrefix = "order_history:"
	defaultCacheTTL  = 5 * time.Minute
)

// HistoryCache caches per-user order history. Implementations must treat
// failures as misses; the database remains the source of truth.
type HistoryCache interface {
	Get(ctx context.Context, userID int64) ([]models.Order, error)
	Set(ctx context.Context, userID int64, orders []models.Order) error
	Invalidate(ctx context.Context, userID int64) error
}

// RedisHistoryCache implements HistoryCache over Redis.
type RedisHistoryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisHistoryCache creates a Redis-backed history cache.
func NewRedisHistoryCache(cfg config.RedisConfig, logger *slog.Logger) *RedisHistoryCache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	return &RedisHistoryCache{client: client, ttl: ttl, logger: logger}
}

// NewRedisHistoryCacheWithClient wraps an existing client. Used by tests.
func NewRedisHistoryCacheWithClient(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisHistoryCache {
	return &RedisHistoryCache{client: client, ttl: ttl, logger: logger}
}

func historyKey(userID int64) string {
	return historyKeyPrefix + strconv.FormatInt(userID, 10)
}

// Get returns the cached history for a user, or nil on a miss.
func (c *RedisHistoryCache) Get(ctx context.Context, userID int64) ([]models.Order, error) {
	data, err := c.client.Get(ctx, historyKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		c.logger.Error("history cache get failed", "user_id", userID, "error", err)
		return nil, err
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Set stores the history for a user with the configured TTL.
func (c *RedisHistoryCache) Set(ctx context.Context, userID int64, orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, historyKey(userID), data, c.ttl).Err(); err != nil {
		c.logger.Error("history cache set failed", "user_id", userID, "error", err)
		return err
	}
	return nil
}

// Invalidate drops the cached history for a user.
func (c *RedisHistoryCache) Invalidate(ctx context.Context, userID int64) error {
	return c.client.Del(ctx, historyKey(userID)).Err()
}

// Close releases the Redis connection.
func (c *RedisHistoryCache) Close() error {
	return c.client.Close()
}
