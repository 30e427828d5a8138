package cache

import (
	"context"
	"honeydew-api/core/config"
	"honeydew-api/core/constants"
	"honeydew-api/core/logger"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the redis client used for token blacklisting.
type Cache struct {
	client *redis.Client
}

var instance *Cache

func Get() *Cache {
	return instance
}

func Init(cfg config.RedisConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to redis", "error", err)
		return nil, err
	}

	logger.Info("Redis initialized successfully", "addr", cfg.Addr)

	instance = &Cache{client: client}
	return instance, nil
}

func (c *Cache) Client() *redis.Client {
	return c.client
}

// BlacklistToken marks a token as revoked until it would have expired anyway.
func (c *Cache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+token, "1", ttl).Err()
}

func (c *Cache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
