package database

import (
	"context"
	"time"

	"bemu_storefront/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a connected client, or nil when addr is empty or Redis is unreachable.
// Callers fall back to uncached reads and in-memory carts on nil.
func ConnectRedis(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("redis_addr", addr).
			Msg("Failed to connect to Redis - catalog cache disabled, carts kept in memory")
		_ = client.Close()
		return nil
	}

	logger.Logger.Info().Str("redis_addr", addr).Msg("Connected to Redis")
	return client
}
