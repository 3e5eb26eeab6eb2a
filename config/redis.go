package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is the shared Redis client, nil when REDIS_ADDR is not configured.
// The room-catalog service falls back to direct API calls without it.
var Cache *redis.Client

func ConnectRedis() error {
	addr := AppConfig.RedisAddr
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: AppConfig.RedisPassword,
		DB:       AppConfig.RedisCacheDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return err
	}

	Cache = client
	return nil
}
