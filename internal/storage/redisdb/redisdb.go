package redisdb

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hackathon-portal/internal/config"
)

// Init opens the Redis connection used for the session-token blacklist.
func Init(cfg config.RedisConfig) *redis.Client {
	const op = "storage.redisdb.Init"

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		panic(fmt.Sprintf("%s: failed to ping redis: %v", op, err))
	}

	return rdb
}
