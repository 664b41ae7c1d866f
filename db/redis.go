package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis initializes the Redis client used for like tracking. Redis
// is optional; callers check RedisClient for nil.
func ConnectRedis(addr, password string, dbnum int) error {
	opt := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbnum,
	}

	client := redis.NewClient(opt)

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	RedisClient = client
	return nil
}
