package db

import (
	"github.com/kindermann-r/hiking-navigator/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis builds the client used for cross-instance event fan-out.
// Redis is optional; without an address the hub stays instance-local.
func ConnectRedis(cfg config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}
