package bootstrap

import (
	"context"
	"log/slog"

	"slotbook/internal/infra/cache"
	"slotbook/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewSlotCache,
	),
)

// NewRedisClient degrades to a nil client when redis is unreachable;
// the slot cache treats nil as a noop and the service keeps serving.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		slog.Warn("redis unreachable, slot cache disabled", "addr", cfg.Redis.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewSlotCache(client *redis.Client, cfg config.Config) *cache.SlotCache {
	return cache.NewSlotCache(client, cfg.Redis.SlotTTL)
}
