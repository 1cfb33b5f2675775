package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reelworthy/ragchat/internal/domain"
	"github.com/reelworthy/ragchat/internal/observability"
)

// NewClient connects to Redis with bounded retry. The returned client is a
// process-wide singleton: created once at startup, shared across requests,
// closed on shutdown.
func NewClient(cfg *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	attempts := cfg.MaxConnectRetries
	if attempts < 1 {
		attempts = 1
	}

	timeout := time.Duration(cfg.ConnectTimeout) * time.Second
	logger := observability.FromContext(context.Background())

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		lastErr = client.Ping(ctx).Err()
		cancel()

		if lastErr == nil {
			logger.Info("connected to redis",
				observability.String("addr", cfg.Addr),
				observability.Int("attempt", attempt))
			return client, nil
		}

		logger.Warn("redis connection attempt failed",
			observability.Int("attempt", attempt),
			observability.Error(lastErr))
	}

	_ = client.Close()
	return nil, domain.WrapError(
		domain.CodeConnectionFailed,
		fmt.Sprintf("failed to connect to redis after %d attempts", attempts),
		lastErr,
	).WithContext("addr", cfg.Addr)
}
