package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultTimeout bounds the boot-time ping and every cache round trip. The
// statistics cache is advisory, so a slow Redis should surface quickly and
// let the caller recompute instead of stalling the request.
const defaultTimeout = 5 * time.Second

// Config carries the connection settings for the statistics cache.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect dials the statistics cache and pings it so a misconfigured address
// fails at boot. Timeout falls back to the package default and is also
// applied to per-command deadlines on the returned client.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
