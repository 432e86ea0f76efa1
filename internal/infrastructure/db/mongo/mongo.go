package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultTimeout bounds every repository operation in this package; sleep
// record queries are small and indexed, so anything slower signals trouble.
const defaultTimeout = 10 * time.Second

// defaultDatabase holds all sleep tracker collections when MONGO_DB is unset.
const defaultDatabase = "sleep_tracker"

// Config carries the connection settings for the sleep tracker database.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect dials the sleep tracker database and pings it before handing the
// handle out, so a bad URI fails at boot instead of on the first request.
// Database and Timeout fall back to the package defaults when unset.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	name := cfg.Database
	if name == "" {
		name = defaultDatabase
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(name), nil
}
