package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	appName        = "empowerup-api"
	defaultTimeout = 10 * time.Second
)

// Config captures the settings for establishing the MongoDB connection that
// backs the credential store and all content collections.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
	// MaxPoolSize caps concurrent connections; 0 keeps the driver default.
	MaxPoolSize uint64
}

// Connect establishes a MongoDB client, verifies primary reachability with a
// ping, and returns both the client and the selected database. A default
// timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetConnectTimeout(timeout)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	// Auth resolution re-reads the user row on every request, so a node that
	// cannot reach the primary is not good enough.
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
