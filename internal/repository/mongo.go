package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/katiamach/weather-forecast-web/internal/config"
)

const (
	appName                = "weather-forecast-web"
	serverSelectionTimeout = 5 * time.Second
)

// newMongoClient connects to the history database and pings its primary.
func newMongoClient(ctx context.Context, cfg config.DBConfig) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.ConnString).
		SetAppName(appName).
		SetServerSelectionTimeout(serverSelectionTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping %s: %w", cfg.Name, err)
	}

	return client, nil
}
