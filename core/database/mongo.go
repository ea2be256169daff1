package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoURI builds the connection string for cfg.
func MongoURI(cfg Config) string {
	if cfg.URI != "" {
		return cfg.URI
	}
	port := cfg.Port
	if port == 0 {
		port = 27017
	}
	if cfg.User == "" {
		return fmt.Sprintf("mongodb://%s:%d", cfg.Host, port)
	}
	userInfo := url.UserPassword(cfg.User, cfg.Password).String()
	return fmt.Sprintf("mongodb://%s@%s:%d", userInfo, cfg.Host, port)
}

// ConnectMongo establishes a MongoDB connection and pings the primary.
func ConnectMongo(cfg Config) (*mongo.Client, error) {
	timeout := time.Duration(cfg.timeout()) * time.Second

	opts := options.Client().
		ApplyURI(MongoURI(cfg)).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}
