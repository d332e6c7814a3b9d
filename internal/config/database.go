package config

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const defaultDatabaseName = "impactflow"

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func NewMongoDBConfig(logger *zap.Logger) *MongoDBConfig {
	cfg := &MongoDBConfig{
		URI:      os.Getenv("DATABASE_URL"),
		Database: os.Getenv("DATABASE_NAME"),
		Timeout:  5 * time.Second,
	}
	if cfg.Database == "" {
		cfg.Database = defaultDatabaseName
	}
	if raw := os.Getenv("MONGO_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			logger.Warn("ignoring invalid MONGO_TIMEOUT", zap.String("value", raw))
		} else {
			cfg.Timeout = d
		}
	}
	if cfg.URI == "" {
		logger.Warn("DATABASE_URL not set, data operations will fail until it is configured")
	}
	return cfg
}

// MongoDBClient owns the driver client. Database is nil when no connection
// could be configured; the store treats that as unavailable.
type MongoDBClient struct {
	Client   *mongo.Client
	Database *mongo.Database
	URISet   bool
}

func NewMongoDBClient(lc fx.Lifecycle, config *MongoDBConfig, logger *zap.Logger) *MongoDBClient {
	result := &MongoDBClient{URISet: config.URI != ""}
	if config.URI == "" {
		return result
	}

	clientOptions := options.Client().
		ApplyURI(config.URI).
		SetConnectTimeout(config.Timeout).
		SetServerSelectionTimeout(config.Timeout)

	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Error("failed to configure MongoDB client", zap.Error(err))
		return result
	}
	if err := client.Ping(ctx, nil); err != nil {
		// The driver reconnects on its own; requests fail with a store error meanwhile.
		logger.Warn("MongoDB ping failed", zap.Error(err))
	} else {
		logger.Info("connected to MongoDB", zap.String("database", config.Database))
	}

	result.Client = client
	result.Database = client.Database(config.Database)

	lc.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			logger.Info("closing MongoDB connection")
			return client.Disconnect(stopCtx)
		},
	})
	return result
}
