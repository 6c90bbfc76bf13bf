package persistence

import (
	"context"
	"errors"
	"time"

	"channel-gateway/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const mongoConnectTimeout = 5 * time.Second

// NewMongoDb connects to uri and pings it. The returned client is nil on error.
func NewMongoDb(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetServerSelectionTimeout(mongoConnectTimeout))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		if dErr := client.Disconnect(context.Background()); dErr != nil {
			logger.GetLogger().WithField("error", dErr).Error("Error while disconnecting MongoDB")
		}
		return nil, err
	}
	return client, nil
}
