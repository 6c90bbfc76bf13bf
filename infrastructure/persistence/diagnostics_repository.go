package persistence

import (
	"context"

	"channel-gateway/domain/apperror"
	"channel-gateway/domain/model"
	"channel-gateway/domain/repository"
	"channel-gateway/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	maxListedCollections = 10
	maxErrorExcerpt      = 50
)

// DiagnosticsRepository reports on the optional MongoDB integration.
type DiagnosticsRepository struct {
	mongoDb      *mongo.Client
	databaseName string
	urlSet       bool
}

// NewDiagnosticsRepository accepts a nil client when Mongo is unavailable.
func NewDiagnosticsRepository(db *mongo.Client, databaseURL, databaseName string) repository.IDiagnosticsRepository {
	return &DiagnosticsRepository{mongoDb: db, databaseName: databaseName, urlSet: databaseURL != ""}
}

func (d *DiagnosticsRepository) Probe(ctx context.Context) model.DatabaseStatus {
	status := model.DatabaseStatus{
		Backend:          "Running",
		Database:         "Not Available",
		DatabaseURL:      setOrNot(d.urlSet),
		DatabaseName:     setOrNot(d.databaseName != ""),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if d.mongoDb == nil {
		logger.GetLogger().Debug("MongoDB client is nil - reporting database as unavailable")
		return status
	}
	if d.databaseName == "" {
		status.Database = "Available but not initialized"
		return status
	}

	status.Database = "Available"
	status.ConnectionStatus = "Connected"
	names, err := d.mongoDb.Database(d.databaseName).ListCollectionNames(ctx, bson.D{})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing collections")
		status.Database = "Connected but Error: " + apperror.Truncate(err.Error(), maxErrorExcerpt)
		return status
	}
	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	status.Collections = names
	status.Database = "Connected & Working"
	return status
}

func setOrNot(set bool) string {
	if set {
		return "Set"
	}
	return "Not Set"
}
