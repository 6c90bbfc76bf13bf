package repository

import (
	"context"

	"channel-gateway/domain/model"
)

// IDiagnosticsRepository reports on the optional database integration.
type IDiagnosticsRepository interface {
	Probe(ctx context.Context) model.DatabaseStatus
}
