package persistence_test

import (
	"context"
	"testing"

	"channel-gateway/infrastructure/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsRepository_WithoutMongo(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		database string
		wantURL  string
		wantName string
	}{
		{name: "nothing configured", wantURL: "Not Set", wantName: "Not Set"},
		{name: "configured but unreachable", url: "mongodb://127.0.0.1:1", database: "app", wantURL: "Set", wantName: "Set"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := persistence.NewDiagnosticsRepository(nil, tt.url, tt.database)
			status := repo.Probe(context.Background())

			assert.Equal(t, "Running", status.Backend)
			assert.Equal(t, "Not Available", status.Database)
			assert.Equal(t, "Not Connected", status.ConnectionStatus)
			assert.Equal(t, tt.wantURL, status.DatabaseURL)
			assert.Equal(t, tt.wantName, status.DatabaseName)
			assert.NotNil(t, status.Collections)
			assert.Empty(t, status.Collections)
		})
	}
}

func TestNewMongoDb_RequiresURL(t *testing.T) {
	client, err := persistence.NewMongoDb(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, client)
}

func TestNewMongoDb_InvalidURL(t *testing.T) {
	client, err := persistence.NewMongoDb(context.Background(), "not-a-mongo-uri")
	require.Error(t, err)
	assert.Nil(t, client)
}
