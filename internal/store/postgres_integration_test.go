package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/saadjs/dhyan-cli/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPostgresIntegration(t *testing.T) {
	if os.Getenv("DHYAN_PG_INTEGRATION") != "1" {
		t.Skip("set DHYAN_PG_INTEGRATION=1 to run against a postgres container")
	}
	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:17",
		postgres.WithUsername("dhyan"),
		postgres.WithDatabase("dhyan"),
		postgres.WithPassword("dhyan"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.Open(ctx, store.Options{Driver: store.DriverPostgres, PostgresDSN: dsn})
	require.NoError(t, err)
	defer s.Close()

	weights := []model.WeightEntry{{ID: "w1", WeightKg: 71.2, MeasuredAt: time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)}}
	require.NoError(t, store.Save(ctx, s, store.KeyWeightEntries, weights))

	var got []model.WeightEntry
	ok, err := store.Load(ctx, s, store.KeyWeightEntries, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 71.2, got[0].WeightKg)
}
