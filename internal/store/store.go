// Package store persists the tracker's collections in a key-value store.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	KeyUser           = "dhyan-user"
	KeyFoodEntries    = "dhyan-food-entries"
	KeyWorkoutEntries = "dhyan-workout-entries"
	KeyWeightEntries  = "dhyan-weight-entries"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var ErrUnknownDriver = errors.New("unknown store driver")

// Store is a last-write-wins key-value store. Get reports ok=false for
// absent keys instead of returning an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

type Options struct {
	Driver      string
	SQLitePath  string
	PostgresDSN string
}

func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverSQLite:
		return OpenSQLite(opts.SQLitePath)
	case DriverPostgres:
		return OpenPostgres(ctx, opts.PostgresDSN)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w %q (use sqlite, postgres, memory)", ErrUnknownDriver, opts.Driver)
	}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("store key is required")
	}
	return nil
}
