package store_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/saadjs/dhyan-cli/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	createTableQuery = `CREATE TABLE IF NOT EXISTS kv_store (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMPTZ NOT NULL DEFAULT now());`
	selectQuery      = `SELECT value FROM kv_store WHERE key = $1;`
	upsertQuery      = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;`
)

func newMockPostgres(t *testing.T) (pgxmock.PgxPoolIface, *store.Postgres) {
	t.Helper()
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	conn.ExpectExec(regexp.QuoteMeta(createTableQuery)).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	s, err := store.NewPostgresWithConn(context.Background(), conn)
	require.NoError(t, err)
	return conn, s
}

func TestPostgresGet(t *testing.T) {
	conn, s := newMockPostgres(t)
	ctx := context.Background()
	query := regexp.QuoteMeta(selectQuery)

	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(store.KeyUser).
			WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(`{"name":"Asha"}`))
		got, ok, err := s.Get(ctx, store.KeyUser)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"name":"Asha"}`, string(got))
	})
	t.Run("absent", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(store.KeyFoodEntries).
			WillReturnError(pgx.ErrNoRows)
		_, ok, err := s.Get(ctx, store.KeyFoodEntries)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(store.KeyFoodEntries).
			WillReturnError(errors.New("db error"))
		_, _, err := s.Get(ctx, store.KeyFoodEntries)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestPostgresSet(t *testing.T) {
	conn, s := newMockPostgres(t)
	ctx := context.Background()
	query := regexp.QuoteMeta(upsertQuery)

	t.Run("upserted", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(store.KeyWeightEntries, `[]`).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, s.Set(ctx, store.KeyWeightEntries, []byte(`[]`)))
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(store.KeyWeightEntries, `[]`).
			WillReturnError(errors.New("db error"))
		assert.Error(t, s.Set(ctx, store.KeyWeightEntries, []byte(`[]`)))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestNewPostgresWithConnFailsOnSchemaError(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	conn.ExpectExec(regexp.QuoteMeta(createTableQuery)).WillReturnError(errors.New("permission denied"))
	_, err = store.NewPostgresWithConn(context.Background(), conn)
	assert.Error(t, err)
}
