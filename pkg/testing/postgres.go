package testing

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// GetDBPool connects to the postgres pointed at by POSTGRES_HOST / POSTGRES_PORT,
// migrates it, and wipes every user (and, by cascade, everything they own).
func GetDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	params := db.NewDBPoolParams{
		DBHost:     envOr("POSTGRES_HOST", "localhost"),
		DBPort:     envOr("POSTGRES_PORT", "5432"),
		DBName:     envOr("POSTGRES_DB", "gorillabuild_test"),
		DBUser:     envOr("POSTGRES_USER", "postgres"),
		DBPassword: os.Getenv("GORILLA_POSTGRES_PASS"),
	}
	t.Logf("using postgres host: %s", params.DBHost)

	require.NoError(t, db.RunMigrations(params))

	dbPool, err := db.NewDBPool(ctx, params)
	require.NoError(t, err)
	t.Cleanup(dbPool.Close)

	_, err = dbPool.Exec(ctx, `DELETE FROM app_user`)
	require.NoError(t, err)

	return dbPool
}

// InsertUsers creates bare user rows.
func InsertUsers(t *testing.T, dbPool *pgxpool.Pool, userIDs ...string) {
	t.Helper()
	for _, id := range userIDs {
		_, err := dbPool.Exec(context.Background(), `INSERT INTO app_user (id) VALUES ($1)`, id)
		require.NoError(t, err)
	}
}
