//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds setup and cleanup statements.
const TestTimeout = 10 * time.Second

// Tables in dependency order, children first.
var tables = []string{"resume_job_maps", "resumes", "jobs", "users", "companies"}

// GetTestDatabaseURL returns DATABASE_URL, falling back to JOBBOARD_TEST_DB_URL.
func GetTestDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("JOBBOARD_TEST_DB_URL")
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDB opens a connection to the test database, applies the embedded
// migrations, and registers cleanup. The test is skipped when no database is
// configured.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if !IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	db, err := sql.Open(postgres.DriverName, GetTestDatabaseURL())
	require.NoError(t, err, "failed to open test database")
	db.SetMaxOpenConns(20)
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "failed to ping test database")
	require.NoError(t, postgres.Migrate(ctx, db, postgres.MigrateUp, logger.Discard()),
		"failed to apply migrations")

	return db
}

// ResetTables empties every domain table. The roles seed is left intact.
func ResetTables(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	for _, table := range tables {
		_, err := db.ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err, "failed to clean table %s", table)
	}
}
