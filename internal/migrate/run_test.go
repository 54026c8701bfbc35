package migrate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise/spendwise-web/internal/migrate"
	"github.com/spendwise/spendwise-web/internal/testutil"
)

func TestVersions(t *testing.T) {
	assert.Equal(t, []string{"0001_ui_sessions"}, migrate.Versions())
}

func TestRun_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, migrate.Run(ctx, db))
	require.NoError(t, migrate.Run(ctx, db))

	var n int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT count(*) FROM schema_migrations WHERE version = '0001_ui_sessions'`).Scan(&n))
	assert.Equal(t, 1, n)
}
