package client

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&n))
	return n > 0
}

func TestInitDatabase_MigratesMetadataTable(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "tenantline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.True(t, tableExists(t, db, "goose_db_version"))
	require.True(t, tableExists(t, db, "metadata"))

	_, err = db.ExecContext(ctx, `INSERT INTO metadata (key, value) VALUES (?, ?)`, "messaging.passphrase", []byte("s3cret"))
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO metadata (key, value) VALUES (?, NULL)`, "profile.plan")
	require.Error(t, err, "value is NOT NULL")
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "tenantline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
	assert.True(t, tableExists(t, db, "metadata"))
}

func TestInitDatabase_KeepsDataAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tenantline.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO metadata (key, value) VALUES ('username', 'alice')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var v string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = 'username'`).Scan(&v))
	assert.Equal(t, "alice", v)
}

func TestInitDatabase_CreatesParentDirectory(t *testing.T) {
	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "nested", "dir", "tenantline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.True(t, tableExists(t, db, "metadata"))
}

func TestInitDatabase_InMemory(t *testing.T) {
	db, err := InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Ping())
}
