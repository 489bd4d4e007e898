package migrations

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestRunMigrations(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db))

	// All tables from the initial migration should exist
	for _, table := range []string{"time_entries", "projects", "customers", "settings"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoErrorf(t, err, "table %s missing", table)
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSettingsSingleRowConstraint(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db))

	_, err = db.Exec("INSERT INTO settings (id, data) VALUES (1, '{}')")
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO settings (id, data) VALUES (2, '{}')")
	assert.Error(t, err)
}

func TestExtractVersion(t *testing.T) {
	assert.Equal(t, 1, extractVersion("000001_init.up.sql"))
	assert.Equal(t, 12, extractVersion("000012_add_column.up.sql"))
	assert.Equal(t, 0, extractVersion("notes.txt"))
}
