package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&n))
	assert.Equal(t, 1, n, "seed row must not duplicate")
}

func TestMigrate_CreatesTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"settings", "history"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}

	var idx string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_history_created'`).Scan(&idx)
	require.NoError(t, err)
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestMigrate_SeedsDefaultSettings(t *testing.T) {
	db := openTestDB(t)

	var dateFmt, timeFmt, sep, weekStart, linkStyle, trigger string
	var appendTime int
	err := db.QueryRow(`SELECT date_format, time_format, separator, week_start, link_style,
		trigger_phrase, append_time_when_related FROM settings WHERE id = 'default'`).
		Scan(&dateFmt, &timeFmt, &sep, &weekStart, &linkStyle, &trigger, &appendTime)
	require.NoError(t, err)
	assert.Equal(t, "YYYY-MM-DD", dateFmt)
	assert.Equal(t, "HH:mm", timeFmt)
	assert.Equal(t, " ", sep)
	assert.Equal(t, "locale-default", weekStart)
	assert.Equal(t, "wikilink", linkStyle)
	assert.Equal(t, "@", trigger)
	assert.Equal(t, 1, appendTime)
}

func TestMigrate_SettingsCheckConstraints(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`UPDATE settings SET week_start = 'someday' WHERE id = 'default'`)
	assert.Error(t, err)

	_, err = db.Exec(`UPDATE settings SET link_style = 'html' WHERE id = 'default'`)
	assert.Error(t, err)
}

func TestMigrate_HistoryModeColumn(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO history (id, phrase, output, created_at) VALUES ('h1', 'today', '2026-10-14', '2026-10-14T10:30:00Z')`)
	require.NoError(t, err)

	var mode string
	require.NoError(t, db.QueryRow(`SELECT mode FROM history WHERE id = 'h1'`).Scan(&mode))
	assert.Equal(t, "", mode)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "nldates.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
	assert.FileExists(t, path)
}
