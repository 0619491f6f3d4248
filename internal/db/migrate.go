package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is idempotent, so it is safe
// to run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		id                       TEXT PRIMARY KEY DEFAULT 'default',
		date_format              TEXT NOT NULL DEFAULT 'YYYY-MM-DD',
		time_format              TEXT NOT NULL DEFAULT 'HH:mm',
		separator                TEXT NOT NULL DEFAULT ' ',
		append_time_when_related INTEGER NOT NULL DEFAULT 1,
		week_start               TEXT NOT NULL DEFAULT 'locale-default'
		                         CHECK(week_start IN ('locale-default','sunday','monday','tuesday',
		                                              'wednesday','thursday','friday','saturday')),
		default_alias            TEXT NOT NULL DEFAULT '',
		link_style               TEXT NOT NULL DEFAULT 'wikilink'
		                         CHECK(link_style IN ('wikilink','markdown')),
		autosuggest_enabled      INTEGER NOT NULL DEFAULT 1,
		autosuggest_toggle_link  INTEGER NOT NULL DEFAULT 1,
		trigger_phrase           TEXT NOT NULL DEFAULT '@'
	)`,

	// Seed default settings
	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS history (
		id         TEXT PRIMARY KEY,
		phrase     TEXT NOT NULL,
		output     TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at)`,

	// Record which parse mode produced each history entry
	`ALTER TABLE history ADD COLUMN mode TEXT NOT NULL DEFAULT ''`,
}
