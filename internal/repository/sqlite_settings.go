package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/nldates/internal/db"
	"github.com/alexanderramin/nldates/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT id, date_format, time_format, separator, append_time_when_related,
		week_start, default_alias, link_style, autosuggest_enabled, autosuggest_toggle_link,
		trigger_phrase
		FROM settings WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.Settings
	var weekStart, linkStyle string
	var appendTime, autosuggest, toggleLink int
	err := row.Scan(
		&s.ID,
		&s.DateFormat,
		&s.TimeFormat,
		&s.Separator,
		&appendTime,
		&weekStart,
		&s.DefaultAlias,
		&linkStyle,
		&autosuggest,
		&toggleLink,
		&s.TriggerPhrase,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}

	s.AppendTimeWhenRelated = intToBool(appendTime)
	s.AutosuggestEnabled = intToBool(autosuggest)
	s.AutosuggestToggleLink = intToBool(toggleLink)
	s.WeekStart = domain.WeekStart(weekStart)
	s.LinkStyle = domain.LinkStyle(linkStyle)
	return &s, nil
}

// Upsert stores s as the default row. Blank fields are normalized first so
// the table never holds an empty pattern.
func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	n := s.Normalize()
	query := `INSERT OR REPLACE INTO settings (id, date_format, time_format, separator,
		append_time_when_related, week_start, default_alias, link_style, autosuggest_enabled,
		autosuggest_toggle_link, trigger_phrase)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.DateFormat,
		n.TimeFormat,
		n.Separator,
		boolToInt(n.AppendTimeWhenRelated),
		string(n.WeekStart),
		n.DefaultAlias,
		string(n.LinkStyle),
		boolToInt(n.AutosuggestEnabled),
		boolToInt(n.AutosuggestToggleLink),
		n.TriggerPhrase,
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
