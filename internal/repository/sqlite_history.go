package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/nldates/internal/db"
	"github.com/alexanderramin/nldates/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

func (r *SQLiteHistoryRepo) Create(ctx context.Context, e *domain.HistoryEntry) error {
	query := `INSERT INTO history (id, phrase, output, mode, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Phrase,
		e.Output,
		string(e.Mode),
		formatTimestamp(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

// ListRecent returns up to limit entries, newest first. A non-positive
// limit returns everything.
func (r *SQLiteHistoryRepo) ListRecent(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	query := `SELECT id, phrase, output, mode, created_at FROM history
		ORDER BY created_at DESC, rowid DESC LIMIT ?`
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()
	return scanHistory(rows)
}

// Clear deletes every entry and reports how many were removed.
func (r *SQLiteHistoryRepo) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared history: %w", err)
	}
	return n, nil
}

func scanHistory(rows *sql.Rows) ([]*domain.HistoryEntry, error) {
	var entries []*domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		var mode, createdAt string
		if err := rows.Scan(&e.ID, &e.Phrase, &e.Output, &mode, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		t, err := parseTimestamp(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing history created_at %q: %w", createdAt, err)
		}
		e.Mode = domain.ParseMode(mode)
		e.CreatedAt = t
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return entries, nil
}
