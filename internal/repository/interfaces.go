package repository

import (
	"context"

	"github.com/alexanderramin/nldates/internal/domain"
)

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}

type HistoryRepo interface {
	Create(ctx context.Context, e *domain.HistoryEntry) error
	ListRecent(ctx context.Context, limit int) ([]*domain.HistoryEntry, error)
	Clear(ctx context.Context) (int64, error)
}
