package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/alexanderramin/nldates/internal/repository"
)

type weekStartKey struct{}

// WithWeekStart returns a context under which date use cases resolve with ws
// instead of the stored week start. Nothing is persisted.
func WithWeekStart(ctx context.Context, ws domain.WeekStart) context.Context {
	return context.WithValue(ctx, weekStartKey{}, ws)
}

// loadSettings reads the stored settings, falling back to the defaults when
// the row is missing.
func loadSettings(ctx context.Context, repo repository.SettingsRepo) (domain.Settings, error) {
	s, err := repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		def := domain.DefaultSettings()
		s = &def
	} else if err != nil {
		return domain.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return s.Normalize(), nil
}

// loadDateSettings is loadSettings with the WithWeekStart override applied.
func loadDateSettings(ctx context.Context, repo repository.SettingsRepo) (domain.Settings, error) {
	cfg, err := loadSettings(ctx, repo)
	if err != nil {
		return cfg, err
	}
	if ws, ok := ctx.Value(weekStartKey{}).(domain.WeekStart); ok && ws != "" {
		cfg.WeekStart = ws
	}
	return cfg, nil
}
