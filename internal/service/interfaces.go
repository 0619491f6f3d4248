package service

import (
	"context"

	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/alexanderramin/nldates/internal/suggest"
)

// Rendered is a phrase turned into document text by a parse mode. Text is
// empty when Moment is invalid.
type Rendered struct {
	Moment domain.ParsedMoment
	Text   string
}

// Completion is the editor-side autosuggest result for one cursor position.
type Completion struct {
	Trigger     suggest.Trigger
	Suggestions []domain.Suggestion
}

type DateService interface {
	Parse(ctx context.Context, phrase, pattern string) (domain.ParsedMoment, error)
	ParseDate(ctx context.Context, phrase string) (domain.ParsedMoment, error)
	ParseTime(ctx context.Context, phrase string) (domain.ParsedMoment, error)
	Now(ctx context.Context) (domain.ParsedMoment, error)
	Today(ctx context.Context) (domain.ParsedMoment, error)
	CurrentTime(ctx context.Context) (domain.ParsedMoment, error)
	Render(ctx context.Context, phrase string, mode domain.ParseMode) (Rendered, error)
	Select(ctx context.Context, label string, includeAlias bool) (string, error)
	Suggest(ctx context.Context, query string) ([]domain.Suggestion, error)
	Complete(ctx context.Context, line string, cursor int) (*Completion, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Set(ctx context.Context, key, value string) (*domain.Settings, error)
	Save(ctx context.Context, s *domain.Settings) error
	Reset(ctx context.Context) (*domain.Settings, error)
}

type HistoryService interface {
	Record(ctx context.Context, phrase, output string, mode domain.ParseMode) (*domain.HistoryEntry, error)
	Recent(ctx context.Context, limit int) ([]*domain.HistoryEntry, error)
	Clear(ctx context.Context) (int64, error)
}
