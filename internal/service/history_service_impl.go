package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/alexanderramin/nldates/internal/repository"
	"github.com/google/uuid"
)

type historyService struct {
	history  repository.HistoryRepo
	now      func() time.Time
	observer UseCaseObserver
}

func NewHistoryService(
	history repository.HistoryRepo,
	now func() time.Time,
	observers ...UseCaseObserver,
) HistoryService {
	if now == nil {
		now = time.Now
	}
	return &historyService{
		history:  history,
		now:      now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *historyService) Record(ctx context.Context, phrase, output string, mode domain.ParseMode) (entry *domain.HistoryEntry, err error) {
	done := observe(ctx, s.observer, "history-record", map[string]any{"mode": string(mode)})
	defer func() { done(&err) }()

	entry = &domain.HistoryEntry{
		ID:        uuid.New().String(),
		Phrase:    phrase,
		Output:    output,
		Mode:      mode,
		CreatedAt: s.now().UTC(),
	}
	if err = s.history.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("recording history: %w", err)
	}
	return entry, nil
}

func (s *historyService) Recent(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	return s.history.ListRecent(ctx, limit)
}

func (s *historyService) Clear(ctx context.Context) (n int64, err error) {
	fields := map[string]any{}
	done := observe(ctx, s.observer, "history-clear", fields)
	defer func() { done(&err) }()

	n, err = s.history.Clear(ctx)
	fields["removed"] = n
	return n, err
}
