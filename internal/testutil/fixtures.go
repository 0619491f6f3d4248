package testutil

import (
	"sync/atomic"
	"time"

	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/google/uuid"
)

// Reference is the instant fixtures and fixed clocks default to, a
// Wednesday.
var Reference = time.Date(2026, time.October, 14, 10, 30, 0, 0, time.UTC)

// FixedClock returns a clock pinned to t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// StepClock returns a clock that starts at t and advances by step on every
// call, so successive records get distinct timestamps.
func StepClock(t time.Time, step time.Duration) func() time.Time {
	var n atomic.Int64
	return func() time.Time {
		return t.Add(time.Duration(n.Add(1)-1) * step)
	}
}

// History entry options
type HistoryOption func(*domain.HistoryEntry)

func WithOutput(out string) HistoryOption {
	return func(e *domain.HistoryEntry) {
		e.Output = out
	}
}

func WithMode(m domain.ParseMode) HistoryOption {
	return func(e *domain.HistoryEntry) {
		e.Mode = m
	}
}

func WithCreatedAt(t time.Time) HistoryOption {
	return func(e *domain.HistoryEntry) {
		e.CreatedAt = t
	}
}

// NewTestHistoryEntry builds an entry for phrase with a fresh id.
func NewTestHistoryEntry(phrase string, opts ...HistoryOption) *domain.HistoryEntry {
	e := &domain.HistoryEntry{
		ID:        uuid.New().String(),
		Phrase:    phrase,
		Output:    "[[2026-10-14]]",
		Mode:      domain.ModeReplace,
		CreatedAt: Reference,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTestSettings returns the defaults with opts applied.
func NewTestSettings(opts ...func(*domain.Settings)) *domain.Settings {
	s := domain.DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &s
}
