package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/alexanderramin/nldates/internal/locale"
	"github.com/alexanderramin/nldates/internal/repository"
	"github.com/alexanderramin/nldates/internal/resolver"
	"github.com/alexanderramin/nldates/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type fixture struct {
	db       *sql.DB
	dates    DateService
	settings SettingsService
	history  HistoryService
	observer *recordingObserver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	res := resolver.New(
		resolver.WithClock(testutil.FixedClock(testutil.Reference)),
		resolver.WithLocale(locale.Fixed(time.Monday)),
	)
	obs := &recordingObserver{}
	return &fixture{
		db:       database,
		dates:    NewDateService(settingsRepo, res, nil, obs),
		settings: NewSettingsService(settingsRepo, testutil.NewTestUoW(database), obs),
		history:  NewHistoryService(repository.NewSQLiteHistoryRepo(database), testutil.StepClock(testutil.Reference, time.Second), obs),
		observer: obs,
	}
}

func (f *fixture) set(t *testing.T, key, value string) {
	t.Helper()
	_, err := f.settings.Set(context.Background(), key, value)
	require.NoError(t, err)
}

func (f *fixture) apply(t *testing.T, mutate func(*domain.Settings)) {
	t.Helper()
	s := domain.DefaultSettings()
	mutate(&s)
	require.NoError(t, f.settings.Save(context.Background(), &s))
}
