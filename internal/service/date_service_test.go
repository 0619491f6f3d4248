package service

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/alexanderramin/nldates/internal/locale"
	"github.com/alexanderramin/nldates/internal/repository"
	"github.com/alexanderramin/nldates/internal/resolver"
	"github.com/alexanderramin/nldates/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateService_ParseDate_AppendsTimeWhenRelated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		phrase string
		want   string
	}{
		{"tomorrow", "2026-10-15"},
		{"now", "2026-10-14 10:30"},
		{"tomorrow at 5pm", "2026-10-15 17:00"},
		{"in 3 days", "2026-10-17"},
		{"in 2 hours", "2026-10-14 12:30"},
		{"time:+1 hour", "11:30"},
	}
	for _, tt := range tests {
		m, err := f.dates.ParseDate(ctx, tt.phrase)
		require.NoError(t, err)
		assert.Equal(t, tt.want, m.Formatted, tt.phrase)
	}
}

func TestDateService_ParseDate_AppendDisabled(t *testing.T) {
	f := newFixture(t)
	f.set(t, "append-time", "no")

	m, err := f.dates.ParseDate(context.Background(), "tomorrow at 5pm")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", m.Formatted)
}

func TestDateService_ParseDate_UsesSeparatorAndPatterns(t *testing.T) {
	f := newFixture(t)
	f.apply(t, func(s *domain.Settings) {
		s.DateFormat = "ddd Do MMM"
		s.TimeFormat = "h:mm a"
		s.Separator = ", "
	})

	m, err := f.dates.ParseDate(context.Background(), "tomorrow at 5pm")
	require.NoError(t, err)
	assert.Equal(t, "Thu 15th Oct, 5:00 pm", m.Formatted)
}

func TestDateService_ParseDate_WeekStartSetting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, err := f.dates.ParseDate(ctx, "next sunday")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-25", m.Formatted, "locale default is monday in the fixture")

	f.set(t, "week-start", "sunday")
	m, err = f.dates.ParseDate(ctx, "next sunday")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", m.Formatted)
}

func TestDateService_WeekStartOverrideIsNotPersisted(t *testing.T) {
	f := newFixture(t)
	ctx := WithWeekStart(context.Background(), domain.WeekStartSunday)

	m, err := f.dates.ParseDate(ctx, "next sunday")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", m.Formatted)

	cfg, err := f.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.WeekStartLocale, cfg.WeekStart)

	m, err = f.dates.ParseDate(context.Background(), "next sunday")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-25", m.Formatted)
}

func TestDateService_InvalidIsLoggedAtDebug(t *testing.T) {
	database := testutil.NewTestDB(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	res := resolver.New(resolver.WithClock(testutil.FixedClock(testutil.Reference)), resolver.WithLocale(locale.Fixed(time.Sunday)))
	svc := NewDateService(repository.NewSQLiteSettingsRepo(database), res, logger)

	m, err := svc.ParseDate(context.Background(), "asdkjfh")
	require.NoError(t, err)
	assert.False(t, m.Valid)
	assert.Equal(t, domain.InvalidDate, m.Formatted)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "phrase=asdkjfh")
}

func TestDateService_Current(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	now, err := f.dates.Now(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-14 10:30", now.Formatted)

	today, err := f.dates.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-14", today.Formatted)

	tm, err := f.dates.CurrentTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, "10:30", tm.Formatted)
}

func TestDateService_Render(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		mode domain.ParseMode
		want string
	}{
		{domain.ModeReplace, "[[2026-10-15]]"},
		{domain.ModeLink, "[tomorrow at 5pm](2026-10-15%2017:00)"},
		{domain.ModeClean, "2026-10-15 17:00"},
		{domain.ModeTime, "17:00"},
	}
	for _, tt := range tests {
		phrase := "tomorrow"
		if tt.mode != domain.ModeReplace {
			phrase = "tomorrow at 5pm"
		}
		out, err := f.dates.Render(ctx, phrase, tt.mode)
		require.NoError(t, err)
		assert.True(t, out.Moment.Valid)
		assert.Equal(t, tt.want, out.Text, tt.mode)
	}
	assert.Equal(t, "render", f.observer.last().Name)
	assert.Equal(t, "time", f.observer.last().Fields["mode"])
}

func TestDateService_Render_MarkdownStyle(t *testing.T) {
	f := newFixture(t)
	f.set(t, "link-style", "markdown")

	out, err := f.dates.Render(context.Background(), "tomorrow", domain.ModeReplace)
	require.NoError(t, err)
	assert.Equal(t, "[2026-10-15](2026-10-15)", out.Text)
}

func TestDateService_Render_InvalidProducesNoText(t *testing.T) {
	f := newFixture(t)

	out, err := f.dates.Render(context.Background(), "asdkjfh", domain.ModeReplace)
	require.NoError(t, err)
	assert.False(t, out.Moment.Valid)
	assert.Empty(t, out.Text)
}

func TestDateService_Render_UnknownMode(t *testing.T) {
	f := newFixture(t)

	_, err := f.dates.Render(context.Background(), "today", "shout")
	assert.ErrorIs(t, err, domain.ErrUnknownParseMode)
	assert.False(t, f.observer.last().Success)
}

func TestDateService_Select(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.dates.Select(ctx, "Tomorrow", false)
	require.NoError(t, err)
	assert.Equal(t, "[[2026-10-15]]", got)

	got, err = f.dates.Select(ctx, "Tomorrow", true)
	require.NoError(t, err)
	assert.Equal(t, "[[2026-10-15|Tomorrow]]", got)

	got, err = f.dates.Select(ctx, "time:+15 minutes", true)
	require.NoError(t, err)
	assert.Equal(t, "10:45", got, "time labels are never linked")

	got, err = f.dates.Select(ctx, "zzz", false)
	require.NoError(t, err)
	assert.Equal(t, domain.InvalidDate, got)
}

func TestDateService_Select_DefaultAliasAndToggle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.set(t, "default-alias", "dddd")

	got, err := f.dates.Select(ctx, "tomorrow", false)
	require.NoError(t, err)
	assert.Equal(t, "[[2026-10-15|Thursday]]", got)

	f.set(t, "toggle-link", "false")
	got, err = f.dates.Select(ctx, "tomorrow", true)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", got)
}

func TestDateService_Suggest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.dates.Suggest(ctx, "next ")
	require.NoError(t, err)
	assert.Len(t, got, 10)

	got, err = f.dates.Suggest(ctx, "zzz")
	require.NoError(t, err)
	assert.Equal(t, []domain.Suggestion{{Label: "zzz"}}, got)
}

func TestDateService_Complete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.dates.Complete(ctx, "meet @tom", 9)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "tom", c.Trigger.Query)
	assert.Equal(t, []domain.Suggestion{{Label: "Tomorrow"}}, c.Suggestions)

	c, err = f.dates.Complete(ctx, "mail bob@tom", 12)
	require.NoError(t, err)
	assert.Nil(t, c)

	f.set(t, "trigger", ";;")
	c, err = f.dates.Complete(ctx, "meet ;;tod", 10)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Today", c.Suggestions[0].Label)

	f.set(t, "autosuggest", "off")
	c, err = f.dates.Complete(ctx, "meet ;;tod", 10)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestDateService_SettingsRowMissingFallsBackToDefaults(t *testing.T) {
	f := newFixture(t)
	_, err := f.db.Exec(`DELETE FROM settings`)
	require.NoError(t, err)

	m, err := f.dates.ParseDate(context.Background(), "today")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-14", m.Formatted)
}
