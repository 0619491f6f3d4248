package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/alexanderramin/nldates/internal/locale"
	"github.com/alexanderramin/nldates/internal/repository"
	"github.com/alexanderramin/nldates/internal/resolver"
	"github.com/alexanderramin/nldates/internal/service"
	"github.com/alexanderramin/nldates/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. The clock is pinned to testutil.Reference and weeks start on Monday.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	settingsRepo := repository.NewSQLiteSettingsRepo(db)
	historyRepo := repository.NewSQLiteHistoryRepo(db)
	res := resolver.New(
		resolver.WithClock(testutil.FixedClock(testutil.Reference)),
		resolver.WithLocale(locale.Fixed(time.Monday)),
	)

	return &App{
		Dates:        service.NewDateService(settingsRepo, res, nil),
		Settings:     service.NewSettingsService(settingsRepo, testutil.NewTestUoW(db)),
		History:      service.NewHistoryService(historyRepo, testutil.StepClock(testutil.Reference, time.Second)),
		Now:          testutil.FixedClock(testutil.Reference.Add(time.Hour)),
		HistoryLimit: 20,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdWithInput(t, app, nil, args...)
}

func executeCmdWithInput(t *testing.T, app *App, in io.Reader, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	if in != nil {
		root.SetIn(in)
	}
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- Root command ---

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "nldates")
	assert.Contains(t, out, "parse")
	assert.Contains(t, out, "suggest")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "tomorrow")
	require.Error(t, err)
}

// --- parse ---

func TestParseCmd_Modes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"replace is the default", []string{"parse", "tomorrow"}, "[[2026-10-15]]"},
		{"link", []string{"parse", "--mode", "link", "tomorrow"}, "[tomorrow](2026-10-15)"},
		{"clean joins args", []string{"parse", "-m", "clean", "next", "friday"}, "2026-10-23"},
		{"time", []string{"parse", "--mode", "time", "time:5pm"}, "17:00"},
		{"mode is case-insensitive", []string{"parse", "--mode", "CLEAN", "yesterday"}, "2026-10-13"},
		{"relative phrase appends time", []string{"parse", "-m", "clean", "in", "2", "hours"}, "2026-10-14 12:30"},
		{"custom format", []string{"parse", "--format", "YYYY/MM/DD", "christmas"}, "2026/12/25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCmd(t, testApp(t), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestParseCmd_WeekStartFlag(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "parse", "-m", "clean", "next", "sunday")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-25\n", out)

	out, err = executeCmd(t, app, "parse", "-m", "clean", "--week-start", "Sunday", "next", "sunday")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18\n", out)

	s, err := app.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.WeekStartLocale, s.WeekStart, "flag must not persist")
}

func TestParseCmd_WeekStartFlagRejectsUnknownDay(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "parse", "--week-start", "funday", "next", "sunday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown week start")
}

func TestParseCmd_InvalidPhrase(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "parse", "asdkjfh")
	require.ErrorIs(t, err, domain.ErrInvalidDate)
	assert.Contains(t, out, domain.InvalidDate)

	entries, err := app.History.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries, "invalid phrases are not recorded")
}

func TestParseCmd_UnknownMode(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "parse", "--mode", "shout", "tomorrow")
	require.ErrorIs(t, err, domain.ErrUnknownParseMode)
}

func TestParseCmd_RequiresPhrase(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "parse")
	require.Error(t, err)
}

func TestParseCmd_Details(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "parse", "--details", "tomorrow")
	require.NoError(t, err)
	assert.Contains(t, out, "PARSE")
	assert.Contains(t, out, "[[2026-10-15]]")
	assert.Contains(t, out, "replace")
}

func TestParseCmd_RecordsHistory(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "parse", "tomorrow")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "parse", "--no-history", "yesterday")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "parse", "-m", "link", "today")
	require.NoError(t, err)

	entries, err := app.History.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "today", entries[0].Phrase)
	assert.Equal(t, "[today](2026-10-14)", entries[0].Output)
	assert.Equal(t, domain.ModeLink, entries[0].Mode)
	assert.Equal(t, "tomorrow", entries[1].Phrase)
	assert.Equal(t, "[[2026-10-15]]", entries[1].Output)
}

// --- now / today / time ---

func TestCurrentCmds(t *testing.T) {
	app := testApp(t)
	for cmd, want := range map[string]string{
		"now":   "2026-10-14 10:30\n",
		"today": "2026-10-14\n",
		"time":  "10:30\n",
	} {
		out, err := executeCmd(t, app, cmd)
		require.NoError(t, err, cmd)
		assert.Equal(t, want, out, cmd)
	}
}

func TestCurrentCmds_FollowSettings(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "settings", "set", "date-format", "DD.MM.YYYY")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "settings", "set", "separator", ", ")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "now")
	require.NoError(t, err)
	assert.Equal(t, "14.10.2026, 10:30\n", out)
}

// --- suggest ---

func suggestionLines(out string) []string {
	var lines []string
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(l)
		lines = append(lines, strings.Join(fields[1:], " "))
	}
	return lines
}

func TestSuggestCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "suggest", "next")
	require.NoError(t, err)
	lines := suggestionLines(out)
	assert.Len(t, lines, 10)
	assert.Equal(t, "next week", lines[0])
	assert.Contains(t, lines, "next Monday")

	out, err = executeCmd(t, app, "suggest", "time")
	require.NoError(t, err)
	assert.Len(t, suggestionLines(out), 5)

	out, err = executeCmd(t, app, "suggest")
	require.NoError(t, err)
	assert.Equal(t, []string{"Now", "Today", "Yesterday", "Tomorrow", "In 1 hour", "1 hour ago"}, suggestionLines(out))

	out, err = executeCmd(t, app, "suggest", "zzz")
	require.NoError(t, err)
	assert.Equal(t, []string{"zzz"}, suggestionLines(out))
}

func TestSuggestCmd_Line(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "suggest", "--line", "lunch @tom")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tomorrow"}, suggestionLines(out))

	out, err = executeCmd(t, app, "suggest", "--line", "lunch @tom tea", "--cursor", "10")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tomorrow"}, suggestionLines(out))

	out, err = executeCmd(t, app, "suggest", "--line", "mail me@tom")
	require.NoError(t, err)
	assert.Contains(t, out, "No suggestions.")

	_, err = executeCmd(t, app, "suggest", "--line", "x", "tom")
	require.Error(t, err)
}

// --- link ---

func TestLinkCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "link", "tomorrow")
	require.NoError(t, err)
	assert.Equal(t, "[[2026-10-15]]\n", out)

	out, err = executeCmd(t, app, "link", "--alias", "next", "friday")
	require.NoError(t, err)
	assert.Equal(t, "[[2026-10-23|next friday]]\n", out)

	out, err = executeCmd(t, app, "link", "time:5pm")
	require.NoError(t, err)
	assert.Equal(t, "17:00\n", out)

	_, err = executeCmd(t, app, "link", "asdkjfh")
	require.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestLinkCmd_MarkdownStyle(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "settings", "set", "link-style", "markdown")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "link", "-a", "tomorrow")
	require.NoError(t, err)
	assert.Equal(t, "[tomorrow](2026-10-15)\n", out)
}

// --- settings ---

func TestSettingsCmd_Show(t *testing.T) {
	app := testApp(t)
	for _, args := range [][]string{{"settings"}, {"settings", "show"}} {
		out, err := executeCmd(t, app, args...)
		require.NoError(t, err)
		for _, key := range service.SettingKeys() {
			assert.Contains(t, out, key)
		}
		assert.Contains(t, out, `"YYYY-MM-DD"`)
		assert.Contains(t, out, "wikilink")
	}
}

func TestSettingsCmd_Set(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "settings", "set", "week-start", "Sunday")
	require.NoError(t, err)
	assert.Contains(t, out, "sunday")
	assert.NotContains(t, out, "date-format")

	out, err = executeCmd(t, app, "parse", "-m", "clean", "next", "sunday")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18\n", out)
}

func TestSettingsCmd_SetErrors(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "settings", "set", "colour", "red")
	require.ErrorIs(t, err, domain.ErrUnknownSetting)

	_, err = executeCmd(t, app, "settings", "set", "week-start", "funday")
	require.ErrorIs(t, err, domain.ErrUnknownWeekStart)

	_, err = executeCmd(t, app, "settings", "set", "link-style")
	require.Error(t, err)
}

func TestSettingsCmd_Reset(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	_, err := executeCmd(t, app, "settings", "set", "date-format", "DD/MM")
	require.NoError(t, err)

	out, err := executeCmdWithInput(t, app, strings.NewReader("n\n"), "settings", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	s, err := app.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "DD/MM", s.DateFormat)

	_, err = executeCmdWithInput(t, app, strings.NewReader("y\n"), "settings", "reset")
	require.NoError(t, err)
	s, err = app.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDateFormat, s.DateFormat)
}

func TestSettingsCmd_EditNeedsTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "settings", "edit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestSettingsCmd_ImportExport(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	dir := t.TempDir()

	src := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"format": "DD/MM/YYYY", "weekStart": "sunday", "autocompleteTriggerPhrase": ";;"}`), 0o644))

	out, err := executeCmd(t, app, "settings", "import", src)
	require.NoError(t, err)
	assert.Contains(t, out, `"DD/MM/YYYY"`)

	s, err := app.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "DD/MM/YYYY", s.DateFormat)
	assert.Equal(t, domain.WeekStartSunday, s.WeekStart)
	assert.Equal(t, ";;", s.TriggerPhrase)
	assert.Equal(t, domain.DefaultTimeFormat, s.TimeFormat)

	out, err = executeCmd(t, app, "settings", "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"format": "DD/MM/YYYY"`)
	assert.Contains(t, out, `"weekStart": "sunday"`)

	dst := filepath.Join(dir, "out.json")
	_, err = executeCmd(t, app, "settings", "export", dst)
	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))
}

func TestSettingsCmd_ImportRejectsInvalidFile(t *testing.T) {
	app := testApp(t)
	src := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"weekStart": "funday", "format": ""}`), 0o644))

	_, err := executeCmd(t, app, "settings", "import", src)
	require.ErrorIs(t, err, domain.ErrUnknownWeekStart)
	assert.Contains(t, err.Error(), "format must not be blank")

	s, err := app.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDateFormat, s.DateFormat)
}

// --- history ---

func TestHistoryCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No history yet.")

	for _, phrase := range []string{"tomorrow", "yesterday", "today"} {
		_, err := executeCmd(t, app, "parse", phrase)
		require.NoError(t, err)
	}

	out, err = executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "[[2026-10-15]]")
	assert.Contains(t, out, "[[2026-10-13]]")
	assert.Contains(t, out, "59m ago")

	out, err = executeCmd(t, app, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "today")
	assert.NotContains(t, out, "tomorrow")
}

func TestHistoryCmd_DefaultLimit(t *testing.T) {
	app := testApp(t)
	app.HistoryLimit = 1
	for _, phrase := range []string{"tomorrow", "today"} {
		_, err := executeCmd(t, app, "parse", phrase)
		require.NoError(t, err)
	}

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.NotContains(t, out, "tomorrow")

	out, err = executeCmd(t, app, "history", "-n", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "tomorrow")
}

func TestHistoryClearCmd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	_, err := executeCmd(t, app, "parse", "tomorrow")
	require.NoError(t, err)

	out, err := executeCmdWithInput(t, app, strings.NewReader("\n"), "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")

	out, err = executeCmd(t, app, "history", "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 1 history entries.")

	entries, err := app.History.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
