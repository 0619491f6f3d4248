package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nldates/internal/cli/formatter"
	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// huhTheme returns a huh theme using the formatter's Gruvbox palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	accent := lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	fg := lipgloss.NewStyle().Foreground(formatter.ColorFg)
	dim := lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Focused.Title = accent.Bold(true)
	t.Focused.Description = dim
	t.Focused.SelectSelector = accent
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = fg
	t.Focused.FocusedButton = fg.Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = dim.Padding(0, 1)
	t.Focused.TextInput.Cursor = accent
	t.Focused.TextInput.Prompt = accent
	t.Focused.TextInput.Text = fg
	t.Focused.TextInput.Placeholder = dim

	t.Blurred.Title = dim
	t.Blurred.SelectSelector = dim
	t.Blurred.SelectedOption = dim
	t.Blurred.UnselectedOption = dim
	t.Blurred.TextInput.Prompt = dim
	t.Blurred.TextInput.Text = dim

	return t
}

// settingsDraft holds form field values; huh binds to its fields.
type settingsDraft struct {
	id string

	dateFormat string
	timeFormat string
	separator  string
	appendTime bool
	weekStart  string

	defaultAlias string
	linkStyle    string

	autosuggest bool
	toggleLink  bool
	trigger     string
}

func newSettingsDraft(s *domain.Settings) *settingsDraft {
	return &settingsDraft{
		id:           s.ID,
		dateFormat:   s.DateFormat,
		timeFormat:   s.TimeFormat,
		separator:    s.Separator,
		appendTime:   s.AppendTimeWhenRelated,
		weekStart:    s.WeekStart.String(),
		defaultAlias: s.DefaultAlias,
		linkStyle:    string(s.LinkStyle),
		autosuggest:  s.AutosuggestEnabled,
		toggleLink:   s.AutosuggestToggleLink,
		trigger:      s.TriggerPhrase,
	}
}

// settings converts the draft back, validating the enumerated fields.
func (d *settingsDraft) settings() (*domain.Settings, error) {
	ws, err := domain.ParseWeekStart(d.weekStart)
	if err != nil {
		return nil, err
	}
	style, err := domain.ParseLinkStyle(d.linkStyle)
	if err != nil {
		return nil, err
	}
	s := domain.Settings{
		ID:                    d.id,
		DateFormat:            strings.TrimSpace(d.dateFormat),
		TimeFormat:            strings.TrimSpace(d.timeFormat),
		Separator:             d.separator,
		AppendTimeWhenRelated: d.appendTime,
		WeekStart:             ws,
		DefaultAlias:          d.defaultAlias,
		LinkStyle:             style,
		AutosuggestEnabled:    d.autosuggest,
		AutosuggestToggleLink: d.toggleLink,
		TriggerPhrase:         d.trigger,
	}.Normalize()
	return &s, nil
}

func validatePattern(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("pattern is required")
	}
	return nil
}

func validateTrigger(s string) error {
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return fmt.Errorf("trigger must be non-empty and contain no whitespace")
	}
	return nil
}

func newSettingsForm(d *settingsDraft) *huh.Form {
	weekStarts := make([]huh.Option[string], 0, len(domain.ValidWeekStarts))
	for _, ws := range domain.ValidWeekStarts {
		weekStarts = append(weekStarts, huh.NewOption(string(ws), string(ws)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date format").
				Description("YYYY MM DD, MMMM Do, dddd ...").
				Placeholder(domain.DefaultDateFormat).
				Value(&d.dateFormat).
				Validate(validatePattern),
			huh.NewInput().
				Title("Time format").
				Placeholder(domain.DefaultTimeFormat).
				Value(&d.timeFormat).
				Validate(validatePattern),
			huh.NewInput().
				Title("Date/time separator").
				Value(&d.separator),
			huh.NewConfirm().
				Title("Append the time when the phrase mentions one?").
				Value(&d.appendTime),
			huh.NewSelect[string]().
				Title("Week starts on").
				Options(weekStarts...).
				Value(&d.weekStart),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Link style").
				Options(
					huh.NewOption("Wikilink  [[date]]", string(domain.LinkWikilink)),
					huh.NewOption("Markdown  [alias](date)", string(domain.LinkMarkdown)),
				).
				Value(&d.linkStyle),
			huh.NewInput().
				Title("Default alias").
				Description("Date pattern used as the link text, blank for none").
				Placeholder("optional").
				Value(&d.defaultAlias),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable autosuggest?").
				Value(&d.autosuggest),
			huh.NewConfirm().
				Title("Insert suggestions as links?").
				Value(&d.toggleLink),
			huh.NewInput().
				Title("Trigger phrase").
				Placeholder(domain.DefaultTriggerPhrase).
				Value(&d.trigger).
				Validate(validateTrigger),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}
