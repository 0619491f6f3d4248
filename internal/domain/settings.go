package domain

// Settings is the persisted user configuration. The resolver and formatter
// only ever read it; it changes through the settings surface.
type Settings struct {
	ID string

	DateFormat            string
	TimeFormat            string
	Separator             string
	AppendTimeWhenRelated bool
	WeekStart             WeekStart

	DefaultAlias string
	LinkStyle    LinkStyle

	AutosuggestEnabled    bool
	AutosuggestToggleLink bool
	TriggerPhrase         string
}

const (
	DefaultDateFormat    = "YYYY-MM-DD"
	DefaultTimeFormat    = "HH:mm"
	DefaultSeparator     = " "
	DefaultTriggerPhrase = "@"
)

// DefaultSettings returns the configuration used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		ID:                    "default",
		DateFormat:            DefaultDateFormat,
		TimeFormat:            DefaultTimeFormat,
		Separator:             DefaultSeparator,
		AppendTimeWhenRelated: true,
		WeekStart:             WeekStartLocale,
		LinkStyle:             LinkWikilink,
		AutosuggestEnabled:    true,
		AutosuggestToggleLink: true,
		TriggerPhrase:         DefaultTriggerPhrase,
	}
}

// Normalize fills blank fields with their defaults. Patterns and the
// separator are never stored empty.
func (s Settings) Normalize() Settings {
	s.ID = CoalesceStr(s.ID, "default")
	s.DateFormat = CoalesceStr(s.DateFormat, DefaultDateFormat)
	s.TimeFormat = CoalesceStr(s.TimeFormat, DefaultTimeFormat)
	s.Separator = CoalesceStr(s.Separator, DefaultSeparator)
	s.TriggerPhrase = CoalesceStr(s.TriggerPhrase, DefaultTriggerPhrase)
	if s.WeekStart == "" {
		s.WeekStart = WeekStartLocale
	}
	if s.LinkStyle == "" {
		s.LinkStyle = LinkWikilink
	}
	return s
}

// DateTimeFormat joins the date and time patterns with the separator.
func (s Settings) DateTimeFormat() string {
	return s.DateFormat + s.Separator + s.TimeFormat
}
