package importer

import (
	"strings"

	"github.com/AlekSi/pointer"
	"github.com/alexanderramin/nldates/internal/domain"
)

// Apply overlays the present fields of p onto base. Call
// ValidatePluginSettings first; Apply assumes p is valid.
func Apply(p *PluginSettings, base domain.Settings) domain.Settings {
	s := base
	setBool(&s.AutosuggestToggleLink, p.AutosuggestToggleLink)
	setBool(&s.AutosuggestEnabled, p.IsAutosuggestEnabled)
	setBool(&s.AppendTimeWhenRelated, p.AppendTimeToDateWhenRelated)
	setString(&s.DateFormat, p.Format)
	setString(&s.TimeFormat, p.TimeFormat)
	setString(&s.Separator, p.Separator)
	if p.AutocompleteTriggerPhrase != nil {
		// The plugin trims the trigger when it is edited.
		s.TriggerPhrase = strings.TrimSpace(*p.AutocompleteTriggerPhrase)
	}
	if p.WeekStart != nil {
		if ws, err := domain.ParseWeekStart(*p.WeekStart); err == nil {
			s.WeekStart = ws
		}
	}
	return s.Normalize()
}

// FromSettings builds a complete data.json for s. Modal fields get the
// plugin's defaults.
func FromSettings(s domain.Settings) *PluginSettings {
	s = s.Normalize()
	return &PluginSettings{
		AutosuggestToggleLink:       pointer.ToBool(s.AutosuggestToggleLink),
		AutocompleteTriggerPhrase:   pointer.ToString(s.TriggerPhrase),
		IsAutosuggestEnabled:        pointer.ToBool(s.AutosuggestEnabled),
		AppendTimeToDateWhenRelated: pointer.ToBool(s.AppendTimeWhenRelated),
		Format:                      pointer.ToString(s.DateFormat),
		TimeFormat:                  pointer.ToString(s.TimeFormat),
		Separator:                   pointer.ToString(s.Separator),
		WeekStart:                   pointer.ToString(s.WeekStart.String()),
		ModalToggleTime:             pointer.ToBool(false),
		ModalToggleLink:             pointer.ToBool(false),
		ModalMomentFormat:           pointer.ToString("YYYY-MM-DD HH:mm"),
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
