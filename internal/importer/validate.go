package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nldates/internal/domain"
)

// ValidatePluginSettings checks every present field and returns all
// problems found.
func ValidatePluginSettings(p *PluginSettings) []error {
	var errs []error

	if p.WeekStart != nil {
		if _, err := domain.ParseWeekStart(*p.WeekStart); err != nil {
			errs = append(errs, fmt.Errorf("weekStart: %w", err))
		}
	}
	if p.Format != nil && strings.TrimSpace(*p.Format) == "" {
		errs = append(errs, fmt.Errorf("format must not be blank"))
	}
	if p.TimeFormat != nil && strings.TrimSpace(*p.TimeFormat) == "" {
		errs = append(errs, fmt.Errorf("timeFormat must not be blank"))
	}
	if p.AutocompleteTriggerPhrase != nil {
		if t := strings.TrimSpace(*p.AutocompleteTriggerPhrase); t == "" || strings.ContainsAny(t, " \t\n") {
			errs = append(errs, fmt.Errorf("autocompleteTriggerPhrase %q must be a non-empty word", *p.AutocompleteTriggerPhrase))
		}
	}

	return errs
}
