package cli

import (
	"strings"

	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/spf13/pflag"
)

// weekStartValue is a pflag.Value accepting weekday names and
// "locale-default".
type weekStartValue struct {
	value domain.WeekStart
	set   bool
}

var _ pflag.Value = (*weekStartValue)(nil)

func (v *weekStartValue) String() string {
	if !v.set {
		return ""
	}
	return v.value.String()
}

func (v *weekStartValue) Set(s string) error {
	ws, err := domain.ParseWeekStart(s)
	if err != nil {
		return err
	}
	v.value = ws
	v.set = true
	return nil
}

func (v *weekStartValue) Type() string { return "weekday" }

func weekStartNames() []string {
	names := make([]string, len(domain.ValidWeekStarts))
	for i, ws := range domain.ValidWeekStarts {
		names[i] = string(ws)
	}
	return names
}

func weekStartUsage() string {
	return "first day of the week (" + strings.Join(weekStartNames(), ", ") + ")"
}
