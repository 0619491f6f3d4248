// Package locale supplies the week-start day and weekday names used when a
// user leaves the week start at "locale-default".
package locale

import (
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/nldates/internal/datefmt"
	"golang.org/x/text/language"
)

// Provider reports locale-dependent calendar conventions.
type Provider interface {
	WeekStart() time.Weekday
	Weekdays() []string
}

// Fixed is a Provider with a constant week start.
type Fixed time.Weekday

func (f Fixed) WeekStart() time.Weekday { return time.Weekday(f) }
func (f Fixed) Weekdays() []string      { return datefmt.WeekdayNames() }

// sundayRegions and saturdayRegions follow the CLDR firstDay data; every
// other region starts on Monday.
var sundayRegions = map[string]bool{
	"AG": true, "AS": true, "BD": true, "BR": true, "BS": true, "BT": true,
	"BW": true, "BZ": true, "CA": true, "CN": true, "CO": true, "DM": true,
	"DO": true, "ET": true, "GT": true, "GU": true, "HK": true, "HN": true,
	"ID": true, "IL": true, "IN": true, "JM": true, "JP": true, "KE": true,
	"KH": true, "KR": true, "LA": true, "MH": true, "MM": true, "MO": true,
	"MT": true, "MX": true, "MZ": true, "NI": true, "NP": true, "PA": true,
	"PE": true, "PH": true, "PK": true, "PR": true, "PT": true, "PY": true,
	"SA": true, "SG": true, "SV": true, "TH": true, "TT": true, "TW": true,
	"UM": true, "US": true, "VE": true, "VI": true, "WS": true, "YE": true,
	"ZA": true, "ZW": true,
}

var saturdayRegions = map[string]bool{
	"AE": true, "AF": true, "BH": true, "DJ": true, "DZ": true, "EG": true,
	"IQ": true, "IR": true, "JO": true, "KW": true, "LY": true, "OM": true,
	"QA": true, "SD": true, "SY": true,
}

// WeekStartForTag returns the first day of the week for a BCP 47 tag. Tags
// without an explicit region use the most likely region for the language.
func WeekStartForTag(tag language.Tag) time.Weekday {
	region, _ := tag.Region()
	code := region.String()
	switch {
	case sundayRegions[code]:
		return time.Sunday
	case saturdayRegions[code]:
		return time.Saturday
	default:
		return time.Monday
	}
}

// EnvProvider derives the locale from LC_ALL, LC_TIME or LANG.
type EnvProvider struct {
	lookup func(string) string
}

// NewEnvProvider reads the process environment.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{lookup: os.Getenv}
}

// NewEnvProviderFrom reads variables through lookup; used by tests.
func NewEnvProviderFrom(lookup func(string) string) *EnvProvider {
	return &EnvProvider{lookup: lookup}
}

// Tag returns the parsed locale. "C", "POSIX" and unparseable values fall
// back to en-US.
func (p *EnvProvider) Tag() language.Tag {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		raw := p.lookup(name)
		if raw == "" {
			continue
		}
		if tag, ok := parsePOSIX(raw); ok {
			return tag
		}
		break
	}
	return language.AmericanEnglish
}

func (p *EnvProvider) WeekStart() time.Weekday {
	return WeekStartForTag(p.Tag())
}

// Weekdays returns English names; localized names are out of scope.
func (p *EnvProvider) Weekdays() []string {
	return datefmt.WeekdayNames()
}

// parsePOSIX turns "de_AT.UTF-8@euro" into the tag de-AT.
func parsePOSIX(raw string) (language.Tag, bool) {
	s := raw
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Tag{}, false
	}
	return tag, true
}
