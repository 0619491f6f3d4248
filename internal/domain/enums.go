package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownWeekStart is returned when a week-start name is not recognized.
var ErrUnknownWeekStart = errors.New("unknown week start")

// WeekStart names the weekday treated as day zero of a week. The zero value
// is WeekStartLocale, which defers to the locale provider.
type WeekStart string

const (
	WeekStartLocale    WeekStart = "locale-default"
	WeekStartSunday    WeekStart = "sunday"
	WeekStartMonday    WeekStart = "monday"
	WeekStartTuesday   WeekStart = "tuesday"
	WeekStartWednesday WeekStart = "wednesday"
	WeekStartThursday  WeekStart = "thursday"
	WeekStartFriday    WeekStart = "friday"
	WeekStartSaturday  WeekStart = "saturday"
)

// weekStartDays is indexed by time.Weekday.
var weekStartDays = [7]WeekStart{
	WeekStartSunday,
	WeekStartMonday,
	WeekStartTuesday,
	WeekStartWednesday,
	WeekStartThursday,
	WeekStartFriday,
	WeekStartSaturday,
}

// ValidWeekStarts lists every accepted week-start value, locale default first.
var ValidWeekStarts = []WeekStart{
	WeekStartLocale,
	WeekStartSunday, WeekStartMonday, WeekStartTuesday, WeekStartWednesday,
	WeekStartThursday, WeekStartFriday, WeekStartSaturday,
}

// ParseWeekStart accepts a weekday name (any case) or "locale-default".
// An empty string is the locale default.
func ParseWeekStart(s string) (WeekStart, error) {
	v := WeekStart(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return WeekStartLocale, nil
	}
	for _, ws := range ValidWeekStarts {
		if v == ws {
			return ws, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeekStart, s)
}

// Weekday returns the concrete weekday. ok is false for the locale default.
func (w WeekStart) Weekday() (time.Weekday, bool) {
	for i, ws := range weekStartDays {
		if ws == w {
			return time.Weekday(i), true
		}
	}
	return time.Sunday, false
}

// WeekStartFromWeekday converts a time.Weekday into its WeekStart name.
func WeekStartFromWeekday(d time.Weekday) WeekStart {
	return weekStartDays[int(d)%7]
}

func (w WeekStart) String() string {
	if w == "" {
		return string(WeekStartLocale)
	}
	return string(w)
}

// LinkStyle selects between the two link syntaxes.
type LinkStyle string

const (
	LinkWikilink LinkStyle = "wikilink"
	LinkMarkdown LinkStyle = "markdown"
)

// ParseLinkStyle accepts "wikilink" or "markdown" (any case).
func ParseLinkStyle(s string) (LinkStyle, error) {
	switch LinkStyle(strings.ToLower(strings.TrimSpace(s))) {
	case LinkWikilink, "":
		return LinkWikilink, nil
	case LinkMarkdown:
		return LinkMarkdown, nil
	}
	return "", fmt.Errorf("unknown link style %q (want wikilink or markdown)", s)
}

// ParseMode is how a parsed phrase is rendered back into the document.
type ParseMode string

const (
	ModeReplace ParseMode = "replace" // [[date]]
	ModeLink    ParseMode = "link"    // [phrase](date)
	ModeClean   ParseMode = "clean"   // date
	ModeTime    ParseMode = "time"    // time only
)

// ValidParseModes is the canonical set of accepted parse mode strings.
var ValidParseModes = map[string]bool{
	"replace": true, "link": true, "clean": true, "time": true,
}

// ValidateParseMode accepts one of the four parse modes (any case).
func ValidateParseMode(s string) (ParseMode, error) {
	m := strings.ToLower(strings.TrimSpace(s))
	if !ValidParseModes[m] {
		return "", fmt.Errorf("%w: %q (want replace, link, clean or time)", ErrUnknownParseMode, s)
	}
	return ParseMode(m), nil
}
