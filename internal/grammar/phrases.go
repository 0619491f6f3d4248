package grammar

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/nldates/internal/ordinal"
)

// impliedHour is the clock given to named and absolute dates that carry no
// time of day.
const impliedHour = 12

// maxCount bounds offset counts so week and year arithmetic cannot wrap.
const maxCount = math.MaxInt32

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tues": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thurs": time.Thursday, "thur": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var (
	weekdayPattern = ordinal.MatchAnyPattern(keysOf(weekdays))
	monthPattern   = ordinal.MatchAnyPattern(keysOf(months))
	unitPattern    = `(minutes?|mins?|hours?|hrs?|days?|weeks?|months?|years?)`
	clockPattern   = `(?:(\d{1,2})(?::(\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)|(\d{1,2}):(\d{2})|(noon|midday|midnight))`
	ordinalCapture = `(?:the )?(` + ordinal.Pattern + `)`
)

// timeSuffix splits "<date> [at] <clock>" and a bare "<clock>".
var timeSuffix = regexp.MustCompile(`^(?:(.*?)\s+)?(?:at\s+)?` + clockPattern + `$`)

type applyFunc func(m []string, ref time.Time, opts Options) (time.Time, bool)

type rule struct {
	re    *regexp.Regexp
	apply applyFunc
}

func newRule(pattern string, apply applyFunc) rule {
	return rule{re: regexp.MustCompile(`^(?:` + pattern + `)$`), apply: apply}
}

// Phrases is a table of anchored English phrase rules. A phrase must match a
// rule in full, optionally followed by a time of day; anything else is left
// to the next grammar in the chain.
type Phrases struct {
	rules     []rule
	allowDate bool
}

// NewPhrases returns the date-capable phrase table.
func NewPhrases() *Phrases {
	return &Phrases{rules: append(relativeRules(), dateRules()...), allowDate: true}
}

// NewClockPhrases returns the table used for time: expressions: now,
// minute/hour offsets and bare times of day.
func NewClockPhrases() *Phrases {
	return &Phrases{rules: relativeRules()}
}

func (p *Phrases) Parse(text string, ref time.Time, opts Options) (Candidate, bool) {
	s := normalize(text)
	if s == "" {
		return Candidate{}, false
	}
	if t, ok := p.match(s, ref, opts); ok {
		return Candidate{Time: t, Text: s}, true
	}

	m := timeSuffix.FindStringSubmatch(s)
	if m == nil {
		return Candidate{}, false
	}
	hour, minute, ok := parseClock(m[2:])
	if !ok {
		return Candidate{}, false
	}
	day := ref
	if datePart := strings.TrimSpace(m[1]); datePart != "" && datePart != "at" {
		if !p.allowDate {
			return Candidate{}, false
		}
		d, ok := p.match(datePart, ref, opts)
		if !ok {
			return Candidate{}, false
		}
		day = d
	}
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, ref.Location())
	return Candidate{Time: t, Text: s}, true
}

// Claims reports whether text has the shape of one of the table's phrases,
// even when the rule rejected it (February 30th, 13pm, an offset too large
// for the clock).
func (p *Phrases) Claims(text string) bool {
	s := normalize(text)
	if s == "" {
		return false
	}
	if p.matchesShape(s) {
		return true
	}
	m := timeSuffix.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	datePart := strings.TrimSpace(m[1])
	if datePart == "" || datePart == "at" {
		return true
	}
	return p.allowDate && p.matchesShape(datePart)
}

func (p *Phrases) matchesShape(s string) bool {
	for _, r := range p.rules {
		if r.re.MatchString(s) {
			return true
		}
	}
	return false
}

func (p *Phrases) match(s string, ref time.Time, opts Options) (time.Time, bool) {
	for _, r := range p.rules {
		m := r.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		if t, ok := r.apply(m, ref, opts); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// relativeRules cover offsets from the reference instant. They keep the
// reference clock.
func relativeRules() []rule {
	return []rule{
		newRule(`(?:right )?now`, func(_ []string, ref time.Time, _ Options) (time.Time, bool) {
			return ref, true
		}),
		newRule(`in (`+ordinal.CardinalPattern+`) `+unitPattern, func(m []string, ref time.Time, _ Options) (time.Time, bool) {
			return offset(ref, m[1], m[2], 1)
		}),
		newRule(`(`+ordinal.CardinalPattern+`) `+unitPattern+` ago`, func(m []string, ref time.Time, _ Options) (time.Time, bool) {
			return offset(ref, m[1], m[2], -1)
		}),
		newRule(`(`+ordinal.CardinalPattern+`) `+unitPattern+` from now`, func(m []string, ref time.Time, _ Options) (time.Time, bool) {
			return offset(ref, m[1], m[2], 1)
		}),
		newRule(`([+-]\d+) ?`+unitPattern, func(m []string, ref time.Time, _ Options) (time.Time, bool) {
			return offset(ref, m[1], m[2], 1)
		}),
	}
}

func dateRules() []rule {
	return []rule{
		newRule(`today|tonight`, casual(0)),
		newRule(`tomorrow|tmr`, casual(1)),
		newRule(`yesterday`, casual(-1)),
		newRule(`(?:the )?day after tomorrow`, casual(2)),
		newRule(`(?:the )?day before yesterday`, casual(-2)),
		newRule(`(\d{4})[-/](\d{1,2})[-/](\d{1,2})`, func(m []string, ref time.Time, _ Options) (time.Time, bool) {
			y, _ := strconv.Atoi(m[1])
			mo, _ := strconv.Atoi(m[2])
			d, _ := strconv.Atoi(m[3])
			return calendarDate(y, time.Month(mo), d, ref.Location())
		}),
		newRule(`(?:(this|next|last|past|previous) )?(`+weekdayPattern+`)`, func(m []string, ref time.Time, opts Options) (time.Time, bool) {
			return weekdayAnchor(ref, weekdays[m[2]], m[1], opts), true
		}),
		newRule(`(this|next|last|past|previous) (week|month|year)`, func(m []string, ref time.Time, opts Options) (time.Time, bool) {
			return unitAnchor(ref, m[2], modifierShift(m[1]), opts.WeekStart), true
		}),
		newRule(`(`+monthPattern+`) `+ordinalCapture+`(?:,? (\d{4}))?`, func(m []string, ref time.Time, opts Options) (time.Time, bool) {
			return monthDay(ref, m[1], m[2], m[3], opts)
		}),
		newRule(ordinalCapture+`(?: of)? (`+monthPattern+`)(?:,? (\d{4}))?`, func(m []string, ref time.Time, opts Options) (time.Time, bool) {
			return monthDay(ref, m[2], m[1], m[3], opts)
		}),
		newRule(`(`+monthPattern+`)(?: (\d{4}))?`, func(m []string, ref time.Time, opts Options) (time.Time, bool) {
			return monthDay(ref, m[1], "1", m[2], opts)
		}),
		newRule(ordinalCapture, func(m []string, ref time.Time, _ Options) (time.Time, bool) {
			day, err := ordinal.Parse(m[1])
			if err != nil {
				return time.Time{}, false
			}
			return calendarDate(ref.Year(), ref.Month(), day, ref.Location())
		}),
		newRule(`christmas(?: day)?|xmas`, func(_ []string, ref time.Time, _ Options) (time.Time, bool) {
			return calendarDate(ref.Year(), time.December, 25, ref.Location())
		}),
	}
}

func casual(days int) applyFunc {
	return func(_ []string, ref time.Time, _ Options) (time.Time, bool) {
		return ref.AddDate(0, 0, days), true
	}
}

func offset(ref time.Time, count, unit string, sign int) (time.Time, bool) {
	n, ok := ordinal.Cardinal(count)
	if !ok || n > maxCount || n < -maxCount {
		return time.Time{}, false
	}
	n *= sign
	switch strings.TrimSuffix(unit, "s") {
	case "minute", "min":
		return addDuration(ref, n, time.Minute)
	case "hour", "hr":
		return addDuration(ref, n, time.Hour)
	case "day":
		return ref.AddDate(0, 0, n), true
	case "week":
		return ref.AddDate(0, 0, 7*n), true
	case "month":
		return addMonths(ref, n), true
	case "year":
		return addMonths(ref, 12*n), true
	}
	return time.Time{}, false
}

// addDuration adds n units to ref, failing when n*unit does not fit in a
// time.Duration.
func addDuration(ref time.Time, n int, unit time.Duration) (time.Time, bool) {
	limit := math.MaxInt64 / int64(unit)
	if int64(n) > limit || int64(n) < -limit {
		return time.Time{}, false
	}
	return ref.Add(time.Duration(n) * unit), true
}

// addMonths moves by whole months, clamping the day to the target month's
// length (Jan 31 + 1 month = Feb 28/29).
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := min(t.Day(), DaysIn(first.Year(), first.Month()))
	return first.AddDate(0, 0, day-1)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func modifierShift(modifier string) int {
	switch modifier {
	case "next":
		return 1
	case "last", "past", "previous":
		return -1
	}
	return 0
}

// StartOfWeek returns midnight of the first day of t's week.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return dayStart(t).AddDate(0, 0, -back)
}

// weekdayAnchor resolves "[this|next|last] <weekday>". Modified forms are
// positions inside the current, next or previous week. A bare weekday is the
// closest such day, or the next one on or after today when ForwardDate is set.
func weekdayAnchor(ref time.Time, day time.Weekday, modifier string, opts Options) time.Time {
	if modifier == "" {
		diff := int(day) - int(ref.Weekday())
		if opts.ForwardDate {
			diff = (diff + 7) % 7
		} else {
			if abs(diff-7) < abs(diff) {
				diff -= 7
			}
			if abs(diff+7) < abs(diff) {
				diff += 7
			}
		}
		return atImpliedHour(ref.AddDate(0, 0, diff))
	}
	start := StartOfWeek(ref, opts.WeekStart)
	pos := (int(day) - int(opts.WeekStart) + 7) % 7
	return atImpliedHour(start.AddDate(0, 0, pos+7*modifierShift(modifier)))
}

// unitAnchor resolves "this/next/last week|month|year" to the first day of
// that period.
func unitAnchor(ref time.Time, unit string, shift int, weekStart time.Weekday) time.Time {
	switch unit {
	case "week":
		return atImpliedHour(StartOfWeek(ref, weekStart).AddDate(0, 0, 7*shift))
	case "month":
		return atImpliedHour(time.Date(ref.Year(), ref.Month()+time.Month(shift), 1, 0, 0, 0, 0, ref.Location()))
	default:
		return atImpliedHour(time.Date(ref.Year()+shift, time.January, 1, 0, 0, 0, 0, ref.Location()))
	}
}

func monthDay(ref time.Time, monthName, dayText, yearText string, opts Options) (time.Time, bool) {
	month, ok := months[monthName]
	if !ok {
		return time.Time{}, false
	}
	day, err := ordinal.Parse(dayText)
	if err != nil {
		return time.Time{}, false
	}
	year := ref.Year()
	if yearText != "" {
		year, _ = strconv.Atoi(yearText)
	}
	t, ok := calendarDate(year, month, day, ref.Location())
	if ok && yearText == "" && opts.ForwardDate && t.Before(dayStart(ref)) {
		return calendarDate(year+1, month, day, ref.Location())
	}
	return t, ok
}

// calendarDate builds a date at the implied hour, rejecting days that do not
// exist in the month.
func calendarDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > DaysIn(year, month) {
		return time.Time{}, false
	}
	return time.Date(year, month, day, impliedHour, 0, 0, 0, loc), true
}

// parseClock reads the capture groups of clockPattern.
func parseClock(g []string) (hour, minute int, ok bool) {
	switch {
	case g[0] != "":
		hour, _ = strconv.Atoi(g[0])
		if g[1] != "" {
			minute, _ = strconv.Atoi(g[1])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, false
		}
		hour %= 12
		if strings.HasPrefix(g[2], "p") {
			hour += 12
		}
	case g[3] != "":
		hour, _ = strconv.Atoi(g[3])
		minute, _ = strconv.Atoi(g[4])
		if hour > 23 || minute > 59 {
			return 0, 0, false
		}
	case g[5] == "midnight":
		hour = 0
	default:
		hour = 12
	}
	return hour, minute, true
}

func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func atImpliedHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), impliedHour, 0, 0, 0, t.Location())
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func keysOf[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
