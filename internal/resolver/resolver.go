// Package resolver turns a phrase into a ParsedMoment. It never fails: any
// phrase the grammar cannot read comes back as domain.InvalidMoment().
package resolver

import (
	"regexp"
	"strings"
	"time"

	"github.com/alexanderramin/nldates/internal/datefmt"
	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/alexanderramin/nldates/internal/grammar"
	"github.com/alexanderramin/nldates/internal/locale"
)

// TimeMarker prefixes phrases that should be read as a time of day only.
const TimeMarker = "time:"

const (
	DefaultDatePattern = domain.DefaultDateFormat
	DefaultTimePattern = domain.DefaultTimeFormat
)

var (
	weekPeriod = regexp.MustCompile(`(?i)^(this|next)\s+week$`)
	lastDayOf  = regexp.MustCompile(`(?i)^(?:the\s+)?(?:last\s+day\s+of|end\s+of)\s*(.*)$`)
	midOf      = regexp.MustCompile(`(?i)^mid(?:dle\s+of)?[\s-]+(.+)$`)
)

// Resolver resolves phrases against a reference clock.
type Resolver struct {
	dates  grammar.Grammar
	times  grammar.Grammar
	locale locale.Provider
	now    func() time.Time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock pins the reference instant.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// WithLocale sets the provider consulted for locale-default week starts.
func WithLocale(p locale.Provider) Option {
	return func(r *Resolver) { r.locale = p }
}

// WithGrammars replaces the date and time grammars.
func WithGrammars(dates, times grammar.Grammar) Option {
	return func(r *Resolver) {
		r.dates = dates
		r.times = times
	}
}

// New returns a Resolver using the default grammars, the process locale and
// the wall clock unless overridden.
func New(opts ...Option) *Resolver {
	r := &Resolver{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	if r.dates == nil {
		r.dates = grammar.NewDateGrammar()
	}
	if r.times == nil {
		r.times = grammar.NewTimeGrammar()
	}
	if r.locale == nil {
		r.locale = locale.NewEnvProvider()
	}
	return r
}

// Now returns the reference instant.
func (r *Resolver) Now() time.Time {
	return r.now()
}

// Resolve parses phrase and renders it with the default pattern for its
// shape: time only, date and time, or date.
func (r *Resolver) Resolve(phrase string, ws domain.WeekStart) domain.ParsedMoment {
	pattern := DefaultDatePattern
	switch {
	case IsTimeExpression(phrase):
		pattern = DefaultTimePattern
	case ImpliesTime(phrase):
		pattern = DefaultDatePattern + " " + DefaultTimePattern
	}
	return r.ResolveFormat(phrase, ws, pattern)
}

// ResolveFormat parses phrase and renders it with pattern.
func (r *Resolver) ResolveFormat(phrase string, ws domain.WeekStart, pattern string) domain.ParsedMoment {
	t, timeOnly, ok := r.ParsedDate(phrase, ws)
	if !ok {
		return domain.InvalidMoment()
	}
	formatted := datefmt.Format(t, pattern)
	if timeOnly {
		return domain.NewTimeMoment(t, formatted)
	}
	return domain.NewParsedMoment(t, formatted)
}

// ParsedDate is the raw resolution step. timeOnly reports that the phrase
// went through the time: route. A grammar that panics yields ok == false.
func (r *Resolver) ParsedDate(phrase string, ws domain.WeekStart) (t time.Time, timeOnly, ok bool) {
	defer func() {
		if recover() != nil {
			t, timeOnly, ok = time.Time{}, false, false
		}
	}()

	text := strings.TrimSpace(phrase)
	if text == "" {
		return time.Time{}, false, false
	}
	ref := r.now()
	opts := grammar.Options{WeekStart: r.WeekStart(ws)}

	if rest, found := cutTimeMarker(text); found {
		c, ok := r.times.Parse(rest, ref, opts)
		return c.Time, true, ok
	}

	if m := weekPeriod.FindStringSubmatch(text); m != nil {
		text = strings.ToLower(m[1]) + " " + strings.ToLower(opts.WeekStart.String())
	}
	if m := lastDayOf.FindStringSubmatch(text); m != nil {
		t, ok := r.lastDayOf(m[1], ref, opts)
		return t, false, ok
	}
	if m := midOf.FindStringSubmatch(text); m != nil {
		opts.ForwardDate = true
		c, ok := r.dates.Parse(m[1], ref, opts)
		if !ok {
			return time.Time{}, false, false
		}
		return time.Date(c.Time.Year(), c.Time.Month(), 15, c.Time.Hour(), c.Time.Minute(), 0, 0, c.Time.Location()), false, true
	}

	c, ok := r.dates.Parse(text, ref, opts)
	return c.Time, false, ok
}

// WeekStart resolves the convention to a weekday, asking the locale for
// locale-default.
func (r *Resolver) WeekStart(ws domain.WeekStart) time.Weekday {
	if d, ok := ws.Weekday(); ok {
		return d
	}
	return r.locale.WeekStart()
}

// lastDayOf handles "last day of <x>" and "end of <x>". A bare or missing
// target means the current month; a year target means December 31st.
func (r *Resolver) lastDayOf(target string, ref time.Time, opts grammar.Options) (time.Time, bool) {
	target = strings.ToLower(strings.TrimSpace(target))
	switch target {
	case "", "month", "the month":
		target = "this month"
	case "year", "the year":
		target = "this year"
	}
	c, ok := r.dates.Parse(target, ref, opts)
	if !ok {
		return time.Time{}, false
	}
	t := c.Time
	if strings.HasSuffix(target, "year") {
		return time.Date(t.Year(), time.December, 31, t.Hour(), t.Minute(), 0, 0, t.Location()), true
	}
	return time.Date(t.Year(), t.Month(), grammar.DaysIn(t.Year(), t.Month()), t.Hour(), t.Minute(), 0, 0, t.Location()), true
}

// IsTimeExpression reports whether phrase carries the time: marker.
func IsTimeExpression(phrase string) bool {
	_, ok := cutTimeMarker(strings.TrimSpace(phrase))
	return ok
}

func cutTimeMarker(text string) (string, bool) {
	if len(text) < len(TimeMarker) || !strings.EqualFold(text[:len(TimeMarker)], TimeMarker) {
		return text, false
	}
	return strings.TrimSpace(text[len(TimeMarker):]), true
}
