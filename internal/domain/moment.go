package domain

import "time"

// InvalidDate is the rendering of any moment that failed to resolve.
const InvalidDate = "Invalid date"

// ParsedMoment is the outcome of resolving a phrase. A moment with
// Valid == false must not be used as a date; its Time is the zero value.
type ParsedMoment struct {
	Valid     bool
	Time      time.Time
	Formatted string
	// TimeOnly marks moments resolved through the time: route.
	TimeOnly bool
}

// NewParsedMoment returns a valid date moment.
func NewParsedMoment(t time.Time, formatted string) ParsedMoment {
	return ParsedMoment{Valid: true, Time: t, Formatted: formatted}
}

// NewTimeMoment returns a valid moment produced by the time-only grammar.
func NewTimeMoment(t time.Time, formatted string) ParsedMoment {
	return ParsedMoment{Valid: true, Time: t, Formatted: formatted, TimeOnly: true}
}

// InvalidMoment returns the sentinel for an unparseable phrase.
func InvalidMoment() ParsedMoment {
	return ParsedMoment{Formatted: InvalidDate}
}

// Suggestion is one autocomplete candidate. Two suggestions are equal when
// their labels are equal.
type Suggestion struct {
	Label string
}

// Labels extracts the label text of each suggestion.
func Labels(s []Suggestion) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = v.Label
	}
	return out
}

// HistoryEntry records one inserted date.
type HistoryEntry struct {
	ID        string
	Phrase    string
	Output    string
	Mode      ParseMode
	CreatedAt time.Time
}
