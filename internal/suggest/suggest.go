// Package suggest predicts date phrases from partial input.
package suggest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/nldates/internal/domain"
)

// DefaultLabels is offered when the query matches no grammar.
var DefaultLabels = []string{"Now", "Today", "Yesterday", "Tomorrow", "In 1 hour", "1 hour ago"}

// DailyNoteLabels is the short list offered when picking a daily note.
var DailyNoteLabels = []string{"Today", "Yesterday", "Tomorrow"}

var (
	timeOffsets    = []string{"now", "+15 minutes", "+1 hour", "-15 minutes", "-1 hour"}
	referenceUnits = []string{
		"week", "month", "year",
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}

	timePrefix    = regexp.MustCompile(`^time`)
	referenceWord = regexp.MustCompile(`(?i)(next|last|this)`)
	inOffset      = regexp.MustCompile(`(?i)^in ([+-]?\d+)`)
	numericOffset = regexp.MustCompile(`^([+-]?\d+)`)
)

// Suggest returns the candidates for query, in grammar order. The first
// grammar the query matches is the only one consulted, even if its filtered
// list ends up empty. A nil or empty defaults means DefaultLabels.
func Suggest(query string, defaults []string) []domain.Suggestion {
	if len(defaults) == 0 {
		defaults = DefaultLabels
	}
	return toSuggestions(filterSuggestions(candidates(query, defaults), query))
}

// WithFallback is Suggest that never returns an empty list: the raw query
// becomes the only candidate instead.
func WithFallback(query string, defaults []string) []domain.Suggestion {
	if s := Suggest(query, defaults); len(s) > 0 {
		return s
	}
	return []domain.Suggestion{{Label: query}}
}

func candidates(query string, defaults []string) []string {
	if timePrefix.MatchString(query) {
		out := make([]string, len(timeOffsets))
		for i, v := range timeOffsets {
			out[i] = "time:" + v
		}
		return out
	}

	if m := referenceWord.FindStringSubmatch(query); m != nil {
		out := make([]string, len(referenceUnits))
		for i, v := range referenceUnits {
			out[i] = m[1] + " " + v
		}
		return out
	}

	m := inOffset.FindStringSubmatch(query)
	if m == nil {
		m = numericOffset.FindStringSubmatch(query)
	}
	if m != nil {
		n := m[1]
		return []string{
			fmt.Sprintf("in %s minutes", n),
			fmt.Sprintf("in %s hours", n),
			fmt.Sprintf("in %s days", n),
			fmt.Sprintf("in %s weeks", n),
			fmt.Sprintf("in %s months", n),
			fmt.Sprintf("%s days ago", n),
			fmt.Sprintf("%s weeks ago", n),
			fmt.Sprintf("%s months ago", n),
		}
	}

	return defaults
}

// filterSuggestions returns items from pool that start with prefix,
// case-insensitively. A leading "in " on an item is optional, so "3" keeps
// "in 3 days" as well as "3 days ago".
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		ls := strings.ToLower(s)
		if strings.HasPrefix(ls, lp) || strings.HasPrefix(strings.TrimPrefix(ls, "in "), lp) {
			result = append(result, s)
		}
	}
	return result
}

func toSuggestions(labels []string) []domain.Suggestion {
	if len(labels) == 0 {
		return nil
	}
	out := make([]domain.Suggestion, 0, len(labels))
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, domain.Suggestion{Label: l})
	}
	return out
}
