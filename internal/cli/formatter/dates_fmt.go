package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/nldates/internal/domain"
)

// FormatMoment renders the detailed view of one parsed phrase.
func FormatMoment(phrase string, m domain.ParsedMoment, mode domain.ParseMode, text string) string {
	var b strings.Builder
	b.WriteString(Dim("Phrase  ") + Literal(phrase) + "\n")
	if !m.Valid {
		b.WriteString(Dim("Result  ") + StyleRed.Render(domain.InvalidDate))
		return RenderBox("parse", b.String())
	}
	b.WriteString(Dim("Date    ") + StyleGreen.Render(m.Formatted) + "\n")
	b.WriteString(Dim("ISO     ") + m.Time.Format(time.RFC3339) + "\n")
	b.WriteString(Dim("Mode    ") + ModeBadge(mode) + "\n")
	b.WriteString(Dim("Output  ") + Bold(text))
	return RenderBox("parse", b.String())
}

// FormatSuggestions renders suggestions as a numbered list, one per line.
func FormatSuggestions(s []domain.Suggestion) string {
	if len(s) == 0 {
		return Dim("No suggestions.") + "\n"
	}
	var b strings.Builder
	width := len(fmt.Sprint(len(s)))
	for i, v := range s {
		fmt.Fprintf(&b, "%s  %s\n", Dim(fmt.Sprintf("%*d", width, i+1)), v.Label)
	}
	return b.String()
}

// SuggestionList renders the picker's list with the selected row marked.
func SuggestionList(labels []string, selected int) string {
	var b strings.Builder
	for i, l := range labels {
		if i == selected {
			b.WriteString(StyleHeader.Render("▸ ") + StyleBold.Render(l))
		} else {
			b.WriteString("  " + StyleFg.Render(l))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSettings renders every setting as a key/value table. keys fixes the
// row order.
func FormatSettings(s *domain.Settings, keys []string) string {
	values := map[string]string{
		"date-format":   Literal(s.DateFormat),
		"time-format":   Literal(s.TimeFormat),
		"separator":     Literal(s.Separator),
		"append-time":   OnOff(s.AppendTimeWhenRelated),
		"week-start":    s.WeekStart.String(),
		"default-alias": Literal(s.DefaultAlias),
		"link-style":    string(s.LinkStyle),
		"autosuggest":   OnOff(s.AutosuggestEnabled),
		"toggle-link":   OnOff(s.AutosuggestToggleLink),
		"trigger":       Literal(s.TriggerPhrase),
	}
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, values[k]})
	}
	return Header("Settings") + "\n" + RenderTable([]string{"KEY", "VALUE"}, rows)
}

// FormatHistory renders recent insertions newest first. Timestamps are
// relative to now.
func FormatHistory(entries []*domain.HistoryEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No history yet.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			TruncID(e.ID),
			HumanTimestamp(e.CreatedAt, now),
			ModeBadge(e.Mode),
			e.Phrase,
			e.Output,
		})
	}
	return Header("History") + "\n" + RenderTable([]string{"ID", "WHEN", "MODE", "PHRASE", "OUTPUT"}, rows)
}
