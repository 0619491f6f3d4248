package suggest

import "strings"

// Trigger is an active completion range inside a line. Start and End are
// byte offsets; Query excludes the trigger phrase.
type Trigger struct {
	Start int
	End   int
	Query string
}

// ExtractQuery finds the completion range ending at cursor. It reports false
// when the trigger phrase is absent, when the trigger is glued to a
// preceding word character or backtick (an email address, inline code), or
// when the only thing typed after the trigger is a single space.
func ExtractQuery(line string, cursor int, trigger string) (Trigger, bool) {
	if trigger == "" || cursor < 0 || cursor > len(line) {
		return Trigger{}, false
	}
	start := strings.LastIndex(line[:cursor], trigger)
	if start < 0 {
		return Trigger{}, false
	}
	if start > 0 && isWordOrTick(line[start-1]) {
		return Trigger{}, false
	}
	query := line[start+len(trigger) : cursor]
	if query == " " || strings.Contains(query, "\n") {
		return Trigger{}, false
	}
	return Trigger{Start: start, End: cursor, Query: query}, true
}

func isWordOrTick(c byte) bool {
	switch {
	case c == '`':
		return true
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return false
}
