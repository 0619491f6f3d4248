package resolver

import "regexp"

var (
	timeKeywords  = regexp.MustCompile(`(?i)\b(?:at|now|in|ago)\b`)
	clockTime     = regexp.MustCompile(`\b\d{1,2}(?::\d{2})?(?:\s*(?:am|pm|AM|PM))\b|\b\d{1,2}:\d{2}\b`)
	calendarUnits = regexp.MustCompile(`(?i)\b(?:days?|weeks?|months?|years?)\b`)
)

// ImpliesTime reports whether a rendered date for phrase should also carry
// the time of day. Trigger words (at, now, in, ago) or a clock time turn it
// on; any calendar unit word turns it back off, so "in 3 days" and
// "3 days at noon" stay date-only.
func ImpliesTime(phrase string) bool {
	if !timeKeywords.MatchString(phrase) && !clockTime.MatchString(phrase) {
		return false
	}
	return !calendarUnits.MatchString(phrase)
}
