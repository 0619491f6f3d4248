// Package datefmt renders times with moment-style pattern strings
// ("YYYY-MM-DD", "dddd, MMMM Do", "h:mm A") through goment. Text inside
// square brackets is emitted literally.
package datefmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/nleeper/goment"

	"github.com/alexanderramin/nldates/internal/domain"
)

func init() {
	// goment fills its token tables on the first New; do it before any
	// goroutine can.
	_, _ = goment.New(time.Unix(0, 0).UTC())
}

// Format renders t with a moment-style pattern. The zero time renders as
// "Invalid date" whatever the pattern.
func Format(t time.Time, pattern string) string {
	if t.IsZero() {
		return domain.InvalidDate
	}
	g, err := goment.New(t)
	if err != nil {
		return domain.InvalidDate
	}
	return g.Format(renderLocalTokens(t, pattern))
}

// renderLocalTokens replaces the tokens goment does not render the moment
// way (SSS milliseconds, k and kk 1-24 hours) with bracketed literals.
func renderLocalTokens(t time.Time, pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		rest := pattern[i:]
		switch {
		case rest[0] == '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				b.WriteString(rest)
				return b.String()
			}
			b.WriteString(rest[:end+1])
			i += end + 1
		case strings.HasPrefix(rest, "SSS"):
			fmt.Fprintf(&b, "[%03d]", t.Nanosecond()/int(time.Millisecond))
			i += 3
		case strings.HasPrefix(rest, "kk"):
			fmt.Fprintf(&b, "[%02d]", hour24(t))
			i += 2
		case rest[0] == 'k':
			fmt.Fprintf(&b, "[%d]", hour24(t))
			i++
		default:
			b.WriteByte(rest[0])
			i++
		}
	}
	return b.String()
}

// WeekdayNames returns the English weekday names, Sunday first.
func WeekdayNames() []string {
	names := make([]string, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		names[d] = d.String()
	}
	return names
}

func hour24(t time.Time) int {
	if t.Hour() == 0 {
		return 24
	}
	return t.Hour()
}
