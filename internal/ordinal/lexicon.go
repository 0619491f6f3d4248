// Package ordinal maps ordinal words ("twenty-first") and numeric ordinals
// ("21st") to day-of-month integers, and builds the regexp alternation that
// recognizes them.
package ordinal

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// ErrNotOrdinal is returned by Parse when text is neither a known ordinal
// word nor digits with an optional ordinal suffix. Callers only hit it when
// they pass text that did not come from a Regexp match.
var ErrNotOrdinal = errors.New("not an ordinal")

// words holds both the spaced and hyphenated spelling of compound ordinals.
var words = map[string]int{
	"first":          1,
	"second":         2,
	"third":          3,
	"fourth":         4,
	"fifth":          5,
	"sixth":          6,
	"seventh":        7,
	"eighth":         8,
	"ninth":          9,
	"tenth":          10,
	"eleventh":       11,
	"twelfth":        12,
	"thirteenth":     13,
	"fourteenth":     14,
	"fifteenth":      15,
	"sixteenth":      16,
	"seventeenth":    17,
	"eighteenth":     18,
	"nineteenth":     19,
	"twentieth":      20,
	"twenty first":   21,
	"twenty-first":   21,
	"twenty second":  22,
	"twenty-second":  22,
	"twenty third":   23,
	"twenty-third":   23,
	"twenty fourth":  24,
	"twenty-fourth":  24,
	"twenty fifth":   25,
	"twenty-fifth":   25,
	"twenty sixth":   26,
	"twenty-sixth":   26,
	"twenty seventh": 27,
	"twenty-seventh": 27,
	"twenty eighth":  28,
	"twenty-eighth":  28,
	"twenty ninth":   29,
	"twenty-ninth":   29,
	"thirtieth":      30,
	"thirty first":   31,
	"thirty-first":   31,
}

var suffix = regexp.MustCompile(`(?i)(?:st|nd|rd|th)$`)

// MatchAnyPattern returns a non-capturing alternation over terms. Longer
// terms come first so "twenty-first" wins over "twenty"; ties are ordered
// lexically so the output is stable. Literal dots are escaped.
func MatchAnyPattern(terms []string) string {
	sorted := slices.Clone(terms)
	slices.SortFunc(sorted, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	joined := strings.ReplaceAll(strings.Join(sorted, "|"), ".", `\.`)
	return "(?:" + joined + ")"
}

// Words returns the keys of the ordinal word table.
func Words() []string {
	keys := make([]string, 0, len(words))
	for k := range words {
		keys = append(keys, k)
	}
	return keys
}

// Pattern is the ordinal alternation: any ordinal word, or one or two digits
// with an optional st/nd/rd/th suffix.
var Pattern = fmt.Sprintf(`(?:%s|[0-9]{1,2}(?:st|nd|rd|th)?)`, MatchAnyPattern(Words()))

// Regexp returns the case-insensitive compiled Pattern. It is built once.
var Regexp = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + Pattern)
})

// Parse converts matched ordinal text to its integer value.
func Parse(text string) (int, error) {
	num := strings.ToLower(strings.TrimSpace(text))
	if v, ok := words[num]; ok {
		return v, nil
	}
	num = suffix.ReplaceAllString(num, "")
	v, err := strconv.ParseInt(num, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotOrdinal, text)
	}
	return int(v), nil
}

var cardinals = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11,
	"twelve": 12, "fifteen": 15, "twenty": 20, "thirty": 30,
}

// CardinalPattern matches a count written as digits or a small number word.
var CardinalPattern = fmt.Sprintf(`(?:[+-]?\d+|%s)`, MatchAnyPattern(cardinalWords()))

func cardinalWords() []string {
	keys := make([]string, 0, len(cardinals))
	for k := range cardinals {
		keys = append(keys, k)
	}
	return keys
}

// Cardinal converts text matched by CardinalPattern into an integer.
func Cardinal(text string) (int, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if v, ok := cardinals[t]; ok {
		return v, true
	}
	v, err := strconv.Atoi(t)
	if err != nil {
		return 0, false
	}
	return v, true
}
