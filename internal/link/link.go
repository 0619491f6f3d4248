// Package link turns a rendered date into a note link.
package link

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/nldates/internal/datefmt"
	"github.com/alexanderramin/nldates/internal/domain"
)

// DateParser re-resolves a phrase when an alias pattern is configured.
type DateParser interface {
	ParseDate(phrase string) domain.ParsedMoment
}

var duplicateSlashes = regexp.MustCompile(`/{2,}`)

// Compose renders target as a wikilink or markdown link. alias may be empty.
// Markdown targets have their spaces encoded; the visible text keeps the
// target as written.
func Compose(target, alias string, style domain.LinkStyle) string {
	path := NormalizePath(target)
	if style == domain.LinkMarkdown {
		encoded := strings.ReplaceAll(path, " ", "%20")
		if alias != "" {
			return "[" + alias + "](" + encoded + ")"
		}
		return "[" + target + "](" + encoded + ")"
	}
	if alias != "" {
		return "[[" + path + "|" + alias + "]]"
	}
	return "[[" + path + "]]"
}

// NormalizePath cleans a vault path: backslashes become slashes, repeated
// slashes collapse, leading and trailing slashes go, and non-breaking spaces
// become plain spaces.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.ReplaceAll(p, "\u00a0", " ")
	p = strings.ReplaceAll(p, "\u202f", " ")
	p = duplicateSlashes.ReplaceAllString(p, "/")
	p = strings.Trim(p, "/")
	if p == "" {
		return "/"
	}
	return p
}

// Alias picks the visible text for a link to label. With useLabel the label
// is used as is. Otherwise a non-empty defaultAlias pattern formats the
// re-resolved label; if it no longer resolves there is no alias.
func Alias(label string, useLabel bool, defaultAlias string, parser DateParser) (string, bool) {
	if useLabel {
		return label, true
	}
	if defaultAlias == "" || parser == nil {
		return "", false
	}
	m := parser.ParseDate(label)
	if !m.Valid {
		return "", false
	}
	return datefmt.Format(m.Time, defaultAlias), true
}
