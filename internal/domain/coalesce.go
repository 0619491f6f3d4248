package domain

import "strings"

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// ParseTruthy reports whether flag is one of the accepted "on" spellings:
// y, yes, 1, t, true (case-insensitive).
func ParseTruthy(flag string) bool {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "y", "yes", "1", "t", "true":
		return true
	}
	return false
}
