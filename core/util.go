package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s`.
func CleanString(s string) string {
	return strings.TrimSpace(s)
}
