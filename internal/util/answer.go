package util

import "strings"

// NormalizeAnswer trims surrounding whitespace and lowercases a submitted or
// canonical answer. Both sides of a comparison go through this, so matching
// is case- and whitespace-insensitive.
func NormalizeAnswer(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
