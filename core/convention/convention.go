// Package convention converts between the naming conventions used for
// environment variables (UPPER_SNAKE) and configuration keys
// (lowerCamel).
package convention

import "strings"

// CamelKey rewrites an UPPER_SNAKE variable name to lowerCamel:
// MAX_RETRIES becomes maxRetries. Underscore runs collapse; a name
// without underscores is simply lower-cased. Purely cosmetic, never
// part of validation.
func CamelKey(name string) string {
	parts := strings.Split(strings.ToLower(name), "_")

	var b strings.Builder
	first := true
	for _, p := range parts {
		if p == "" {
			continue
		}
		if first {
			b.WriteString(p)
			first = false
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}

	return b.String()
}

// CamelKeys returns a copy of m with every key rewritten by CamelKey.
// Values are carried over untouched.
func CamelKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[CamelKey(k)] = v
	}
	return out
}
