package identifier

import "regexp"

// Compute resource IDs are a type prefix, a hyphen, and a hex string of
// exactly one of two lengths: 8 (legacy) or 17 (current). No other
// length is valid.
const (
	legacyResourceIDHexLen  = 8
	currentResourceIDHexLen = 17
)

var resourceIDSuffixPattern = regexp.MustCompile(`^[0-9a-f]+$`)

// isResourceID returns the validity predicate for a compute resource ID
// with the given type prefix (e.g. "i", "vpc", "subnet").
func isResourceID(prefix string) func(string) bool {
	lead := prefix + "-"
	return func(s string) bool {
		if len(s) <= len(lead) || s[:len(lead)] != lead {
			return false
		}
		hex := s[len(lead):]
		if len(hex) != legacyResourceIDHexLen && len(hex) != currentResourceIDHexLen {
			return false
		}
		return resourceIDSuffixPattern.MatchString(hex)
	}
}
