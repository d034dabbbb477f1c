package identifier

import "regexp"

var streamResourcePattern = regexp.MustCompile(`^stream/[A-Za-z0-9_.-]{1,128}$`)

// IsStreamARN reports whether s is a data stream ARN.
func IsStreamARN(s string) bool {
	a, ok := serviceARN(s, "kinesis")
	return ok && streamResourcePattern.MatchString(a.Resource)
}
