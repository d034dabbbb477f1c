package identifier

import "regexp"

// Topic names share the queue character class but allow up to 256 chars;
// the .fifo suffix is valid here too.
var topicNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,256}(\.fifo)?$`)

// IsTopicARN reports whether s is a notification topic ARN.
func IsTopicARN(s string) bool {
	a, ok := serviceARN(s, "sns")
	return ok && topicNamePattern.MatchString(a.Resource)
}
