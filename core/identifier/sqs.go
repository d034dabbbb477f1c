package identifier

import (
	"regexp"
	"strings"
)

// FIFOSuffix is the literal dot-suffix that marks a FIFO queue name.
const FIFOSuffix = ".fifo"

// QueueURL is the parsed form of a queue URL such as
// https://sqs.us-east-1.amazonaws.com/123456789012/my-queue.
type QueueURL struct {
	// Value is the original input string.
	Value string

	Region  string
	Account string

	// Name is the queue name, including the .fifo suffix when present.
	Name string

	// FIFO reports whether Name carries the FIFO suffix.
	FIFO bool
}

// QueueARN is the parsed form of a queue ARN.
type QueueARN struct {
	ARN

	// Name is the queue name, including the .fifo suffix when present.
	Name string

	// FIFO reports whether Name carries the FIFO suffix.
	FIFO bool
}

var (
	queueNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,80}(\.fifo)?$`)
	queueURLPattern  = regexp.MustCompile(`^https://[a-z0-9-]+\.([a-z]{2}(?:-[a-z]+)+-\d)\.[a-z0-9.-]+/(\d{12})/([A-Za-z0-9_-]{1,80}(?:\.fifo)?)$`)
)

// IsQueueName reports whether s is a valid queue name: up to 80 chars of
// letters, digits, hyphen and underscore, with an optional .fifo suffix.
func IsQueueName(s string) bool {
	return queueNamePattern.MatchString(s)
}

// IsQueueURL reports whether s is a valid queue URL.
func IsQueueURL(s string) bool {
	return queueURLPattern.MatchString(s)
}

// ParseQueueURL decomposes a queue URL: the region is the second host
// label, the account is the first path segment, and the queue name is
// the second. The second result is false when s does not match.
func ParseQueueURL(s string) (QueueURL, bool) {
	m := queueURLPattern.FindStringSubmatch(s)
	if m == nil {
		return QueueURL{}, false
	}
	name := m[3]
	return QueueURL{
		Value:   s,
		Region:  m[1],
		Account: m[2],
		Name:    name,
		FIFO:    strings.HasSuffix(name, FIFOSuffix),
	}, true
}

// IsQueueARN reports whether s is a queue ARN.
func IsQueueARN(s string) bool {
	_, ok := ParseQueueARN(s)
	return ok
}

// ParseQueueARN decomposes a queue ARN. The resource segment is the
// queue name; FIFO detection is a suffix test on that name, not a
// separate grammar.
func ParseQueueARN(s string) (QueueARN, bool) {
	a, ok := serviceARN(s, "sqs")
	if !ok || !IsQueueName(a.Resource) {
		return QueueARN{}, false
	}
	return QueueARN{
		ARN:  a,
		Name: a.Resource,
		FIFO: strings.HasSuffix(a.Resource, FIFOSuffix),
	}, true
}

func queueURLRegion(s string) (string, bool) {
	q, ok := ParseQueueURL(s)
	if !ok {
		return "", false
	}
	return q.Region, true
}

func queueURLAccount(s string) (string, bool) {
	q, ok := ParseQueueURL(s)
	if !ok {
		return "", false
	}
	return q.Account, true
}
