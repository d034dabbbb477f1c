package identifier

import (
	"regexp"
	"strings"
)

// ARN is the parsed form of a generic resource name. The six logical
// fields joined with colons reproduce the original input exactly.
type ARN struct {
	// Value is the original input string.
	Value string

	Prefix    string
	Partition string
	Service   string
	Region    string
	Account   string

	// Resource is everything after the fifth colon. It may itself
	// contain colons or slashes; the generic grammar treats it as
	// one opaque field.
	Resource string
}

// String reassembles the six logical fields with colon delimiters.
func (a ARN) String() string {
	return strings.Join([]string{a.Prefix, a.Partition, a.Service, a.Region, a.Account, a.Resource}, ":")
}

var (
	arnPartitionPattern = regexp.MustCompile(`^aws(-[a-z]+)*$`)
	arnServicePattern   = regexp.MustCompile(`^[a-z0-9-]+$`)
	accountIDPattern    = regexp.MustCompile(`^\d{12}$`)
	regionPattern       = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-\d$`)
)

// IsAccountID reports whether s is a 12-digit account ID.
func IsAccountID(s string) bool {
	return accountIDPattern.MatchString(s)
}

// IsRegion reports whether s is a region name such as us-east-1 or
// us-gov-west-1.
func IsRegion(s string) bool {
	return regionPattern.MatchString(s)
}

// IsARN reports whether s matches the generic resource name grammar:
// six colon-delimited segments minimum, with empty region and account
// segments permitted for globally-scoped resource types.
func IsARN(s string) bool {
	_, ok := ParseARN(s)
	return ok
}

// ParseARN decomposes s into its six logical fields. The second result
// is false when s does not match the generic grammar.
func ParseARN(s string) (ARN, bool) {
	parts := strings.SplitN(s, ":", 6)
	if len(parts) != 6 {
		return ARN{}, false
	}
	a := ARN{
		Value:     s,
		Prefix:    parts[0],
		Partition: parts[1],
		Service:   parts[2],
		Region:    parts[3],
		Account:   parts[4],
		Resource:  parts[5],
	}
	if a.Prefix != "arn" {
		return ARN{}, false
	}
	if !arnPartitionPattern.MatchString(a.Partition) {
		return ARN{}, false
	}
	if !arnServicePattern.MatchString(a.Service) {
		return ARN{}, false
	}
	if a.Region != "" && !IsRegion(a.Region) {
		return ARN{}, false
	}
	if a.Account != "" && !IsAccountID(a.Account) {
		return ARN{}, false
	}
	if a.Resource == "" {
		return ARN{}, false
	}
	return a, true
}

// arnRegion extracts the region segment of an ARN-shaped value. It
// reports false for globally-scoped resources whose region segment is
// empty.
func arnRegion(s string) (string, bool) {
	a, ok := ParseARN(s)
	if !ok || a.Region == "" {
		return "", false
	}
	return a.Region, true
}

// arnAccount extracts the account segment of an ARN-shaped value. It
// reports false when the account segment is empty.
func arnAccount(s string) (string, bool) {
	a, ok := ParseARN(s)
	if !ok || a.Account == "" {
		return "", false
	}
	return a.Account, true
}

// serviceARN parses s and confirms it names the given service with
// non-empty region and account segments. Shared by the per-service ARN
// grammars; each still applies its own resource-segment pattern.
func serviceARN(s, service string) (ARN, bool) {
	a, ok := ParseARN(s)
	if !ok || a.Service != service {
		return ARN{}, false
	}
	if a.Region == "" || a.Account == "" {
		return ARN{}, false
	}
	return a, true
}
