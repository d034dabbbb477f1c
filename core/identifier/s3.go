package identifier

import (
	"regexp"
	"strings"
)

// Reserved bucket name prefixes and suffixes. These are excluded on top
// of the base character-class pattern.
var (
	bucketReservedPrefixes = []string{"xn--", "sthree-"}
	bucketReservedSuffixes = []string{"-s3alias", "--ol-s3"}
)

// bucketNamePattern covers the base rule: 3-63 chars, lowercase letters,
// digits, dots and hyphens, starting and ending with a letter or digit.
var bucketNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)

// IsBucketName reports whether s is a valid bucket name. Beyond the base
// pattern, names must not look like IP addresses, must not use a
// reserved prefix or suffix, and must not contain adjacent dots.
func IsBucketName(s string) bool {
	if !bucketNamePattern.MatchString(s) {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	if looksLikeIPAddress(s) {
		return false
	}
	for _, p := range bucketReservedPrefixes {
		if strings.HasPrefix(s, p) {
			return false
		}
	}
	for _, suf := range bucketReservedSuffixes {
		if strings.HasSuffix(s, suf) {
			return false
		}
	}
	return true
}

// IsBucketARN reports whether s is a bucket ARN. Bucket ARNs are
// globally scoped: both the region and account segments are empty.
func IsBucketARN(s string) bool {
	a, ok := ParseARN(s)
	if !ok || a.Service != "s3" {
		return false
	}
	if a.Region != "" || a.Account != "" {
		return false
	}
	// The resource must be a bare bucket name, not an object key.
	return !strings.Contains(a.Resource, "/") && IsBucketName(a.Resource)
}

var ipLikePattern = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)

func looksLikeIPAddress(s string) bool {
	return ipLikePattern.MatchString(s)
}
