package identifier

import "regexp"

var roleResourcePattern = regexp.MustCompile(`^role/([A-Za-z0-9+=,.@_-]+/)*[A-Za-z0-9+=,.@_-]{1,64}$`)

// IsRoleARN reports whether s is a role ARN. Role ARNs are account
// scoped but not region scoped: the region segment is always empty.
func IsRoleARN(s string) bool {
	a, ok := ParseARN(s)
	if !ok || a.Service != "iam" {
		return false
	}
	if a.Region != "" || a.Account == "" {
		return false
	}
	return roleResourcePattern.MatchString(a.Resource)
}

var accessKeyIDPattern = regexp.MustCompile(`^(AKIA|ASIA|ABIA|ACCA)[A-Z0-9]{16}$`)

// IsAccessKeyID reports whether s is an access key ID: a 4-char type
// prefix followed by 16 uppercase alphanumeric chars.
func IsAccessKeyID(s string) bool {
	return accessKeyIDPattern.MatchString(s)
}

var secretAccessKeyPattern = regexp.MustCompile(`^[A-Za-z0-9/+=]{40}$`)

// IsSecretAccessKey reports whether s has the shape of a secret access
// key. The check is shape only; it says nothing about the key being
// live.
func IsSecretAccessKey(s string) bool {
	return secretAccessKeyPattern.MatchString(s)
}
