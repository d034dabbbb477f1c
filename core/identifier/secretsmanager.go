package identifier

import "regexp"

// Secret ARNs carry a 6-char random suffix appended to the secret name
// with a hyphen.
var secretResourcePattern = regexp.MustCompile(`^secret:[A-Za-z0-9/_+=.@-]{1,512}-[A-Za-z0-9]{6}$`)

// IsSecretARN reports whether s is a stored-secret ARN.
func IsSecretARN(s string) bool {
	a, ok := serviceARN(s, "secretsmanager")
	return ok && secretResourcePattern.MatchString(a.Resource)
}
