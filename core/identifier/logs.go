package identifier

import "regexp"

var logGroupNamePattern = regexp.MustCompile(`^[A-Za-z0-9_/.#-]{1,512}$`)

// IsLogGroupName reports whether s is a valid log group name.
func IsLogGroupName(s string) bool {
	return logGroupNamePattern.MatchString(s)
}
