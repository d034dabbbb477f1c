package identifier

import "regexp"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,255}$`)

// IsTableName reports whether s is a valid table name.
func IsTableName(s string) bool {
	return tableNamePattern.MatchString(s)
}

var tableResourcePattern = regexp.MustCompile(`^table/[A-Za-z0-9_.-]{3,255}$`)

// IsTableARN reports whether s is a table ARN. Index and stream
// sub-resources are not accepted; the grammar names tables only.
func IsTableARN(s string) bool {
	a, ok := serviceARN(s, "dynamodb")
	return ok && tableResourcePattern.MatchString(a.Resource)
}
