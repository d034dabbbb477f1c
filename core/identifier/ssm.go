package identifier

import "regexp"

// Parameter names are slash-separated paths. A fully-qualified name
// starts with a slash; a bare name (no slashes at all) is the legacy
// form and remains valid.
var parameterNamePattern = regexp.MustCompile(`^(/?[A-Za-z0-9_.-]+)(/[A-Za-z0-9_.-]+)*$`)

// IsParameterName reports whether s is a valid parameter name or path.
func IsParameterName(s string) bool {
	if len(s) == 0 || len(s) > 2048 {
		return false
	}
	return parameterNamePattern.MatchString(s)
}
