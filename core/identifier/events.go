package identifier

import "regexp"

// Partner event buses embed the partner path with slashes; the default
// and custom buses use the bare character class.
var eventBusNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,256}$|^aws\.partner(/[A-Za-z0-9._-]+){2,}$`)

// IsEventBusName reports whether s is a valid event bus name.
func IsEventBusName(s string) bool {
	return eventBusNamePattern.MatchString(s)
}
