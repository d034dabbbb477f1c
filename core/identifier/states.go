package identifier

import "regexp"

var stateMachineResourcePattern = regexp.MustCompile(`^stateMachine:[A-Za-z0-9_-]{1,80}$`)

// IsStateMachineARN reports whether s is a state machine ARN.
func IsStateMachineARN(s string) bool {
	a, ok := serviceARN(s, "states")
	return ok && stateMachineResourcePattern.MatchString(a.Resource)
}
