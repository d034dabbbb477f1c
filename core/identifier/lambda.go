package identifier

import "regexp"

// FunctionARN is the parsed form of a function ARN. The qualifier is an
// optional trailing segment naming an alias or version; Qualified is
// false when it is absent.
type FunctionARN struct {
	ARN

	Name string

	// Qualifier is the alias or version suffix. Empty and meaningless
	// unless Qualified is true.
	Qualifier string
	Qualified bool
}

var (
	functionNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	// The qualifier suffix is optional: a version number or an alias name.
	functionResourcePattern = regexp.MustCompile(`^function:([A-Za-z0-9_-]{1,64})(?::(\$LATEST|[0-9]+|[A-Za-z][A-Za-z0-9_-]{0,127}))?$`)
)

// IsFunctionName reports whether s is a bare function name.
func IsFunctionName(s string) bool {
	return functionNamePattern.MatchString(s)
}

// IsFunctionARN reports whether s is a function ARN, qualified or not.
func IsFunctionARN(s string) bool {
	_, ok := ParseFunctionARN(s)
	return ok
}

// ParseFunctionARN decomposes a function ARN. The resource segment is
// function:<name> with an optional :qualifier; when the qualifier is
// absent, Qualified is false rather than Qualifier being empty-but-set.
func ParseFunctionARN(s string) (FunctionARN, bool) {
	a, ok := serviceARN(s, "lambda")
	if !ok {
		return FunctionARN{}, false
	}
	m := functionResourcePattern.FindStringSubmatch(a.Resource)
	if m == nil {
		return FunctionARN{}, false
	}
	return FunctionARN{
		ARN:       a,
		Name:      m[1],
		Qualifier: m[2],
		Qualified: m[2] != "",
	}, true
}
