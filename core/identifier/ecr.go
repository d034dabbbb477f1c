package identifier

import "regexp"

// RepositoryURI is the parsed form of a container repository URI such
// as 123456789012.dkr.ecr.us-east-1.amazonaws.com/my/repo.
type RepositoryURI struct {
	// Value is the original input string.
	Value string

	Account string
	Region  string

	// Name is the repository name, which may contain namespace slashes.
	Name string
}

var repositoryURIPattern = regexp.MustCompile(`^(\d{12})\.dkr\.ecr\.([a-z]{2}(?:-[a-z]+)+-\d)\.[a-z0-9.-]+/([a-z0-9]+(?:[._-][a-z0-9]+)*(?:/[a-z0-9]+(?:[._-][a-z0-9]+)*)*)$`)

// IsRepositoryURI reports whether s is a container repository URI.
func IsRepositoryURI(s string) bool {
	return repositoryURIPattern.MatchString(s)
}

// ParseRepositoryURI decomposes a repository URI into account, region
// and repository name.
func ParseRepositoryURI(s string) (RepositoryURI, bool) {
	m := repositoryURIPattern.FindStringSubmatch(s)
	if m == nil {
		return RepositoryURI{}, false
	}
	return RepositoryURI{Value: s, Account: m[1], Region: m[2], Name: m[3]}, true
}

func repositoryURIRegion(s string) (string, bool) {
	r, ok := ParseRepositoryURI(s)
	if !ok {
		return "", false
	}
	return r.Region, true
}

func repositoryURIAccount(s string) (string, bool) {
	r, ok := ParseRepositoryURI(s)
	if !ok {
		return "", false
	}
	return r.Account, true
}
