package validation

import "os"

// Source is a case-sensitive string-keyed view of raw configuration
// values. Lookup reports false for unset keys. Sources are read-only
// from the validator's perspective.
type Source interface {
	Lookup(key string) (string, bool)
}

// MapSource adapts a plain map for use as a Source.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// envSource reads the ambient process environment at call time.
type envSource struct{}

func (envSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Environ returns a Source backed by the process environment. The core
// never reads the environment implicitly; callers pass this in where
// they want ambient configuration.
func Environ() Source {
	return envSource{}
}
