package identifier

import (
	"regexp"
	"strconv"
)

// DefaultCachePort is substituted into Endpoint.Addr when the input
// carries no explicit port.
const DefaultCachePort = 6379

// Endpoint is the parsed form of a host[:port] cache endpoint.
type Endpoint struct {
	// Value is the original input string.
	Value string

	Host string

	// Port is the explicit port from the input. Zero and meaningless
	// unless HasPort is true.
	Port    int
	HasPort bool

	// Addr is host:port with DefaultCachePort substituted when the
	// input had none.
	Addr string
}

var endpointPattern = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)*)(:([0-9]{1,5}))?$`)

// IsEndpoint reports whether s is a hostname with an optional :port
// suffix in the range 1-65535.
func IsEndpoint(s string) bool {
	_, ok := ParseEndpoint(s)
	return ok
}

// ParseEndpoint decomposes a host[:port] endpoint. When the port is
// absent, Addr carries the default port and Port stays unset.
func ParseEndpoint(s string) (Endpoint, bool) {
	if len(s) == 0 || len(s) > 253+6 {
		return Endpoint{}, false
	}
	m := endpointPattern.FindStringSubmatch(s)
	if m == nil || len(m[1]) > 253 {
		return Endpoint{}, false
	}
	e := Endpoint{Value: s, Host: m[1]}
	if m[6] != "" {
		port, err := strconv.Atoi(m[6])
		if err != nil || port < 1 || port > 65535 {
			return Endpoint{}, false
		}
		e.Port = port
		e.HasPort = true
		e.Addr = e.Host + ":" + m[6]
	} else {
		e.Addr = e.Host + ":" + strconv.Itoa(DefaultCachePort)
	}
	return e, true
}
