package identifier

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// IsKeyID reports whether s is a key ID in canonical UUID form.
func IsKeyID(s string) bool {
	// uuid.Parse accepts several variants (URN form, braces, no
	// hyphens); key IDs only ever use the plain hyphenated form.
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

var keyResourcePattern = regexp.MustCompile(`^key/[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsKeyARN reports whether s is a key ARN.
func IsKeyARN(s string) bool {
	a, ok := serviceARN(s, "kms")
	return ok && keyResourcePattern.MatchString(a.Resource)
}

var keyAliasPattern = regexp.MustCompile(`^alias/[A-Za-z0-9/_-]{1,250}$`)

// IsKeyAlias reports whether s is a key alias. The alias/aws/ prefix is
// reserved for vendor-managed keys and is excluded.
func IsKeyAlias(s string) bool {
	if strings.HasPrefix(s, "alias/aws/") {
		return false
	}
	return keyAliasPattern.MatchString(s)
}
