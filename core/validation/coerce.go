package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Coercion functions convert one raw string into one typed value. They
// are pure: every failure is a returned error, never a panic.

// DefaultSeparator splits list values when the item declares none.
const DefaultSeparator = ","

// coerceNumber parses a base-10 numeric literal.
func coerceNumber(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("empty value is not a number")
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("not a base-10 number")
	}
	return n, nil
}

// coerceBool maps case-insensitive truthy and falsy spellings. The
// empty string is falsy; anything outside both sets fails.
func coerceBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no", "":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: expected one of true/1/yes or false/0/no")
	}
}

// coerceStrings splits raw on sep and trims each element. Empty input
// yields an empty list, not a one-element list holding an empty string.
func coerceStrings(raw, sep string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, sep)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// coerceNumbers splits raw like coerceStrings and parses each element.
// The first unparsable element fails the whole list, identifying its
// 1-based position.
func coerceNumbers(raw, sep string) ([]float64, error) {
	parts := coerceStrings(raw, sep)
	out := make([]float64, len(parts))
	for i, p := range parts {
		n, err := coerceNumber(p)
		if err != nil {
			return nil, fmt.Errorf("element %d is not a number", i+1)
		}
		out[i] = n
	}
	return out, nil
}

// coerceJSON deserializes structured data. YAML is a superset of JSON,
// so both notations are accepted; the deserializer's own message is
// carried on failure.
func coerceJSON(raw string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("invalid structured data: %v", err)
	}
	return v, nil
}
