// Package validation coerces and validates raw key/value configuration
// against a declarative schema. One pass over the schema either
// produces a fully-typed configuration map or a Failure carrying every
// problem found; partial results are never returned.
package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/artpar/envschema/core/convention"
	"github.com/artpar/envschema/core/identifier"
	"github.com/artpar/envschema/core/schema"
)

// RuntimeKey is the reserved output key the ambient runtime record is
// attached under when WithRuntime is set.
const RuntimeKey = "_runtime"

type options struct {
	logger    zerolog.Logger
	camelKeys bool
	runtime   bool
}

// Option configures a validation pass.
type Option func(*options)

// WithLogger sets the logger used for per-variable debug logging. The
// default is a no-op logger; log output never includes raw values of
// sensitive variables.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithCamelKeys rewrites output keys from UPPER_SNAKE to lowerCamel.
// Purely cosmetic: validation always runs against the original names.
func WithCamelKeys() Option {
	return func(o *options) { o.camelKeys = true }
}

// WithRuntime attaches the ambient runtime record (see ReadRuntime)
// under RuntimeKey, read from the same source.
func WithRuntime() Option {
	return func(o *options) { o.runtime = true }
}

// Validate runs every schema item against src and aggregates all
// failures. On success the returned map holds one entry per schema
// variable, typed per its item; variables that resolved to "absent"
// are present with a nil value. On failure the error is a *Failure
// carrying one or more FieldErrors; no partial map is returned.
//
// Variables are processed in sorted name order so the error list is
// deterministic.
func Validate(s schema.Schema, src Source, opts ...Option) (map[string]any, error) {
	o := options{logger: zerolog.Nop()}
	for _, fn := range opts {
		fn(&o)
	}

	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]any, len(s)+1)
	var errs []FieldError

	for _, name := range names {
		item := s[name]
		raw, present := src.Lookup(name)

		value, fieldErrs := validateItem(name, item, raw, present)
		if len(fieldErrs) > 0 {
			o.logger.Debug().
				Str("variable", name).
				Int("errors", len(fieldErrs)).
				Msg("variable failed validation")
			errs = append(errs, fieldErrs...)
			continue
		}

		key := name
		if o.camelKeys {
			key = convention.CamelKey(name)
		}
		out[key] = value
	}

	if len(errs) > 0 {
		o.logger.Error().Int("errors", len(errs)).Msg("configuration rejected")
		return nil, &Failure{Errors: errs}
	}

	if o.runtime {
		out[RuntimeKey] = ReadRuntime(src)
	}

	o.logger.Debug().Int("variables", len(names)).Msg("configuration validated")
	return out, nil
}

// validateItem runs the per-variable pipeline in fixed order: required
// check, default substitution, coercion, enum, constraints, scope.
// Each stage assumes the prior one succeeded. A variable either yields
// a final value or at least one error, never both.
func validateItem(name string, item schema.Item, raw string, present bool) (any, []FieldError) {
	if !present {
		if item.Default != nil {
			// Defaults are already typed and skip coercion; enum,
			// constraint and scope checks still apply to them.
			return checkValue(name, item, normalizeDefault(item, item.Default), "")
		}
		if item.Required {
			return nil, []FieldError{{
				Field:    name,
				Message:  "required but not set",
				Expected: expectedFormat(item),
			}}
		}
		// Optional, no default: the variable resolves to absent.
		return nil, nil
	}

	value, coerceErr := coerce(name, item, raw)
	if coerceErr != nil {
		return nil, []FieldError{*coerceErr}
	}

	return checkValue(name, item, value, raw)
}

// coerce routes the raw string to the matching primitive coercer or
// identifier grammar.
func coerce(name string, item schema.Item, raw string) (any, *FieldError) {
	if item.Type.IsGrammar() {
		g := item.Type.Grammar()
		parsed, ok := identifier.Parse(g, raw)
		if !ok {
			return nil, &FieldError{
				Field:    name,
				Message:  fmt.Sprintf("value %s is not %s", quoted(raw, item.Sensitive), identifier.Describe(g)),
				Expected: identifier.Describe(g),
				Received: received(raw, item.Sensitive),
			}
		}
		return parsed, nil
	}

	switch item.Type {
	case schema.TypeString:
		return raw, nil
	case schema.TypeNumber:
		n, err := coerceNumber(raw)
		if err != nil {
			return nil, coerceFailure(name, item, raw, err)
		}
		return n, nil
	case schema.TypeBool:
		b, err := coerceBool(raw)
		if err != nil {
			return nil, coerceFailure(name, item, raw, err)
		}
		return b, nil
	case schema.TypeStrings:
		return coerceStrings(raw, item.Separator), nil
	case schema.TypeNumbers:
		ns, err := coerceNumbers(raw, item.Separator)
		if err != nil {
			return nil, coerceFailure(name, item, raw, err)
		}
		return ns, nil
	case schema.TypeJSON:
		v, err := coerceJSON(raw)
		if err != nil {
			return nil, coerceFailure(name, item, raw, err)
		}
		return v, nil
	default:
		// Unknown type tags are a programmer error in hand-built
		// schemas; schemas loaded from YAML reject them at parse time.
		return nil, &FieldError{
			Field:    name,
			Message:  fmt.Sprintf("unknown type %q in schema", item.Type),
			Received: received(raw, item.Sensitive),
		}
	}
}

func coerceFailure(name string, item schema.Item, raw string, err error) *FieldError {
	return &FieldError{
		Field:    name,
		Message:  fmt.Sprintf("value %s: %v", quoted(raw, item.Sensitive), err),
		Expected: expectedFormat(item),
		Received: received(raw, item.Sensitive),
	}
}

// checkValue applies the post-coercion stages: enum membership for
// strings, constraint checks (all violations collected, not just the
// first), and the scope cross-check for identifier grammars.
func checkValue(name string, item schema.Item, value any, raw string) (any, []FieldError) {
	var errs []FieldError

	if item.Type.IsGrammar() {
		// Grammar items skip enum and value constraints; only the
		// scope expectation applies.
		errs = append(errs, checkScope(name, item, value, raw)...)
		if len(errs) > 0 {
			return nil, errs
		}
		return value, nil
	}

	if item.Type == schema.TypeString && len(item.Enum) > 0 {
		if s, ok := value.(string); ok && !containsString(item.Enum, s) {
			errs = append(errs, FieldError{
				Field:    name,
				Message:  fmt.Sprintf("must be one of: %s", strings.Join(item.Enum, ", ")),
				Expected: strings.Join(item.Enum, ", "),
				Received: received(s, item.Sensitive),
			})
		}
	}

	errs = append(errs, checkConstraints(name, item, value)...)

	if len(errs) > 0 {
		return nil, errs
	}
	return value, nil
}

// checkConstraints collects every applicable constraint violation.
// Checks run in a fixed order: min, max, pattern, min_length,
// max_length.
func checkConstraints(name string, item schema.Item, value any) []FieldError {
	var errs []FieldError

	add := func(message, expected string, rawValue string) {
		errs = append(errs, FieldError{
			Field:    name,
			Message:  message,
			Expected: expected,
			Received: received(rawValue, item.Sensitive),
		})
	}

	switch v := value.(type) {
	case float64:
		if item.Min != nil && v < *item.Min {
			add(fmt.Sprintf("must be at least %v", *item.Min),
				fmt.Sprintf(">= %v", *item.Min), formatNumber(v))
		}
		if item.Max != nil && v > *item.Max {
			add(fmt.Sprintf("must be at most %v", *item.Max),
				fmt.Sprintf("<= %v", *item.Max), formatNumber(v))
		}

	case string:
		if item.Pattern != "" {
			// Invalid patterns are rejected by schema.Validate; a
			// hand-built schema with a bad pattern skips the check.
			if re, err := regexp.Compile(item.Pattern); err == nil && !re.MatchString(v) {
				add(fmt.Sprintf("must match pattern %s", item.Pattern), item.Pattern, v)
			}
		}
		if item.MinLength != nil && len(v) < *item.MinLength {
			add(fmt.Sprintf("must be at least %d characters", *item.MinLength),
				fmt.Sprintf("length >= %d", *item.MinLength), v)
		}
		if item.MaxLength != nil && len(v) > *item.MaxLength {
			add(fmt.Sprintf("must be at most %d characters", *item.MaxLength),
				fmt.Sprintf("length <= %d", *item.MaxLength), v)
		}

	case []string:
		errs = append(errs, checkListLength(name, item, len(v))...)

	case []float64:
		errs = append(errs, checkListLength(name, item, len(v))...)
	}

	return errs
}

func checkListLength(name string, item schema.Item, n int) []FieldError {
	var errs []FieldError
	if item.MinLength != nil && n < *item.MinLength {
		errs = append(errs, FieldError{
			Field:    name,
			Message:  fmt.Sprintf("must have at least %d elements", *item.MinLength),
			Expected: fmt.Sprintf("length >= %d", *item.MinLength),
			Received: fmt.Sprintf("%d elements", n),
		})
	}
	if item.MaxLength != nil && n > *item.MaxLength {
		errs = append(errs, FieldError{
			Field:    name,
			Message:  fmt.Sprintf("must have at most %d elements", *item.MaxLength),
			Expected: fmt.Sprintf("length <= %d", *item.MaxLength),
			Received: fmt.Sprintf("%d elements", n),
		})
	}
	return errs
}

// checkScope compares the scope expectation against the region and
// account extracted from the identifier. Region mismatches come first.
// Grammars that cannot extract a dimension never mismatch on it.
func checkScope(name string, item schema.Item, value any, raw string) []FieldError {
	if item.Scope == nil || item.Scope.IsZero() {
		return nil
	}

	// The extractors work on the original identifier string. On the
	// default-substitution path the default itself is that string.
	s := raw
	if s == "" {
		if d, ok := value.(string); ok {
			s = d
		}
	}

	var errs []FieldError
	for _, m := range identifier.CheckScope(item.Type.Grammar(), s, *item.Scope) {
		errs = append(errs, FieldError{
			Field:    name,
			Message:  fmt.Sprintf("%s mismatch: expected %q, got %q", m.Dimension, m.Expected, m.Actual),
			Expected: m.Expected,
			Received: received(m.Actual, item.Sensitive),
		})
	}
	return errs
}

// normalizeDefault brings a typed default into the same shape the
// coercion path produces: numbers become float64, generic lists become
// []string or []float64.
func normalizeDefault(item schema.Item, def any) any {
	switch item.Type {
	case schema.TypeNumber:
		if n, ok := toFloat64(def); ok {
			return n
		}
	case schema.TypeStrings:
		if list, ok := def.([]any); ok {
			out := make([]string, 0, len(list))
			for _, e := range list {
				if s, ok := e.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	case schema.TypeNumbers:
		switch list := def.(type) {
		case []any:
			out := make([]float64, 0, len(list))
			for _, e := range list {
				if n, ok := toFloat64(e); ok {
					out = append(out, n)
				}
			}
			return out
		case []float64:
			return list
		}
	}
	return def
}

// expectedFormat describes what an item accepts, for error descriptors.
func expectedFormat(item schema.Item) string {
	if item.Type.IsGrammar() {
		return identifier.Describe(item.Type.Grammar())
	}
	switch item.Type {
	case schema.TypeNumber:
		return "a base-10 number"
	case schema.TypeBool:
		return "a boolean (true/1/yes or false/0/no)"
	case schema.TypeStrings:
		return "a delimited list of strings"
	case schema.TypeNumbers:
		return "a delimited list of numbers"
	case schema.TypeJSON:
		return "structured data (YAML or JSON)"
	default:
		return "a string"
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

func containsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
