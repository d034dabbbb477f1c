// Package envschema validates and type-coerces environment variables
// against a declarative schema. One call either returns a fully-typed
// configuration map or a single error enumerating every problem found.
//
//	values, err := envschema.Validate(envschema.Schema{
//		"PORT":  {Type: envschema.TypeNumber, Default: 3000},
//		"QUEUE": {Type: "sqs_queue_url", Required: true},
//	})
//
// The heavy lifting lives in core/validation (coercion pipeline),
// core/schema (rule declarations) and core/identifier (resource
// identifier grammars); this package re-exports the surface most
// callers need.
package envschema

import (
	"github.com/artpar/envschema/core/identifier"
	"github.com/artpar/envschema/core/schema"
	"github.com/artpar/envschema/core/validation"
)

// Re-exported schema declaration types.
type (
	Schema = schema.Schema
	Item   = schema.Item
	Type   = schema.Type
	Scope  = identifier.Scope
)

// Re-exported primitive type tags.
const (
	TypeString  = schema.TypeString
	TypeNumber  = schema.TypeNumber
	TypeBool    = schema.TypeBool
	TypeStrings = schema.TypeStrings
	TypeNumbers = schema.TypeNumbers
	TypeJSON    = schema.TypeJSON
)

// Re-exported error surface.
type (
	FieldError = validation.FieldError
	Failure    = validation.Failure
)

// Re-exported source plumbing and options.
type (
	Source    = validation.Source
	MapSource = validation.MapSource
	Option    = validation.Option
)

var (
	WithLogger    = validation.WithLogger
	WithCamelKeys = validation.WithCamelKeys
	WithRuntime   = validation.WithRuntime
)

// Validate validates the ambient process environment against s. It is
// the boundary wrapper around ValidateSource; the core itself never
// reads globals.
func Validate(s Schema, opts ...Option) (map[string]any, error) {
	return validation.Validate(s, validation.Environ(), opts...)
}

// ValidateSource validates an explicit source against s.
func ValidateSource(s Schema, src Source, opts ...Option) (map[string]any, error) {
	return validation.Validate(s, src, opts...)
}
