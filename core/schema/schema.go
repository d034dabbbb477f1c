package schema

import (
	"github.com/artpar/envschema/core/identifier"
)

// Schema maps an environment variable name to the rule its value must
// satisfy. Insertion order is irrelevant; a Schema is never mutated
// during validation.
type Schema map[string]Item

// Item is one variable's rule: a type tag plus shared options and
// type-specific constraints.
type Item struct {
	// Type is the variable type. Either one of the primitive Type
	// constants or an identifier grammar tag (see core/identifier).
	Type Type `yaml:"type"`

	// Required indicates the variable must be set when no Default is
	// declared.
	Required bool `yaml:"required,omitempty"`

	// Default is the value used when the variable is not set. Defaults
	// are already typed (not raw strings) and skip coercion, but
	// enum and constraint checks still apply to them.
	Default any `yaml:"default,omitempty"`

	// Sensitive masks the received value in every error message.
	Sensitive bool `yaml:"sensitive,omitempty"`

	// Description documents the variable. Never affects validation.
	Description string `yaml:"description,omitempty"`

	// Min and Max bound number values.
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`

	// Enum lists the allowed values for string variables.
	Enum []string `yaml:"enum,omitempty"`

	// Pattern is a regular expression string values must match.
	Pattern string `yaml:"pattern,omitempty"`

	// MinLength and MaxLength bound string length or list size.
	MinLength *int `yaml:"min_length,omitempty"`
	MaxLength *int `yaml:"max_length,omitempty"`

	// Separator overrides the delimiter for list types. Default ",".
	Separator string `yaml:"separator,omitempty"`

	// Scope cross-checks the region/account extracted from identifier
	// grammar values. Ignored for primitive types.
	Scope *identifier.Scope `yaml:"scope,omitempty"`
}

// Type tags an Item with its value shape.
type Type string

const (
	// Primitive types.
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeBool    Type = "bool"
	TypeStrings Type = "strings" // delimited list of strings
	TypeNumbers Type = "numbers" // delimited list of numbers
	TypeJSON    Type = "json"    // arbitrary structured data
)

// IsPrimitive reports whether t is one of the primitive type tags.
func (t Type) IsPrimitive() bool {
	switch t {
	case TypeString, TypeNumber, TypeBool, TypeStrings, TypeNumbers, TypeJSON:
		return true
	default:
		return false
	}
}

// IsGrammar reports whether t names an identifier grammar from the
// closed catalog.
func (t Type) IsGrammar() bool {
	return identifier.Known(identifier.Grammar(t))
}

// Grammar returns t as an identifier grammar tag. Only meaningful when
// IsGrammar is true.
func (t Type) Grammar() identifier.Grammar {
	return identifier.Grammar(t)
}

// IsValid reports whether t is a known type tag.
func (t Type) IsValid() bool {
	return t.IsPrimitive() || t.IsGrammar()
}
