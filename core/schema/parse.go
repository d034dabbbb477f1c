package schema

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFile parses a schema from a YAML file.
func ParseFile(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a schema from YAML bytes. The schema's own shape is
// validated here, at the boundary: unknown type tags, enums without
// values, and defaults that do not match their declared type are all
// rejected before any value validation runs.
func Parse(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("validate schema: %w", err)
	}

	return s, nil
}

// Validate validates a schema definition.
func Validate(s Schema) error {
	var errs []string

	if len(s) == 0 {
		errs = append(errs, "schema must have at least one variable")
	}

	for name, item := range s {
		if name == "" {
			errs = append(errs, "variable name must not be empty")
			continue
		}

		if err := validateItem(name, item); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("schema errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// validateItem validates a single item definition.
func validateItem(name string, item Item) error {
	if !item.Type.IsValid() {
		return fmt.Errorf("variable %q: unknown type %q", name, item.Type)
	}

	if len(item.Enum) > 0 && item.Type != TypeString {
		return fmt.Errorf("variable %q: enum is only valid for string type", name)
	}

	if item.Pattern != "" {
		if _, err := regexp.Compile(item.Pattern); err != nil {
			return fmt.Errorf("variable %q: invalid pattern: %v", name, err)
		}
	}

	if item.Min != nil && item.Max != nil && *item.Min > *item.Max {
		return fmt.Errorf("variable %q: min %v exceeds max %v", name, *item.Min, *item.Max)
	}

	if item.MinLength != nil && item.MaxLength != nil && *item.MinLength > *item.MaxLength {
		return fmt.Errorf("variable %q: min_length %d exceeds max_length %d", name, *item.MinLength, *item.MaxLength)
	}

	if item.Scope != nil && !item.Type.IsGrammar() {
		return fmt.Errorf("variable %q: scope is only valid for identifier types", name)
	}

	if item.Default != nil {
		if err := validateDefault(name, item); err != nil {
			return err
		}
	}

	return nil
}

// validateDefault validates that a default value matches the item type.
// Identifier grammar defaults stay strings; list defaults are checked
// element-wise.
func validateDefault(name string, item Item) error {
	switch item.Type {
	case TypeString:
		if _, ok := item.Default.(string); !ok {
			return fmt.Errorf("variable %q: default must be a string", name)
		}
	case TypeNumber:
		switch item.Default.(type) {
		case int, int64, float64:
			return nil
		default:
			return fmt.Errorf("variable %q: default must be a number", name)
		}
	case TypeBool:
		if _, ok := item.Default.(bool); !ok {
			return fmt.Errorf("variable %q: default must be a boolean", name)
		}
	case TypeStrings:
		if !isStringList(item.Default) {
			return fmt.Errorf("variable %q: default must be a list of strings", name)
		}
	case TypeNumbers:
		if !isNumberList(item.Default) {
			return fmt.Errorf("variable %q: default must be a list of numbers", name)
		}
	case TypeJSON:
		// Any deserialized value is acceptable.
	default:
		if _, ok := item.Default.(string); !ok {
			return fmt.Errorf("variable %q: identifier default must be a string", name)
		}
	}
	return nil
}

func isStringList(v any) bool {
	switch list := v.(type) {
	case []string:
		return true
	case []any:
		for _, e := range list {
			if _, ok := e.(string); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isNumberList(v any) bool {
	switch list := v.(type) {
	case []float64:
		return true
	case []any:
		for _, e := range list {
			switch e.(type) {
			case int, int64, float64:
			default:
				return false
			}
		}
		return true
	default:
		return false
	}
}
