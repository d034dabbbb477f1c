package validation

import (
	"fmt"
	"strings"
)

// MaskToken replaces the received value of a sensitive variable in
// every rendered message and descriptor.
const MaskToken = "*****"

// FieldError is one variable's validation failure. It is built fully
// masked: for sensitive variables the raw value is never stored, so no
// later rendering step can leak it.
type FieldError struct {
	// Field is the variable name.
	Field string `json:"field"`

	// Message is the human-readable failure description.
	Message string `json:"message"`

	// Expected describes the format or constraint that was violated.
	Expected string `json:"expected,omitempty"`

	// Received is the offending value, or MaskToken for sensitive
	// variables.
	Received string `json:"received,omitempty"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Failure aggregates every FieldError from one validation pass. It is
// the only error the orchestrator returns: callers either get a fully
// valid configuration or a Failure listing every problem at once.
type Failure struct {
	Errors []FieldError
}

// Error renders the full report: a count header, one bullet per failing
// variable, and a closing instruction.
func (f *Failure) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d environment variable(s) failed validation:\n\n", len(f.Errors))
	for _, e := range f.Errors {
		fmt.Fprintf(&b, "- %s: %s\n", e.Field, e.Message)
	}
	b.WriteString("\nFix the variables listed above and run again.")

	return b.String()
}

// received returns the descriptor for an offending raw value, masking
// it when the variable is sensitive.
func received(raw string, sensitive bool) string {
	if sensitive {
		return MaskToken
	}
	return raw
}

// quoted renders a raw value for inclusion in a message, masking it
// when the variable is sensitive.
func quoted(raw string, sensitive bool) string {
	if sensitive {
		return MaskToken
	}
	return fmt.Sprintf("%q", raw)
}
