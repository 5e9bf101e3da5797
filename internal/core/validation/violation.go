// Package validation rejects unsafe or malformed deployment parameters before
// any provisioning call is made, reporting every violated rule in one pass.
//
// This package is part of the functional core: all functions are pure
// (no I/O, no side effects), and no violation ever carries the password value.
package validation

import "fmt"

// =============================================================================
// Violation Taxonomy
// =============================================================================

// Kind classifies a validation violation. Every Kind is recoverable by the
// caller: fix the input and validate again.
type Kind string

const (
	// KindMissingRequired is reported when a required parameter is empty.
	KindMissingRequired Kind = "missing_required"

	// KindLengthOutOfRange is reported when a value's length falls outside
	// its allowed range.
	KindLengthOutOfRange Kind = "length_out_of_range"

	// KindInvalidCharset is reported when a value contains characters
	// outside its allowed set.
	KindInvalidCharset Kind = "invalid_charset"

	// KindMissingCharacterClass is reported once per character class the
	// password lacks.
	KindMissingCharacterClass Kind = "missing_character_class"

	// KindResourceNameTooLong is reported once per resource whose
	// projected name exceeds its platform limit.
	KindResourceNameTooLong Kind = "resource_name_too_long"
)

// Character classes a password must contain.
const (
	ClassUppercase = "uppercase letter"
	ClassLowercase = "lowercase letter"
	ClassDigit     = "digit"
	ClassSymbol    = "symbol"
)

// =============================================================================
// Violation
// =============================================================================

// Violation describes one failed validation rule. It carries the offending
// field or resource and the bounds needed to render a human message, never
// the raw value: secrets stay out of every report and log line.
type Violation struct {
	Kind     Kind   `json:"kind" yaml:"kind"`
	Field    string `json:"field,omitempty" yaml:"field,omitempty"`
	Resource string `json:"resource,omitempty" yaml:"resource,omitempty"`

	// Length bounds, for KindLengthOutOfRange. Max == 0 means unbounded.
	Length int `json:"length,omitempty" yaml:"length,omitempty"`
	Min    int `json:"min,omitempty" yaml:"min,omitempty"`
	Max    int `json:"max,omitempty" yaml:"max,omitempty"`

	// Allowed describes the permitted character set, for KindInvalidCharset.
	Allowed string `json:"allowed,omitempty" yaml:"allowed,omitempty"`

	// Class names the absent character class, for KindMissingCharacterClass.
	Class string `json:"class,omitempty" yaml:"class,omitempty"`

	// Projected name length and limit, for KindResourceNameTooLong.
	ProjectedLength int `json:"projected_length,omitempty" yaml:"projected_length,omitempty"`
	MaxLength       int `json:"max_length,omitempty" yaml:"max_length,omitempty"`
}

// Message renders the human-readable description of the violation.
func (v Violation) Message() string {
	switch v.Kind {
	case KindMissingRequired:
		return fmt.Sprintf("%s is required", v.Field)
	case KindLengthOutOfRange:
		if v.Max == 0 {
			return fmt.Sprintf("%s must be at least %d characters, got %d", v.Field, v.Min, v.Length)
		}
		return fmt.Sprintf("%s must be %d-%d characters, got %d", v.Field, v.Min, v.Max, v.Length)
	case KindInvalidCharset:
		return fmt.Sprintf("%s may only contain %s", v.Field, v.Allowed)
	case KindMissingCharacterClass:
		return fmt.Sprintf("%s must contain at least one %s", v.Field, v.Class)
	case KindResourceNameTooLong:
		return fmt.Sprintf("projected %s name is %d characters, exceeding the platform limit of %d",
			v.Resource, v.ProjectedLength, v.MaxLength)
	default:
		return fmt.Sprintf("validation failed for %s", v.Field)
	}
}

// Messages renders the message of every violation, in order.
func Messages(violations []Violation) []string {
	msgs := make([]string, 0, len(violations))
	for _, v := range violations {
		msgs = append(msgs, v.Message())
	}
	return msgs
}
