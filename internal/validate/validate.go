// SPDX-License-Identifier: MIT

// Package validate provides configuration validation utilities for libscale.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// Error represents a validation error
type Error struct {
	Field   string      // Field name that failed validation
	Value   interface{} // The invalid value
	Message string      // Human-readable error message
	Kind    error       // optional sentinel matched by errors.Is
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Unwrap returns the sentinel attached to the error, if any.
func (e Error) Unwrap() error {
	return e.Kind
}

// Validator accumulates validation errors and can produce a ValidationError when invalid.
type Validator struct {
	errors []Error
}

// ValidationError bundles multiple validation errors into a single error value.
type ValidationError struct {
	errors []Error
}

// New creates a new validator
func New() *Validator {
	return &Validator{
		errors: make([]Error, 0),
	}
}

// AddKindError adds a validation error classified by kind.
func (v *Validator) AddKindError(kind error, field, message string, value interface{}) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
		Kind:    kind,
	})
}

// IsValid returns true if no errors have been accumulated
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Err converts the accumulated validation errors into an error value.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{errors: copied}
}

// Unwrap exposes every individual error to errors.Is and errors.As.
func (e ValidationError) Unwrap() []error {
	out := make([]error, len(e.errors))
	for i, err := range e.errors {
		out[i] = err
	}
	return out
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// NotEmpty validates that a string is not empty or whitespace-only
func (v *Validator) NotEmpty(kind error, field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddKindError(kind, field, "value cannot be empty", value)
	}
}

// OneOf validates that a value is one of the allowed values
func (v *Validator) OneOf(kind error, field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddKindError(kind, field,
		fmt.Sprintf("value must be one of %v, got %q", allowed, value),
		value)
}

// LogLevel validates a zerolog level name. Empty is allowed.
func (v *Validator) LogLevel(kind error, field, value string) {
	if value == "" {
		return
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(value)); err != nil {
		v.AddKindError(kind, field, fmt.Sprintf("unknown log level %q", value), value)
	}
}

var identifierRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Identifier validates a short name made of letters, digits, '.', '_' and '-'.
func (v *Validator) Identifier(kind error, field, value string) {
	if value == "" {
		return
	}
	if len(value) > 64 {
		v.AddKindError(kind, field, fmt.Sprintf("must be at most 64 characters, got %d", len(value)), value)
		return
	}
	if !identifierRe.MatchString(value) {
		v.AddKindError(kind, field, "may only contain letters, digits, '.', '_' and '-'", value)
	}
}
