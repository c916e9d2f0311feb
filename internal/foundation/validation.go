package foundation

import (
	"fmt"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// Validator represents a validation function.
type Validator[T any] func(T) ValidationResult

// ValidationResult contains the result of a validation operation.
type ValidationResult struct {
	Valid  bool
	Errors []FieldError
}

// FieldError represents a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Error implements the error interface.
func (fe FieldError) Error() string {
	if fe.Field != "" {
		return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return fe.Message
}

// Valid creates a successful validation result.
func Valid() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid creates a failed validation result with errors.
func Invalid(errs ...FieldError) ValidationResult {
	return ValidationResult{Valid: false, Errors: errs}
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, code, message string) FieldError {
	return FieldError{Field: field, Code: code, Message: message}
}

// Combine merges multiple validation results.
func (vr ValidationResult) Combine(other ValidationResult) ValidationResult {
	if vr.Valid && other.Valid {
		return Valid()
	}
	all := make([]FieldError, 0, len(vr.Errors)+len(other.Errors))
	all = append(all, vr.Errors...)
	all = append(all, other.Errors...)
	return Invalid(all...)
}

// Add appends a failure to the result.
func (vr *ValidationResult) Add(fe FieldError) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, fe)
}

// Fields returns the failing field paths in order.
func (vr ValidationResult) Fields() []string {
	out := make([]string, 0, len(vr.Errors))
	for _, fe := range vr.Errors {
		out = append(out, fe.Field)
	}
	return out
}

// ToError converts an invalid result into a single MalformedConfig error.
// The first failing field is recorded under "field" and every failure,
// rendered as "path: message", under "fields".
func (vr ValidationResult) ToError(source string) error {
	if vr.Valid {
		return nil
	}
	messages := make([]string, 0, len(vr.Errors))
	for _, fe := range vr.Errors {
		messages = append(messages, fe.Error())
	}
	b := errors.MalformedConfig("site definition is malformed").
		WithContext(errors.ContextFields, messages)
	if len(vr.Errors) > 0 {
		b = b.WithContext(errors.ContextField, vr.Errors[0].Field)
	}
	if source != "" {
		b = b.WithContext(errors.ContextSource, source)
	}
	return b.Build()
}

// Required fails when value is the empty string.
func Required(field string) Validator[string] {
	return func(value string) ValidationResult {
		if value == "" {
			return Invalid(NewValidationError(field, "required", "is required"))
		}
		return Valid()
	}
}

// OneOf validates that a value is in a set of allowed values.
func OneOf[T comparable](field string, allowed []T) Validator[T] {
	allowedSet := make(map[T]bool, len(allowed))
	for _, item := range allowed {
		allowedSet[item] = true
	}
	return func(value T) ValidationResult {
		if !allowedSet[value] {
			return Invalid(FieldError{
				Field:   field,
				Code:    "one_of",
				Message: fmt.Sprintf("must be one of: %v", allowed),
				Value:   value,
			})
		}
		return Valid()
	}
}
