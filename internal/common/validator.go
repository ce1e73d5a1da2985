package common

import (
	"fmt"
	"regexp"
)

// ValidationError carries the per-field messages collected by a Validator. It
// is returned by the service layer so transports can map it to a client error.
type ValidationError struct {
	Errors map[string]string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %+v", e.Errors)
}

// Validator accumulates field validation failures. The zero value is not
// usable, use NewValidator.
type Validator struct {
	Errors map[string]string
}

func NewValidator() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records a message for a field. Only the first message per field is
// kept.
func (v *Validator) AddError(field, message string) {
	if _, ok := v.Errors[field]; !ok {
		v.Errors[field] = message
	}
}

// Check records the message for the field when ok is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// LengthBetween reports whether s is between min and max bytes long.
func (v *Validator) LengthBetween(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max
}

// Matches reports whether value matches the regular expression.
func (v *Validator) Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// ValidationError wraps the collected messages in an error value.
func (v *Validator) ValidationError() error {
	return ValidationError{Errors: v.Errors}
}
