package domain

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials is returned by login when no username+password
	// pair matches. Surfaced to the user; never fatal.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTaskNotFound is returned when an operation references a task id
	// missing from the log.
	ErrTaskNotFound = errors.New("task not found")
)

// ValidationError carries field level validation failures so the form layer
// can render them next to the offending field.
type ValidationError struct {
	FieldErrors map[string]string
}

func (v *ValidationError) Error() string {
	if v == nil || len(v.FieldErrors) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(v.FieldErrors))
	for field, msg := range v.FieldErrors {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the message recorded for a field, or "" if the field is valid.
func (v *ValidationError) Field(name string) string {
	if v == nil {
		return ""
	}
	return v.FieldErrors[name]
}

func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
