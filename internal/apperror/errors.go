// Package apperror holds the error kinds shared by the services and mapped to
// HTTP statuses by the handlers.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrUpload      = errors.New("upload failed")
	ErrPersistence = errors.New("persistence failed")
)

// ValidationError describes rejected input. Fields maps a JSON field name to
// the rule it broke, when the failure comes from struct validation.
type ValidationError struct {
	Msg    string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Msg
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" ("+e.Fields[k]+")")
	}
	return e.Msg + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validation builds a ValidationError with a formatted message.
func Validation(format string, a ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, a...)}
}

// InvalidFields builds a ValidationError listing the offending fields.
func InvalidFields(fields map[string]string) error {
	return &ValidationError{Msg: "invalid fields", Fields: fields}
}

// NotFound wraps ErrNotFound with the kind of record that is missing.
func NotFound(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}

// Upload wraps a store failure.
func Upload(err error) error {
	return fmt.Errorf("%w: %v", ErrUpload, err)
}

// Persistence wraps a database failure.
func Persistence(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
