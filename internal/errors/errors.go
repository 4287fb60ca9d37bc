// Package errors defines the structured failure type used across the build
// pipeline. Unit failures are data (a labeled kind, unit name, and message),
// not panics: one bad unit is reported by name while the rest of the batch
// compiles and is written.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes a failure.
type Kind string

const (
	// KindConfig marks a unit rejected before compilation, e.g. a missing
	// source or output path.
	KindConfig Kind = "config"
	// KindParse marks a style source that could not be read or decoded.
	KindParse Kind = "parse"
	// KindIO marks a failure writing compiled output.
	KindIO Kind = "io"
)

// Error is a named unit failure.
type Error struct {
	Kind    Kind
	Unit    string
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	var parts []string
	if e.Kind != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Kind))
	}
	if e.Unit != "" {
		parts = append(parts, "unit:"+e.Unit)
	}
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}
	return result
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Config reports a unit rejected by validation.
func Config(unit, message string) *Error {
	return &Error{Kind: KindConfig, Unit: unit, Message: message}
}

// Parse reports a style source that failed to load.
func Parse(unit, path string, cause error) *Error {
	return &Error{Kind: KindParse, Unit: unit, Path: path, Message: "loading style source", Cause: cause}
}

// IO reports a failed output write.
func IO(unit, path string, cause error) *Error {
	return &Error{Kind: KindIO, Unit: unit, Path: path, Message: "writing output", Cause: cause}
}
