// Package errors defines the coursedash error taxonomy and the handlers that
// route user-facing messages to the CLI or to a running shell.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ConfigurationError reports a broken shell definition, such as duplicate
// navigation ids. It is fatal at startup and is surfaced to the caller.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s %q: %s", e.Field, e.Value, e.Reason)
}

// NewConfigurationError builds a ConfigurationError.
func NewConfigurationError(field, value, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Reason: reason}
}

// MissingResourceError reports an optional resource that could not be used.
// Callers recover locally with a built-in default.
type MissingResourceError struct {
	Resource string
	Path     string
	Err      error
}

func (e *MissingResourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing %s at %s: %v", e.Resource, e.Path, e.Err)
	}
	return fmt.Sprintf("missing %s at %s", e.Resource, e.Path)
}

func (e *MissingResourceError) Unwrap() error {
	return e.Err
}

// IsConfiguration reports whether err wraps a ConfigurationError.
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return stderrors.As(err, &target)
}

// IsMissingResource reports whether err wraps a MissingResourceError.
func IsMissingResource(err error) bool {
	var target *MissingResourceError
	return stderrors.As(err, &target)
}
