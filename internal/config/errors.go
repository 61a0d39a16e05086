package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a value fails validation.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidEnv indicates an environment variable holds an unparsable value.
	ErrInvalidEnv = errors.New("invalid environment value")

	// ErrNotFound indicates an explicitly named configuration file does not exist.
	ErrNotFound = errors.New("config file not found")
)

// ParseError reports a TOML or YAML document that could not be decoded into
// Config, including documents with unknown keys.
type ParseError struct {
	// Path is the file name, or "<reader>" for LoadFromReader.
	Path string
	// Line and Column locate TOML syntax errors. The YAML decoder embeds
	// positions in Message instead, so both stay zero for YAML input.
	Line   int
	Column int
	// Message is the decoder's own description.
	Message string
	// Err is the go-toml or yaml.v3 error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("config %s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("config %s:%d: %s", e.Path, e.Line, e.Message)
	default:
		return fmt.Sprintf("config %s: %s", e.Path, e.Message)
	}
}

// Unwrap returns the decoder error so callers can inspect it with errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Field is the dotted setting name that failed validation.
	Field string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Message)
}

// Unwrap returns ErrValidationFailed so callers can match with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
