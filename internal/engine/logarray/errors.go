package logarray

import (
	"errors"
	"fmt"
)

// Errors returned by array operations.
var (
	// ErrOutOfRange indicates an index outside the legal interval of an operation.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidConfig indicates an option value that cannot be used to build an array.
	ErrInvalidConfig = errors.New("invalid array configuration")

	// ErrInvariant indicates a structural invariant violation found by Check.
	ErrInvariant = errors.New("structural invariant violated")
)

// RangeError describes an index that fell outside an operation's bounds.
type RangeError struct {
	// Op is the operation that rejected the index.
	Op string
	// Index is the offending index.
	Index int
	// Len is the array length at the time of the call.
	Len int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

// Unwrap returns ErrOutOfRange so callers can match with errors.Is.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// ConfigError describes an option value rejected at construction.
type ConfigError struct {
	// Field names the rejected option.
	Field string
	// Value is the rejected value.
	Value int
	// Min is the smallest accepted value.
	Min int
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s must be an integer >= %d, got %d", e.Field, e.Min, e.Value)
}

// Unwrap returns ErrInvalidConfig so callers can match with errors.Is.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
