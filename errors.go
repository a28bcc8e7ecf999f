package siunits

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUnitOperation is the sentinel wrapped by every UnitError.
	ErrInvalidUnitOperation = errors.New("invalid unit operation")
	// ErrInvalidRegistry is returned when a registry cannot be built from
	// the supplied prefixes and units.
	ErrInvalidRegistry = errors.New("invalid registry")
)

// UnitError describes a parse, arithmetic or conversion failure.
type UnitError struct {
	Op     string // "parse name", "parse expr", "add", "compare", ...
	Input  string
	Reason string
}

func (e *UnitError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Op, e.Input, e.Reason)
}

// Unwrap returns ErrInvalidUnitOperation for errors.Is() compatibility.
func (e *UnitError) Unwrap() error { return ErrInvalidUnitOperation }

func unitErr(op, input, format string, args ...any) error {
	return &UnitError{Op: op, Input: input, Reason: fmt.Sprintf(format, args...)}
}

func registryErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRegistry, fmt.Sprintf(format, args...))
}
