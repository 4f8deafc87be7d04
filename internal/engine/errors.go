package engine

import (
	"errors"
	"fmt"

	"github.com/roach88/saju/internal/astro"
)

// ChartError represents a failure detected while resolving a chart.
//
// Chart errors include:
//   - Invalid symbol: an input stem/branch/pillar string has no defined value
//   - Invalid preset: the named resolution preset does not exist
//   - Adapter error: the date adapter could not resolve a solar position
//   - Out of range: the requested instant falls outside adapter coverage
//
// ChartError includes structured fields for diagnostics; there is no
// recovery path, every failure is terminal for the request.
type ChartError struct {
	// Code identifies the error category.
	Code ChartErrorCode

	// Message is a human-readable description.
	Message string

	// Input is the offending input fragment, when one exists.
	Input string

	// Details contains additional context.
	Details map[string]string

	// Err is the wrapped cause, when the failure came from a collaborator.
	Err error
}

// ChartErrorCode categorizes chart errors.
type ChartErrorCode string

const (
	// ErrCodeInvalidSymbol indicates an input symbol has no defined value.
	ErrCodeInvalidSymbol ChartErrorCode = "INVALID_SYMBOL"

	// ErrCodeInvalidPreset indicates the named preset does not exist.
	ErrCodeInvalidPreset ChartErrorCode = "INVALID_PRESET"

	// ErrCodeAdapterError indicates the date adapter failed.
	ErrCodeAdapterError ChartErrorCode = "ADAPTER_ERROR"

	// ErrCodeOutOfRange indicates the instant is outside adapter coverage.
	ErrCodeOutOfRange ChartErrorCode = "OUT_OF_RANGE"
)

// Error implements the error interface.
func (e *ChartError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %s (input=%s)", e.Code, e.Message, e.Input)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/As chains.
func (e *ChartError) Unwrap() error {
	return e.Err
}

// IsInvalidSymbol returns true if the error is an invalid symbol error.
// Uses errors.As to handle wrapped errors.
func IsInvalidSymbol(err error) bool {
	var ce *ChartError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInvalidSymbol
	}
	return false
}

// IsInvalidPreset returns true if the error is an invalid preset error.
func IsInvalidPreset(err error) bool {
	var ce *ChartError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInvalidPreset
	}
	return false
}

// IsAdapterError returns true if the error is an adapter failure,
// including out-of-range instants.
func IsAdapterError(err error) bool {
	var ce *ChartError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeAdapterError || ce.Code == ErrCodeOutOfRange
	}
	return false
}

// NewInvalidSymbolError creates a ChartError for an undefined symbol.
func NewInvalidSymbolError(input string) *ChartError {
	return &ChartError{
		Code:    ErrCodeInvalidSymbol,
		Message: "input symbol has no defined stem or branch value",
		Input:   input,
	}
}

// NewInvalidPresetError creates a ChartError for an unknown preset name.
func NewInvalidPresetError(name string, known []string) *ChartError {
	return &ChartError{
		Code:    ErrCodeInvalidPreset,
		Message: "no resolution preset with this name",
		Input:   name,
		Details: map[string]string{
			"known": fmt.Sprintf("%v", known),
		},
	}
}

// NewAdapterError wraps a date-adapter failure. Out-of-range failures
// keep their own code so callers can distinguish bad coverage from a
// broken adapter.
func NewAdapterError(err error) *ChartError {
	code := ErrCodeAdapterError
	if errors.Is(err, astro.ErrOutOfRange) {
		code = ErrCodeOutOfRange
	}
	return &ChartError{
		Code:    code,
		Message: err.Error(),
		Err:     err,
	}
}
