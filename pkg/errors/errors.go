// Package errors provides custom error types for the tapetrail engine.
// These errors enable programmatic error checking and let callers separate
// recoverable per-record conditions from fatal input problems.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the tapetrail engine.
var (
	// ErrNotFound indicates that a requested resource was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnparseableDate indicates date text matching no known format.
	ErrUnparseableDate = errors.New("unparseable date")

	// ErrVenueAmbiguous indicates no canonical venue cleared the
	// similarity threshold for a raw venue name.
	ErrVenueAmbiguous = errors.New("venue ambiguous")

	// ErrUnmatchedRecording indicates a recording with no event in its
	// date bucket.
	ErrUnmatchedRecording = errors.New("unmatched recording")

	// ErrUnresolvedDate indicates a selector date with no known show.
	ErrUnresolvedDate = errors.New("unresolved collection date")

	// ErrMissingInput indicates a required input collection is absent or
	// empty. This is the only fatal condition in the engine.
	ErrMissingInput = errors.New("missing input")
)

// DateParseError reports date text that matched no recognized pattern.
// Callers treat it as recoverable: skip the record and note it in the
// run report.
type DateParseError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *DateParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot parse date %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("cannot parse date %q", e.Input)
}

// Is implements errors.Is support.
func (e *DateParseError) Is(target error) bool {
	return target == ErrUnparseableDate
}

// NewDateParseError creates a new DateParseError.
func NewDateParseError(input, reason string) *DateParseError {
	return &DateParseError{Input: input, Reason: reason}
}

// VenueAmbiguousError reports a raw venue name for which no existing
// canonical entry cleared the similarity threshold. Recoverable: the
// normalizer creates a fresh canonical entry.
type VenueAmbiguousError struct {
	Venue     string
	BestMatch string
	BestScore float64
	Threshold float64
}

// Error implements the error interface.
func (e *VenueAmbiguousError) Error() string {
	if e.BestMatch != "" {
		return fmt.Sprintf("venue %q: best candidate %q scored %.2f below threshold %.2f",
			e.Venue, e.BestMatch, e.BestScore, e.Threshold)
	}
	return fmt.Sprintf("venue %q: no canonical candidates", e.Venue)
}

// Is implements errors.Is support.
func (e *VenueAmbiguousError) Is(target error) bool {
	return target == ErrVenueAmbiguous
}

// UnmatchedRecordingError reports a recording whose date bucket contains
// no events. Recoverable: the recording is still emitted, unattached.
type UnmatchedRecordingError struct {
	RecordingID string
	Date        string
}

// Error implements the error interface.
func (e *UnmatchedRecordingError) Error() string {
	return fmt.Sprintf("recording %s: no event on %s", e.RecordingID, e.Date)
}

// Is implements errors.Is support.
func (e *UnmatchedRecordingError) Is(target error) bool {
	return target == ErrUnmatchedRecording
}

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// MissingInputError reports an absent or empty required input collection.
// Fatal: the run aborts.
type MissingInputError struct {
	Input   string
	Path    string
	Message string
}

// Error implements the error interface.
func (e *MissingInputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("missing input %s at %s: %s", e.Input, e.Path, e.Message)
	}
	return fmt.Sprintf("missing input %s: %s", e.Input, e.Message)
}

// Is implements errors.Is support.
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// NewMissingInputError creates a new MissingInputError.
func NewMissingInputError(input, path, message string) *MissingInputError {
	return &MissingInputError{Input: input, Path: path, Message: message}
}

// ParseError represents an error when parsing data formats.
type ParseError struct {
	Format  string // "json", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapParse wraps an error as a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}

// IOError represents an error during I/O operations.
type IOError struct {
	Operation string // "read", "write", "create"
	Path      string
	Err       error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps an error as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// Helper functions for error checking.

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDateParse checks if an error is a date parse error.
func IsDateParse(err error) bool {
	return errors.Is(err, ErrUnparseableDate)
}

// IsVenueAmbiguous checks if an error is a venue ambiguity error.
func IsVenueAmbiguous(err error) bool {
	return errors.Is(err, ErrVenueAmbiguous)
}

// IsUnmatchedRecording checks if an error is an unmatched recording error.
func IsUnmatchedRecording(err error) bool {
	return errors.Is(err, ErrUnmatchedRecording)
}

// IsMissingInput checks if an error is a fatal missing input error.
func IsMissingInput(err error) bool {
	return errors.Is(err, ErrMissingInput)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
