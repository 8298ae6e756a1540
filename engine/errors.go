/*
errors.go - Centralized error types for the scheduling engine

PURPOSE:
  All error values in one place for consistency and discoverability.
  The engine itself almost never errors: input-shape problems degrade to
  documented defaults and unsatisfiable constraints become Conflict
  records. The errors here belong to the persistence boundary and to
  request validation in the API layer.

ERROR CATEGORIES:
  1. Validation errors - malformed shifts, dates, settings from callers
  2. Not-found errors  - missing stores, staff, shifts
  3. Store errors      - persistence failures surfaced to the caller

USAGE:
  if engine.IsNotFound(err) { http 404 }
  if engine.IsClientError(err) { http 400 }
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidShift is returned when a shift violates start < end.
	ErrInvalidShift = errors.New("invalid shift: start must be before end")

	// ErrInvalidPeriod is returned when a period is malformed (end before start).
	ErrInvalidPeriod = errors.New("invalid period: end before start")

	// ErrStoreNotFound is returned when a referenced store doesn't exist.
	ErrStoreNotFound = errors.New("store not found")

	// ErrStaffNotFound is returned when a referenced staff member doesn't exist.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrShiftNotFound is returned when a referenced shift doesn't exist.
	ErrShiftNotFound = errors.New("shift not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidShiftError reports which shift violated the start < end invariant.
type InvalidShiftError struct {
	StaffID StaffID
	Date    Date
	Start   TimeOfDay
	End     TimeOfDay
}

func (e *InvalidShiftError) Error() string {
	return fmt.Sprintf("invalid shift for %s on %s: %s is not before %s",
		e.StaffID, e.Date, e.Start, e.End)
}

func (e *InvalidShiftError) Unwrap() error { return ErrInvalidShift }

// SaveError wraps a persistence failure. The engine performs no retry;
// retries, if any, belong to the persistence collaborator.
type SaveError struct {
	Op  string // "save_shift", "delete_shift", "save_tiers"
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidShift) ||
		errors.Is(err, ErrInvalidPeriod)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStoreNotFound) ||
		errors.Is(err, ErrStaffNotFound) ||
		errors.Is(err, ErrShiftNotFound)
}
