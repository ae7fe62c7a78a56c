package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by logbook operations when the requested trip
// does not exist (or was deleted). Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is the root of all input-validation failures.
// Handlers should map it (and everything wrapping it) to HTTP 422.
var ErrValidation = errors.New("validation error")

// The specific validation failures below wrap ErrValidation, so callers
// can match either the broad class or the exact rule with errors.Is.
var (
	// ErrTemporalOrder: the return timestamp precedes the departure timestamp.
	ErrTemporalOrder = fmt.Errorf("%w: return date before departure date", ErrValidation)

	// ErrOdometerOrder: the final odometer reading is below the initial one.
	ErrOdometerOrder = fmt.Errorf("%w: final odometer below initial odometer", ErrValidation)

	// ErrTollAmount: the toll flag and toll amount disagree (flag set with
	// amount <= 0, or amount > 0 without the flag).
	ErrTollAmount = fmt.Errorf("%w: toll amount does not match toll flag", ErrValidation)
)

// InsufficientBalanceError is returned when a toll charge exceeds the
// vehicle's remaining card balance. It carries the balance so the caller
// can render it for the user. Handlers should map this to HTTP 409.
type InsufficientBalanceError struct {
	VehicleID string
	Balance   int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient toll-card balance on %s: %d F CFA remaining", e.VehicleID, e.Balance)
}
