package engine

import (
	"errors"
	"fmt"
)

// MissingFieldError rejects an operation before any write happens. The
// presentation layer decides how to collect the missing input.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// NotFoundError reports a lookup miss against the static catalog.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ErrBusy rejects a mutation that would overlap an in-flight one on the
// same store (photo upload, checkout).
var ErrBusy = errors.New("another operation is in flight, try again")

// ErrPaymentUnavailable means no payment provider is configured. Checkout
// is skipped; every other feature keeps working.
var ErrPaymentUnavailable = errors.New("payment provider not available")
