package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404/NOT_FOUND.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized signals that the caller does not own the resource being mutated.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict is returned when an order is not in the expected state for the
	// requested transition, including a second confirmation of an already-settled order.
	ErrConflict = errors.New("conflict")
	// ErrAmountMismatch marks a client-reported charge amount that disagrees with the
	// server-computed total. Treated as a tampering attempt and always fatal.
	ErrAmountMismatch = errors.New("payment amount mismatch")
	// ErrDuplicateKey surfaces a storage-level uniqueness violation on a license key.
	// The registry regenerates the key exactly once before giving up.
	ErrDuplicateKey = errors.New("duplicate license key")
)

// GatewayError carries the payment processor's rejection back to the orchestrator.
// The order is left in its current state; a gateway failure is never silently
// converted into a local failed order.
type GatewayError struct {
	Status  int
	Message string
}

func (e *GatewayError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("payment gateway error (status %d)", e.Status)
	}
	return fmt.Sprintf("payment gateway error (status %d): %s", e.Status, e.Message)
}
