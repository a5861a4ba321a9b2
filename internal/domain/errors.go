package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when an input fails format or range checks
	ErrValidation = errors.New("validation failed")

	// ErrInvalidSignature is returned when a signature cannot be recovered or was produced by the wrong signer
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrNotFound is returned when a referenced pool, invoice, user or token type does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a unique record is registered twice
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidDonationPercent is returned when a donation percent is rejected by the donation policy
	ErrInvalidDonationPercent = errors.New("invalid donation percent")

	// ErrTokenTypeNotMinted is returned when an invoice has no token type assigned yet
	ErrTokenTypeNotMinted = errors.New("token type not minted")

	// ErrConfirmationTimeout is returned when a submitted transaction is not confirmed in time
	ErrConfirmationTimeout = errors.New("transaction confirmation timed out")

	// ErrTransactionPending is returned when a broadcast transaction has no known outcome yet
	ErrTransactionPending = errors.New("transaction outcome unknown")

	// ErrTransactionReverted is returned when a transaction was mined with a failed status
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrSubscriptionFailed is returned when subscription to chain events fails
	ErrSubscriptionFailed = errors.New("subscription failed")
)

// PendingTransactionError carries the hash of a broadcast transaction whose outcome is unknown.
// It matches both ErrTransactionPending and the wait error that interrupted confirmation.
type PendingTransactionError struct {
	TxHash string
	Err    error
}

func (e *PendingTransactionError) Error() string {
	return fmt.Sprintf("transaction %s outcome unknown: %v", e.TxHash, e.Err)
}

func (e *PendingTransactionError) Unwrap() []error {
	return []error{ErrTransactionPending, e.Err}
}
