package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error for callers that branch on the failure
// class rather than on the specific rule that fired.
type ErrorKind string

const (
	// KindInvalidArgument marks malformed input: bad account number, zero or
	// negative amount, missing description, negative initial balance.
	KindInvalidArgument ErrorKind = "invalid_argument"

	// KindInvalidState marks a rule violated by current state: insufficient
	// balance, stale timestamp.
	KindInvalidState ErrorKind = "invalid_state"

	// KindNotFound marks a reference to an account that does not exist.
	KindNotFound ErrorKind = "not_found"

	// KindConflict marks an account number that is already registered.
	KindConflict ErrorKind = "conflict"
)

// DomainError is a business-rule failure carrying its classification and the
// field that violated the rule.
type DomainError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *DomainError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewDomainError builds a DomainError for the given kind and field.
func NewDomainError(kind ErrorKind, field, message string) *DomainError {
	return &DomainError{Kind: kind, Field: field, Message: message}
}

// Kind extracts the ErrorKind from err, unwrapping as needed. Returns the
// empty string when err carries no DomainError.
func Kind(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err is, or wraps, a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return Kind(err) == kind
}

// Domain error sentinels. Comparable with errors.Is even when wrapped by the
// service layer.
var (
	// ErrInvalidAccountNumber is returned when an account number is empty or
	// does not parse as a positive integer.
	ErrInvalidAccountNumber = NewDomainError(KindInvalidArgument, "accountNumber", "account number must be a positive integer")

	// ErrNegativeBalance is returned when an account balance would go negative.
	ErrNegativeBalance = NewDomainError(KindInvalidArgument, "balance", "account balance cannot be negative")

	// ErrInvalidAmount is returned when a transaction amount is zero or negative.
	ErrInvalidAmount = NewDomainError(KindInvalidArgument, "amount", "transaction amount must be greater than zero")

	// ErrMissingDescription is returned when a transaction has no description.
	ErrMissingDescription = NewDomainError(KindInvalidArgument, "description", "transaction description is required")

	// ErrMissingTimestamp is returned when a transaction has no timestamp.
	ErrMissingTimestamp = NewDomainError(KindInvalidState, "timestamp", "transaction timestamp is required")

	// ErrStaleTimestamp is returned when a transaction timestamp is more than
	// TimestampTolerance in the past.
	ErrStaleTimestamp = NewDomainError(KindInvalidState, "timestamp", "transaction timestamp is too far in the past")

	// ErrInsufficientBalance is returned when the source account cannot cover
	// a withdrawal or transfer.
	ErrInsufficientBalance = NewDomainError(KindInvalidState, "balance", "not enough balance to make operation")

	// ErrAccountNotFound is returned when the referenced account does not exist.
	ErrAccountNotFound = NewDomainError(KindNotFound, "accountNumber", "account does not exist")

	// ErrAccountExists is returned when an account number is already registered.
	ErrAccountExists = NewDomainError(KindConflict, "accountNumber", "account already exists")
)
