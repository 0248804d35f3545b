package models

import (
	"strconv"
	"strings"
	"time"
)

// TimestampTolerance is how far in the past a transaction timestamp may lie
// at validation time. There is deliberately no bound on future timestamps.
const TimestampTolerance = 2 * time.Second

// ValidateAccount checks the structural rules for an account: the number must
// parse as a positive integer and the balance must be non-negative. Checks
// fail fast in that order.
func ValidateAccount(account *Account) error {
	number := strings.TrimSpace(account.Number)
	if number == "" {
		return ErrInvalidAccountNumber
	}

	n, err := strconv.ParseInt(number, 10, 64)
	if err != nil || n <= 0 {
		return ErrInvalidAccountNumber
	}

	if account.Balance.IsNegative() {
		return ErrNegativeBalance
	}

	return nil
}

// ValidateTransaction runs the self-validation rules: positive amount, present
// description, and a timestamp no more than TimestampTolerance in the past.
// It is a pure check with no side effects.
func ValidateTransaction(tx *Transaction) error {
	if !tx.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(tx.Description) == "" {
		return ErrMissingDescription
	}

	if tx.Timestamp.IsZero() {
		return ErrMissingTimestamp
	}

	if tx.Timestamp.Before(time.Now().Add(-TimestampTolerance)) {
		return ErrStaleTimestamp
	}

	return nil
}

// ValidateDebit runs the full validation required before debiting: the
// self-validation rules plus the balance-sufficiency check against the source
// account's current balance.
func ValidateDebit(tx *Transaction, account *Account) error {
	if err := ValidateTransaction(tx); err != nil {
		return err
	}

	if tx.Type.IsDebit() && !account.HasSufficientBalance(tx.Amount) {
		return ErrInsufficientBalance
	}

	return nil
}
