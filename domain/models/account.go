package models

import (
	"github.com/shopspring/decimal"
)

// Account holds an account number and a non-negative balance. Balances only
// change through Apply, and every mutation re-checks the account invariant.
type Account struct {
	Number  string          `json:"number"`
	Balance decimal.Decimal `json:"balance"`
}

// NewAccount builds and self-validates an account with its initial balance.
func NewAccount(number string, balance decimal.Decimal) (*Account, error) {
	account := &Account{Number: number, Balance: balance}

	if err := ValidateAccount(account); err != nil {
		return nil, err
	}

	return account, nil
}

// HasSufficientBalance reports whether the account can cover a debit of amount.
func (a *Account) HasSufficientBalance(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// Apply applies a single transaction's effect to the account.
//
// Debiting kinds (WITHDRAW, TRANSFER) run a full validation including the
// balance-sufficiency check before any mutation; a failed check leaves the
// account untouched. DEPOSIT credits the amount and re-runs the account
// self-check afterwards, so the non-negative invariant holds on every path.
func (a *Account) Apply(tx *Transaction) error {
	switch tx.Type {
	case TransactionTypeWithdraw, TransactionTypeTransfer:
		if err := ValidateDebit(tx, a); err != nil {
			return err
		}
		a.Balance = a.Balance.Sub(tx.Amount)
		return nil
	case TransactionTypeDeposit:
		a.Balance = a.Balance.Add(tx.Amount)
		return ValidateAccount(a)
	default:
		return NewDomainError(KindInvalidArgument, "type", "unknown transaction type")
	}
}

// Snapshot returns a value copy of the account's current state.
func (a *Account) Snapshot() *Account {
	cp := *a
	return &cp
}

// Equal reports whether both number and balance match.
func (a *Account) Equal(other *Account) bool {
	if other == nil {
		return false
	}
	return a.Number == other.Number && a.Balance.Equal(other.Balance)
}
