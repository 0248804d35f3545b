package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tallyvault/ledgercore-go/domain/models"
)

// AccountRepository is the account directory: it owns the set of accounts,
// guarantees unique numbers, and is the only component that creates accounts.
type AccountRepository interface {
	// Create validates and inserts a new account with its initial balance.
	// Fails with models.ErrAccountExists when the number is already taken.
	Create(ctx context.Context, number string, initialBalance decimal.Decimal) (*models.Account, error)

	// FindByNumber returns the account or models.ErrAccountNotFound.
	FindByNumber(ctx context.Context, number string) (*models.Account, error)

	// Exists reports whether an account with the given number is registered.
	Exists(ctx context.Context, number string) bool
}
