// Package memory provides the in-memory repository implementations backing
// the ledger core. State lives in maps owned by the repositories themselves;
// nothing is shared through package-level variables.
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tallyvault/ledgercore-go/domain/models"
)

// AccountRepository is the in-memory account directory. It is the single
// owner of all Account instances.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

// NewAccountRepository creates an empty in-memory account directory.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*models.Account),
	}
}

// Create validates and inserts a new account. An already-registered number
// fails with models.ErrAccountExists; the directory never overwrites.
func (r *AccountRepository) Create(_ context.Context, number string, initialBalance decimal.Decimal) (*models.Account, error) {
	account, err := models.NewAccount(number, initialBalance)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Number]; ok {
		return nil, models.ErrAccountExists
	}

	r.accounts[account.Number] = account

	return account, nil
}

// FindByNumber returns the stored account. Callers outside the service layer
// must treat the result as read-only; mutation happens only through
// transaction application.
func (r *AccountRepository) FindByNumber(_ context.Context, number string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[number]
	if !ok {
		return nil, models.ErrAccountNotFound
	}

	return account, nil
}

// Exists reports whether the number is registered. No side effects.
func (r *AccountRepository) Exists(_ context.Context, number string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.accounts[number]

	return ok
}
