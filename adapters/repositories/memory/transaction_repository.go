package memory

import (
	"context"
	"sync"

	"github.com/tallyvault/ledgercore-go/domain/models"
	"github.com/tallyvault/ledgercore-go/domain/repositories"
)

// TransactionRepository is the in-memory transaction ledger. It owns the
// per-account history slices and delegates account-existence checks to the
// account directory rather than keeping an account set of its own.
type TransactionRepository struct {
	mu        sync.RWMutex
	accounts  repositories.AccountRepository
	histories map[string][]models.Transaction
}

// NewTransactionRepository creates an empty ledger bound to the given
// account directory.
func NewTransactionRepository(accounts repositories.AccountRepository) *TransactionRepository {
	return &TransactionRepository{
		accounts:  accounts,
		histories: make(map[string][]models.Transaction),
	}
}

// Record appends the transaction to the account's history, creating the
// history on first use. The record is stored by value so later caller-side
// mutation cannot reach the ledger.
func (r *TransactionRepository) Record(_ context.Context, number string, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.histories[number] = append(r.histories[number], *tx)

	return nil
}

// HistoryFor returns an independent copy of the account's history in
// application order. An account unknown to the directory fails with
// models.ErrAccountNotFound; a known account with no transactions yields an
// empty history.
func (r *TransactionRepository) HistoryFor(ctx context.Context, number string) ([]models.Transaction, error) {
	if !r.accounts.Exists(ctx, number) {
		return nil, models.ErrAccountNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.histories[number]
	out := make([]models.Transaction, len(history))
	copy(out, history)

	return out, nil
}

// HasHistory reports whether any transaction has been recorded against the
// account.
func (r *TransactionRepository) HasHistory(_ context.Context, number string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.histories[number]

	return ok
}
