package repositories

import (
	"context"

	"github.com/tallyvault/ledgercore-go/domain/models"
)

// TransactionRepository is the transaction ledger: it owns per-account
// append-only histories keyed by account number, in application order.
type TransactionRepository interface {
	// Record appends a validated transaction to the account's history,
	// creating the history on first use. It performs no validation of its
	// own; the caller is trusted to have validated the record.
	Record(ctx context.Context, number string, tx *models.Transaction) error

	// HistoryFor returns an independent copy of the account's history.
	// Existence is delegated to the account directory: an unknown account
	// fails with models.ErrAccountNotFound, a known account with no
	// transactions yields an empty history.
	HistoryFor(ctx context.Context, number string) ([]models.Transaction, error)

	// HasHistory reports whether any transaction has been recorded against
	// the account.
	HasHistory(ctx context.Context, number string) bool
}
