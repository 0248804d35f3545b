// Package usecases holds the business operations of the ledger core.
package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallyvault/ledgercore-go/domain/models"
	"github.com/tallyvault/ledgercore-go/domain/repositories"
	"github.com/tallyvault/ledgercore-go/internal"
)

// LedgerService orchestrates deposits, withdrawals and transfers: it builds
// transaction records, applies them to accounts and records them in the
// ledger. All state is constructor-injected; the service holds no globals.
//
// A single mutex serialises operations so each one appears atomic to a
// concurrent embedder. Within a transfer the source leg is validated and
// applied in full before the destination leg is touched.
type LedgerService struct {
	mu           sync.Mutex
	accounts     repositories.AccountRepository
	transactions repositories.TransactionRepository
}

// NewLedgerService creates a ledger service over the given directory and
// ledger.
func NewLedgerService(accounts repositories.AccountRepository, transactions repositories.TransactionRepository) *LedgerService {
	return &LedgerService{
		accounts:     accounts,
		transactions: transactions,
	}
}

// CreateAccount registers a new account with its initial balance.
func (s *LedgerService) CreateAccount(ctx context.Context, number string, initialBalance decimal.Decimal) (*models.Account, error) {
	logger := internal.GetLogger().With().Str("usecase", "CreateAccount").Str("accountNumber", number).Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.Create(ctx, number, initialBalance)
	if err != nil {
		logger.Warn().Err(err).Msg("account creation rejected")
		return nil, err
	}

	logger.Info().Str("balance", account.Balance.String()).Msg("account created")

	return account.Snapshot(), nil
}

// GetAccount returns a snapshot of the account's current state.
func (s *LedgerService) GetAccount(ctx context.Context, number string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	return account.Snapshot(), nil
}

// Deposit credits amount to the account and records a DEPOSIT transaction.
func (s *LedgerService) Deposit(ctx context.Context, number string, amount decimal.Decimal, description string, timestamp time.Time) error {
	logger := internal.GetLogger().With().Str("usecase", "Deposit").Str("accountNumber", number).Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.FindByNumber(ctx, number)
	if err != nil {
		logger.Warn().Err(err).Msg("account lookup failed")
		return err
	}

	tx, err := models.NewTransaction(number, amount, description, "", models.TransactionTypeDeposit, timestamp)
	if err != nil {
		logger.Warn().Err(err).Msg("deposit rejected")
		return err
	}

	if err := account.Apply(tx); err != nil {
		return err
	}

	if err := s.transactions.Record(ctx, number, tx); err != nil {
		return fmt.Errorf("failed to record deposit: %w", err)
	}

	logger.Info().Str("amount", amount.String()).Str("balance", account.Balance.String()).Msg("deposit applied")

	return nil
}

// Withdraw debits amount from the account and records a WITHDRAW transaction.
// Fails without mutation when the balance cannot cover the amount.
func (s *LedgerService) Withdraw(ctx context.Context, number string, amount decimal.Decimal, description string, timestamp time.Time) error {
	logger := internal.GetLogger().With().Str("usecase", "Withdraw").Str("accountNumber", number).Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.FindByNumber(ctx, number)
	if err != nil {
		logger.Warn().Err(err).Msg("account lookup failed")
		return err
	}

	tx, err := models.NewTransaction(number, amount, description, "", models.TransactionTypeWithdraw, timestamp)
	if err != nil {
		logger.Warn().Err(err).Msg("withdrawal rejected")
		return err
	}

	if err := account.Apply(tx); err != nil {
		logger.Warn().Err(err).Str("amount", amount.String()).Msg("withdrawal rejected")
		return err
	}

	if err := s.transactions.Record(ctx, number, tx); err != nil {
		return fmt.Errorf("failed to record withdrawal: %w", err)
	}

	logger.Info().Str("amount", amount.String()).Str("balance", account.Balance.String()).Msg("withdrawal applied")

	return nil
}

// Transfer moves amount from one account to another. The source account
// carries a TRANSFER record naming the destination as counterparty; the
// destination carries a paired DEPOSIT record. The source leg is validated
// and applied before the destination leg is touched, so a failed debit
// leaves both accounts unchanged.
func (s *LedgerService) Transfer(ctx context.Context, fromNumber, toNumber string, amount decimal.Decimal, description string, timestamp time.Time) error {
	logger := internal.GetLogger().With().
		Str("usecase", "Transfer").
		Str("fromAccount", fromNumber).
		Str("toAccount", toNumber).
		Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	fromAccount, err := s.accounts.FindByNumber(ctx, fromNumber)
	if err != nil {
		logger.Warn().Err(err).Msg("source account lookup failed")
		return err
	}

	toAccount, err := s.accounts.FindByNumber(ctx, toNumber)
	if err != nil {
		logger.Warn().Err(err).Msg("destination account lookup failed")
		return err
	}

	fromTx, err := models.NewTransaction(fromNumber, amount, description, toNumber, models.TransactionTypeTransfer, timestamp)
	if err != nil {
		logger.Warn().Err(err).Msg("transfer rejected")
		return err
	}

	toTx, err := models.NewTransaction(toNumber, amount, description, "", models.TransactionTypeDeposit, timestamp)
	if err != nil {
		logger.Warn().Err(err).Msg("transfer rejected")
		return err
	}

	if err := fromAccount.Apply(fromTx); err != nil {
		logger.Warn().Err(err).Str("amount", amount.String()).Msg("transfer rejected")
		return err
	}

	if err := toAccount.Apply(toTx); err != nil {
		return fmt.Errorf("failed to credit destination account: %w", err)
	}

	if err := s.transactions.Record(ctx, fromNumber, fromTx); err != nil {
		return fmt.Errorf("failed to record transfer debit: %w", err)
	}

	if err := s.transactions.Record(ctx, toNumber, toTx); err != nil {
		return fmt.Errorf("failed to record transfer credit: %w", err)
	}

	logger.Info().Str("amount", amount.String()).Msg("transfer applied")

	return nil
}

// GetTransactionHistory returns the account's history in application order.
// The returned slice is an independent copy.
func (s *LedgerService) GetTransactionHistory(ctx context.Context, number string) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transactions.HistoryFor(ctx, number)
}
