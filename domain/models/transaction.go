package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType defines the kind of ledger event.
type TransactionType string

const (
	// TransactionTypeDeposit credits the account the record is held against.
	TransactionTypeDeposit TransactionType = "DEPOSIT"

	// TransactionTypeWithdraw debits the account the record is held against.
	TransactionTypeWithdraw TransactionType = "WITHDRAW"

	// TransactionTypeTransfer debits the source account; the destination side
	// is recorded as a paired deposit.
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// IsDebit reports whether the kind removes funds from the recording account.
func (t TransactionType) IsDebit() bool {
	return t == TransactionTypeWithdraw || t == TransactionTypeTransfer
}

// Transaction is an immutable record of one ledger event. It is validated at
// construction and never mutated after being appended to a history.
type Transaction struct {
	ID            string          `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	CounterParty  string          `json:"counterParty,omitempty"`
	Type          TransactionType `json:"type"`
	Timestamp     time.Time       `json:"timestamp"`
}

// NewTransaction builds and self-validates a transaction record.
// counterParty is set only for transfer-origin records and is empty otherwise.
func NewTransaction(accountNumber string, amount decimal.Decimal, description, counterParty string, txType TransactionType, timestamp time.Time) (*Transaction, error) {
	tx := &Transaction{
		ID:            uuid.New().String(),
		AccountNumber: accountNumber,
		Amount:        amount,
		Description:   description,
		CounterParty:  counterParty,
		Type:          txType,
		Timestamp:     timestamp,
	}

	if err := ValidateTransaction(tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// Equal reports whether two records describe the same ledger event, ignoring
// the generated ID.
func (t *Transaction) Equal(other *Transaction) bool {
	if other == nil {
		return false
	}
	return t.AccountNumber == other.AccountNumber &&
		t.Amount.Equal(other.Amount) &&
		t.Description == other.Description &&
		t.CounterParty == other.CounterParty &&
		t.Type == other.Type &&
		t.Timestamp.Equal(other.Timestamp)
}
