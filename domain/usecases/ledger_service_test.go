package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallyvault/ledgercore-go/adapters/repositories/memory"
	"github.com/tallyvault/ledgercore-go/domain/models"
)

func newService() *LedgerService {
	accounts := memory.NewAccountRepository()
	transactions := memory.NewTransactionRepository(accounts)

	return NewLedgerService(accounts, transactions)
}

func balance(t *testing.T, s *LedgerService, number string) decimal.Decimal {
	t.Helper()

	account, err := s.GetAccount(context.Background(), number)
	if err != nil {
		t.Fatalf("GetAccount(%s) unexpected error: %v", number, err)
	}

	return account.Balance
}

func TestLedgerService_CreateAndGetAccount(t *testing.T) {
	ctx := context.Background()
	s := newService()

	created, err := s.CreateAccount(ctx, "1001", decimal.NewFromFloat(100))
	if err != nil {
		t.Fatalf("CreateAccount() unexpected error: %v", err)
	}

	got, err := s.GetAccount(ctx, "1001")
	if err != nil {
		t.Fatalf("GetAccount() unexpected error: %v", err)
	}
	if !got.Equal(created) {
		t.Errorf("GetAccount() = %+v, want %+v", got, created)
	}

	// A second create with the same number always fails.
	_, err = s.CreateAccount(ctx, "1001", decimal.NewFromFloat(5))
	if !errors.Is(err, models.ErrAccountExists) {
		t.Fatalf("CreateAccount() duplicate error = %v, want %v", err, models.ErrAccountExists)
	}
	if !models.IsKind(err, models.KindConflict) {
		t.Errorf("duplicate create kind = %q, want %q", models.Kind(err), models.KindConflict)
	}
}

func TestLedgerService_CreateAccountRejectsBadNumbers(t *testing.T) {
	ctx := context.Background()
	s := newService()

	for _, number := range []string{"0", "-1", "abc", ""} {
		t.Run("number "+number, func(t *testing.T) {
			_, err := s.CreateAccount(ctx, number, decimal.NewFromFloat(10))
			if !errors.Is(err, models.ErrInvalidAccountNumber) {
				t.Fatalf("CreateAccount(%q) error = %v, want %v", number, err, models.ErrInvalidAccountNumber)
			}
			if !models.IsKind(err, models.KindInvalidArgument) {
				t.Errorf("kind = %q, want %q", models.Kind(err), models.KindInvalidArgument)
			}
		})
	}
}

func TestLedgerService_Deposit(t *testing.T) {
	ctx := context.Background()
	s := newService()

	if _, err := s.CreateAccount(ctx, "1001", decimal.NewFromFloat(100)); err != nil {
		t.Fatal(err)
	}

	if err := s.Deposit(ctx, "1001", decimal.NewFromFloat(50), "salary", time.Now()); err != nil {
		t.Fatalf("Deposit() unexpected error: %v", err)
	}

	if got, want := balance(t, s, "1001"), decimal.NewFromFloat(150); !got.Equal(want) {
		t.Errorf("balance = %s, want %s", got, want)
	}

	history, err := s.GetTransactionHistory(ctx, "1001")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if history[0].Type != models.TransactionTypeDeposit || !history[0].Amount.Equal(decimal.NewFromFloat(50)) {
		t.Errorf("history[0] = {type: %s, amount: %s}, want {DEPOSIT, 50}", history[0].Type, history[0].Amount)
	}
}

func TestLedgerService_DepositErrors(t *testing.T) {
	ctx := context.Background()
	s := newService()

	if _, err := s.CreateAccount(ctx, "1001", decimal.NewFromFloat(100)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		number      string
		amount      float64
		description string
		timestamp   time.Time
		wantErr     error
		wantKind    models.ErrorKind
	}{
		{name: "Unknown Account", number: "404", amount: 10, description: "x", timestamp: time.Now(), wantErr: models.ErrAccountNotFound, wantKind: models.KindNotFound},
		{name: "Zero Amount", number: "1001", amount: 0, description: "x", timestamp: time.Now(), wantErr: models.ErrInvalidAmount, wantKind: models.KindInvalidArgument},
		{name: "Missing Description", number: "1001", amount: 10, description: "", timestamp: time.Now(), wantErr: models.ErrMissingDescription, wantKind: models.KindInvalidArgument},
		{name: "Stale Timestamp", number: "1001", amount: 10, description: "x", timestamp: time.Now().Add(-3 * time.Second), wantErr: models.ErrStaleTimestamp, wantKind: models.KindInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Deposit(ctx, tt.number, decimal.NewFromFloat(tt.amount), tt.description, tt.timestamp)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Deposit() error = %v, want %v", err, tt.wantErr)
			}
			if !models.IsKind(err, tt.wantKind) {
				t.Errorf("kind = %q, want %q", models.Kind(err), tt.wantKind)
			}

			// Failed operations leave no trace.
			if got, want := balance(t, s, "1001"), decimal.NewFromFloat(100); !got.Equal(want) {
				t.Errorf("balance = %s, want %s", got, want)
			}
			history, err := s.GetTransactionHistory(ctx, "1001")
			if err != nil {
				t.Fatal(err)
			}
			if len(history) != 0 {
				t.Errorf("history length = %d, want 0", len(history))
			}
		})
	}
}

func TestLedgerService_Withdraw(t *testing.T) {
	ctx := context.Background()
	s := newService()

	if _, err := s.CreateAccount(ctx, "1001", decimal.NewFromFloat(100)); err != nil {
		t.Fatal(err)
	}

	if err := s.Withdraw(ctx, "1001", decimal.NewFromFloat(30), "groceries", time.Now()); err != nil {
		t.Fatalf("Withdraw() unexpected error: %v", err)
	}

	if got, want := balance(t, s, "1001"), decimal.NewFromFloat(70); !got.Equal(want) {
		t.Errorf("balance = %s, want %s", got, want)
	}

	history, err := s.GetTransactionHistory(ctx, "1001")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].Type != models.TransactionTypeWithdraw {
		t.Fatalf("history = %+v, want one WITHDRAW entry", history)
	}
}

func TestLedgerService_WithdrawInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	s := newService()

	if _, err := s.CreateAccount(ctx, "1001", decimal.NewFromFloat(100)); err != nil {
		t.Fatal(err)
	}

	err := s.Withdraw(ctx, "1001", decimal.NewFromFloat(150), "too much", time.Now())
	if !errors.Is(err, models.ErrInsufficientBalance) {
		t.Fatalf("Withdraw() error = %v, want %v", err, models.ErrInsufficientBalance)
	}
	if !models.IsKind(err, models.KindInvalidState) {
		t.Errorf("kind = %q, want %q", models.Kind(err), models.KindInvalidState)
	}

	if got, want := balance(t, s, "1001"), decimal.NewFromFloat(100); !got.Equal(want) {
		t.Errorf("balance = %s, want %s (failed withdrawal must not mutate)", got, want)
	}
}

func TestLedgerService_Transfer(t *testing.T) {
	ctx := context.Background()
	s := newService()

	if _, err := s.CreateAccount(ctx, "4001", decimal.NewFromFloat(100)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateAccount(ctx, "4002", decimal.NewFromFloat(50)); err != nil {
		t.Fatal(err)
	}

	if err := s.Transfer(ctx, "4001", "4002", decimal.NewFromFloat(30), "rent", time.Now()); err != nil {
		t.Fatalf("Transfer() unexpected error: %v", err)
	}

	if got, want := balance(t, s, "4001"), decimal.NewFromFloat(70); !got.Equal(want) {
		t.Errorf("source balance = %s, want %s", got, want)
	}
	if got, want := balance(t, s, "4002"), decimal.NewFromFloat(80); !got.Equal(want) {
		t.Errorf("destination balance = %s, want %s", got, want)
	}

	fromHistory, err := s.GetTransactionHistory(ctx, "4001")
	if err != nil {
		t.Fatal(err)
	}
	if len(fromHistory) != 1 {
		t.Fatalf("source history length = %d, want 1", len(fromHistory))
	}
	if fromHistory[0].Type != models.TransactionTypeTransfer || !fromHistory[0].Amount.Equal(decimal.NewFromFloat(30)) {
		t.Errorf("source entry = {type: %s, amount: %s}, want {TRANSFER, 30}", fromHistory[0].Type, fromHistory[0].Amount)
	}
	if fromHistory[0].CounterParty != "4002" {
		t.Errorf("source entry counterparty = %q, want %q", fromHistory[0].CounterParty, "4002")
	}

	toHistory, err := s.GetTransactionHistory(ctx, "4002")
	if err != nil {
		t.Fatal(err)
	}
	if len(toHistory) != 1 {
		t.Fatalf("destination history length = %d, want 1", len(toHistory))
	}
	if toHistory[0].Type != models.TransactionTypeDeposit || !toHistory[0].Amount.Equal(decimal.NewFromFloat(30)) {
		t.Errorf("destination entry = {type: %s, amount: %s}, want {DEPOSIT, 30}", toHistory[0].Type, toHistory[0].Amount)
	}
	if toHistory[0].CounterParty != "" {
		t.Errorf("destination entry counterparty = %q, want empty", toHistory[0].CounterParty)
	}
}

func TestLedgerService_TransferConservesTotalBalance(t *testing.T) {
	ctx := context.Background()
	s := newService()

	if _, err := s.CreateAccount(ctx, "4001", decimal.NewFromFloat(100)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateAccount(ctx, "4002", decimal.NewFromFloat(50)); err != nil {
		t.Fatal(err)
	}

	before := balance(t, s, "4001").Add(balance(t, s, "4002"))

	for _, amount := range []float64{10, 25.5, 0.01} {
		if err := s.Transfer(ctx, "4001", "4002", decimal.NewFromFloat(amount), "shuffle", time.Now()); err != nil {
			t.Fatalf("Transfer(%v) unexpected error: %v", amount, err)
		}
	}

	after := balance(t, s, "4001").Add(balance(t, s, "4002"))
	if !before.Equal(after) {
		t.Errorf("total balance not conserved: before = %s, after = %s", before, after)
	}
}

func TestLedgerService_TransferFailuresLeaveNoTrace(t *testing.T) {
	ctx := context.Background()
	s := newService()

	if _, err := s.CreateAccount(ctx, "4001", decimal.NewFromFloat(100)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateAccount(ctx, "4002", decimal.NewFromFloat(50)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		from    string
		to      string
		amount  float64
		wantErr error
	}{
		{name: "Insufficient Balance", from: "4001", to: "4002", amount: 150, wantErr: models.ErrInsufficientBalance},
		{name: "Unknown Source", from: "404", to: "4002", amount: 10, wantErr: models.ErrAccountNotFound},
		{name: "Unknown Destination", from: "4001", to: "404", amount: 10, wantErr: models.ErrAccountNotFound},
		{name: "Bad Amount", from: "4001", to: "4002", amount: 0, wantErr: models.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Transfer(ctx, tt.from, tt.to, decimal.NewFromFloat(tt.amount), "doomed", time.Now())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Transfer() error = %v, want %v", err, tt.wantErr)
			}

			// Neither leg may have mutated.
			if got, want := balance(t, s, "4001"), decimal.NewFromFloat(100); !got.Equal(want) {
				t.Errorf("source balance = %s, want %s", got, want)
			}
			if got, want := balance(t, s, "4002"), decimal.NewFromFloat(50); !got.Equal(want) {
				t.Errorf("destination balance = %s, want %s", got, want)
			}

			for _, number := range []string{"4001", "4002"} {
				history, err := s.GetTransactionHistory(ctx, number)
				if err != nil {
					t.Fatal(err)
				}
				if len(history) != 0 {
					t.Errorf("history for %s length = %d, want 0", number, len(history))
				}
			}
		})
	}
}

func TestLedgerService_HistoryOrderAndIndependence(t *testing.T) {
	ctx := context.Background()
	s := newService()

	if _, err := s.CreateAccount(ctx, "1001", decimal.NewFromFloat(100)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateAccount(ctx, "1002", decimal.NewFromFloat(0)); err != nil {
		t.Fatal(err)
	}

	if err := s.Deposit(ctx, "1001", decimal.NewFromFloat(10), "first", time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := s.Withdraw(ctx, "1001", decimal.NewFromFloat(5), "second", time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := s.Transfer(ctx, "1001", "1002", decimal.NewFromFloat(20), "third", time.Now()); err != nil {
		t.Fatal(err)
	}

	history, err := s.GetTransactionHistory(ctx, "1001")
	if err != nil {
		t.Fatal(err)
	}

	wantTypes := []models.TransactionType{
		models.TransactionTypeDeposit,
		models.TransactionTypeWithdraw,
		models.TransactionTypeTransfer,
	}
	if len(history) != len(wantTypes) {
		t.Fatalf("history length = %d, want %d", len(history), len(wantTypes))
	}
	for i, want := range wantTypes {
		if history[i].Type != want {
			t.Errorf("history[%d].Type = %s, want %s", i, history[i].Type, want)
		}
	}

	// Two successive calls return independent sequences.
	other, err := s.GetTransactionHistory(ctx, "1001")
	if err != nil {
		t.Fatal(err)
	}
	other[0].Amount = decimal.NewFromFloat(9999)

	fresh, err := s.GetTransactionHistory(ctx, "1001")
	if err != nil {
		t.Fatal(err)
	}
	if !fresh[0].Amount.Equal(decimal.NewFromFloat(10)) {
		t.Errorf("mutating one returned history affected the stored one: amount = %s", fresh[0].Amount)
	}
}

func TestLedgerService_GetTransactionHistoryUnknownAccount(t *testing.T) {
	ctx := context.Background()
	s := newService()

	if _, err := s.GetTransactionHistory(ctx, "404"); !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("GetTransactionHistory() error = %v, want %v", err, models.ErrAccountNotFound)
	}
}

func TestLedgerService_GetAccountReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newService()

	if _, err := s.CreateAccount(ctx, "1001", decimal.NewFromFloat(100)); err != nil {
		t.Fatal(err)
	}

	snapshot, err := s.GetAccount(ctx, "1001")
	if err != nil {
		t.Fatal(err)
	}
	snapshot.Balance = decimal.NewFromFloat(0)

	if got, want := balance(t, s, "1001"), decimal.NewFromFloat(100); !got.Equal(want) {
		t.Errorf("mutating a returned account changed ledger state: balance = %s, want %s", got, want)
	}
}
