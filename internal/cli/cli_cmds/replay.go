package cli_cmds

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tallyvault/ledgercore-go/internal/cli"
)

// scenario is the on-disk format consumed by the replay command: the accounts
// to open and the ordered operations to drive through the ledger.
type scenario struct {
	Accounts []struct {
		Number  string `json:"number"`
		Balance string `json:"balance"`
	} `json:"accounts"`
	Operations []operation `json:"operations"`
}

type operation struct {
	Op          string `json:"op"` // deposit, withdraw, transfer
	Account     string `json:"account,omitempty"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// NewReplay creates the replay command: it loads a scenario file, drives the
// ledger service through it, and prints the resulting balances and history
// sizes.
func NewReplay(params *cli.CmdParams) *cobra.Command {
	replayCmd := &cobra.Command{
		Use:   "replay <scenario-file>",
		Short: "Replay a scenario file against a fresh in-memory ledger",
		Long:  `Replay loads a JSON scenario (accounts plus an ordered list of deposit/withdraw/transfer operations), applies it through the ledger service, and prints the resulting account balances and transaction counts.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(params, cmd, args[0])
		},
	}

	return replayCmd
}

func runReplay(params *cli.CmdParams, cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scenario file: %w", err)
	}

	var sc scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return fmt.Errorf("failed to parse scenario file: %w", err)
	}

	ctx := cmd.Context()
	service := params.Service

	for _, a := range sc.Accounts {
		balance, err := decimal.NewFromString(a.Balance)
		if err != nil {
			return fmt.Errorf("account %s: bad balance %q: %w", a.Number, a.Balance, err)
		}
		if _, err := service.CreateAccount(ctx, a.Number, balance); err != nil {
			return fmt.Errorf("account %s: %w", a.Number, err)
		}
	}

	for i, op := range sc.Operations {
		amount, err := decimal.NewFromString(op.Amount)
		if err != nil {
			return fmt.Errorf("operation %d: bad amount %q: %w", i, op.Amount, err)
		}

		switch op.Op {
		case "deposit":
			err = service.Deposit(ctx, op.Account, amount, op.Description, time.Now())
		case "withdraw":
			err = service.Withdraw(ctx, op.Account, amount, op.Description, time.Now())
		case "transfer":
			err = service.Transfer(ctx, op.From, op.To, amount, op.Description, time.Now())
		default:
			err = fmt.Errorf("unknown op %q", op.Op)
		}

		if err != nil {
			return fmt.Errorf("operation %d (%s): %w", i, op.Op, err)
		}
	}

	for _, a := range sc.Accounts {
		account, err := service.GetAccount(ctx, a.Number)
		if err != nil {
			return err
		}

		history, err := service.GetTransactionHistory(ctx, a.Number)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "account %s balance=%s transactions=%d\n",
			account.Number, account.Balance.String(), len(history))
	}

	return nil
}
