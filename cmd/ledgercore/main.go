package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tallyvault/ledgercore-go/adapters/repositories/memory"
	"github.com/tallyvault/ledgercore-go/domain/usecases"
	"github.com/tallyvault/ledgercore-go/internal"
	"github.com/tallyvault/ledgercore-go/internal/cli"
	"github.com/tallyvault/ledgercore-go/internal/cli/cli_cmds"
)

func main() {
	cfg, logger := internal.Init()

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("error running ledgercore")
	}
}

func run(cfg *internal.Config, logger zerolog.Logger) error {
	accounts := memory.NewAccountRepository()
	transactions := memory.NewTransactionRepository(accounts)
	service := usecases.NewLedgerService(accounts, transactions)

	// Setup the root command with access to the service
	rootParams := &cli.CmdParams{
		Config:  cfg,
		Logger:  logger,
		Service: service,
		Use:     "ledgercore",
		Alias:   "lc",
		Short:   "Embeddable in-memory ledger core",
		Long:    "Ledgercore - track accounts and apply deposit, withdraw and transfer operations against an in-memory ledger",
	}

	palette := cli_cmds.GeneratePalette(rootParams)
	rootParams.Palette = palette

	rootCmd := cli.NewRootCMD(rootParams)

	if err := rootCmd.Root.Execute(); err != nil {
		return fmt.Errorf("error executing root command: %v", err)
	}

	return nil
}
