package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tallyvault/ledgercore-go/domain/usecases"
	"github.com/tallyvault/ledgercore-go/internal"
)

// CmdParams holds all dependencies needed by command handlers.
type CmdParams struct {
	Config  *internal.Config
	Logger  zerolog.Logger
	Service *usecases.LedgerService
	Palette []*cobra.Command
	Use     string
	Alias   string
	Short   string
	Long    string
}
