package cli_cmds

import (
	"github.com/spf13/cobra"

	"github.com/tallyvault/ledgercore-go/internal/cli"
)

// GeneratePalette builds the full set of subcommands for the root command.
func GeneratePalette(params *cli.CmdParams) []*cobra.Command {
	replayCmd := NewReplay(params)
	versionCmd := NewVersion(params)

	return []*cobra.Command{
		replayCmd,
		versionCmd,
	}
}
