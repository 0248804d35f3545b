package cli_cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyvault/ledgercore-go/internal"
	"github.com/tallyvault/ledgercore-go/internal/cli"
)

// NewVersion creates the version command
func NewVersion(_ *cli.CmdParams) *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of ledgercore",
		Long:  `Print the version information for ledgercore including build details.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "ledgercore")
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", internal.VersionInfo())
		},
	}

	return versionCmd
}
