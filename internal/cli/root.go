package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// RootCMD wraps the root cobra.Command
type RootCMD struct {
	Root *cobra.Command
}

// NewRootCMD creates a new RootCMD with the given parameters
func NewRootCMD(params *CmdParams) *RootCMD {
	return &RootCMD{
		Root: NewRoot(params),
	}
}

// NewRoot creates and configures the root command
func NewRoot(params *CmdParams) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     params.Use,
		Aliases: []string{params.Alias},
		Short:   params.Short,
		Long:    params.Long,
	}

	if params.Palette == nil {
		params.Palette = []*cobra.Command{}
	}

	rootCmd.AddCommand(params.Palette...)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yaml)")

	cobra.OnInitialize(func() {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.SetConfigName("config")
			viper.AddConfigPath(".")
		}

		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err == nil {
			params.Logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
		}
	})

	return rootCmd
}
