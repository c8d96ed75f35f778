package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/notebot"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := notebot.LoadConfig(dataDir)
		if err != nil {
			return err
		}
		if token, err := notebot.ResolveToken(cfg); err == nil {
			cfg.Token = token
		}

		data, err := cfg.YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
