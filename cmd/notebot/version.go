package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebot"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notebot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notebot version %s\n", strings.TrimSpace(notebot.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
