package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebot/pkg/core"
)

var exportUser string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a user's notes to the shared export document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := openService()
		if err != nil {
			return err
		}

		path, err := svc.Export(cmd.Context(), exportUser)
		if errors.Is(err, core.ErrNoNotes) {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to export")
			return nil
		}
		if err != nil {
			return fmt.Errorf("error exporting notes: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportUser, "user", "u", "", "User ID")
	exportCmd.MarkFlagRequired("user")
}
