package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	clearUser string
	clearYes  bool
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all notes of a user",
	Long:  `Remove all notes of a user. This cannot be undone, so --yes is required.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			return errors.New("refusing to clear without --yes")
		}

		svc, _, err := openService()
		if err != nil {
			return err
		}

		if err := svc.Clear(cmd.Context(), clearUser); err != nil {
			return fmt.Errorf("error clearing notes: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "All notes of user %s removed\n", clearUser)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().StringVarP(&clearUser, "user", "u", "", "User ID")
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Confirm removal")
	clearCmd.MarkFlagRequired("user")
}
