package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteUser string

var deleteCmd = &cobra.Command{
	Use:   "delete [number]",
	Short: "Delete a user's note by its 1-based number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid note number %q", args[0])
		}

		svc, _, err := openService()
		if err != nil {
			return err
		}

		removed, err := svc.DeleteNote(cmd.Context(), deleteUser, index)
		if err != nil {
			return fmt.Errorf("error deleting note: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %s\n", removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().StringVarP(&deleteUser, "user", "u", "", "User ID")
	deleteCmd.MarkFlagRequired("user")
}
