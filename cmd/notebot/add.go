package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addUser string
	addText string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a note for a user",
	Long:  `Append a note to the end of a user's list, exactly as if the user had sent it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := openService()
		if err != nil {
			return err
		}

		if err := svc.AddNote(cmd.Context(), addUser, addText); err != nil {
			return fmt.Errorf("error saving note: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note saved for user %s\n", addUser)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addUser, "user", "u", "", "User ID")
	addCmd.Flags().StringVarP(&addText, "text", "t", "", "Note text")
	addCmd.MarkFlagRequired("user")
	addCmd.MarkFlagRequired("text")
}
