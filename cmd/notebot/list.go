package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebot/pkg/core"
)

var (
	listUser string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := openService()
		if err != nil {
			return err
		}

		notes, err := svc.Notes(cmd.Context(), listUser)
		if err != nil {
			return fmt.Errorf("error listing notes: %w", err)
		}

		out := cmd.OutOrStdout()
		if listJSON {
			if notes == nil {
				notes = []string{}
			}
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			encoder.SetEscapeHTML(false)
			return encoder.Encode(notes)
		}

		if len(notes) == 0 {
			fmt.Fprintln(out, core.TextNoNotes)
			return nil
		}
		fmt.Fprintln(out, core.RenderList(notes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listUser, "user", "u", "", "User ID")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.MarkFlagRequired("user")
}
