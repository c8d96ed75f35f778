package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/notebot"
	"github.com/aretw0/notebot/pkg/core"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Dump the state of the store and router as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := notebot.LoadConfig(dataDir)
		if err != nil {
			return err
		}

		store, exporter, err := notebot.Init(cfg.Dir, cfg.Options()...)
		if err != nil {
			return fmt.Errorf("failed to initialize notebot: %w", err)
		}
		router := core.NewRouter(core.NewService(store, exporter, nil), core.NewSessions(), nil)

		out := map[string]any{}
		for _, c := range []any{store, router} {
			intro, ok := c.(introspection.Introspectable)
			if !ok {
				continue
			}
			if comp, ok := c.(introspection.Component); ok {
				out[comp.ComponentType()] = intro.State()
			}
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
