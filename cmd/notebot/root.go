package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebot"
	"github.com/aretw0/notebot/pkg/core"
)

var (
	verbose bool
	dataDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notebot",
	Short: "A per-user note-taking Telegram bot backed by a JSON document",
	Long: `notebot lets every chat user keep a short list of text notes:
add, list, delete by number, export, and clear all with confirmation.
Notes live in a single JSON document inside the data directory.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "dir", "d", ".", "Data directory holding notes.json and notebot.yaml")
}

// openService loads the configuration of the data directory and builds the note service.
func openService() (*core.Service, *notebot.Config, error) {
	cfg, err := notebot.LoadConfig(dataDir)
	if err != nil {
		return nil, nil, err
	}

	opts := append(cfg.Options(), notebot.WithLogger(slog.Default()))
	svc, err := notebot.New(cfg.Dir, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize notebot: %w", err)
	}
	return svc, cfg, nil
}
