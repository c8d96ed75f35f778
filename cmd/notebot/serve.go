package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/introspection"
	"github.com/aretw0/lifecycle/pkg/core/supervisor"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/spf13/cobra"

	"github.com/aretw0/notebot"
	"github.com/aretw0/notebot/pkg/adapters/fs"
	"github.com/aretw0/notebot/pkg/adapters/telegram"
	"github.com/aretw0/notebot/pkg/core"
)

var serveNoWatch bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot",
	Long: `Run the Telegram bot with long polling until interrupted.

The bot token is looked up in BOT_TOKEN, then TELEGRAM_BOT_TOKEN, then the
token file (token.txt) of the data directory.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := notebot.LoadConfig(dataDir)
		if err != nil {
			fatal("Error loading config", err)
		}

		token, err := notebot.ResolveToken(cfg)
		if errors.Is(err, notebot.ErrNoToken) {
			fmt.Fprintln(os.Stderr, "Error: bot token not found.")
			fmt.Fprintf(os.Stderr, "Set %s or %s, or put the token into %s.\n",
				"BOT_TOKEN", "TELEGRAM_BOT_TOKEN", cfg.TokenFile)
			os.Exit(1)
		}
		if err != nil {
			fatal("Error resolving token", err)
		}

		logger := slog.Default()
		opts := append(cfg.Options(),
			notebot.WithLogger(logger),
			notebot.WithWatcherErrorHandler(func(err error) {
				logger.Error("notes watcher failed", "error", err)
			}),
		)
		store, exporter, err := notebot.Init(cfg.Dir, opts...)
		if err != nil {
			fatal("Error initializing notebot", err)
		}
		router := core.NewRouter(core.NewService(store, exporter, logger), core.NewSessions(), logger)

		api, err := telegram.Connect(token)
		if err != nil {
			fatal("Error connecting", err)
		}
		logger.Info("authorized", "bot", api.Self.UserName)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if fsStore, ok := store.(*fs.Store); ok && !serveNoWatch {
			sup, err := startWatcher(ctx, fsStore, cfg.WatchPattern, logger)
			if err != nil {
				fatal("Error starting watcher", err)
			}
			defer func() {
				stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := sup.Stop(stopCtx); err != nil {
					logger.Warn("failed to stop watcher", "error", err)
				}
			}()
		}

		logState(logger, router, store)

		bot := telegram.New(api, router, telegram.Config{
			PollTimeout: cfg.PollTimeout,
			Logger:      logger,
		})
		if err := bot.Run(ctx); err != nil {
			fatal("Error running bot", err)
		}
		logger.Info("stopped")
	},
}

// startWatcher supervises a watcher on the note document so external edits
// show up in the log while the bot runs.
func startWatcher(ctx context.Context, store *fs.Store, pattern string, logger *slog.Logger) (stopper, error) {
	events := make(chan core.Event, 16)

	spec := supervisor.Spec{
		Name: "notes-watcher",
		Type: string(worker.TypeGoroutine),
		Factory: func() (worker.Worker, error) {
			return store.NewWatchWorker(pattern, events), nil
		},
		Backoff: supervisor.Backoff{
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     10 * time.Second,
			Multiplier:      2,
			ResetDuration:   time.Minute,
			MaxRestarts:     5,
			MaxDuration:     5 * time.Minute,
		},
		RestartPolicy: supervisor.RestartOnFailure,
	}

	sup := supervisor.New("notebot", supervisor.StrategyOneForOne, spec)
	if err := sup.Start(ctx); err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-events:
				logger.Info("note document changed", "event", event.String())
			}
		}
	}()
	return sup, nil
}

type stopper interface {
	Stop(ctx context.Context) error
}

func logState(logger *slog.Logger, components ...any) {
	for _, c := range components {
		intro, ok := c.(introspection.Introspectable)
		if !ok {
			continue
		}
		kind := "unknown"
		if comp, ok := c.(introspection.Component); ok {
			kind = comp.ComponentType()
		}
		logger.Debug("component state", "type", kind, "state", intro.State())
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "Do not watch the note document for external changes")
}
