package notebot

import (
	"log/slog"

	"github.com/aretw0/notebot/internal/platform"
	"github.com/aretw0/notebot/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring notebot.
type Option = platform.Option

// Config is the file/env configuration of the bot.
type Config = platform.Config

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom store.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithExporter allows injecting a custom exporter.
func WithExporter(exporter core.Exporter) Option {
	return platform.WithExporter(exporter)
}

// WithNotesFile sets the note document file name inside the data directory.
func WithNotesFile(name string) Option {
	return platform.WithNotesFile(name)
}

// WithExportFile sets the export document file name inside the data directory.
func WithExportFile(name string) Option {
	return platform.WithExportFile(name)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// LoadConfig reads notebot.yaml from dir and NOTEBOT_* environment variables.
func LoadConfig(dir string) (*Config, error) {
	return platform.LoadConfig(dir)
}

// ResolveToken finds the bot token: BOT_TOKEN, TELEGRAM_BOT_TOKEN, then the token file.
func ResolveToken(cfg *Config) (string, error) {
	return platform.ResolveToken(cfg)
}

// ErrNoToken is returned by ResolveToken when no token is configured.
var ErrNoToken = platform.ErrNoToken

// --- Factory ---

// New creates a note service backed by the data directory.
func New(dir string, opts ...Option) (*core.Service, error) {
	return platform.New(dir, opts...)
}

// NewRouter creates a command router backed by the data directory.
func NewRouter(dir string, opts ...Option) (*core.Router, error) {
	return platform.NewRouter(dir, opts...)
}

// Init prepares the data directory and returns the configured store and exporter.
func Init(dir string, opts ...Option) (core.Store, core.Exporter, error) {
	return platform.Init(dir, opts...)
}
