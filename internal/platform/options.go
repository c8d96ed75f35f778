package platform

import (
	"log/slog"

	"github.com/aretw0/notebot/pkg/adapters/fs"
	"github.com/aretw0/notebot/pkg/core"
)

// options holds the internal configuration for the notebot service.
type options struct {
	store        core.Store
	exporter     core.Exporter
	logger       *slog.Logger
	notesFile    string
	exportFile   string
	readOnly     bool
	errorHandler func(error)
}

// Option defines a functional option for configuring notebot.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		notesFile:  fs.DefaultNotesFile,
		exportFile: fs.DefaultExportFile,
	}
}

// WithLogger sets the logger for the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom store (e.g. an in-memory mock).
// If provided, the default JSON file store is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithExporter allows injecting a custom exporter.
func WithExporter(exporter core.Exporter) Option {
	return func(o *options) {
		o.exporter = exporter
	}
}

// WithNotesFile sets the note document file name, relative to the data
// directory unless absolute. Defaults to "notes.json".
func WithNotesFile(name string) Option {
	return func(o *options) {
		if name != "" {
			o.notesFile = name
		}
	}
}

// WithExportFile sets the export document file name, relative to the data
// directory unless absolute. Defaults to "notes_export.txt".
func WithExportFile(name string) Option {
	return func(o *options) {
		if name != "" {
			o.exportFile = name
		}
	}
}

// WithReadOnly enables read-only mode.
// In this mode saves return core.ErrReadOnly and the data directory is not created.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures,
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
