package platform

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/notebot/pkg/adapters/fs"
	"github.com/aretw0/notebot/pkg/core"
)

// Init prepares the data directory and returns the configured store and exporter.
//
//	store, exporter, err := platform.Init("./data", platform.WithReadOnly(true))
func Init(dir string, opts ...Option) (core.Store, core.Exporter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initFS(dir, o)
}

func initFS(dir string, o *options) (core.Store, core.Exporter, error) {
	if dir == "" {
		dir = "."
	}
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	if !o.readOnly && (o.store == nil || o.exporter == nil) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	store := o.store
	if store == nil {
		store = fs.NewStore(fs.Config{
			Path:         resolve(dir, o.notesFile),
			ReadOnly:     o.readOnly,
			Logger:       logger,
			ErrorHandler: o.errorHandler,
		})
	}

	exporter := o.exporter
	if exporter == nil {
		exporter = fs.NewExporter(resolve(dir, o.exportFile))
	}

	return store, exporter, nil
}

// New creates a note service backed by the data directory.
func New(dir string, opts ...Option) (*core.Service, error) {
	store, exporter, err := Init(dir, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(store, exporter, o.logger), nil
}

// NewRouter creates a command router with a fresh pending-clear tracker.
func NewRouter(dir string, opts ...Option) (*core.Router, error) {
	svc, err := New(dir, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewRouter(svc, core.NewSessions(), o.logger), nil
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
