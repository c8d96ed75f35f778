package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/notebot/pkg/core"
)

// DefaultNotesFile is the name of the note document inside the data directory.
const DefaultNotesFile = "notes.json"

// Config holds the configuration for the filesystem store.
type Config struct {
	Path     string // Path to the JSON note document
	ReadOnly bool
	Logger   *slog.Logger
	// ErrorHandler receives runtime watcher failures which are otherwise only logged.
	ErrorHandler func(error)
}

// Store implements core.Store on top of a single JSON document.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastSave      *time.Time
	saves         int
}

// NewStore creates a new filesystem-backed store.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Load reads the note document. A missing file, invalid JSON, or a top-level
// value that is not an object all yield an empty store. Entries that are not
// lists of strings are skipped.
func (s *Store) Load(ctx context.Context) (core.NoteStore, error) {
	notes := core.NoteStore{}

	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return notes, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.config.Logger.Warn("note document is not a JSON object, treating as empty", "path", s.Path, "error", err)
		return notes, nil
	}

	for user, value := range raw {
		var list []string
		if err := json.Unmarshal(value, &list); err != nil {
			s.config.Logger.Warn("skipping malformed entry", "path", s.Path, "user", user, "error", err)
			continue
		}
		notes.Set(user, list)
	}
	return notes, nil
}

// Save overwrites the note document with indented JSON. Non-ASCII and HTML
// characters are written verbatim.
func (s *Store) Save(ctx context.Context, notes core.NoteStore) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}

	data, err := encode(notes)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(s.Path, data, 0644); err != nil {
		return err
	}

	s.recordSave()
	s.config.Logger.Debug("note document saved", "path", s.Path, "users", len(notes))
	return nil
}

func encode(notes core.NoteStore) ([]byte, error) {
	clean := make(map[string][]string, len(notes))
	for user, list := range notes {
		if len(list) > 0 {
			clean[user] = list
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(clean); err != nil {
		return nil, fmt.Errorf("failed to encode notes: %w", err)
	}
	return buf.Bytes(), nil
}

// Dir returns the directory holding the note document.
func (s *Store) Dir() string {
	return filepath.Dir(s.Path)
}

var _ core.Store = (*Store)(nil)
