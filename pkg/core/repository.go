package core

import "context"

// Store defines the contract for persisting the note document.
// Implementations load the whole document on every call; callers must
// re-load before each mutation because nothing is cached.
type Store interface {
	// Load returns the current document. A missing or unreadable document
	// yields an empty NoteStore rather than an error.
	Load(ctx context.Context) (NoteStore, error)

	// Save overwrites the whole document.
	Save(ctx context.Context, notes NoteStore) error
}

// Exporter writes a user's notes to a shared export document.
type Exporter interface {
	// Export writes the numbered listing and returns the path written.
	Export(ctx context.Context, notes []string) (string, error)
}

// Watchable is implemented by stores that can report external changes
// to the persisted document.
type Watchable interface {
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
