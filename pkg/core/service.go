package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Service handles the business logic for notes.
type Service struct {
	store    Store
	exporter Exporter
	logger   *slog.Logger
}

// NewService creates a new Service. A nil logger falls back to slog.Default().
func NewService(store Store, exporter Exporter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, exporter: exporter, logger: logger}
}

// Notes returns the user's notes in insertion order.
func (s *Service) Notes(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return all.Notes(userID), nil
}

// HasNotes reports whether the user has at least one note.
func (s *Service) HasNotes(ctx context.Context, userID string) (bool, error) {
	notes, err := s.Notes(ctx, userID)
	if err != nil {
		return false, err
	}
	return len(notes) > 0, nil
}

// AddNote appends a note. Duplicates are allowed.
func (s *Service) AddNote(ctx context.Context, userID, text string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if text == "" {
		return ErrEmptyNote
	}
	all, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	all.Set(userID, append(all.Notes(userID), text))
	if err := s.store.Save(ctx, all); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	s.logger.Debug("note added", "user", userID, "count", len(all[userID]))
	return nil
}

// DeleteNote removes the note at the 1-based index and returns its text.
// Removing the last note removes the user from the store.
func (s *Service) DeleteNote(ctx context.Context, userID string, index int) (string, error) {
	if userID == "" {
		return "", ErrEmptyUserID
	}
	all, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	notes := all.Notes(userID)
	if index < 1 || index > len(notes) {
		return "", fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	removed := notes[index-1]
	all.Set(userID, append(notes[:index-1], notes[index:]...))
	if err := s.store.Save(ctx, all); err != nil {
		return "", fmt.Errorf("failed to delete note: %w", err)
	}
	s.logger.Debug("note deleted", "user", userID, "index", index)
	return removed, nil
}

// Export writes the user's notes to the export document and returns its path.
// Nothing is written when the user has no notes.
func (s *Service) Export(ctx context.Context, userID string) (string, error) {
	notes, err := s.Notes(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(notes) == 0 {
		return "", ErrNoNotes
	}
	if s.exporter == nil {
		return "", errors.New("no exporter configured")
	}
	path, err := s.exporter.Export(ctx, notes)
	if err != nil {
		return "", fmt.Errorf("failed to export notes: %w", err)
	}
	s.logger.Info("notes exported", "user", userID, "count", len(notes), "path", path)
	return path, nil
}

// Clear removes all of the user's notes. It does not consult the
// pending-clear tracker; callers decide whether clearing is allowed.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	all, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := all[userID]; !ok {
		return nil
	}
	delete(all, userID)
	if err := s.store.Save(ctx, all); err != nil {
		return fmt.Errorf("failed to clear notes: %w", err)
	}
	s.logger.Info("notes cleared", "user", userID)
	return nil
}

// Watch observes changes of the persisted document if the store supports it.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx, pattern)
}
