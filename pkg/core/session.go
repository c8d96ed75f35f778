package core

import "sync"

// State is a user's position in the clear-confirmation flow.
type State int

const (
	StateIdle State = iota
	StateAwaitingClearConfirmation
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingClearConfirmation:
		return "awaiting_clear_confirmation"
	default:
		return "unknown"
	}
}

// Sessions tracks which users have a pending "clear all" request.
// It lives in memory only; pending requests are lost on restart.
type Sessions struct {
	mu      sync.RWMutex
	pending map[string]struct{}
}

// NewSessions creates an empty tracker.
func NewSessions() *Sessions {
	return &Sessions{pending: make(map[string]struct{})}
}

// State returns the user's current state.
func (s *Sessions) State(userID string) State {
	if s.Pending(userID) {
		return StateAwaitingClearConfirmation
	}
	return StateIdle
}

// Pending reports whether the user has an unconfirmed clear request.
func (s *Sessions) Pending(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.pending[userID]
	return ok
}

// Request marks a clear request for the user.
func (s *Sessions) Request(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[userID] = struct{}{}
}

// Confirm consumes the user's pending request. It returns false when there
// was none; either way the user ends up idle.
func (s *Sessions) Confirm(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[userID]
	delete(s.pending, userID)
	return ok
}

// Cancel drops the user's pending request, if any.
func (s *Sessions) Cancel(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, userID)
}

// Len returns the number of users awaiting confirmation.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pending)
}
