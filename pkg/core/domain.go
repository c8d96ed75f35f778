// Package core holds the note-taking domain: the per-user note model, the
// storage ports, the pending-clear tracker and the command router.
package core

// NoteStore maps a decimal user id to that user's notes in insertion order.
// A user present in the store always has at least one note.
type NoteStore map[string][]string

// Notes returns a copy of the user's notes, or nil if the user has none.
func (s NoteStore) Notes(userID string) []string {
	notes := s[userID]
	if len(notes) == 0 {
		return nil
	}
	out := make([]string, len(notes))
	copy(out, notes)
	return out
}

// Set replaces the user's notes. An empty list removes the user.
func (s NoteStore) Set(userID string, notes []string) {
	if len(notes) == 0 {
		delete(s, userID)
		return
	}
	s[userID] = notes
}

// Message is an inbound chat message reduced to what the router needs.
type Message struct {
	UserID    string
	FirstName string
	Text      string
	// Command is the bot command without the leading slash (e.g. "start"),
	// set by the transport when the message starts with a command entity.
	Command string
}

// Keyboard is a hint for the transport about which quick-reply buttons to show.
type Keyboard int

const (
	// KeyboardKeep leaves whatever keyboard the user currently sees.
	KeyboardKeep Keyboard = iota
	KeyboardMain
	KeyboardConfirm
)

// Reply is the router's answer to a message.
type Reply struct {
	Text     string
	Keyboard Keyboard
	// Document is a path to a file the transport should deliver after Text.
	Document string
}

// Empty reports whether there is nothing to send.
func (r Reply) Empty() bool {
	return r.Text == "" && r.Document == ""
}

// EventType represents the type of change observed on the note document.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of the persisted note document.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
