package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
)

// Effect is the action the router performs for a command.
type Effect int

const (
	EffectNone Effect = iota
	EffectGreet
	EffectList
	EffectPromptAdd
	EffectPromptDelete
	EffectExport
	EffectRequestClear
	EffectConfirmClear
	EffectRejectConfirm
	EffectCancelClear
	EffectDeleteAt
	EffectAppend
)

var effectNames = map[Effect]string{
	EffectNone:          "none",
	EffectGreet:         "greet",
	EffectList:          "list",
	EffectPromptAdd:     "prompt_add",
	EffectPromptDelete:  "prompt_delete",
	EffectExport:        "export",
	EffectRequestClear:  "request_clear",
	EffectConfirmClear:  "confirm_clear",
	EffectRejectConfirm: "reject_confirm",
	EffectCancelClear:   "cancel_clear",
	EffectDeleteAt:      "delete_at",
	EffectAppend:        "append",
}

func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return "unknown"
}

// Transition maps the user's state and a command to the next state and the
// effect to run. The state is advisory: commands other than confirm and
// cancel are processed normally while a clear is pending.
func Transition(state State, cmd Command) (State, Effect) {
	switch cmd.Kind {
	case CommandStart:
		return state, EffectGreet
	case CommandIndex:
		return state, EffectDeleteAt
	case CommandText:
		return state, EffectAppend
	case CommandMenu:
		switch cmd.Menu {
		case MenuList:
			return state, EffectList
		case MenuAdd:
			return state, EffectPromptAdd
		case MenuDelete:
			return state, EffectPromptDelete
		case MenuExport:
			return state, EffectExport
		case MenuClear:
			return StateAwaitingClearConfirmation, EffectRequestClear
		case MenuConfirm:
			if state == StateAwaitingClearConfirmation {
				return StateIdle, EffectConfirmClear
			}
			return StateIdle, EffectRejectConfirm
		case MenuCancel:
			return StateIdle, EffectCancelClear
		}
	}
	return state, EffectNone
}

// Router resolves inbound messages into commands and runs their effects.
type Router struct {
	svc      *Service
	sessions *Sessions
	logger   *slog.Logger
}

// NewRouter creates a router. A nil sessions tracker gets a fresh one.
func NewRouter(svc *Service, sessions *Sessions, logger *slog.Logger) *Router {
	if sessions == nil {
		sessions = NewSessions()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{svc: svc, sessions: sessions, logger: logger}
}

// Sessions returns the pending-clear tracker used by the router.
func (r *Router) Sessions() *Sessions {
	return r.sessions
}

// Handle processes one message. Domain outcomes such as an invalid number are
// answered with a plain reply and a nil error. Storage failures are answered
// with a generic failure reply and also returned.
func (r *Router) Handle(ctx context.Context, msg Message) (Reply, error) {
	if msg.UserID == "" {
		return Reply{}, ErrEmptyUserID
	}

	cmd := ParseCommand(msg)
	state := r.sessions.State(msg.UserID)
	next, effect := Transition(state, cmd)

	r.logger.Debug("dispatch",
		"user", msg.UserID,
		"command", cmd.Kind.String(),
		"effect", effect.String(),
		"state", state.String(),
	)

	reply, accepted, err := r.run(ctx, msg, cmd, effect)
	if err != nil {
		r.logger.Error("handler failed", "user", msg.UserID, "effect", effect.String(), "error", err)
		return Reply{Text: TextFailure}, err
	}
	if accepted {
		r.commit(msg.UserID, state, next, effect)
	}
	return reply, nil
}

func (r *Router) commit(userID string, from, to State, effect Effect) {
	if from == to {
		return
	}
	switch to {
	case StateAwaitingClearConfirmation:
		if effect == EffectRequestClear {
			r.sessions.Request(userID)
		}
	case StateIdle:
		if effect == EffectConfirmClear {
			r.sessions.Confirm(userID)
			return
		}
		r.sessions.Cancel(userID)
	}
}

// run executes the effect. The boolean reports whether the state transition
// should be committed.
func (r *Router) run(ctx context.Context, msg Message, cmd Command, effect Effect) (Reply, bool, error) {
	switch effect {
	case EffectGreet:
		return Reply{Text: fmt.Sprintf(TextGreeting, displayName(msg.FirstName)), Keyboard: KeyboardMain}, true, nil

	case EffectList:
		notes, err := r.svc.Notes(ctx, msg.UserID)
		if err != nil {
			return Reply{}, false, err
		}
		if len(notes) == 0 {
			return Reply{Text: TextNoNotes}, true, nil
		}
		return Reply{Text: RenderList(notes)}, true, nil

	case EffectPromptAdd:
		return Reply{Text: TextAskNote}, true, nil

	case EffectPromptDelete:
		notes, err := r.svc.Notes(ctx, msg.UserID)
		if err != nil {
			return Reply{}, false, err
		}
		if len(notes) == 0 {
			return Reply{Text: TextNothingToDrop}, true, nil
		}
		return Reply{Text: TextPickNumber + "\n" + RenderList(notes)}, true, nil

	case EffectExport:
		path, err := r.svc.Export(ctx, msg.UserID)
		if errors.Is(err, ErrNoNotes) {
			return Reply{Text: TextNothingExport}, true, nil
		}
		if err != nil {
			return Reply{}, false, err
		}
		return Reply{Text: fmt.Sprintf(TextExportReady, filepath.Base(path)), Document: path}, true, nil

	case EffectRequestClear:
		ok, err := r.svc.HasNotes(ctx, msg.UserID)
		if err != nil {
			return Reply{}, false, err
		}
		if !ok {
			return Reply{Text: TextNothingToClear}, false, nil
		}
		return Reply{Text: TextAskClear, Keyboard: KeyboardConfirm}, true, nil

	case EffectConfirmClear:
		if err := r.svc.Clear(ctx, msg.UserID); err != nil {
			return Reply{}, false, err
		}
		return Reply{Text: TextCleared, Keyboard: KeyboardMain}, true, nil

	case EffectRejectConfirm:
		return Reply{Text: TextNoPending, Keyboard: KeyboardMain}, true, nil

	case EffectCancelClear:
		return Reply{Text: TextCancelled, Keyboard: KeyboardMain}, true, nil

	case EffectDeleteAt:
		removed, err := r.svc.DeleteNote(ctx, msg.UserID, cmd.Index)
		if errors.Is(err, ErrInvalidIndex) {
			return Reply{Text: TextInvalidNumber}, true, nil
		}
		if err != nil {
			return Reply{}, false, err
		}
		return Reply{Text: fmt.Sprintf(TextNoteDeleted, removed)}, true, nil

	case EffectAppend:
		if err := r.svc.AddNote(ctx, msg.UserID, cmd.Text); err != nil {
			return Reply{}, false, err
		}
		return Reply{Text: fmt.Sprintf(TextNoteSaved, displayName(msg.FirstName))}, true, nil
	}
	return Reply{}, true, nil
}
