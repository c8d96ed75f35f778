package core

import (
	"strconv"
)

// Menu labels, matched exactly and case-sensitively.
const (
	LabelList    = "Мои заметки"
	LabelAdd     = "Добавить заметку"
	LabelDelete  = "Удалить заметку"
	LabelExport  = "Экспорт заметок"
	LabelClear   = "Очистить все заметки"
	LabelConfirm = "Да, очистить"
	LabelCancel  = "Отмена"
)

// StartCommand is the bot command that greets the user.
const StartCommand = "start"

// MenuKind identifies a menu button.
type MenuKind int

const (
	MenuList MenuKind = iota + 1
	MenuAdd
	MenuDelete
	MenuExport
	MenuClear
	MenuConfirm
	MenuCancel
)

var menuLabels = map[string]MenuKind{
	LabelList:    MenuList,
	LabelAdd:     MenuAdd,
	LabelDelete:  MenuDelete,
	LabelExport:  MenuExport,
	LabelClear:   MenuClear,
	LabelConfirm: MenuConfirm,
	LabelCancel:  MenuCancel,
}

// Label returns the button text for the menu kind.
func (k MenuKind) Label() string {
	for label, kind := range menuLabels {
		if kind == k {
			return label
		}
	}
	return ""
}

// CommandKind tags the variant held by a Command.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandStart
	CommandMenu
	CommandIndex
	CommandText
)

func (k CommandKind) String() string {
	switch k {
	case CommandStart:
		return "start"
	case CommandMenu:
		return "menu"
	case CommandIndex:
		return "index"
	case CommandText:
		return "text"
	default:
		return "none"
	}
}

// Command is an inbound message resolved once at the router boundary.
// Only the field matching Kind is meaningful.
type Command struct {
	Kind  CommandKind
	Menu  MenuKind
	Index int
	Text  string
}

// ParseCommand classifies a message. Menu labels win over everything else,
// then all-digit text is a 1-based delete index, then any other text is a
// new note. Note that a note made only of digits can never be added this way.
func ParseCommand(msg Message) Command {
	if msg.Command == StartCommand {
		return Command{Kind: CommandStart}
	}
	if kind, ok := menuLabels[msg.Text]; ok {
		return Command{Kind: CommandMenu, Menu: kind}
	}
	if msg.Text == "" {
		return Command{Kind: CommandNone}
	}
	if isDigits(msg.Text) {
		n, err := strconv.Atoi(msg.Text)
		if err != nil {
			// Out of int range: no list is that long.
			n = 0
		}
		return Command{Kind: CommandIndex, Index: n}
	}
	return Command{Kind: CommandText, Text: msg.Text}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
