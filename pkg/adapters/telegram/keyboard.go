package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aretw0/notebot/pkg/core"
)

func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(core.LabelList),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(core.LabelAdd),
			tgbotapi.NewKeyboardButton(core.LabelDelete),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(core.LabelExport),
			tgbotapi.NewKeyboardButton(core.LabelClear),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func confirmKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(core.LabelConfirm),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(core.LabelCancel),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// keyboardMarkup maps a keyboard hint to reply markup. KeyboardKeep yields
// no markup so the client keeps the current keyboard.
func keyboardMarkup(k core.Keyboard) (tgbotapi.ReplyKeyboardMarkup, bool) {
	switch k {
	case core.KeyboardMain:
		return mainKeyboard(), true
	case core.KeyboardConfirm:
		return confirmKeyboard(), true
	default:
		return tgbotapi.ReplyKeyboardMarkup{}, false
	}
}
