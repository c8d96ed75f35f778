package core

import (
	"fmt"
	"strings"
)

// Reply texts.
const (
	defaultName = "друг"

	TextGreeting       = "Привет, %s! Это твой умный заметочник."
	TextNoNotes        = "У тебя пока нет заметок."
	TextAskNote        = "Напиши текст заметки:"
	TextNothingToDrop  = "У тебя нет заметок для удаления."
	TextPickNumber     = "Выбери номер заметки для удаления:"
	TextNothingExport  = "У тебя пока нет заметок для экспорта."
	TextExportReady    = "Экспорт готов: файл '%s' создан."
	TextNothingToClear = "У тебя нет заметок для очистки."
	TextAskClear       = "Точно удалить ВСЕ свои заметки? Это действие нельзя отменить."
	TextNoPending      = "Нет ожидающего подтверждения."
	TextCleared        = "Все твои заметки удалены ✅"
	TextCancelled      = "Действие отменено."
	TextNoteDeleted    = "Заметка '%s' удалена."
	TextInvalidNumber  = "Неверный номер заметки."
	TextNoteSaved      = "Заметка сохранена, %s!"
	TextFailure        = "Не получилось сохранить изменения. Попробуй ещё раз позже."

	// ExportHeader is the first line of the export document.
	ExportHeader = "Ваши заметки:"
)

// RenderList renders notes as a 1-based numbered list, one per line.
func RenderList(notes []string) string {
	var b strings.Builder
	for i, n := range notes {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, n)
	}
	return b.String()
}

// RenderExport renders the export document. Every line ends with a newline.
func RenderExport(notes []string) []byte {
	var b strings.Builder
	b.WriteString(ExportHeader)
	b.WriteString("\n")
	for i, n := range notes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, n)
	}
	return []byte(b.String())
}

func displayName(firstName string) string {
	if strings.TrimSpace(firstName) == "" {
		return defaultName
	}
	return firstName
}
