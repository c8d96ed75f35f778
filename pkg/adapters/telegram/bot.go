// Package telegram connects the note router to the Telegram Bot API using
// long polling.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/aretw0/notebot/pkg/core"
)

// DefaultPollTimeout is the long-polling timeout in seconds.
const DefaultPollTimeout = 60

// API is the subset of *tgbotapi.BotAPI used by the bot.
type API interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Handler answers inbound messages. *core.Router implements it.
type Handler interface {
	Handle(ctx context.Context, msg core.Message) (core.Reply, error)
}

// Config holds the configuration for the bot transport.
type Config struct {
	PollTimeout int
	Logger      *slog.Logger
}

// Bot receives updates and sends the handler's replies back to the chat.
type Bot struct {
	api     API
	handler Handler
	config  Config
}

// New creates a new Bot.
func New(api API, handler Handler, config Config) *Bot {
	if config.PollTimeout <= 0 {
		config.PollTimeout = DefaultPollTimeout
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Bot{api: api, handler: handler, config: config}
}

// Connect authenticates against the Bot API with the given token.
func Connect(token string) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	return api, nil
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.config.PollTimeout
	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	b.config.Logger.Info("polling for updates", "timeout", u.Timeout)
	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.dispatch(ctx, update)
		}
	}
}

// dispatch handles one update. Failures are logged, never returned, so a
// single bad update cannot stop the polling loop.
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	msg, chatID, ok := toMessage(update)
	if !ok {
		return
	}

	logger := b.config.Logger.With(
		"update_id", update.UpdateID,
		"request_id", uuid.NewString(),
		"user", msg.UserID,
	)

	reply, err := b.handler.Handle(ctx, msg)
	if err != nil {
		logger.Error("failed to handle message", "error", err)
	}
	if reply.Empty() {
		logger.Debug("nothing to reply")
		return
	}

	if err := b.send(chatID, reply); err != nil {
		logger.Error("failed to send reply", "error", err)
		return
	}
	logger.Debug("reply sent", "keyboard", int(reply.Keyboard), "document", reply.Document != "")
}

func (b *Bot) send(chatID int64, reply core.Reply) error {
	if reply.Text != "" {
		out := tgbotapi.NewMessage(chatID, reply.Text)
		if markup, ok := keyboardMarkup(reply.Keyboard); ok {
			out.ReplyMarkup = markup
		}
		if _, err := b.api.Send(out); err != nil {
			return fmt.Errorf("send message: %w", err)
		}
	}
	if reply.Document != "" {
		doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(reply.Document))
		if _, err := b.api.Send(doc); err != nil {
			return fmt.Errorf("send document: %w", err)
		}
	}
	return nil
}

// toMessage extracts the router input from an update. Updates without a
// message or without a sender are skipped.
func toMessage(update tgbotapi.Update) (core.Message, int64, bool) {
	m := update.Message
	if m == nil || m.From == nil || m.Chat == nil {
		return core.Message{}, 0, false
	}
	msg := core.Message{
		UserID:    strconv.FormatInt(m.From.ID, 10),
		FirstName: m.From.FirstName,
		Text:      m.Text,
	}
	if m.IsCommand() {
		msg.Command = m.Command()
	}
	return msg, m.Chat.ID, true
}
