package telegram

import (
	"errors"
	"log/slog"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/node-notifier/internal/service"
)

// DisableOnBlockedMiddleware stops auto send for a chat once Telegram reports that the bot was blocked there.
type DisableOnBlockedMiddleware struct {
	subscriptions Subscriptions

	log *slog.Logger
}

func NewDisableOnBlockedMiddleware(subscriptions Subscriptions, log *slog.Logger) *DisableOnBlockedMiddleware {
	return &DisableOnBlockedMiddleware{
		subscriptions: subscriptions,
		log:           log.With("component", "middleware"),
	}
}

func (m *DisableOnBlockedMiddleware) Handle(next tb.HandlerFunc) tb.HandlerFunc {
	return func(c tb.Context) error {
		rootErr := next(c)
		if !isBlocked(rootErr) {
			return rootErr
		}

		chat := c.Chat()
		if chat == nil {
			m.log.Warn("Chat is not present in telegram context")
			return rootErr
		}

		m.log.Warn("Bot is blocked. Disabling auto send", "chatID", chat.ID)
		err := m.subscriptions.Disable(chat.ID)
		if err != nil && !errors.Is(err, service.ErrNotEnabled) {
			m.log.Error("Disable auto send failed", "chatID", chat.ID, "error", err)
		}
		return rootErr
	}
}

func isBlocked(err error) bool {
	return errors.Is(err, tb.ErrBlockedByUser) ||
		errors.Is(err, tb.ErrKickedFromGroup) ||
		errors.Is(err, tb.ErrKickedFromSuperGroup)
}

// LogErrors logs every error returned by a handler and passes it on.
func LogErrors(log *slog.Logger) tb.MiddlewareFunc {
	log = log.With("component", "middleware")
	return func(next tb.HandlerFunc) tb.HandlerFunc {
		return func(c tb.Context) error {
			err := next(c)
			if err != nil {
				var chatID int64
				if chat := c.Chat(); chat != nil {
					chatID = chat.ID
				}
				log.Error("Handler failed", "chatID", chatID, "command", c.Text(), "error", err)
			}
			return err
		}
	}
}
