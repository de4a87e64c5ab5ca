package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"

	"github.com/Roma7-7-7/node-notifier/internal/config"
)

var commands = []tb.Command{
	{Text: "on", Description: "Enable auto send, optionally with an interval in minutes"},
	{Text: "off", Description: "Disable auto send"},
	{Text: "stats", Description: "Fetch and send node status now"},
	{Text: "set_region", Description: "Set the time region, utc-12 to utc+14"},
	{Text: "get_region", Description: "Show the current time region"},
	{Text: "set_interval", Description: "Set the default auto send interval"},
	{Text: "server", Description: "Show disk, memory and CPU usage"},
	{Text: "help", Description: "List available commands"},
}

type Bot struct {
	bot *tb.Bot

	handler  *Handler
	disabler *DisableOnBlockedMiddleware
	allowed  []int64

	log *slog.Logger
}

func NewBot(conf *config.Config, handler *Handler, disabler *DisableOnBlockedMiddleware, log *slog.Logger) (*Bot, error) {
	log = log.With("component", "bot")

	bot, err := tb.NewBot(tb.Settings{
		Token:  conf.TelegramToken,
		Poller: &tb.LongPoller{Timeout: 5 * time.Second}, //nolint:mnd // it's ok
		OnError: func(err error, _ tb.Context) {
			log.Error("Unhandled bot error", "error", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Bot{
		bot: bot,

		handler:  handler,
		disabler: disabler,
		allowed:  conf.AllowedChatIDs,

		log: log,
	}, nil
}

// Start polls for updates until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if len(b.allowed) > 0 {
		b.log.Info("Restricting bot to allowed chats", "chats", b.allowed)
		b.bot.Use(middleware.Whitelist(b.allowed...))
	}
	b.bot.Use(LogErrors(b.log), b.disabler.Handle)

	b.bot.Handle("/start", b.handler.Start)
	b.bot.Handle("/help", b.handler.Help)
	b.bot.Handle("/on", b.handler.On)
	b.bot.Handle("/off", b.handler.Off)
	b.bot.Handle("/stats", b.handler.Stats)
	b.bot.Handle("/set_region", b.handler.SetRegion)
	b.bot.Handle("/get_region", b.handler.GetRegion)
	b.bot.Handle("/set_interval", b.handler.SetInterval)
	b.bot.Handle("/server", b.handler.Server)

	if err := b.bot.SetCommands(commands); err != nil {
		b.log.Warn("Failed to publish command menu", "error", err)
	}

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.bot.Start()

	return nil
}
