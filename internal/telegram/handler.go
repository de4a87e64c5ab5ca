package telegram

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/node-notifier/internal/service"
	"github.com/Roma7-7-7/node-notifier/internal/settings"
)

//go:generate mockgen -package mocks -destination mocks/subscriptions.go . Subscriptions

//go:generate mockgen -package mocks -destination mocks/settings.go . Settings

//go:generate mockgen -package mocks -destination mocks/server.go . Server

const (
	genericErrorMsg = "Something went wrong. Please try again later."

	msgWelcome = "Hello! I'm a bot designed to fetch Namada Node information periodically.\n" +
		"You can use commands such as:\n\n" +
		"/on <interval> - To enable automatic data fetching with a specified interval.\n" +
		"/off - To disable automatic data fetching.\n" +
		"/stats - To manually fetch and send blockchain-related data.\n" +
		"/set_region <region> - To set the time region. Supported regions: utc-12 to utc+14.\n" +
		"/get_region - To get the currently set region.\n" +
		"/set_interval <interval> - To change the default interval used by /on.\n" +
		"/server - To get server statistics including disk, memory, and CPU usage.\n" +
		"/help - To view the list of available commands.\n\n" +
		"Enjoy using this bot!"

	msgHelp = "List of available commands:\n\n" +
		"/on <interval> - Enable auto-send with a specified interval in minutes.\n" +
		"/off - Disable auto-send.\n" +
		"/stats - Manually fetch and send blockchain-related data.\n" +
		"/set_region <region> - Set the time region. Supported regions: utc-12 to utc+14.\n" +
		"/get_region - Get the current set region.\n" +
		"/set_interval <interval> - Set the default auto-send interval in minutes.\n" +
		"/server - Get server statistics including disk, memory, and CPU usage."

	msgAutoSendEnabled    = "Auto send enabled with interval %d minutes."
	msgAutoSendDisabled   = "Auto send disabled."
	msgNotConfigured      = "Auto send is not configured."
	msgNotEnabled         = "Auto send is not enabled."
	msgOnUsage            = "Interval must be a positive number of minutes. For example: /on 10"
	msgRegionSet          = "Region set to %s."
	msgRegionMissing      = "Please specify a region.\nSupported regions are: %s.\nFor example: /set_region %s"
	msgRegionUnsupported  = "Unsupported region format: %s.\nSupported regions are: %s.\nFor example: /set_region %s"
	msgCurrentRegion      = "Current region is set to %s"
	msgRegionNotSet       = "Region has not been set yet."
	msgServerFailed       = "Error fetching disk information."
	msgDefaultIntervalSet = "Default interval set to %d minutes."
	msgSetIntervalUsage   = "Interval must be a non-negative number of minutes. For example: /set_interval 10"
	msgDefaultIntervalOff = "Default interval cleared. /on now requires an interval."
)

type Subscriptions interface {
	Enable(chatID int64, minutes int) (int, error)
	Disable(chatID int64) error
	TriggerOnce(chatID int64)
}

type Settings interface {
	SetRegion(input string) (settings.Region, error)
	Region() string
	SetDefaultInterval(minutes int) error
}

type Server interface {
	Report() (string, error)
}

type Handler struct {
	subscriptions Subscriptions
	settings      Settings
	server        Server

	log *slog.Logger
}

func NewHandler(subscriptions Subscriptions, settings Settings, server Server, log *slog.Logger) *Handler {
	return &Handler{
		subscriptions: subscriptions,
		settings:      settings,
		server:        server,
		log:           log.With("component", "handler"),
	}
}

func (h *Handler) Start(c tb.Context) error {
	h.log.Debug("start handler called", "chatID", c.Chat().ID)
	return c.Send(msgWelcome)
}

func (h *Handler) Help(c tb.Context) error {
	return c.Send(msgHelp)
}

// On enables auto send. Without a payload the configured default interval is used.
func (h *Handler) On(c tb.Context) error {
	chatID := c.Chat().ID

	minutes := 0
	if payload := payloadOf(c); payload != "" {
		m, err := strconv.Atoi(payload)
		if err != nil || m <= 0 {
			return c.Send(msgOnUsage)
		}
		minutes = m
	}

	interval, err := h.subscriptions.Enable(chatID, minutes)
	switch {
	case err == nil:
		return c.Send(fmt.Sprintf(msgAutoSendEnabled, interval))
	case errors.Is(err, service.ErrNotConfigured):
		return c.Send(msgNotConfigured)
	case errors.Is(err, service.ErrInvalidInterval):
		return c.Send(msgOnUsage)
	default:
		h.log.Error("failed to enable auto send", "chatID", chatID, "interval", minutes, "error", err)
		return c.Send(genericErrorMsg)
	}
}

func (h *Handler) Off(c tb.Context) error {
	chatID := c.Chat().ID

	err := h.subscriptions.Disable(chatID)
	switch {
	case err == nil:
		return c.Send(msgAutoSendDisabled)
	case errors.Is(err, service.ErrNotEnabled):
		return c.Send(msgNotEnabled)
	default:
		h.log.Error("failed to disable auto send", "chatID", chatID, "error", err)
		return c.Send(genericErrorMsg)
	}
}

// Stats runs one fetch-and-deliver cycle. The report is pushed to the chat by the scheduler.
func (h *Handler) Stats(c tb.Context) error {
	h.subscriptions.TriggerOnce(c.Chat().ID)
	return nil
}

func (h *Handler) SetRegion(c tb.Context) error {
	input := strings.ToLower(payloadOf(c))
	supported := settings.Regions()

	if input == "" {
		return c.Send(fmt.Sprintf(msgRegionMissing, strings.Join(supported, ", "), supported[0]))
	}

	region, err := h.settings.SetRegion(input)
	switch {
	case err == nil:
		h.log.Info("region updated", "chatID", c.Chat().ID, "region", region.Zone)
		return c.Send(fmt.Sprintf(msgRegionSet, region.Label))
	case errors.Is(err, settings.ErrUnsupportedRegion):
		return c.Send(fmt.Sprintf(msgRegionUnsupported, input, strings.Join(supported, ", "), supported[0]))
	default:
		h.log.Error("failed to set region", "chatID", c.Chat().ID, "region", input, "error", err)
		return c.Send(genericErrorMsg)
	}
}

func (h *Handler) GetRegion(c tb.Context) error {
	region := h.settings.Region()
	if region == "" {
		return c.Send(msgRegionNotSet)
	}
	return c.Send(fmt.Sprintf(msgCurrentRegion, region))
}

func (h *Handler) Server(c tb.Context) error {
	msg, err := h.server.Report()
	if err != nil {
		h.log.Error("failed to read server stats", "chatID", c.Chat().ID, "error", err)
		return c.Send(msgServerFailed)
	}
	return c.Send(msg)
}

// SetInterval changes the default interval used by a bare /on. Zero clears it.
func (h *Handler) SetInterval(c tb.Context) error {
	minutes, err := strconv.Atoi(payloadOf(c))
	if err != nil || minutes < 0 {
		return c.Send(msgSetIntervalUsage)
	}

	if err := h.settings.SetDefaultInterval(minutes); err != nil {
		h.log.Error("failed to set default interval", "chatID", c.Chat().ID, "interval", minutes, "error", err)
		return c.Send(genericErrorMsg)
	}

	if minutes == 0 {
		return c.Send(msgDefaultIntervalOff)
	}
	return c.Send(fmt.Sprintf(msgDefaultIntervalSet, minutes))
}

func payloadOf(c tb.Context) string {
	m := c.Message()
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m.Payload)
}
