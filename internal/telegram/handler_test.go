package telegram_test

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/node-notifier/internal/service"
	"github.com/Roma7-7-7/node-notifier/internal/settings"
	"github.com/Roma7-7-7/node-notifier/internal/telegram"
	"github.com/Roma7-7-7/node-notifier/internal/telegram/mocks"
)

const (
	genericError = "Something went wrong. Please try again later."
	onUsage      = "Interval must be a positive number of minutes. For example: /on 10"
	allRegions   = "utc-12, utc-11, utc-10, utc-9, utc-8, utc-7, utc-6, utc-5, utc-4, utc-3, utc-2, utc-1, " +
		"utc+0, utc+1, utc+2, utc+3, utc+4, utc+5, utc+6, utc+7, utc+8, utc+9, utc+10, utc+11, utc+12, utc+13, utc+14"
)

type handlerMocks struct {
	subscriptions *mocks.MockSubscriptions
	settings      *mocks.MockSettings
	server        *mocks.MockServer
}

type handlerTest struct {
	name    string
	payload string
	mock    func(m handlerMocks)
	want    []string
}

func runHandlerTests(t *testing.T, tests []handlerTest, fn func(*telegram.Handler) tb.HandlerFunc) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := handlerMocks{
				subscriptions: mocks.NewMockSubscriptions(ctrl),
				settings:      mocks.NewMockSettings(ctrl),
				server:        mocks.NewMockServer(ctrl),
			}
			if tt.mock != nil {
				tt.mock(m)
			}

			h := telegram.NewHandler(m.subscriptions, m.settings, m.server, slog.New(slog.DiscardHandler))
			c := stubContext(tt.payload)

			require.NoError(t, fn(h)(c))
			assert.Equal(t, tt.want, c.sent)
		})
	}
}

func TestHandler_On(t *testing.T) {
	runHandlerTests(t, []handlerTest{
		{
			name:    "explicit interval",
			payload: "5",
			mock: func(m handlerMocks) {
				m.subscriptions.EXPECT().Enable(chatID, 5).Return(5, nil)
			},
			want: []string{"Auto send enabled with interval 5 minutes."},
		},
		{
			name:    "payload with spaces",
			payload: "  15 ",
			mock: func(m handlerMocks) {
				m.subscriptions.EXPECT().Enable(chatID, 15).Return(15, nil)
			},
			want: []string{"Auto send enabled with interval 15 minutes."},
		},
		{
			name: "default interval",
			mock: func(m handlerMocks) {
				m.subscriptions.EXPECT().Enable(chatID, 0).Return(10, nil)
			},
			want: []string{"Auto send enabled with interval 10 minutes."},
		},
		{
			name: "not configured",
			mock: func(m handlerMocks) {
				m.subscriptions.EXPECT().Enable(chatID, 0).Return(0, service.ErrNotConfigured)
			},
			want: []string{"Auto send is not configured."},
		},
		{
			name:    "zero",
			payload: "0",
			want:    []string{onUsage},
		},
		{
			name:    "negative",
			payload: "-3",
			want:    []string{onUsage},
		},
		{
			name:    "not a number",
			payload: "ten",
			want:    []string{onUsage},
		},
		{
			name:    "store error",
			payload: "5",
			mock: func(m handlerMocks) {
				m.subscriptions.EXPECT().Enable(chatID, 5).Return(0, fmt.Errorf("put subscription: %w", assert.AnError))
			},
			want: []string{genericError},
		},
	}, func(h *telegram.Handler) tb.HandlerFunc { return h.On })
}

func TestHandler_Off(t *testing.T) {
	runHandlerTests(t, []handlerTest{
		{
			name: "enabled",
			mock: func(m handlerMocks) {
				m.subscriptions.EXPECT().Disable(chatID).Return(nil)
			},
			want: []string{"Auto send disabled."},
		},
		{
			name: "not enabled",
			mock: func(m handlerMocks) {
				m.subscriptions.EXPECT().Disable(chatID).Return(service.ErrNotEnabled)
			},
			want: []string{"Auto send is not enabled."},
		},
		{
			name: "error",
			mock: func(m handlerMocks) {
				m.subscriptions.EXPECT().Disable(chatID).Return(assert.AnError)
			},
			want: []string{genericError},
		},
	}, func(h *telegram.Handler) tb.HandlerFunc { return h.Off })
}

func TestHandler_Stats(t *testing.T) {
	runHandlerTests(t, []handlerTest{
		{
			name: "triggers one cycle",
			mock: func(m handlerMocks) {
				m.subscriptions.EXPECT().TriggerOnce(chatID)
			},
		},
	}, func(h *telegram.Handler) tb.HandlerFunc { return h.Stats })
}

func TestHandler_SetRegion(t *testing.T) {
	runHandlerTests(t, []handlerTest{
		{
			name:    "supported",
			payload: "utc+5",
			mock: func(m handlerMocks) {
				m.settings.EXPECT().SetRegion("utc+5").Return(settings.Region{Label: "utc+5", Zone: "Etc/GMT-5"}, nil)
			},
			want: []string{"Region set to utc+5."},
		},
		{
			name:    "upper case",
			payload: "UTC-12",
			mock: func(m handlerMocks) {
				m.settings.EXPECT().SetRegion("utc-12").Return(settings.Region{Label: "utc-12", Zone: "Etc/GMT+12"}, nil)
			},
			want: []string{"Region set to utc-12."},
		},
		{
			name:    "unsupported",
			payload: "Mars",
			mock: func(m handlerMocks) {
				m.settings.EXPECT().SetRegion("mars").Return(settings.Region{}, fmt.Errorf("%q: %w", "mars", settings.ErrUnsupportedRegion))
			},
			want: []string{"Unsupported region format: mars.\nSupported regions are: " + allRegions + ".\nFor example: /set_region utc-12"},
		},
		{
			name: "missing",
			want: []string{"Please specify a region.\nSupported regions are: " + allRegions + ".\nFor example: /set_region utc-12"},
		},
		{
			name:    "write error",
			payload: "utc+1",
			mock: func(m handlerMocks) {
				m.settings.EXPECT().SetRegion("utc+1").Return(settings.Region{}, assert.AnError)
			},
			want: []string{genericError},
		},
	}, func(h *telegram.Handler) tb.HandlerFunc { return h.SetRegion })
}

func TestHandler_GetRegion(t *testing.T) {
	runHandlerTests(t, []handlerTest{
		{
			name: "set",
			mock: func(m handlerMocks) {
				m.settings.EXPECT().Region().Return("Etc/GMT-5")
			},
			want: []string{"Current region is set to Etc/GMT-5"},
		},
		{
			name: "unset",
			mock: func(m handlerMocks) {
				m.settings.EXPECT().Region().Return("")
			},
			want: []string{"Region has not been set yet."},
		},
	}, func(h *telegram.Handler) tb.HandlerFunc { return h.GetRegion })
}

func TestHandler_Server(t *testing.T) {
	runHandlerTests(t, []handlerTest{
		{
			name: "ok",
			mock: func(m handlerMocks) {
				m.server.EXPECT().Report().Return("Server Stats:\n\n...", nil)
			},
			want: []string{"Server Stats:\n\n..."},
		},
		{
			name: "error",
			mock: func(m handlerMocks) {
				m.server.EXPECT().Report().Return("", assert.AnError)
			},
			want: []string{"Error fetching disk information."},
		},
	}, func(h *telegram.Handler) tb.HandlerFunc { return h.Server })
}

func TestHandler_SetInterval(t *testing.T) {
	usage := "Interval must be a non-negative number of minutes. For example: /set_interval 10"
	runHandlerTests(t, []handlerTest{
		{
			name:    "ok",
			payload: "15",
			mock: func(m handlerMocks) {
				m.settings.EXPECT().SetDefaultInterval(15).Return(nil)
			},
			want: []string{"Default interval set to 15 minutes."},
		},
		{
			name:    "clear",
			payload: "0",
			mock: func(m handlerMocks) {
				m.settings.EXPECT().SetDefaultInterval(0).Return(nil)
			},
			want: []string{"Default interval cleared. /on now requires an interval."},
		},
		{
			name:    "negative",
			payload: "-1",
			want:    []string{usage},
		},
		{
			name: "missing",
			want: []string{usage},
		},
		{
			name:    "write error",
			payload: "5",
			mock: func(m handlerMocks) {
				m.settings.EXPECT().SetDefaultInterval(5).Return(assert.AnError)
			},
			want: []string{genericError},
		},
	}, func(h *telegram.Handler) tb.HandlerFunc { return h.SetInterval })
}

func TestHandler_StaticReplies(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := telegram.NewHandler(mocks.NewMockSubscriptions(ctrl), mocks.NewMockSettings(ctrl), mocks.NewMockServer(ctrl), slog.New(slog.DiscardHandler))

	c := stubContext("")
	require.NoError(t, h.Start(c))
	require.NoError(t, h.Help(c))
	require.Len(t, c.sent, 2)

	assert.Contains(t, c.sent[0], "Hello! I'm a bot designed to fetch Namada Node information periodically.")
	assert.Contains(t, c.sent[0], "/set_interval <interval>")
	assert.Contains(t, c.sent[1], "List of available commands:")
	for _, cmd := range []string{"/on", "/off", "/stats", "/set_region", "/get_region", "/set_interval", "/server"} {
		assert.Contains(t, c.sent[1], cmd)
	}
}
