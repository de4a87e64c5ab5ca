package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/Roma7-7-7/telegram"
	"github.com/robfig/cron/v3"

	"github.com/Roma7-7-7/node-notifier/internal/dal"
	"github.com/Roma7-7-7/node-notifier/internal/report"
	"github.com/Roma7-7-7/node-notifier/internal/status"
)

//go:generate mockgen -package mocks -destination mocks/subscriptions.go . SubscriptionsStore

//go:generate mockgen -package mocks -destination mocks/status.go . StatusFetcher

//go:generate mockgen -package mocks -destination mocks/telegram.go . TelegramClient

//go:generate mockgen -package mocks -destination mocks/settings.go . Settings

// FetchFailedMessage is delivered instead of a report when the node status cannot be read.
const FetchFailedMessage = "Error fetching data from the endpoint."

const heartbeatInterval = 5 * time.Minute

var (
	ErrNotConfigured   = errors.New("auto send is not configured")
	ErrNotEnabled      = errors.New("auto send is not enabled")
	ErrInvalidInterval = errors.New("interval must be positive")
)

type (
	SubscriptionsStore interface {
		GetAllSubscriptions() ([]dal.Subscription, error)
		PutSubscription(sub dal.Subscription) error
		PurgeSubscription(chatID int64) error
	}

	StatusFetcher interface {
		Status(ctx context.Context, endpoint string) (status.Report, error)
	}

	TelegramClient interface {
		SendMessage(ctx context.Context, chatID, msg string) error
	}

	Settings interface {
		DefaultInterval() int
		Region() string
		NotificationEndpointURL() string
	}

	// Subscriptions owns one recurring fetch-and-deliver job per chat.
	Subscriptions struct {
		store    SubscriptionsStore
		fetcher  StatusFetcher
		telegram TelegramClient
		settings Settings

		cron         *cron.Cron
		cycleTimeout time.Duration

		log  *slog.Logger
		mx   *sync.Mutex
		ctx  context.Context //nolint:containedctx // cron callbacks have no context of their own
		jobs map[int64]job

		stop     chan struct{}
		stopOnce *sync.Once
	}

	job struct {
		entryID  cron.EntryID
		interval int
	}
)

func NewSubscriptions(
	store SubscriptionsStore,
	fetcher StatusFetcher,
	telegram TelegramClient,
	settings Settings,
	cycleTimeout time.Duration,
	log *slog.Logger,
) *Subscriptions {
	log = log.With("component", "service").With("service", "subscriptions")
	cl := cronLogger{log: log}

	return &Subscriptions{
		store:    store,
		fetcher:  fetcher,
		telegram: telegram,
		settings: settings,

		cron:         cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl))),
		cycleTimeout: cycleTimeout,

		log:  log,
		mx:   &sync.Mutex{},
		ctx:  context.Background(),
		jobs: make(map[int64]job),

		stop:     make(chan struct{}),
		stopOnce: &sync.Once{},
	}
}

// Enable starts auto send for chatID every minutes minutes, replacing a running job.
// Zero minutes selects the configured default interval. Returns the interval in effect.
func (s *Subscriptions) Enable(chatID int64, minutes int) (int, error) {
	if minutes < 0 {
		return 0, fmt.Errorf("%d: %w", minutes, ErrInvalidInterval)
	}
	if minutes == 0 {
		minutes = s.settings.DefaultInterval()
		if minutes <= 0 {
			return 0, ErrNotConfigured
		}
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	err := s.store.PutSubscription(dal.Subscription{
		ChatID:          chatID,
		IntervalMinutes: minutes,
	})
	if err != nil {
		return 0, fmt.Errorf("put subscription: %w", err)
	}

	s.scheduleLocked(chatID, minutes)
	s.log.Info("auto send enabled", "chatID", chatID, "interval", minutes)

	return minutes, nil
}

// Disable cancels auto send for chatID. A cycle that is already running is not interrupted.
func (s *Subscriptions) Disable(chatID int64) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	j, ok := s.jobs[chatID]
	if !ok {
		return ErrNotEnabled
	}

	s.cron.Remove(j.entryID)
	delete(s.jobs, chatID)

	if err := s.store.PurgeSubscription(chatID); err != nil {
		s.log.Error("failed to purge subscription", "chatID", chatID, "error", err)
	}

	s.log.Info("auto send disabled", "chatID", chatID)
	return nil
}

// TriggerOnce runs a single cycle for chatID right away. Scheduled jobs are not affected.
func (s *Subscriptions) TriggerOnce(chatID int64) {
	s.deliver(s.context(), chatID)
}

// Interval returns the interval of the running job for chatID.
func (s *Subscriptions) Interval(chatID int64) (int, bool) {
	s.mx.Lock()
	defer s.mx.Unlock()

	j, ok := s.jobs[chatID]
	return j.interval, ok
}

func (s *Subscriptions) Active() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return len(s.jobs)
}

// Restore schedules jobs for every persisted subscription.
func (s *Subscriptions) Restore(ctx context.Context) error {
	subs, err := s.store.GetAllSubscriptions()
	if err != nil {
		return fmt.Errorf("get all subscriptions: %w", err)
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	restored := 0
	for _, sub := range subs {
		if sub.IntervalMinutes <= 0 {
			s.log.WarnContext(ctx, "skipping subscription without interval", "chatID", sub.ChatID)
			continue
		}
		s.scheduleLocked(sub.ChatID, sub.IntervalMinutes)
		restored++
	}

	s.log.InfoContext(ctx, "subscriptions restored", "count", restored)
	return nil
}

// Start runs scheduled jobs until ctx is done or Stop is called, then waits for running cycles to finish.
func (s *Subscriptions) Start(ctx context.Context) {
	s.mx.Lock()
	s.ctx = ctx
	s.mx.Unlock()

	s.log.InfoContext(ctx, "Starting scheduler", "active", s.Active())
	s.cron.Start()
	defer func() {
		<-s.cron.Stop().Done()
		s.log.InfoContext(ctx, "Stopped scheduler")
	}()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-heartbeat.C:
			s.log.InfoContext(ctx, "Process is still running", "active", s.Active())
		}
	}
}

func (s *Subscriptions) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

func (s *Subscriptions) scheduleLocked(chatID int64, minutes int) {
	if existing, ok := s.jobs[chatID]; ok {
		s.cron.Remove(existing.entryID)
	}

	id := s.cron.Schedule(cron.Every(time.Duration(minutes)*time.Minute), cron.FuncJob(func() {
		s.deliver(s.context(), chatID)
	}))
	s.jobs[chatID] = job{entryID: id, interval: minutes}
}

func (s *Subscriptions) context() context.Context {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.ctx
}

// deliver fetches the node status and sends the report or a failure notice to chatID.
// Errors end here so that one failed cycle never affects the following ones.
func (s *Subscriptions) deliver(ctx context.Context, chatID int64) {
	log := s.log.With("chatID", chatID)

	msg := s.render(ctx, log)

	sendCtx, cancel := context.WithTimeout(ctx, s.cycleTimeout)
	defer cancel()

	err := s.telegram.SendMessage(sendCtx, strconv.FormatInt(chatID, 10), msg)
	if err == nil {
		log.DebugContext(ctx, "status delivered")
		return
	}
	if !errors.Is(err, telegram.ErrForbidden) {
		log.ErrorContext(ctx, "failed to send message", "error", err)
		return
	}

	log.InfoContext(ctx, "bot is blocked by user. disabling auto send", "error", err)
	if err := s.Disable(chatID); err != nil && !errors.Is(err, ErrNotEnabled) {
		log.ErrorContext(ctx, "failed to disable auto send", "error", err)
	}
}

func (s *Subscriptions) render(ctx context.Context, log *slog.Logger) string {
	fetchCtx, cancel := context.WithTimeout(ctx, s.cycleTimeout)
	defer cancel()

	r, err := s.fetcher.Status(fetchCtx, s.settings.NotificationEndpointURL())
	if err != nil {
		log.WarnContext(ctx, "failed to fetch node status", "error", err)
		return FetchFailedMessage
	}

	return report.Status(r, s.settings.Region())
}

type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
