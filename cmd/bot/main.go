package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	tc "github.com/Roma7-7-7/telegram"
	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/node-notifier/internal/config"
	"github.com/Roma7-7-7/node-notifier/internal/dal"
	"github.com/Roma7-7-7/node-notifier/internal/dal/migrations"
	"github.com/Roma7-7-7/node-notifier/internal/host"
	"github.com/Roma7-7-7/node-notifier/internal/service"
	"github.com/Roma7-7-7/node-notifier/internal/settings"
	"github.com/Roma7-7-7/node-notifier/internal/status"
	"github.com/Roma7-7-7/node-notifier/internal/telegram"
	"github.com/Roma7-7-7/node-notifier/pkg/clock"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.NewConfig()
	if err != nil {
		slog.Error("Failed to process env vars", "error", err)
		return 1
	}

	log := mustLogger(conf.Dev)

	store, err := settings.Load(conf.SettingsPath)
	if err != nil {
		log.Error("Failed to load settings", "path", conf.SettingsPath, "error", err)
		return 1
	}

	if err = conf.ResolveToken(ctx, store.TelegramToken()); err != nil {
		log.Error("Failed to resolve telegram token", "error", err)
		return 1
	}

	db, err := openDB(conf.DBPath, log)
	if err != nil {
		log.Error("Failed to open database", "path", conf.DBPath, "error", err)
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	boltDB, err := dal.NewBoltDB(db, clock.New())
	if err != nil {
		log.Error("Failed to create store", "error", err)
		return 1
	}

	sender := telegram.NewThrottledSender(
		tc.NewClient(&http.Client{Timeout: conf.TelegramTimeout}, conf.TelegramToken),
		conf.SendRate,
	)

	subscriptionsSvc := service.NewSubscriptions(
		boltDB,
		status.NewClient(conf.StatusTimeout),
		sender,
		store,
		conf.CycleTimeout,
		log,
	)
	serverSvc := service.NewServer(host.NewReader("/"), log)

	if err = subscriptionsSvc.Restore(ctx); err != nil {
		log.Error("Failed to restore subscriptions", "error", err)
		return 1
	}

	handler := telegram.NewHandler(subscriptionsSvc, store, serverSvc, log)
	bot, err := telegram.NewBot(conf, handler, telegram.NewDisableOnBlockedMiddleware(subscriptionsSvc, log), log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		return 1
	}

	wg := &sync.WaitGroup{}
	wg.Go(func() {
		subscriptionsSvc.Start(ctx)
	})

	log.Info("Starting bot", "endpoint", store.NotificationEndpointURL(), "active", subscriptionsSvc.Active())
	if err = bot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Failed to start bot", "error", err)
	}

	subscriptionsSvc.Stop()
	wg.Wait()
	log.Info("Stopped bot")
	return 0
}

func openDB(path string, log *slog.Logger) (*bbolt.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd,gosec // data dir
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, nil) //nolint:mnd // file mode
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err = migrations.RunMigrations(db, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
