package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"BacBoSentinel/internal/collector"
	"BacBoSentinel/internal/config"
	"BacBoSentinel/internal/logger"
	"BacBoSentinel/internal/metrics"
	"BacBoSentinel/internal/notifier"
	"BacBoSentinel/internal/recorder"
	"BacBoSentinel/internal/scheduler"
	"BacBoSentinel/internal/server"
	"BacBoSentinel/internal/session"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		bootLog := logger.New(logger.Config{})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	log.Info().Msg("BacBoSentinel starting...")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	// Init fetcher
	fetcher := collector.NewHTMLFetcher(cfg.Feed.URL, cfg.Feed.ItemSelector, cfg.Feed.Window, cfg.Proxy)
	col := collector.NewCollector(fetcher, cfg.Feed.Window)
	log.Info().Str("source", fetcher.Name()).Str("url", cfg.Feed.URL).Msg("data source ready")

	// Init notifier
	var sender notifier.Sender
	var tn *notifier.TelegramNotifier
	if cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
		sender = tn
	} else {
		log.Warn().Msg("telegram not configured, messages go to the log")
		sender = notifier.NewLogNotifier(log)
	}

	// Init recorder
	rec := openRecorder(cfg.Database.SQLitePath, log)
	defer rec.Close()

	m := metrics.NewMetrics()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess := session.New(session.Config{
		WindowSize:         cfg.Feed.Window,
		ReplaceColdMessage: cfg.Telegram.ReplaceColdMessage,
	}, sender, rec, m, log)

	sched := scheduler.NewScheduler(ctx, col, sess, sender, rec, m, log)
	if err := sched.RegisterAll(cfg.Schedule.TickCron, cfg.Schedule.IdleCron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Announce()
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info().Msg("telegram polling started")
	}

	var srv *server.Server
	if cfg.HTTP.Addr != "" {
		srv = server.New(cfg.HTTP.Addr, sess, m.Handler(), log)
		go func() {
			if err := srv.Start(); err != nil {
				log.Error().Err(err).Msg("http server")
			}
		}()
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing tick now")
		go sched.RunTickNow()
	}

	log.Info().Msg("BacBoSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping...")
	cancel()
	if srv != nil {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http server shutdown")
		}
	}
	log.Info().Msg("BacBoSentinel stopped")
}

func openRecorder(path string, log zerolog.Logger) recorder.Recorder {
	if path == "" {
		return recorder.NewNoopRecorder()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Warn().Err(err).Msg("create data dir failed, using noop recorder")
			return recorder.NewNoopRecorder()
		}
	}
	sr, err := recorder.NewSQLiteRecorder(path, log)
	if err != nil {
		log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
		return recorder.NewNoopRecorder()
	}
	return sr
}
