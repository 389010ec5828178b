package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"BacBoSentinel/internal/collector"
	"BacBoSentinel/internal/metrics"
	"BacBoSentinel/internal/notifier"
	"BacBoSentinel/internal/recorder"
	"BacBoSentinel/internal/session"
)

// Scheduler drives the session from two cron jobs: the primary tick that
// refreshes history and the idle tick that sends the cold message.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Session   *session.Session
	Notifier  notifier.Sender
	Recorder  recorder.Recorder
	Metrics   *metrics.Metrics
	Ctx       context.Context
	log       zerolog.Logger
}

// NewScheduler creates a new Scheduler. Jobs never overlap with themselves:
// a tick still in flight makes cron skip the next one.
func NewScheduler(ctx context.Context, col *collector.Collector, sess *session.Session, sender notifier.Sender,
	rec recorder.Recorder, m *metrics.Metrics, log zerolog.Logger) *Scheduler {
	log = log.With().Str("component", "scheduler").Logger()
	cl := cronLogger{log: log}
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		Collector: col,
		Session:   sess,
		Notifier:  sender,
		Recorder:  rec,
		Metrics:   m,
		Ctx:       ctx,
		log:       log,
	}
}

// RegisterAll registers the primary tick and the idle tick.
func (s *Scheduler) RegisterAll(tickCron, idleCron string) error {
	if _, err := s.Cron.AddFunc(tickCron, s.tick); err != nil {
		return fmt.Errorf("register tick task: %w", err)
	}
	if _, err := s.Cron.AddFunc(idleCron, s.idleTick); err != nil {
		return fmt.Errorf("register idle task: %w", err)
	}
	s.log.Info().Str("tick", tickCron).Str("idle", idleCron).Msg("tasks registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// RunTickNow executes the primary tick immediately (RUN_ON_START).
func (s *Scheduler) RunTickNow() {
	s.tick()
}

// Announce sends the startup message.
func (s *Scheduler) Announce() {
	s.trySend(notifier.FormatStartup())
}

func (s *Scheduler) tick() {
	s.Metrics.TicksTotal.Inc()

	start := time.Now()
	seq, err := s.Collector.Collect(s.Ctx)
	s.Metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.Metrics.FetchFailuresTotal.Inc()
		s.log.Warn().Err(err).Msg("fetch failed, skipping tick")
		if rerr := s.Recorder.RecordFetchFailure(&recorder.FetchFailureEvent{
			Source: s.Collector.Fetcher.Name(), Err: err.Error(), At: time.Now(),
		}); rerr != nil {
			s.log.Error().Err(rerr).Msg("record fetch failure")
		}
		return
	}

	s.logTick(s.Session.OnTick(s.Ctx, seq))
}

func (s *Scheduler) idleTick() {
	rep := s.Session.OnIdleTick(s.Ctx)
	for _, err := range rep.NotifyErrors {
		s.log.Error().Err(err).Msg("send cold message")
	}
	if rep.Fired {
		s.log.Debug().Int64("message_id", rep.MessageID).Msg("cold message sent")
	}
}

func (s *Scheduler) logTick(rep session.TickReport) {
	if !rep.NewRound {
		s.log.Debug().Msg("no new round")
		return
	}
	s.log.Info().Str("outcome", rep.Newest.String()).Msg("new round")

	if res := rep.Resolution; res != nil {
		s.log.Info().
			Str("signal", res.Signal.ID).
			Str("entry", res.Signal.Entry.String()).
			Str("outcome", res.Outcome.String()).
			Str("result", string(res.Result)).
			Msg("signal resolved")
	}
	if sig := rep.Opened; sig != nil {
		s.log.Info().
			Str("signal", sig.ID).
			Str("pattern", string(sig.Pattern)).
			Str("entry", sig.Entry.String()).
			Int("confidence", sig.Confidence).
			Msg("signal opened")
	}
	if rep.OpenErr != nil {
		s.log.Error().Err(rep.OpenErr).Msg("open signal")
	}
	for _, err := range rep.NotifyErrors {
		s.log.Error().Err(err).Msg("send notification")
	}
	for _, err := range rep.RecordErrors {
		s.log.Error().Err(err).Msg("record event")
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/placar", "placar":
		return notifier.FormatScoreboard(s.Session.Scoreboard())
	case "/status", "status":
		return notifier.FormatStatus(s.Session.Status())
	default:
		return notifier.FormatHelp()
	}
}

func (s *Scheduler) trySend(text string) {
	if _, err := s.Notifier.Send(s.Ctx, text); err != nil {
		s.log.Error().Err(err).Msg("send notification")
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
