// Package session holds the per-process signal state and exposes the two
// entry points driven by the scheduler: OnTick and OnIdleTick.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"BacBoSentinel/internal/calculator"
	"BacBoSentinel/internal/history"
	"BacBoSentinel/internal/lifecycle"
	"BacBoSentinel/internal/metrics"
	"BacBoSentinel/internal/model"
	"BacBoSentinel/internal/notifier"
	"BacBoSentinel/internal/recorder"
	"BacBoSentinel/internal/strategy"
)

// Config tunes a Session.
type Config struct {
	WindowSize         int
	ReplaceColdMessage bool
}

// TickReport describes what one primary tick did. Delivery and recorder
// failures are collected here; state transitions happen regardless.
type TickReport struct {
	NewRound     bool
	Newest       model.Outcome
	Resolution   *model.Resolution
	Match        *model.PatternMatch
	Opened       *model.Signal
	OpenErr      error
	NotifyErrors []error
	RecordErrors []error
}

// IdleReport describes what one idle tick did.
type IdleReport struct {
	Fired        bool
	MessageID    int64
	NotifyErrors []error
}

// Session owns the outcome history, the signal lifecycle and the sink.
// All methods are serialised by one mutex, so overlapping ticks cannot both
// observe an idle manager.
type Session struct {
	mu sync.Mutex

	window   *history.Window
	signals  *lifecycle.Manager
	sender   notifier.Sender
	recorder recorder.Recorder
	metrics  *metrics.Metrics
	log      zerolog.Logger
	cfg      Config

	lastColdID  int64
	lastRoundAt time.Time
	now         func() time.Time
}

// New creates a Session. A nil recorder records nothing; nil metrics get a private registry.
func New(cfg Config, sender notifier.Sender, rec recorder.Recorder, m *metrics.Metrics, log zerolog.Logger) *Session {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if m == nil {
		m = metrics.NewMetrics()
	}
	return &Session{
		window:   history.NewWindow(cfg.WindowSize),
		signals:  lifecycle.NewManager(),
		sender:   sender,
		recorder: rec,
		metrics:  m,
		log:      log.With().Str("component", "session").Logger(),
		cfg:      cfg,
		now:      time.Now,
	}
}

// OnTick feeds a fresh snapshot (oldest first). On a new round it resolves the
// pending signal with the newest outcome, then runs detection and opens a
// signal for the match, if any.
func (s *Session) OnTick(ctx context.Context, seq []model.Outcome) TickReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rep TickReport
	if !s.window.Update(seq) {
		return rep
	}
	newest, _ := s.window.Newest()
	rep.NewRound = true
	rep.Newest = newest
	s.lastRoundAt = s.now()
	s.metrics.NewRoundsTotal.Inc()
	rep.recordErr(s.recorder.RecordRound(&recorder.RoundEvent{
		Outcome: newest, HistoryLen: s.window.Len(), At: s.lastRoundAt,
	}))

	if res, ok := s.signals.Resolve(newest); ok {
		rep.Resolution = &res
		sb := s.signals.Scoreboard()
		s.metrics.Resolutions.WithLabelValues(string(res.Result)).Inc()
		s.metrics.SignalPending.Set(0)
		s.log.Debug().Str("signal", res.Signal.ID).Str("result", string(res.Result)).Msg("signal resolved")

		s.send(ctx, notifier.FormatResolution(res), &rep.NotifyErrors)
		s.send(ctx, notifier.FormatScoreboard(sb), &rep.NotifyErrors)
		rep.recordErr(s.recorder.RecordResolution(&recorder.ResolutionEvent{Resolution: res, Scoreboard: sb}))
	}

	snap := s.window.Snapshot()
	match, ok := strategy.Detect(snap)
	if !ok {
		return rep
	}
	rep.Match = &match
	if !s.signals.Idle() {
		return rep
	}

	sig, err := s.signals.Open(match, strategy.Confidence(match.Kind))
	if err != nil {
		rep.OpenErr = err
		return rep
	}
	rep.Opened = &sig
	s.metrics.SignalsOpened.WithLabelValues(string(sig.Pattern)).Inc()
	s.metrics.SignalPending.Set(1)
	s.log.Debug().Str("signal", sig.ID).Str("pattern", string(sig.Pattern)).Msg("signal opened")

	s.send(ctx, notifier.FormatEntry(sig), &rep.NotifyErrors)
	rep.recordErr(s.recorder.RecordSignal(&recorder.SignalEvent{Signal: sig, Match: match, History: snap}))
	return rep
}

// OnIdleTick sends the cold message when no signal is pending. It fires on
// every idle tick; earlier firings do not suppress later ones.
func (s *Session) OnIdleTick(ctx context.Context) IdleReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rep IdleReport
	if !s.signals.Idle() {
		return rep
	}
	rep.Fired = true

	if s.cfg.ReplaceColdMessage && s.lastColdID != 0 {
		if d, ok := s.sender.(notifier.Deleter); ok {
			if err := d.Delete(ctx, s.lastColdID); err != nil {
				rep.NotifyErrors = append(rep.NotifyErrors, notifyErr(err))
				s.metrics.NotifyFailuresTotal.Inc()
			}
		}
	}

	id := s.send(ctx, notifier.FormatCold(), &rep.NotifyErrors)
	s.metrics.ColdMessagesTotal.Inc()
	rep.MessageID = id
	if id != 0 {
		s.lastColdID = id
	}
	return rep
}

// Status returns a snapshot for reports and the HTTP API.
func (s *Session) Status() model.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.window.Snapshot()
	streak, n := calculator.TrailingRun(snap)
	st := model.Status{
		Scoreboard:        s.signals.Scoreboard(),
		History:           snap,
		Streak:            streak,
		StreakLength:      n,
		Distribution:      calculator.Distribution(snap),
		LastColdMessageID: s.lastColdID,
		LastRoundAt:       s.lastRoundAt,
	}
	if sig, ok := s.signals.Pending(); ok {
		st.Pending = &sig
	}
	return st
}

// Scoreboard returns the current counters.
func (s *Session) Scoreboard() model.Scoreboard {
	return s.signals.Scoreboard()
}

func (s *Session) send(ctx context.Context, text string, errs *[]error) int64 {
	id, err := s.sender.Send(ctx, text)
	if err != nil {
		*errs = append(*errs, notifyErr(err))
		s.metrics.NotifyFailuresTotal.Inc()
		return 0
	}
	return id
}

func notifyErr(err error) error {
	if errors.Is(err, notifier.ErrNotify) {
		return err
	}
	return fmt.Errorf("%w: %v", notifier.ErrNotify, err)
}

func (r *TickReport) recordErr(err error) {
	if err != nil {
		r.RecordErrors = append(r.RecordErrors, err)
	}
}
