// Package lifecycle owns the pending signal and the scoreboard.
//
// The manager has two states. Idle: no signal pending, pattern matches may open
// one. Pending: exactly one signal waits for the next round, which always
// resolves it (direct win, recovered win or loss) and returns to Idle.
package lifecycle

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"BacBoSentinel/internal/model"

	"github.com/google/uuid"
)

var (
	// ErrSignalPending is returned when opening a signal while another is pending.
	ErrSignalPending = errors.New("signal already pending")
	// ErrInvalidMatch is returned for matches that cannot become a signal.
	ErrInvalidMatch = errors.New("invalid pattern match")
)

// Manager handles the Idle/Pending state machine with concurrency safety.
type Manager struct {
	mu      sync.Mutex
	pending *model.Signal
	score   model.Scoreboard

	now   func() time.Time
	newID func() string
}

// NewManager creates a Manager in the Idle state with an empty scoreboard.
func NewManager() *Manager {
	return &Manager{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Open moves Idle -> Pending, creating a signal for match with the given confidence.
func (m *Manager) Open(match model.PatternMatch, confidence int) (model.Signal, error) {
	if !match.Trigger.IsPrimary() {
		return model.Signal{}, fmt.Errorf("%w: trigger %q", ErrInvalidMatch, match.Trigger)
	}
	if confidence < 1 || confidence > 100 {
		return model.Signal{}, fmt.Errorf("%w: confidence %d out of range", ErrInvalidMatch, confidence)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending != nil {
		return model.Signal{}, fmt.Errorf("%w: %s", ErrSignalPending, m.pending.ID)
	}
	sig := model.Signal{
		ID:         m.newID(),
		Entry:      match.Trigger,
		Confidence: confidence,
		Pattern:    match.Kind,
		OpenedAt:   m.now(),
	}
	m.pending = &sig
	return sig, nil
}

// Resolve consumes the newest outcome. When Pending it classifies the result,
// updates the scoreboard and returns to Idle. When Idle it does nothing and
// returns false, so repeated calls for the same round are harmless.
func (m *Manager) Resolve(outcome model.Outcome) (model.Resolution, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending == nil {
		return model.Resolution{}, false
	}
	res := model.Resolution{
		Signal:     *m.pending,
		Outcome:    outcome,
		Result:     Classify(m.pending.Entry, outcome),
		ResolvedAt: m.now(),
	}
	m.score.Record(res.Result)
	m.pending = nil
	return res, true
}

// Classify maps the round after the entry to a result. Any primary colour other
// than the entry counts as a win on the single recovery step; only TIE loses.
func Classify(entry, outcome model.Outcome) model.ResultKind {
	switch {
	case outcome == entry:
		return model.ResultDirectWin
	case outcome.IsPrimary():
		return model.ResultRecoveredWin
	default:
		return model.ResultLoss
	}
}

// Pending returns the pending signal, if any.
func (m *Manager) Pending() (model.Signal, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending == nil {
		return model.Signal{}, false
	}
	return *m.pending, true
}

// Idle reports whether no signal is pending.
func (m *Manager) Idle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending == nil
}

// Scoreboard returns a copy of the counters.
func (m *Manager) Scoreboard() model.Scoreboard {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}
