package recorder

import (
	"time"

	"BacBoSentinel/internal/model"
)

// RoundEvent records a newly observed round.
type RoundEvent struct {
	Outcome    model.Outcome
	HistoryLen int
	At         time.Time
}

// SignalEvent records an opened signal and the history that triggered it.
type SignalEvent struct {
	Signal  model.Signal
	Match   model.PatternMatch
	History []model.Outcome
}

// ResolutionEvent records how a signal ended and the scoreboard after it.
type ResolutionEvent struct {
	Resolution model.Resolution
	Scoreboard model.Scoreboard
}

// FetchFailureEvent records a skipped tick.
type FetchFailureEvent struct {
	Source string
	Err    string
	At     time.Time
}

// Recorder persists an audit trail for later analysis. Nothing is read back
// at startup.
type Recorder interface {
	RecordRound(evt *RoundEvent) error
	RecordSignal(evt *SignalEvent) error
	RecordResolution(evt *ResolutionEvent) error
	RecordFetchFailure(evt *FetchFailureEvent) error
	Close() error
}
