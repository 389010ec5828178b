// Package history keeps the bounded, time-ascending record of recent outcomes.
package history

import "BacBoSentinel/internal/model"

// DefaultSize is the lookback window of the feed.
const DefaultSize = 20

// Window holds the latest outcome snapshot, oldest first. It is not safe for
// concurrent use; the session serialises access.
type Window struct {
	size     int
	outcomes []model.Outcome
}

// NewWindow creates a Window capped at size entries (DefaultSize when size <= 0).
func NewWindow(size int) *Window {
	if size <= 0 {
		size = DefaultSize
	}
	return &Window{size: size}
}

// Update replaces the stored snapshot with seq and reports whether a new round
// arrived: always on the first snapshot, afterwards only when the newest entry
// differs from the previous newest. Empty snapshots are ignored.
func (w *Window) Update(seq []model.Outcome) bool {
	if len(seq) == 0 {
		return false
	}
	if len(seq) > w.size {
		seq = seq[len(seq)-w.size:]
	}
	if len(w.outcomes) > 0 && seq[len(seq)-1] == w.outcomes[len(w.outcomes)-1] {
		return false
	}
	w.outcomes = append(w.outcomes[:0], seq...)
	return true
}

// Snapshot returns a copy of the stored outcomes.
func (w *Window) Snapshot() []model.Outcome {
	out := make([]model.Outcome, len(w.outcomes))
	copy(out, w.outcomes)
	return out
}

// Newest returns the most recent outcome.
func (w *Window) Newest() (model.Outcome, bool) {
	if len(w.outcomes) == 0 {
		return "", false
	}
	return w.outcomes[len(w.outcomes)-1], true
}

func (w *Window) Len() int  { return len(w.outcomes) }
func (w *Window) Size() int { return w.size }
