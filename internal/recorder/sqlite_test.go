package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BacBoSentinel/internal/model"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "audit.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSQLiteRecorder_SignalAndResolution(t *testing.T) {
	r := openTestRecorder(t)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	sig := model.Signal{ID: "abc", Entry: model.Blue, Confidence: 88, Pattern: model.PatternV, OpenedAt: now}
	require.NoError(t, r.RecordSignal(&SignalEvent{
		Signal:  sig,
		Match:   model.PatternMatch{Kind: model.PatternV, Trigger: model.Blue, Length: 3},
		History: []model.Outcome{model.Red, model.Blue, model.Red, model.Blue},
	}))
	require.NoError(t, r.RecordResolution(&ResolutionEvent{
		Resolution: model.Resolution{Signal: sig, Outcome: model.Red, Result: model.ResultRecoveredWin, ResolvedAt: now},
		Scoreboard: model.Scoreboard{RecoveredWins: 1},
	}))

	var pattern, history string
	var confidence int
	require.NoError(t, r.db.QueryRow(`SELECT pattern, confidence, history FROM signals WHERE id = ?`, "abc").
		Scan(&pattern, &confidence, &history))
	assert.Equal(t, "v", pattern)
	assert.Equal(t, 88, confidence)
	assert.Equal(t, "VERMELHO,AZUL,VERMELHO,AZUL", history)

	var result string
	var recovered int
	require.NoError(t, r.db.QueryRow(`SELECT result, recovered_wins FROM resolutions WHERE signal_id = ?`, "abc").
		Scan(&result, &recovered))
	assert.Equal(t, "RECOVERED_WIN", result)
	assert.Equal(t, 1, recovered)
}

func TestSQLiteRecorder_RoundsAndFailures(t *testing.T) {
	r := openTestRecorder(t)
	now := time.Now()

	require.NoError(t, r.RecordRound(&RoundEvent{Outcome: model.Tie, HistoryLen: 20, At: now}))
	require.NoError(t, r.RecordRound(&RoundEvent{Outcome: model.Red, HistoryLen: 20, At: now}))
	require.NoError(t, r.RecordFetchFailure(&FetchFailureEvent{Source: "html", Err: "timeout", At: now}))

	var rounds, failures int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM rounds`).Scan(&rounds))
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM fetch_failures`).Scan(&failures))
	assert.Equal(t, 2, rounds)
	assert.Equal(t, 1, failures)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	assert.NoError(t, r.RecordRound(&RoundEvent{}))
	assert.NoError(t, r.RecordSignal(&SignalEvent{}))
	assert.NoError(t, r.RecordResolution(&ResolutionEvent{}))
	assert.NoError(t, r.RecordFetchFailure(&FetchFailureEvent{}))
	assert.NoError(t, r.Close())
}
