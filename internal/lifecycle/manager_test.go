package lifecycle

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BacBoSentinel/internal/model"
)

func newTestManager() *Manager {
	m := NewManager()
	m.now = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }
	n := 0
	m.newID = func() string {
		n++
		return fmt.Sprintf("sig-%d", n)
	}
	return m
}

var blueV = model.PatternMatch{Kind: model.PatternV, Trigger: model.Blue, Length: 3}

func TestManager_OpenThenDirectWin(t *testing.T) {
	m := newTestManager()
	require.True(t, m.Idle())

	sig, err := m.Open(blueV, 88)
	require.NoError(t, err)
	assert.Equal(t, "sig-1", sig.ID)
	assert.Equal(t, model.Blue, sig.Entry)
	assert.Equal(t, 88, sig.Confidence)
	assert.Equal(t, model.PatternV, sig.Pattern)
	assert.False(t, m.Idle())

	res, ok := m.Resolve(model.Blue)
	require.True(t, ok)
	assert.Equal(t, model.ResultDirectWin, res.Result)
	assert.Equal(t, sig, res.Signal)
	assert.True(t, m.Idle())
	assert.Equal(t, model.Scoreboard{DirectWins: 1}, m.Scoreboard())
}

func TestManager_RecoveredWin(t *testing.T) {
	m := newTestManager()
	_, err := m.Open(blueV, 88)
	require.NoError(t, err)

	res, ok := m.Resolve(model.Red)
	require.True(t, ok)
	assert.Equal(t, model.ResultRecoveredWin, res.Result)
	assert.Equal(t, model.Red, res.Outcome)
	assert.True(t, m.Idle())
	assert.Equal(t, model.Scoreboard{RecoveredWins: 1}, m.Scoreboard())
}

func TestManager_TieIsLoss(t *testing.T) {
	m := newTestManager()
	_, err := m.Open(blueV, 88)
	require.NoError(t, err)

	res, ok := m.Resolve(model.Tie)
	require.True(t, ok)
	assert.Equal(t, model.ResultLoss, res.Result)
	assert.True(t, m.Idle())
	assert.Equal(t, model.Scoreboard{Losses: 1}, m.Scoreboard())
}

func TestManager_OpenWhilePending(t *testing.T) {
	m := newTestManager()
	first, err := m.Open(blueV, 88)
	require.NoError(t, err)

	_, err = m.Open(model.PatternMatch{Kind: model.PatternSurf, Trigger: model.Red, Length: 5}, 95)
	assert.ErrorIs(t, err, ErrSignalPending)

	pending, ok := m.Pending()
	require.True(t, ok)
	assert.Equal(t, first, pending, "pending signal untouched")
}

func TestManager_ResolveIdleIsNoop(t *testing.T) {
	m := newTestManager()
	_, ok := m.Resolve(model.Blue)
	assert.False(t, ok)

	_, err := m.Open(blueV, 88)
	require.NoError(t, err)
	_, ok = m.Resolve(model.Blue)
	require.True(t, ok)

	// Same round delivered twice.
	_, ok = m.Resolve(model.Blue)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Scoreboard().Total())
}

func TestManager_RejectsInvalidMatch(t *testing.T) {
	m := newTestManager()
	_, err := m.Open(model.PatternMatch{Kind: model.Pattern2x1, Trigger: model.Tie, Length: 3}, 75)
	assert.ErrorIs(t, err, ErrInvalidMatch)

	_, err = m.Open(blueV, 0)
	assert.ErrorIs(t, err, ErrInvalidMatch)
	assert.True(t, m.Idle())
}

func TestManager_ScoreboardSumsResolutions(t *testing.T) {
	m := newTestManager()
	rounds := []model.Outcome{model.Blue, model.Red, model.Tie, model.Blue, model.Tie, model.Red}
	prev := model.Scoreboard{}
	for i, o := range rounds {
		_, err := m.Open(blueV, 88)
		require.NoError(t, err)
		_, ok := m.Resolve(o)
		require.True(t, ok)

		sb := m.Scoreboard()
		assert.GreaterOrEqual(t, sb.DirectWins, prev.DirectWins)
		assert.GreaterOrEqual(t, sb.RecoveredWins, prev.RecoveredWins)
		assert.GreaterOrEqual(t, sb.Losses, prev.Losses)
		assert.Equal(t, i+1, sb.Total())
		prev = sb
	}
	assert.Equal(t, model.Scoreboard{DirectWins: 2, RecoveredWins: 2, Losses: 2}, prev)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, model.ResultDirectWin, Classify(model.Red, model.Red))
	assert.Equal(t, model.ResultRecoveredWin, Classify(model.Red, model.Blue))
	assert.Equal(t, model.ResultLoss, Classify(model.Red, model.Tie))
}
