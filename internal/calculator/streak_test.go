package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"BacBoSentinel/internal/model"
)

const (
	B = model.Blue
	R = model.Red
	T = model.Tie
)

func TestTrailingRun(t *testing.T) {
	tests := []struct {
		name  string
		seq   []model.Outcome
		color model.Outcome
		n     int
	}{
		{"empty", nil, "", 0},
		{"single", []model.Outcome{R}, R, 1},
		{"run of three", []model.Outcome{B, R, R, R}, R, 3},
		{"tie run", []model.Outcome{B, T, T}, T, 2},
		{"all same", []model.Outcome{B, B, B, B}, B, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, n := TrailingRun(tt.seq)
			assert.Equal(t, tt.color, color)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestDistribution(t *testing.T) {
	dist := Distribution([]model.Outcome{B, R, B, T, B})
	assert.Equal(t, 3, dist[B])
	assert.Equal(t, 1, dist[R])
	assert.Equal(t, 1, dist[T])

	empty := Distribution(nil)
	assert.Len(t, empty, 3)
	assert.Zero(t, empty[B])
}

func TestUniform(t *testing.T) {
	c, ok := Uniform([]model.Outcome{R, R, R})
	assert.True(t, ok)
	assert.Equal(t, R, c)

	_, ok = Uniform([]model.Outcome{T, T, T})
	assert.False(t, ok, "tie runs are never uniform colour")

	_, ok = Uniform([]model.Outcome{B, B, R})
	assert.False(t, ok)

	_, ok = Uniform(nil)
	assert.False(t, ok)
}
