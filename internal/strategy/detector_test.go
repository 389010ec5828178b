package strategy

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

func seq(o ...model.Outcome) []model.Outcome { return o }

func TestDetect_ShortHistory(t *testing.T) {
	for _, s := range [][]model.Outcome{nil, seq(B), seq(B, B), seq(B, B, B), seq(R, B, R)} {
		_, ok := Detect(s)
		assert.False(t, ok, "history %v", s)
	}
}

func TestDetect_Patterns(t *testing.T) {
	tests := []struct {
		name string
		seq  []model.Outcome
		want model.PatternMatch
	}{
		{"surf blue", seq(R, B, B, B, B, B), model.PatternMatch{Kind: model.PatternSurf, Trigger: B, Length: 5}},
		{"surf red exact five", seq(R, R, R, R, R), model.PatternMatch{Kind: model.PatternSurf, Trigger: R, Length: 5}},
		{"quebra with four entries", seq(B, B, B, B), model.PatternMatch{Kind: model.PatternQuebra, Trigger: B, Length: 4}},
		{"quebra after other colour", seq(R, B, B, B, B), model.PatternMatch{Kind: model.PatternQuebra, Trigger: B, Length: 4}},
		{"alternancia", seq(B, R, B, R), model.PatternMatch{Kind: model.PatternAlternancia, Trigger: B, Length: 4}},
		{"alternancia red first", seq(T, R, B, R, B), model.PatternMatch{Kind: model.PatternAlternancia, Trigger: R, Length: 4}},
		{"v blue", seq(B, B, R, B), model.PatternMatch{Kind: model.PatternV, Trigger: B, Length: 3}},
		{"v red", seq(R, R, B, R), model.PatternMatch{Kind: model.PatternV, Trigger: R, Length: 3}},
		{"3x2", seq(B, B, B, R, R), model.PatternMatch{Kind: model.Pattern3x2, Trigger: B, Length: 5}},
		{"3x2 red triplet", seq(T, R, R, R, B, B), model.PatternMatch{Kind: model.Pattern3x2, Trigger: R, Length: 5}},
		{"2x1", seq(B, R, R, R), model.PatternMatch{Kind: model.Pattern2x1, Trigger: R, Length: 3}},
		{"2x1 in longer history", seq(R, B, R, B, B, B), model.PatternMatch{Kind: model.Pattern2x1, Trigger: B, Length: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(tt.seq)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		seq  []model.Outcome
	}{
		{"tie breaks alternancia", seq(T, B, T, B)},
		{"tie newest", seq(R, B, B, T)},
		{"five ties", seq(T, T, T, T, T)},
		{"tie pair after triplet", seq(B, B, B, T, T)},
		{"tie triplet", seq(T, T, T, R, R)},
		{"plain mix", seq(B, R, R, B)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Detect(tt.seq)
			assert.False(t, ok, "unexpected match %+v", m)
		})
	}
}

func TestDetect_PriorityOrder(t *testing.T) {
	// A 5-run also satisfies quebra and 2x1.
	m, _ := Detect(seq(B, B, B, B, B))
	assert.Equal(t, model.PatternSurf, m.Kind)

	// X,Y,X,Y also ends in the v shape Y,X,Y.
	m, _ = Detect(seq(R, B, R, B))
	assert.Equal(t, model.PatternAlternancia, m.Kind)
	assert.Equal(t, R, m.Trigger)

	// A 4-run also ends in a 2x1.
	m, _ = Detect(seq(R, B, B, B, B))
	assert.Equal(t, model.PatternQuebra, m.Kind)
}

func TestDetect_TriggerNeverTie(t *testing.T) {
	outcomes := []model.Outcome{B, R, T}
	// Every history of length 5 over {B, R, T}.
	for i := 0; i < 243; i++ {
		s := make([]model.Outcome, 5)
		n := i
		for j := range s {
			s[j] = outcomes[n%3]
			n /= 3
		}
		if m, ok := Detect(s); ok {
			assert.True(t, m.Trigger.IsPrimary(), "history %v produced %+v", s, m)
			assert.GreaterOrEqual(t, m.Length, 3)
		}
	}
}
