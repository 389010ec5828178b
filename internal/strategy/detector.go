package strategy

import (
	"BacBoSentinel/internal/calculator"
	"BacBoSentinel/internal/model"
)

// MinHistory is the shortest history the detector will classify.
const MinHistory = 4

// rule is one entry of the priority list. It inspects the whole sequence
// (len >= MinHistory) and reports at most one match.
type rule struct {
	kind  model.PatternKind
	match func(seq []model.Outcome) (model.Outcome, int, bool)
}

// Rules are evaluated in order and the first match wins, so overlapping
// shapes (a 5-run is also a 4-run) never trigger twice.
var rules = []rule{
	{model.PatternSurf, matchSurf},
	{model.PatternQuebra, matchQuebra},
	{model.PatternAlternancia, matchAlternancia},
	{model.PatternV, matchV},
	{model.Pattern3x2, match3x2},
	{model.Pattern2x1, match2x1},
}

// Detect classifies the newest outcomes of seq (oldest first) into at most one pattern.
func Detect(seq []model.Outcome) (model.PatternMatch, bool) {
	if len(seq) < MinHistory {
		return model.PatternMatch{}, false
	}
	for _, r := range rules {
		if trigger, length, ok := r.match(seq); ok {
			return model.PatternMatch{Kind: r.kind, Trigger: trigger, Length: length}, true
		}
	}
	return model.PatternMatch{}, false
}

func tail(seq []model.Outcome, n int) []model.Outcome {
	return seq[len(seq)-n:]
}

// matchSurf: the last 5 outcomes are one colour.
func matchSurf(seq []model.Outcome) (model.Outcome, int, bool) {
	if len(seq) < 5 {
		return "", 0, false
	}
	c, ok := calculator.Uniform(tail(seq, 5))
	return c, 5, ok
}

// matchQuebra: the last 4 outcomes are one colour.
func matchQuebra(seq []model.Outcome) (model.Outcome, int, bool) {
	c, ok := calculator.Uniform(tail(seq, 4))
	return c, 4, ok
}

// matchAlternancia: X,Y,X,Y with X != Y.
func matchAlternancia(seq []model.Outcome) (model.Outcome, int, bool) {
	w := tail(seq, 4)
	if !w[0].IsPrimary() || !w[1].IsPrimary() || w[0] == w[1] {
		return "", 0, false
	}
	if w[2] != w[0] || w[3] != w[1] {
		return "", 0, false
	}
	return w[0], 4, true
}

// matchV: X,Y,X with X != Y.
func matchV(seq []model.Outcome) (model.Outcome, int, bool) {
	w := tail(seq, 3)
	if !w[0].IsPrimary() || !w[1].IsPrimary() || w[0] == w[1] || w[2] != w[0] {
		return "", 0, false
	}
	return w[0], 3, true
}

// match3x2: three of one colour followed by two of a colour; triggers the triplet colour.
func match3x2(seq []model.Outcome) (model.Outcome, int, bool) {
	if len(seq) < 5 {
		return "", 0, false
	}
	w := tail(seq, 5)
	first, ok := calculator.Uniform(w[:3])
	if !ok {
		return "", 0, false
	}
	if _, ok := calculator.Uniform(w[3:]); !ok {
		return "", 0, false
	}
	return first, 5, true
}

// match2x1: the two outcomes before the newest equal it.
func match2x1(seq []model.Outcome) (model.Outcome, int, bool) {
	w := tail(seq, 3)
	last := w[2]
	if !last.IsPrimary() || w[0] != last || w[1] != last {
		return "", 0, false
	}
	return last, 3, true
}
