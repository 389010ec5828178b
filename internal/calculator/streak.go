package calculator

import "BacBoSentinel/internal/model"

// TrailingRun returns the newest outcome and how many times it repeats at the end of seq.
// Returns ("", 0) for an empty sequence.
func TrailingRun(seq []model.Outcome) (model.Outcome, int) {
	if len(seq) == 0 {
		return "", 0
	}
	last := seq[len(seq)-1]
	n := 0
	for i := len(seq) - 1; i >= 0 && seq[i] == last; i-- {
		n++
	}
	return last, n
}

// Distribution counts each outcome in seq.
func Distribution(seq []model.Outcome) map[model.Outcome]int {
	dist := map[model.Outcome]int{model.Blue: 0, model.Red: 0, model.Tie: 0}
	for _, o := range seq {
		dist[o]++
	}
	return dist
}

// Uniform reports whether every element of seq equals a single primary colour.
func Uniform(seq []model.Outcome) (model.Outcome, bool) {
	if len(seq) == 0 || !seq[0].IsPrimary() {
		return "", false
	}
	for _, o := range seq[1:] {
		if o != seq[0] {
			return "", false
		}
	}
	return seq[0], true
}
