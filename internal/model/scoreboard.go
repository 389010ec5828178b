package model

// Scoreboard counts resolved signals since process start.
type Scoreboard struct {
	DirectWins    int `json:"direct_wins"`
	RecoveredWins int `json:"recovered_wins"`
	Losses        int `json:"losses"`
}

// Record increments the counter matching r.
func (s *Scoreboard) Record(r ResultKind) {
	switch r {
	case ResultDirectWin:
		s.DirectWins++
	case ResultRecoveredWin:
		s.RecoveredWins++
	case ResultLoss:
		s.Losses++
	}
}

// Total is the number of resolved signals.
func (s Scoreboard) Total() int {
	return s.DirectWins + s.RecoveredWins + s.Losses
}

// WinRate returns wins (direct + recovered) over total as a percentage, 0 when empty.
func (s Scoreboard) WinRate() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.DirectWins+s.RecoveredWins) / float64(total) * 100
}
