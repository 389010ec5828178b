package model

import "time"

// Status is a point-in-time view of the session for reports and the HTTP API.
type Status struct {
	Pending           *Signal         `json:"pending,omitempty"`
	Scoreboard        Scoreboard      `json:"scoreboard"`
	History           []Outcome       `json:"history"`
	Streak            Outcome         `json:"streak,omitempty"`
	StreakLength      int             `json:"streak_length"`
	Distribution      map[Outcome]int `json:"distribution"`
	LastColdMessageID int64           `json:"last_cold_message_id,omitempty"`
	LastRoundAt       time.Time       `json:"last_round_at,omitempty"`
}
