package model

import "time"

// ResultKind indicates how a signal was resolved.
type ResultKind string

const (
	ResultDirectWin    ResultKind = "DIRECT_WIN"
	ResultRecoveredWin ResultKind = "RECOVERED_WIN"
	ResultLoss         ResultKind = "LOSS"
)

// Signal is an open prediction awaiting the next round.
type Signal struct {
	ID         string      `json:"id"`
	Entry      Outcome     `json:"entry"`
	Confidence int         `json:"confidence"`
	Pattern    PatternKind `json:"pattern"`
	OpenedAt   time.Time   `json:"opened_at"`
}

// Resolution is the final outcome of a Signal.
type Resolution struct {
	Signal     Signal     `json:"signal"`
	Outcome    Outcome    `json:"outcome"`
	Result     ResultKind `json:"result"`
	ResolvedAt time.Time  `json:"resolved_at"`
}
