package model

import "fmt"

// Outcome is the result of one resolved Bac Bo round.
type Outcome string

const (
	Blue Outcome = "AZUL"
	Red  Outcome = "VERMELHO"
	Tie  Outcome = "TIE"
)

// IsPrimary reports whether o is one of the two colours (never TIE).
func (o Outcome) IsPrimary() bool {
	return o == Blue || o == Red
}

// Opposite returns the other primary colour. TIE has no opposite and maps to itself.
func (o Outcome) Opposite() Outcome {
	switch o {
	case Blue:
		return Red
	case Red:
		return Blue
	default:
		return o
	}
}

// Emoji returns the marker used in chat messages.
func (o Outcome) Emoji() string {
	switch o {
	case Blue:
		return "🔵"
	case Red:
		return "🔴"
	case Tie:
		return "🟡"
	default:
		return "❔"
	}
}

func (o Outcome) String() string { return string(o) }

// Validate rejects values outside {AZUL, VERMELHO, TIE}.
func (o Outcome) Validate() error {
	switch o {
	case Blue, Red, Tie:
		return nil
	}
	return fmt.Errorf("invalid outcome %q", string(o))
}
