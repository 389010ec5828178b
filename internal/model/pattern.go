package model

// PatternKind names a streak shape recognised in the recent outcomes.
type PatternKind string

const (
	PatternSurf        PatternKind = "surf"
	PatternQuebra      PatternKind = "quebra"
	PatternAlternancia PatternKind = "alternancia"
	PatternV           PatternKind = "v"
	Pattern3x2         PatternKind = "3x2"
	Pattern2x1         PatternKind = "2x1"

	// Reserved kinds: confidence entries exist, no detection rule yet.
	Pattern2x2            PatternKind = "2x2"
	Pattern3x1            PatternKind = "3x1"
	PatternTorres         PatternKind = "torres"
	PatternPerninhas      PatternKind = "perninhas"
	PatternParzinho       PatternKind = "parzinho"
	PatternRampaCurta     PatternKind = "rampaCurta"
	PatternRampaAlongada  PatternKind = "rampaAlongada"
	PatternRampaInvertida PatternKind = "rampaInvertida"
)

// PatternMatch is one classified pattern. Trigger is always Blue or Red.
type PatternMatch struct {
	Kind    PatternKind
	Trigger Outcome
	Length  int
}
