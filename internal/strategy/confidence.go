package strategy

import (
	"sort"

	"BacBoSentinel/internal/model"
)

// DefaultConfidence applies to kinds missing from the table.
const DefaultConfidence = 75

// confidenceTable maps each pattern kind to a fixed confidence percentage.
var confidenceTable = map[model.PatternKind]int{
	model.PatternSurf:           95,
	model.PatternAlternancia:    85,
	model.PatternQuebra:         80,
	model.Pattern2x2:            78,
	model.Pattern3x2:            82,
	model.Pattern3x1:            80,
	model.Pattern2x1:            75,
	model.PatternV:              88,
	model.PatternTorres:         90,
	model.PatternPerninhas:      83,
	model.PatternParzinho:       84,
	model.PatternRampaCurta:     80,
	model.PatternRampaAlongada:  92,
	model.PatternRampaInvertida: 92,
}

// Confidence returns the confidence percentage for kind.
func Confidence(kind model.PatternKind) int {
	if c, ok := confidenceTable[kind]; ok {
		return c
	}
	return DefaultConfidence
}

// Kinds lists every kind with a confidence entry, sorted by name.
func Kinds() []model.PatternKind {
	kinds := make([]model.PatternKind, 0, len(confidenceTable))
	for k := range confidenceTable {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
