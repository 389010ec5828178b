package collector

import (
	"strings"

	"BacBoSentinel/internal/model"
)

// outcomeWords maps the labels seen on result pages (es/pt/en) to outcomes.
// Tie words are checked first so a label such as "TIE AZUL" never reads as a colour.
var outcomeWords = []struct {
	words   []string
	outcome model.Outcome
}{
	{[]string{"TIE", "EMPATE"}, model.Tie},
	{[]string{"AZUL", "BLUE", "PLAYER"}, model.Blue},
	{[]string{"ROJO", "VERMELHO", "RED", "BANKER"}, model.Red},
}

// ParseOutcome converts the text of one result item into an Outcome.
func ParseOutcome(text string) (model.Outcome, bool) {
	upper := strings.ToUpper(strings.TrimSpace(text))
	if upper == "" {
		return "", false
	}
	for _, entry := range outcomeWords {
		for _, w := range entry.words {
			if strings.Contains(upper, w) {
				return entry.outcome, true
			}
		}
	}
	return "", false
}
