package notifier

import (
	"fmt"
	"strings"

	"BacBoSentinel/internal/model"
)

// FormatStartup is sent once when the bot comes up.
func FormatStartup() string {
	return "🟡 Bot iniciado!\n⏳ Analisando padrões do <b>Bac Bo</b> ao vivo..."
}

// FormatEntry announces a newly opened signal.
func FormatEntry(sig model.Signal) string {
	var b strings.Builder
	b.WriteString("🎲 <b>Novo sinal Bac Bo ao vivo</b>\n")
	b.WriteString(fmt.Sprintf("Entrada: %s\n", strings.Repeat(sig.Entry.Emoji(), 3)))
	b.WriteString("Protege o TIE🟡\n")
	b.WriteString("Fazer apenas 1 gale🎯\n")
	b.WriteString(fmt.Sprintf("Confiança: %d%%", sig.Confidence))
	return b.String()
}

// FormatResolution renders the result line for a resolved signal.
func FormatResolution(res model.Resolution) string {
	switch res.Result {
	case model.ResultDirectWin:
		return fmt.Sprintf("QUEM NÃO ARRISCA, NÃO PETISCA DENTRO(%s)✅", res.Signal.Entry.Emoji())
	case model.ResultRecoveredWin:
		return fmt.Sprintf("QUEM NÃO ARRISCA, NÃO PETISCA DENTRO(%s ➡️ %s)✅",
			res.Signal.Entry.Emoji(), res.Outcome.Emoji())
	default:
		return "ESSA NÃO FOI NOSSA😔"
	}
}

// FormatScoreboard renders the running counters.
func FormatScoreboard(sb model.Scoreboard) string {
	return fmt.Sprintf("<b>PLACAR ATUAL</b>🎯\nSG: %d🔥\nIG: %d✅\nLS: %d❌", sb.DirectWins, sb.RecoveredWins, sb.Losses)
}

// FormatCold is the idle heartbeat.
func FormatCold() string {
	return "PREVENDO O GRÁFICO FICA FRIO 🥶"
}

// FormatStatus renders a status report for the /status command.
func FormatStatus(st model.Status) string {
	var b strings.Builder
	b.WriteString("📊 <b>Status</b>\n\n")

	if len(st.History) > 0 {
		hist := make([]string, len(st.History))
		for i, o := range st.History {
			hist[i] = o.Emoji()
		}
		b.WriteString(fmt.Sprintf("Histórico: %s\n", strings.Join(hist, "")))
		b.WriteString(fmt.Sprintf("Sequência atual: %s x%d\n", st.Streak.Emoji(), st.StreakLength))
		b.WriteString(fmt.Sprintf("🔵 %d | 🔴 %d | 🟡 %d\n",
			st.Distribution[model.Blue], st.Distribution[model.Red], st.Distribution[model.Tie]))
	} else {
		b.WriteString("Histórico: aguardando dados\n")
	}

	if st.Pending != nil {
		b.WriteString(fmt.Sprintf("\nSinal pendente: %s (%s, %d%%)\n",
			st.Pending.Entry.Emoji(), st.Pending.Pattern, st.Pending.Confidence))
	} else {
		b.WriteString("\nNenhum sinal pendente\n")
	}

	sb := st.Scoreboard
	b.WriteString(fmt.Sprintf("\nSG: %d | IG: %d | LS: %d (%.0f%% acerto)",
		sb.DirectWins, sb.RecoveredWins, sb.Losses, sb.WinRate()))
	return b.String()
}

// FormatHelp lists the available commands.
func FormatHelp() string {
	return "Comandos disponíveis:\n• /placar\n• /status"
}
