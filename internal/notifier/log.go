package notifier

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// LogNotifier writes messages to the log instead of a chat. Used when no
// Telegram credentials are configured.
type LogNotifier struct {
	log    zerolog.Logger
	nextID atomic.Int64
}

// NewLogNotifier creates a log-based notifier.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "log_notifier").Logger()}
}

func (n *LogNotifier) Send(_ context.Context, text string) (int64, error) {
	id := n.nextID.Add(1)
	n.log.Info().Int64("message_id", id).Msg(text)
	return id, nil
}

func (n *LogNotifier) Delete(_ context.Context, messageID int64) error {
	n.log.Debug().Int64("message_id", messageID).Msg("delete message")
	return nil
}
