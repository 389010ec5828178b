package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DefaultAPIBase is the Telegram Bot API endpoint.
const DefaultAPIBase = "https://api.telegram.org"

// ErrNotify wraps every delivery failure of a Sender.
var ErrNotify = errors.New("notify failed")

// Sender delivers formatted text and returns the message id assigned by the
// channel (0 when the channel has none).
type Sender interface {
	Send(ctx context.Context, text string) (int64, error)
}

// Deleter is implemented by senders that can remove a previously sent message.
type Deleter interface {
	Delete(ctx context.Context, messageID int64) error
}

// TelegramNotifier sends messages via the Telegram Bot API.
type TelegramNotifier struct {
	BotToken string
	ChatID   string
	APIBase  string
	Client   *http.Client
	log      zerolog.Logger
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string, log zerolog.Logger) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramNotifier{
		BotToken: botToken,
		ChatID:   chatID,
		APIBase:  DefaultAPIBase,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		log: log.With().Str("component", "telegram").Logger(),
	}
}

// telegramResponse is the common envelope of Bot API replies.
type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

// Send sends a message to the configured chat and returns its message id.
func (t *TelegramNotifier) Send(ctx context.Context, text string) (int64, error) {
	payload := map[string]interface{}{
		"chat_id":    t.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	var resp telegramResponse
	if err := t.call(ctx, "sendMessage", payload, &resp); err != nil {
		return 0, err
	}
	return resp.Result.MessageID, nil
}

// Delete removes a message previously sent to the configured chat.
func (t *TelegramNotifier) Delete(ctx context.Context, messageID int64) error {
	payload := map[string]interface{}{
		"chat_id":    t.ChatID,
		"message_id": messageID,
	}
	return t.call(ctx, "deleteMessage", payload, nil)
}

func (t *TelegramNotifier) call(ctx context.Context, method string, payload map[string]interface{}, out *telegramResponse) error {
	apiURL := fmt.Sprintf("%s/bot%s/%s", t.APIBase, t.BotToken, method)
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrNotify, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrNotify, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotify, method, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: telegram API error: status %d, body: %s", ErrNotify, resp.StatusCode, string(respBody))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", ErrNotify, method, err)
	}
	if !out.OK {
		return fmt.Errorf("%w: telegram %s: %s", ErrNotify, method, out.Description)
	}
	return nil
}

// SendWithRetry sends a message with exponential backoff retry.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, text string, maxRetries int) (int64, error) {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		id, err := t.Send(ctx, text)
		if err == nil {
			return id, nil
		}
		lastErr = err
		if i == maxRetries {
			break
		}
		backoff := time.Duration(1<<uint(i)) * time.Second
		t.log.Warn().Err(err).Int("attempt", i+1).Dur("backoff", backoff).Msg("telegram send failed, retrying")
		select {
		case <-ctx.Done():
			return 0, fmt.Errorf("%w: %v", ErrNotify, ctx.Err())
		case <-time.After(backoff):
		}
	}
	return 0, fmt.Errorf("all %d attempts exhausted: %w", maxRetries+1, lastErr)
}
