package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CommandHandler is called when a user command is received.
type CommandHandler func(ctx context.Context, command string) string

// telegramUpdate represents a Telegram update from long polling.
type telegramUpdate struct {
	UpdateID int `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
	} `json:"message"`
}

// PollOnce fetches pending updates after offset, dispatches their commands
// and returns the next offset.
func (t *TelegramNotifier) PollOnce(ctx context.Context, client *http.Client, offset int, wait time.Duration, handler CommandHandler) (int, error) {
	apiURL := fmt.Sprintf("%s?offset=%d&timeout=%d", t.endpoint("getUpdates"), offset, int(wait.Seconds()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return offset, fmt.Errorf("create polling request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return offset, fmt.Errorf("polling request: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return offset, fmt.Errorf("read polling response: %w", err)
	}

	var result struct {
		OK          bool             `json:"ok"`
		ErrorCode   int              `json:"error_code"`
		Description string           `json:"description"`
		Result      []telegramUpdate `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return offset, fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(body))
		}
		return offset, fmt.Errorf("decode polling response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !result.OK {
		return offset, fmt.Errorf("telegram API error: status %d, error_code %d: %s", resp.StatusCode, result.ErrorCode, result.Description)
	}

	for _, update := range result.Result {
		offset = update.UpdateID + 1
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		if t.ChatID != "" && fmt.Sprint(update.Message.Chat.ID) != t.ChatID {
			t.Log.Warn().Int64("chat_id", update.Message.Chat.ID).Msg("ignoring command from unknown chat")
			continue
		}
		text := strings.TrimSpace(update.Message.Text)
		t.Log.Info().Str("command", text).Msg("received command")
		reply := handler(ctx, text)
		if reply != "" {
			if err := t.Send(ctx, reply); err != nil {
				t.Log.Error().Err(err).Msg("send reply")
			}
		}
	}
	return offset, nil
}

// pollBackoff is the pause after a failed getUpdates call.
var pollBackoff = 5 * time.Second

// StartPolling begins long-polling for Telegram commands. Blocks until ctx is cancelled.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler CommandHandler) {
	offset := 0
	client := &http.Client{Timeout: 35 * time.Second, Transport: t.Client.Transport}

	for {
		select {
		case <-ctx.Done():
			t.Log.Info().Msg("telegram polling stopped")
			return
		default:
		}

		next, err := t.PollOnce(ctx, client, offset, 30*time.Second, handler)
		offset = next
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			return
		}
		t.Log.Warn().Err(err).Msg("telegram polling failed")
		select {
		case <-ctx.Done():
			return
		case <-time.After(pollBackoff):
		}
	}
}
