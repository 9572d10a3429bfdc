package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const DefaultTelegramAPI = "https://api.telegram.org"

var ErrNotConfigured = errors.New("relay: telegram token and chat id are required")

type Sender interface {
	Send(ctx context.Context, text string) error
}

// Telegram sends messages through the Bot API sendMessage method.
type Telegram struct {
	Token   string
	ChatID  string
	BaseURL string
	Client  *http.Client
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (t Telegram) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(t.Token) == "" || strings.TrimSpace(t.ChatID) == "" {
		return ErrNotConfigured
	}
	base := strings.TrimRight(t.BaseURL, "/")
	if base == "" {
		base = DefaultTelegramAPI
	}
	body, err := json.Marshal(sendMessageRequest{ChatID: t.ChatID, Text: text})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", base, t.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("relay: build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("relay: telegram request: %w", err)
	}
	defer resp.Body.Close()

	var out sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("relay: telegram status %s: %w", resp.Status, err)
	}
	if resp.StatusCode != http.StatusOK || !out.OK {
		return fmt.Errorf("relay: telegram rejected message: %s (%s)", resp.Status, out.Description)
	}
	return nil
}
