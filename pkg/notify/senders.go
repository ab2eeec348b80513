package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	goslack "github.com/slack-go/slack"
)

// SlackSender posts messages through the Slack web API. The recipient is the
// target channel when it looks like one; otherwise the configured default
// channel is used and the recipient is mentioned in the text.
type SlackSender struct {
	api            *goslack.Client
	defaultChannel string
}

// NewSlackSender creates a Slack sender. Returns nil when the token or
// channel is empty so callers can register it unconditionally.
func NewSlackSender(token, defaultChannel string) *SlackSender {
	if token == "" || defaultChannel == "" {
		return nil
	}
	return &SlackSender{api: goslack.New(token), defaultChannel: defaultChannel}
}

// NewSlackSenderWithAPIURL targets a custom API URL, for tests against a
// mock server.
func NewSlackSenderWithAPIURL(token, defaultChannel, apiURL string) *SlackSender {
	return &SlackSender{
		api:            goslack.New(token, goslack.OptionAPIURL(apiURL)),
		defaultChannel: defaultChannel,
	}
}

func (s *SlackSender) Send(ctx context.Context, msg Message) error {
	channel := s.defaultChannel
	text := fmt.Sprintf("*%s*\n%s", msg.Subject, msg.Body)
	if strings.HasPrefix(msg.Recipient, "#") || strings.HasPrefix(msg.Recipient, "C") {
		channel = msg.Recipient
	} else if msg.Recipient != "" {
		text = fmt.Sprintf("<@%s> %s", msg.Recipient, text)
	}

	_, _, err := s.api.PostMessageContext(ctx, channel, goslack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}

// WebhookSender POSTs the message as JSON to a fixed endpoint.
type WebhookSender struct {
	url    string
	client *http.Client
}

// NewWebhookSender creates a webhook sender. client may be nil to use the
// default client.
func NewWebhookSender(url string, client *http.Client) *WebhookSender {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookSender{url: url, client: client}
}

func (w *WebhookSender) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// Broadcaster pushes a payload to connected clients. Satisfied by the API
// layer's websocket hub.
type Broadcaster interface {
	Broadcast(payload any)
}

// WebSocketSender forwards notifications to a broadcaster for live UI
// delivery.
type WebSocketSender struct {
	hub Broadcaster
}

func NewWebSocketSender(hub Broadcaster) *WebSocketSender {
	return &WebSocketSender{hub: hub}
}

func (w *WebSocketSender) Send(_ context.Context, msg Message) error {
	if w.hub == nil {
		return fmt.Errorf("no broadcaster attached")
	}
	w.hub.Broadcast(msg)
	return nil
}

// LogSender records the message in the process log. Stands in for transports
// with no wired provider, such as email and SMS.
type LogSender struct {
	channel Channel
}

func NewLogSender(ch Channel) *LogSender {
	return &LogSender{channel: ch}
}

func (l *LogSender) Send(_ context.Context, msg Message) error {
	slog.Info("Notification",
		"channel", l.channel,
		"recipient", msg.Recipient,
		"subject", msg.Subject,
		"body", msg.Body)
	return nil
}
