package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiniSankaz/fleetd/pkg/approval"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

// flakySender fails a fixed number of times before succeeding.
type flakySender struct {
	mu       sync.Mutex
	failures int
	sent     []Message
	calls    int
}

func (f *flakySender) Send(_ context.Context, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		return fmt.Errorf("transient failure %d", f.calls)
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *flakySender) delivered() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Message(nil), f.sent...)
}

func (f *flakySender) attempts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestDispatchDeliversToRegisteredSender(t *testing.T) {
	d := NewDispatcher(Options{BaseDelay: time.Millisecond})
	sender := &flakySender{}
	d.Register(ChannelWebhook, sender)

	require.NoError(t, d.Dispatch(Message{
		Recipient: "ops",
		Channel:   ChannelWebhook,
		Subject:   "hello",
	}))
	d.Stop()

	msgs := sender.delivered()
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].Subject)
}

func TestDispatchUnknownChannel(t *testing.T) {
	d := NewDispatcher(Options{})
	err := d.Dispatch(Message{Channel: ChannelSMS})
	assert.Error(t, err)
}

func TestDeliveryRetriesWithBackoff(t *testing.T) {
	d := NewDispatcher(Options{MaxRetries: 3, BaseDelay: time.Millisecond})
	sender := &flakySender{failures: 2}
	d.Register(ChannelSlack, sender)

	require.NoError(t, d.Dispatch(Message{Channel: ChannelSlack, Subject: "retry me"}))
	d.Stop()

	assert.Equal(t, 3, sender.attempts())
	assert.Len(t, sender.delivered(), 1)
}

func TestDeliveryGivesUpAfterMaxRetries(t *testing.T) {
	d := NewDispatcher(Options{MaxRetries: 2, BaseDelay: time.Millisecond})
	sender := &flakySender{failures: 10}
	d.Register(ChannelEmail, sender)

	require.NoError(t, d.Dispatch(Message{Channel: ChannelEmail}))
	d.Stop()

	// Initial attempt plus two retries, then dropped.
	assert.Equal(t, 3, sender.attempts())
	assert.Empty(t, sender.delivered())
}

func TestGateNotificationFansOutPerRecipientAndChannel(t *testing.T) {
	d := NewDispatcher(Options{BaseDelay: time.Millisecond})
	slack := &flakySender{}
	ws := &flakySender{}
	d.Register(ChannelSlack, slack)
	d.Register(ChannelWebSocket, ws)

	d.Send(context.Background(), approval.Notification{
		RequestID:  "req-1",
		Recipients: []string{"alpha", "beta"},
		Channels:   []string{"slack", "websocket", "pager"},
		Subject:    "Approval required",
		Severity:   models.AuditInfo,
	})
	d.Stop()

	assert.Len(t, slack.delivered(), 2)
	assert.Len(t, ws.delivered(), 2)
	assert.Equal(t, "req-1", slack.delivered()[0].Data["request_id"])
}

func TestWebhookSender(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewWebhookSender(srv.URL, srv.Client())
	err := sender.Send(context.Background(), Message{
		Recipient: "ops",
		Channel:   ChannelWebhook,
		Subject:   "deploy approved",
		Data:      map[string]any{"request_id": "req-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "deploy approved", got.Subject)
	assert.Equal(t, "req-1", got.Data["request_id"])
}

func TestWebhookSenderRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sender := NewWebhookSender(srv.URL, srv.Client())
	assert.Error(t, sender.Send(context.Background(), Message{Channel: ChannelWebhook}))
}

func TestSlackSenderPostsToMockAPI(t *testing.T) {
	var posted bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/chat.postMessage" {
			posted = true
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":true,"channel":"C123","ts":"1.2"}`)
	}))
	defer srv.Close()

	sender := NewSlackSenderWithAPIURL("xoxb-test", "C123", srv.URL+"/")
	err := sender.Send(context.Background(), Message{
		Recipient: "alpha",
		Subject:   "Approval required",
		Body:      "please review",
	})
	require.NoError(t, err)
	assert.True(t, posted)
}

func TestNewSlackSenderRequiresConfig(t *testing.T) {
	assert.Nil(t, NewSlackSender("", "C123"))
	assert.Nil(t, NewSlackSender("xoxb", ""))
	assert.NotNil(t, NewSlackSender("xoxb", "C123"))
}

// recordingHub captures websocket broadcasts.
type recordingHub struct {
	mu       sync.Mutex
	payloads []any
}

func (h *recordingHub) Broadcast(payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.payloads = append(h.payloads, payload)
}

func TestWebSocketSenderBroadcasts(t *testing.T) {
	hub := &recordingHub{}
	sender := NewWebSocketSender(hub)
	require.NoError(t, sender.Send(context.Background(), Message{Subject: "live"}))
	require.Len(t, hub.payloads, 1)

	empty := NewWebSocketSender(nil)
	assert.Error(t, empty.Send(context.Background(), Message{}))
}
