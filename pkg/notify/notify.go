// Package notify fans notifications out over pluggable channel senders.
// Delivery is fire-and-forget with bounded retries; a notification never
// blocks or fails the operation that produced it.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/MiniSankaz/fleetd/pkg/approval"
)

// Channel identifies a delivery transport.
type Channel string

const (
	ChannelEmail     Channel = "email"
	ChannelWebSocket Channel = "websocket"
	ChannelSlack     Channel = "slack"
	ChannelWebhook   Channel = "webhook"
	ChannelSMS       Channel = "sms"
)

const (
	defaultMaxRetries = 3
	defaultBaseDelay  = 30 * time.Second
)

// Message is one notification bound for one recipient on one channel.
type Message struct {
	Recipient string         `json:"recipient"`
	Channel   Channel        `json:"channel"`
	Subject   string         `json:"subject"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
}

// Sender delivers a message over one transport.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Options tunes the dispatcher's retry behaviour. Zero values apply the
// defaults (3 retries, 30 s base delay, doubling per attempt).
type Options struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// Dispatcher routes messages to the sender registered for their channel.
type Dispatcher struct {
	mu      sync.RWMutex
	senders map[Channel]Sender

	maxRetries int
	baseDelay  time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewDispatcher creates an empty dispatcher; register senders before use.
func NewDispatcher(opts Options) *Dispatcher {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = defaultBaseDelay
	}
	return &Dispatcher{
		senders:    make(map[Channel]Sender),
		maxRetries: opts.MaxRetries,
		baseDelay:  opts.BaseDelay,
		stopCh:     make(chan struct{}),
	}
}

// Register installs the sender for a channel, replacing any previous one.
func (d *Dispatcher) Register(ch Channel, sender Sender) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.senders[ch] = sender
}

// Dispatch queues a message for asynchronous delivery. The only synchronous
// failure is an unregistered channel.
func (d *Dispatcher) Dispatch(msg Message) error {
	d.mu.RLock()
	sender, ok := d.senders[msg.Channel]
	d.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no sender registered for channel %q", msg.Channel)
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.deliver(sender, msg)
	}()
	return nil
}

// Stop waits for in-flight deliveries to finish or give up. Pending backoff
// sleeps are cut short.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
	d.wg.Wait()
}

// deliver attempts the send with exponential backoff. Exhausted retries are
// logged and dropped.
func (d *Dispatcher) deliver(sender Sender, msg Message) {
	delay := d.baseDelay
	for attempt := 0; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err := sender.Send(ctx, msg)
		cancel()
		if err == nil {
			return
		}
		if attempt >= d.maxRetries {
			slog.Error("Notification dropped after retries",
				"channel", msg.Channel,
				"recipient", msg.Recipient,
				"subject", msg.Subject,
				"attempts", attempt+1,
				"error", err)
			return
		}
		slog.Warn("Notification delivery failed, retrying",
			"channel", msg.Channel,
			"recipient", msg.Recipient,
			"attempt", attempt+1,
			"retry_in", delay,
			"error", err)
		select {
		case <-time.After(delay):
		case <-d.stopCh:
			return
		}
		delay *= 2
	}
}

// Send implements approval.Notifier: one message per (recipient, channel)
// pair. Channels with no registered sender are skipped with a log line.
func (d *Dispatcher) Send(_ context.Context, n approval.Notification) {
	for _, ch := range n.Channels {
		for _, recipient := range n.Recipients {
			msg := Message{
				Recipient: recipient,
				Channel:   Channel(ch),
				Subject:   n.Subject,
				Body:      n.Body,
				Data: map[string]any{
					"request_id": n.RequestID,
					"severity":   string(n.Severity),
				},
			}
			if err := d.Dispatch(msg); err != nil {
				slog.Debug("Skipping notification channel", "channel", ch, "error", err)
			}
		}
	}
}
