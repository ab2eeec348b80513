package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/MiniSankaz/fleetd/pkg/bus"
)

const (
	// clientSendBuffer bounds per-client backlog; a client that falls this
	// far behind is disconnected rather than blocking the fan-out.
	clientSendBuffer = 256
	writeTimeout     = 5 * time.Second
)

// wsEnvelope is the JSON frame sent to websocket clients.
type wsEnvelope struct {
	Topic     string    `json:"topic"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// wsClient is one connected websocket peer.
type wsClient struct {
	send chan []byte
}

// Hub relays every bus event to connected websocket clients, and carries
// direct broadcasts from the notification layer.
type Hub struct {
	events *bus.Bus

	mu      sync.Mutex
	clients map[*wsClient]struct{}

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewHub creates a hub over the event bus. events may be nil; the hub then
// only carries direct broadcasts.
func NewHub(events *bus.Bus) *Hub {
	return &Hub{
		events:  events,
		clients: make(map[*wsClient]struct{}),
		stopCh:  make(chan struct{}),
	}
}

// Run pumps bus events to clients until Stop.
func (h *Hub) Run() {
	if h.events == nil {
		return
	}
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		sub := h.events.Subscribe() // all topics
		defer sub.Close()
		for {
			select {
			case <-h.stopCh:
				return
			case evt := <-sub.C():
				h.fanOut(wsEnvelope{
					Topic:     string(evt.Topic),
					Timestamp: evt.Timestamp,
					Payload:   evt.Payload,
				})
			}
		}
	}()
}

// Stop disconnects every client and halts the pump.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stopCh) })
	h.wg.Wait()
}

// Broadcast sends a payload to every client outside the bus path. Implements
// the notification layer's websocket transport.
func (h *Hub) Broadcast(payload any) {
	h.fanOut(wsEnvelope{
		Topic:     "notification",
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

// ClientCount returns the number of connected peers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) fanOut(env wsEnvelope) {
	data, err := json.Marshal(env)
	if err != nil {
		slog.Warn("Dropping unserializable websocket frame", "topic", env.Topic, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Slow consumer; closing the channel ends its write loop.
			delete(h.clients, client)
			close(client.send)
			slog.Warn("Dropping slow websocket client", "topic", env.Topic)
		}
	}
}

func (h *Hub) register(client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) unregister(client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

// HandleWS upgrades GET /ws and streams events until the peer disconnects.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // same-host dashboards; no cross-origin state
	})
	if err != nil {
		slog.Warn("Websocket upgrade failed", "error", err)
		return
	}

	client := &wsClient{send: make(chan []byte, clientSendBuffer)}
	h.register(client)
	defer h.unregister(client)

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Inbound frames are ignored; reading only detects the close.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case <-h.stopCh:
			conn.Close(websocket.StatusGoingAway, "shutting down")
			return
		case msg, ok := <-client.send:
			if !ok {
				conn.Close(websocket.StatusPolicyViolation, "too far behind")
				return
			}
			wctx, wcancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Write(wctx, websocket.MessageText, msg)
			wcancel()
			if err != nil {
				return
			}
		}
	}
}
