package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiniSankaz/fleetd/pkg/bus"
)

func dialHub(t *testing.T, hub *Hub) (*websocket.Conn, func()) {
	t.Helper()
	srv := NewServer(
		&fakeQueue{}, &fakeFleet{}, &fakeLocks{}, &fakeMeter{}, &fakeGate{},
		nil, hub,
	)
	ts := httptest.NewServer(srv.Routes())

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	return conn, func() {
		cancel()
		conn.Close(websocket.StatusNormalClosure, "")
		ts.Close()
	}
}

func readEnvelope(t *testing.T, conn *websocket.Conn) wsEnvelope {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var env wsEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func TestHubRelaysBusEvents(t *testing.T) {
	events := bus.New()
	hub := NewHub(events)
	hub.Run()
	defer hub.Stop()

	conn, cleanup := dialHub(t, hub)
	defer cleanup()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	events.Publish(bus.TopicTaskQueued, map[string]string{"task_id": "t1"})

	env := readEnvelope(t, conn)
	assert.Equal(t, string(bus.TopicTaskQueued), env.Topic)
	payload, ok := env.Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "t1", payload["task_id"])
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Stop()

	conn, cleanup := dialHub(t, hub)
	defer cleanup()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(map[string]string{"subject": "limit reached"})

	env := readEnvelope(t, conn)
	assert.Equal(t, "notification", env.Topic)
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Stop()

	// A client with no buffer and no reader cannot keep up.
	slow := &wsClient{send: make(chan []byte)}
	hub.register(slow)
	require.Equal(t, 1, hub.ClientCount())

	hub.Broadcast("ping")

	assert.Equal(t, 0, hub.ClientCount())
	_, open := <-slow.send
	assert.False(t, open)
}

func TestHubStopDisconnectsClients(t *testing.T) {
	hub := NewHub(nil)

	conn, cleanup := dialHub(t, hub)
	defer cleanup()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))
}
