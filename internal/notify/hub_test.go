package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("hub never reached %d clients, have %d", want, hub.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHubBroadcastsEvents(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)
	waitForClients(t, hub, 1)

	sent := NewEvent("LISTING_CREATED", "listing 1: 5 units at 10", "seller")
	sent.AssetID = 1
	sent.Amount = 5
	hub.Publish(sent)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, body, err := conn.ReadMessage()
	require.NoError(t, err)

	var got Event
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, sent.ID, got.ID)
	assert.Equal(t, "LISTING_CREATED", got.ActionType)
	assert.Equal(t, "seller", got.Actor)
	assert.Equal(t, int64(5), got.Amount)
}

func TestHubFansOutToAllClients(t *testing.T) {
	hub := NewHub()
	first := dialHub(t, hub)
	second := dialHub(t, hub)
	waitForClients(t, hub, 2)

	hub.Publish(NewEvent("MODULE_PAUSED", "Marketplace", "admin"))

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, body, err := conn.ReadMessage()
		require.NoError(t, err)
		var got Event
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "MODULE_PAUSED", got.ActionType)
	}
}

func TestHubDropsDisconnectedClients(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)

	// Publishing with no clients is a no-op.
	hub.Publish(NewEvent("ASSET_ISSUED", "10 units to owner", "fund-manager"))
}

func TestMultiSkipsNilSinks(t *testing.T) {
	var received []Event
	sink := notifierFunc(func(e Event) { received = append(received, e) })

	Multi{nil, sink}.Publish(NewEvent("ROLE_GRANTED", "detail", "admin"))

	require.Len(t, received, 1)
	assert.Equal(t, "ROLE_GRANTED", received[0].ActionType)
}

type notifierFunc func(Event)

func (f notifierFunc) Publish(e Event) { f(e) }
