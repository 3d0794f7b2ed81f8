package gateway

import (
	"log/slog"
	"net/http/httptest"
	"recall-game/domain/event"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	return conn
}

func TestWebsocketServer_RoundTrip(t *testing.T) {
	req := require.New(t)
	hub := NewHub(slog.Default(), NewRegistry(), nil, time.Second)

	// Given an echo handler replying to the sender
	seen := make(chan event.Payload, 1)
	hub.RegisterHandler("echo", func(p event.Payload) bool {
		seen <- p
		hub.SendToSession(p.SessionID(), "echoed", map[string]any{"text": p["text"]})
		return true
	})

	ws := NewWebsocketServer(slog.Default(), hub, "", "/ws", 4)
	server := httptest.NewServer(ws)
	defer server.Close()
	conn := dial(t, server)

	// When the client sends a frame with a forged session id
	req.NoError(conn.WriteJSON(map[string]any{
		"event": "echo",
		"data":  map[string]any{"text": "hi", event.SessionIDKey: "forged"},
	}))

	// Then the handler sees the server-side session id
	var payload event.Payload
	select {
	case payload = <-seen:
	case <-time.After(2 * time.Second):
		req.FailNow("handler not called")
	}
	req.NotEqual("forged", payload.SessionID())
	req.Contains(hub.Sessions(), payload.SessionID())

	// And the reply reaches the client
	var reply struct {
		Event string         `json:"event"`
		Data  map[string]any `json:"data"`
	}
	req.NoError(conn.ReadJSON(&reply))
	req.Equal("echoed", reply.Event)
	req.Equal("hi", reply.Data["text"])
}

func TestWebsocketServer_DisconnectForgetsSession(t *testing.T) {
	req := require.New(t)
	hub := NewHub(slog.Default(), NewRegistry(), nil, time.Second)
	ws := NewWebsocketServer(slog.Default(), hub, "", "/ws", 4)
	server := httptest.NewServer(ws)
	defer server.Close()

	conn := dial(t, server)
	req.Eventually(func() bool { return len(hub.Sessions()) == 1 }, time.Second, 10*time.Millisecond)

	// When the client leaves
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
	_ = conn.Close()

	// Then its session is removed
	req.Eventually(func() bool { return len(hub.Sessions()) == 0 }, time.Second, 10*time.Millisecond)
}
