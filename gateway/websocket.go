package gateway

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"recall-game/contract"
	"recall-game/domain/event"
	"time"

	"github.com/gorilla/websocket"
)

var _ contract.Worker = (*WebsocketServer)(nil)

const (
	writeWait       = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Frame is the JSON envelope exchanged with clients in both directions.
type Frame struct {
	Event string        `json:"event"`
	Data  event.Payload `json:"data"`
}

// WebsocketServer accepts client connections and bridges them to the hub.
// Each connection is one session; its id is generated on connect and stamped
// on every inbound payload, overriding whatever the client sent.
type WebsocketServer struct {
	log               *slog.Logger
	hub               *Hub
	upgrader          websocket.Upgrader
	addr              string
	path              string
	sessionBufferSize int
}

func NewWebsocketServer(log *slog.Logger, hub *Hub, addr, path string, sessionBufferSize int) *WebsocketServer {
	return &WebsocketServer{
		log:  log,
		hub:  hub,
		addr: addr,
		path: path,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		sessionBufferSize: sessionBufferSize,
	}
}

// Run serves websocket connections until ctx is canceled.
func (s *WebsocketServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle(s.path, s)
	server := &http.Server{Addr: s.addr, Handler: mux}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting websocket gateway", "address", s.addr, "path", s.path)
		errChan <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.hub.Close()
		return server.Shutdown(shutdownCtx)
	case err := <-errChan:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("websocket gateway: %w", err)
	}
}

func (s *WebsocketServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	sink := NewSessionSink(s.sessionBufferSize)
	sessionID := s.hub.Connect(sink)
	defer func() {
		s.hub.Disconnect(sessionID)
		sink.Close()
		_ = conn.Close()
	}()

	go s.writeLoop(conn, sink, sessionID)
	s.readLoop(conn, sessionID)
}

func (s *WebsocketServer) readLoop(conn *websocket.Conn, sessionID string) {
	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("Session read failed", "session_id", sessionID, "error", err)
			}
			return
		}
		if frame.Event == "" {
			s.log.Debug("Ignoring frame without event", "session_id", sessionID)
			continue
		}
		s.hub.Dispatch(frame.Event, frame.Data.WithSession(sessionID))
	}
}

func (s *WebsocketServer) writeLoop(conn *websocket.Conn, sink *SessionSink, sessionID string) {
	for {
		select {
		case <-sink.Done():
			return
		case out := <-sink.Outbound:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(out); err != nil {
				s.log.Error("Failed to push event to session", "session_id", sessionID, "event", out.Event, "error", err)
				return
			}
		}
	}
}
