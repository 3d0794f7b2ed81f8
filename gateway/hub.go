// Package gateway is the messaging transport of the Recall backend: it owns
// client sessions, dispatches inbound events to the bound handlers and delivers
// outbound events to sessions.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"recall-game/contract"
	"recall-game/domain/event"
	"recall-game/errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var (
	_ contract.RoomGateway     = (*Hub)(nil)
	_ contract.HealthReporter  = (*Hub)(nil)
	_ contract.GatewayProvider = (*Hub)(nil)
)

type Hub struct {
	mu              sync.RWMutex
	log             *slog.Logger
	handlers        map[string]contract.HandlerFunc
	registry        contract.IRegistry
	rooms           contract.RoomDirectory
	deliveryTimeout time.Duration
	closed          atomic.Bool
}

// NewHub builds a hub. rooms may be nil when no room directory is available.
func NewHub(log *slog.Logger, registry contract.IRegistry, rooms contract.RoomDirectory,
	deliveryTimeout time.Duration) *Hub {
	return &Hub{
		log:             log,
		handlers:        make(map[string]contract.HandlerFunc),
		registry:        registry,
		rooms:           rooms,
		deliveryTimeout: deliveryTimeout,
	}
}

// RegisterHandler binds a handler to an event name. A second registration
// for the same name replaces the first one.
func (h *Hub) RegisterHandler(name string, handler contract.HandlerFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.handlers[name]; ok {
		h.log.Warn("Replacing handler", "event", name)
	}
	h.handlers[name] = handler
}

// SendToSession delivers an event to one session without waiting for the
// client. Events for unknown sessions are dropped.
func (h *Hub) SendToSession(sessionID, name string, payload any) {
	sink, ok := h.registry.GetSink(sessionID)
	if !ok {
		h.log.Debug("Dropping event", "session_id", sessionID, "event", name, "error", errors.ErrSessionNotFound)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), h.deliveryTimeout)
	defer cancel()
	if err := sink.Consume(ctx, event.Outbound{Event: name, Data: payload}); err != nil {
		h.log.Warn("Event not delivered", "session_id", sessionID, "event", name, "error", err)
	}
}

// Dispatch routes an inbound event to its handler. Unknown events are dropped.
func (h *Hub) Dispatch(name string, payload event.Payload) bool {
	h.mu.RLock()
	handler, ok := h.handlers[name]
	h.mu.RUnlock()
	if !ok {
		h.log.Warn(fmt.Sprintf("No handler for event %q", name), "session_id", payload.SessionID())
		return false
	}
	return handler(payload)
}

// Connect registers a new session and returns its generated id.
func (h *Hub) Connect(sink contract.EventSink) string {
	sessionID := uuid.NewString()
	h.registry.Subscribe(sessionID, sink)
	h.log.Debug("Session connected", "session_id", sessionID)
	return sessionID
}

func (h *Hub) Disconnect(sessionID string) {
	h.registry.Unsubscribe(sessionID)
	h.log.Debug("Session disconnected", "session_id", sessionID)
}

func (h *Hub) Sessions() []string {
	return h.registry.Sessions()
}

func (h *Hub) RoomManager() contract.RoomDirectory {
	return h.rooms
}

// GetWebsocketManager lets the hub act as its own gateway provider.
func (h *Hub) GetWebsocketManager() contract.Gateway {
	return h
}

func (h *Hub) Healthy() bool {
	return !h.closed.Load()
}

// Close marks the hub as stopped and forgets every session.
func (h *Hub) Close() {
	h.closed.Store(true)
	for _, id := range h.registry.Sessions() {
		h.registry.Unsubscribe(id)
	}
}
