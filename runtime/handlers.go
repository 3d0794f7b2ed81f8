package runtime

import (
	"fmt"
	"log/slog"
	"recall-game/contract"
	"recall-game/domain"
	"recall-game/domain/event"
	"recall-game/errors"
	"recall-game/services"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Action handles one inbound event and reports the outcome as a Result.
type Action func(payload event.Payload) domain.Result

// HandlerRegistry owns the binding table between event names and handlers.
// The table is written once by RegisterHandlers and only read afterwards.
type HandlerRegistry struct {
	mu       sync.RWMutex
	log      *slog.Logger
	engine   contract.RuleEngine
	bindings map[string]contract.HandlerFunc
}

func NewHandlerRegistry(log *slog.Logger, engine contract.RuleEngine) *HandlerRegistry {
	return &HandlerRegistry{
		log:      log,
		engine:   engine,
		bindings: make(map[string]contract.HandlerFunc),
	}
}

// RegisterHandlers binds every game event on the gateway.
// The room directory capability is resolved here, once, and fixed for the
// lifetime of the bindings.
func (r *HandlerRegistry) RegisterHandlers(gateway contract.Gateway) error {
	if isNil(gateway) {
		r.log.Warn("Messaging gateway not available, no handler registered")
		return errors.ErrGatewayUnavailable
	}

	var directory contract.RoomDirectory
	if provider, ok := gateway.(contract.RoomProvider); ok {
		if rooms := provider.RoomManager(); !isNil(rooms) {
			directory = rooms
		}
	}
	messenger := NewMessenger(r.log, gateway)
	roomService := services.NewRoomService(r.log, directory)

	actions := map[string]Action{
		event.JoinGame:        r.engine.JoinGame,
		event.LeaveGame:       r.engine.LeaveGame,
		event.PlayerAction:    r.engine.PlayerAction,
		event.CallRecall:      r.engine.CallRecall,
		event.PlayOutOfTurn:   r.engine.PlayOutOfTurn,
		event.UseSpecialPower: r.engine.UseSpecialPower,
		event.GetPublicRooms:  roomService.HandleGetPublicRooms,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for name, action := range actions {
		handler := r.boundary(name, action, messenger)
		if _, exists := r.bindings[name]; exists {
			r.log.Warn("Handler already bound, overwriting", "event", name)
		}
		r.bindings[name] = handler
		gateway.RegisterHandler(name, handler)
	}
	r.log.Info("Recall game handlers registered with messaging gateway", "count", len(actions))
	return nil
}

// boundary wraps an action so that no fault escapes to the gateway dispatch loop.
// Results are converted to wire responses here: replies are emitted as-is and
// failures become recall_error events for the originating session.
func (r *HandlerRegistry) boundary(name string, action Action, messenger *Messenger) contract.HandlerFunc {
	return func(payload event.Payload) (ok bool) {
		defer func() {
			if rec := recover(); rec != nil {
				err := fmt.Errorf("%w: %v", errors.ErrUnexpectedFault, rec)
				r.log.Error("Handler panicked", "event", name, "error", err)
				messenger.EmitError(payload.SessionID(), fmt.Sprintf("Error handling %s: %v", name, rec))
				ok = false
			}
		}()

		result := action(payload)
		switch {
		case result.HasReply():
			messenger.Emit(result.SessionID, result.Event, result.Payload)
		case !result.OK:
			r.log.Debug("Handler failed", "event", name, "kind", result.Kind, "message", result.Message)
			messenger.EmitError(result.SessionID, result.Message)
		}
		return result.OK
	}
}

// Handler returns the bound handler for an event name.
func (r *HandlerRegistry) Handler(name string) (contract.HandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.bindings[name]
	return h, ok
}

// Bindings lists the bound event names in lexical order.
func (r *HandlerRegistry) Bindings() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := lo.Keys(r.bindings)
	sort.Strings(names)
	return names
}
