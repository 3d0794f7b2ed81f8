package runtime

import (
	"log/slog"
	"recall-game/contract"
	"recall-game/domain/event"
	"recall-game/errors"
)

// Messenger sends events to a single session through the gateway.
// Delivery guarantees belong to the gateway: one send per call, no retry.
type Messenger struct {
	log     *slog.Logger
	gateway contract.Gateway
}

func NewMessenger(log *slog.Logger, gateway contract.Gateway) *Messenger {
	return &Messenger{log: log, gateway: gateway}
}

// Emit forwards payload to the session. The event is dropped when no gateway is attached.
func (m *Messenger) Emit(sessionID, name string, payload any) {
	if m == nil {
		return
	}
	if isNil(m.gateway) {
		m.log.Debug("Event dropped", "session_id", sessionID, "event", name,
			"error", errors.ErrCollaboratorUnavailable)
		return
	}
	m.gateway.SendToSession(sessionID, name, payload)
}

func (m *Messenger) EmitError(sessionID, message string) {
	m.Emit(sessionID, event.RecallError, event.ErrorPayload{Message: message})
}
