// Package runtime wires the game subsystems together: handler bindings,
// dispatch boundary, lifecycle and health. It holds no card-game rules.
package runtime

import (
	"log/slog"
	"recall-game/contract"
	"recall-game/domain"
	"recall-game/domain/event"
)

var _ contract.RuleEngine = (*GameLogicEngine)(nil)

// GameLogicEngine is the default rule engine. Every action is acknowledged
// and reported as a success without any response to the session.
type GameLogicEngine struct {
	log *slog.Logger
}

func NewGameLogicEngine(log *slog.Logger) *GameLogicEngine {
	return &GameLogicEngine{log: log}
}

func (e *GameLogicEngine) JoinGame(payload event.Payload) domain.Result {
	return e.acknowledge("Join game handler called", payload)
}

func (e *GameLogicEngine) LeaveGame(payload event.Payload) domain.Result {
	return e.acknowledge("Leave game handler called", payload)
}

func (e *GameLogicEngine) PlayerAction(payload event.Payload) domain.Result {
	return e.acknowledge("Player action handler called", payload)
}

func (e *GameLogicEngine) CallRecall(payload event.Payload) domain.Result {
	return e.acknowledge("Call Recall handler called", payload)
}

func (e *GameLogicEngine) PlayOutOfTurn(payload event.Payload) domain.Result {
	return e.acknowledge("Play out of turn handler called", payload)
}

func (e *GameLogicEngine) UseSpecialPower(payload event.Payload) domain.Result {
	return e.acknowledge("Use special power handler called", payload)
}

func (e *GameLogicEngine) acknowledge(msg string, payload event.Payload) domain.Result {
	e.log.Debug(msg, "session_id", payload.SessionID())
	return domain.Ack()
}
