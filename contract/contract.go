//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"recall-game/domain"
	"recall-game/domain/event"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// HandlerFunc is what the gateway invokes for one inbound event.
// It reports whether the event was handled successfully.
type HandlerFunc func(payload event.Payload) bool

// Gateway is the messaging transport: it owns sessions, dispatches inbound
// events to bound handlers and delivers outbound events.
type Gateway interface {
	RegisterHandler(name string, handler HandlerFunc)
	SendToSession(sessionID, name string, payload any)
}

// RoomDirectory stores room metadata. Rooms are returned in enumeration order.
type RoomDirectory interface {
	GetAllRooms() ([]domain.RawRoom, error)
}

// RoomProvider is an optional gateway capability.
type RoomProvider interface {
	RoomManager() RoomDirectory
}

type RoomGateway interface {
	Gateway
	RoomProvider
}

// HealthReporter is an optional gateway capability used by health checks.
type HealthReporter interface {
	Healthy() bool
}

type HealthChecker interface {
	HealthCheck() domain.HealthRecord
}

// StatusPublisher receives every sampled health record.
type StatusPublisher interface {
	Publish(record domain.HealthRecord)
}

type GatewayProvider interface {
	GetWebsocketManager() Gateway
}

// RuleEngine receives the game actions. Each action reports its own Result.
type RuleEngine interface {
	JoinGame(payload event.Payload) domain.Result
	LeaveGame(payload event.Payload) domain.Result
	PlayerAction(payload event.Payload) domain.Result
	CallRecall(payload event.Payload) domain.Result
	PlayOutOfTurn(payload event.Payload) domain.Result
	UseSpecialPower(payload event.Payload) domain.Result
}

type EventSink interface {
	Consume(ctx context.Context, e event.Outbound) error
}

type IRegistry interface {
	GetSink(sessionID string) (EventSink, bool)
	Subscribe(sessionID string, sink EventSink)
	Unsubscribe(sessionID string)
	Sessions() []string
}

type IRoomRepository interface {
	RoomDirectory
	SaveRoom(room domain.RawRoom) error
	GetRoom(roomID string) (domain.RawRoom, error)
	DeleteRoom(roomID string) error
}
