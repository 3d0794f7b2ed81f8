package runtime

import (
	"log/slog"
	"recall-game/contract"
	"recall-game/domain"
	"recall-game/domain/event"
	"recall-game/errors"
	"recall-game/gateway"
	"recall-game/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGame_HealthCheck_Lifecycle(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockGatewayProvider(ctrl)
	gw := mocks.NewMockGateway(ctrl)
	provider.EXPECT().GetWebsocketManager().Return(gw)
	gw.EXPECT().RegisterHandler(gomock.Any(), gomock.Any()).Times(len(allEvents))

	game := NewGame(slog.Default())

	// Given a game never initialized
	record := game.HealthCheck()
	req.Equal(domain.NotInitialized, record.Status)
	req.Equal(domain.GameComponent, record.Component)
	req.Equal("Recall game backend not initialized", record.Message)
	req.Equal(domain.Uninitialized, game.State())

	// When initializing with every collaborator
	req.NoError(game.Initialize(provider))

	// Then it is healthy
	record = game.HealthCheck()
	req.Equal(domain.Healthy, record.Status)
	req.Equal(map[string]domain.HealthStatus{
		"websocket_manager":  domain.Healthy,
		"game_state_manager": domain.Healthy,
		"game_logic_engine":  domain.Healthy,
	}, record.Details)

	// When the gateway is cleared
	game.DetachGateway()

	// Then it is degraded
	record = game.HealthCheck()
	req.Equal(domain.Degraded, record.Status)
	req.Equal(domain.Unhealthy, record.Details["websocket_manager"])
}

func TestGame_Initialize_NoGatewayThenRetry(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockGatewayProvider(ctrl)
	gw := mocks.NewMockGateway(ctrl)

	// Given a provider without gateway on the first call only
	gomock.InOrder(
		provider.EXPECT().GetWebsocketManager().Return(nil),
		provider.EXPECT().GetWebsocketManager().Return(gw),
	)
	gw.EXPECT().RegisterHandler(gomock.Any(), gomock.Any()).Times(len(allEvents))

	game := NewGame(slog.Default())

	// When initializing without gateway
	err := game.Initialize(provider)

	// Then it fails and stays uninitialized
	req.ErrorIs(err, errors.ErrInitialization)
	req.ErrorIs(err, errors.ErrGatewayUnavailable)
	req.False(game.IsInitialized())
	req.Equal(domain.NotInitialized, game.HealthCheck().Status)
	req.Nil(game.GetWebsocketManager())

	// When retrying with a gateway
	req.NoError(game.Initialize(provider))
	req.True(game.IsInitialized())
	req.Equal(domain.Initialized, game.State())
}

func TestGame_Initialize_NilProvider(t *testing.T) {
	req := require.New(t)
	game := NewGame(slog.Default())

	var typedNil *gateway.Hub
	req.ErrorIs(game.Initialize(nil), errors.ErrGatewayUnavailable)
	req.ErrorIs(game.Initialize(typedNil), errors.ErrGatewayUnavailable)
	req.False(game.IsInitialized())
}

func TestGame_Initialize_Idempotent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockGatewayProvider(ctrl)
	gw := mocks.NewMockGateway(ctrl)

	// Then the gateway is obtained and bound only once
	provider.EXPECT().GetWebsocketManager().Return(gw).Times(1)
	gw.EXPECT().RegisterHandler(gomock.Any(), gomock.Any()).Times(len(allEvents))

	game := NewGame(slog.Default())
	req.NoError(game.Initialize(provider))
	req.NoError(game.Initialize(provider))
}

func TestGame_Initialize_PanickingProvider(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockGatewayProvider(ctrl)
	provider.EXPECT().GetWebsocketManager().DoAndReturn(func() contract.Gateway {
		panic("transport not ready")
	})

	game := NewGame(slog.Default())

	err := game.Initialize(provider)

	req.ErrorIs(err, errors.ErrInitialization)
	req.False(game.IsInitialized())
}

func TestGame_Accessors(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockRuleEngine(ctrl)
	hub := gateway.NewHub(slog.Default(), gateway.NewRegistry(), nil, time.Second)

	game := NewGame(slog.Default()).WithRuleEngine(engine)

	// Given an uninitialized game, accessors return nothing
	req.Nil(game.GetWebsocketManager())
	req.Nil(game.GetGameStateManager())
	req.Nil(game.GetGameLogicEngine())
	req.Empty(game.Bindings())

	req.NoError(game.Initialize(hub))

	// Then they expose the components
	req.Equal(hub, game.GetWebsocketManager())
	req.NotNil(game.GetGameStateManager())
	req.Equal(engine, game.GetGameLogicEngine())
	req.Len(game.Bindings(), len(allEvents))
}

func TestGame_HealthCheck_ClosedHub(t *testing.T) {
	req := require.New(t)
	hub := gateway.NewHub(slog.Default(), gateway.NewRegistry(), nil, time.Second)
	game, err := InitializeGame(slog.Default(), hub)
	req.NoError(err)

	// When the transport shuts down
	hub.Close()

	// Then the gateway reports itself unhealthy
	record := game.HealthCheck()
	req.Equal(domain.Degraded, record.Status)
	req.Equal(domain.Unhealthy, record.Details["websocket_manager"])
}

type panickingGateway struct {
	contract.Gateway
}

func (panickingGateway) RegisterHandler(string, contract.HandlerFunc) {}

func (panickingGateway) Healthy() bool {
	panic("probe exploded")
}

type staticProvider struct {
	gw contract.Gateway
}

func (p staticProvider) GetWebsocketManager() contract.Gateway {
	return p.gw
}

func TestGame_HealthCheck_FaultIsUnhealthy(t *testing.T) {
	req := require.New(t)
	game, err := InitializeGame(slog.Default(), staticProvider{gw: panickingGateway{}})
	req.NoError(err)

	// When evaluating a component panics
	var record domain.HealthRecord
	req.NotPanics(func() { record = game.HealthCheck() })

	// Then the record is unhealthy with the fault message
	req.Equal(domain.Unhealthy, record.Status)
	req.Equal(domain.GameComponent, record.Component)
	req.Equal("Health check failed: probe exploded", record.Message)
}

func TestGame_PublicRoomsEndToEnd(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockRoomDirectory(ctrl)
	directory.EXPECT().GetAllRooms().Return([]domain.RawRoom{
		{ID: "r1", Metadata: map[string]any{"permission": "public"}},
		{ID: "r2", Metadata: map[string]any{"permission": "private"}},
	}, nil)

	// Given a hub with one connected session s1
	registry := gateway.NewRegistry()
	hub := gateway.NewHub(slog.Default(), registry, directory, time.Second)
	sink := gateway.NewSessionSink(4)
	registry.Subscribe("s1", sink)

	_, err := InitializeGame(slog.Default(), hub)
	req.NoError(err)

	// When the session asks for public rooms
	req.True(hub.Dispatch(event.GetPublicRooms, event.Payload{event.SessionIDKey: "s1"}))

	// Then exactly the public room comes back with defaults applied
	select {
	case out := <-sink.Outbound:
		req.Equal(event.GetPublicRoomsSuccess, out.Event)
		payload := out.Data.(event.PublicRoomsPayload)
		req.True(payload.Success)
		req.Equal(1, payload.Count)
		req.Equal(domain.RoomSummary{
			RoomID:        "r1",
			RoomName:      "r1",
			Permission:    "public",
			CurrentSize:   0,
			MaxSize:       4,
			MinSize:       2,
			GameType:      "classic",
			TurnTimeLimit: 30,
			AutoStart:     true,
		}, payload.Data[0])
	case <-time.After(time.Second):
		req.Fail("no reply delivered to s1")
	}
}
