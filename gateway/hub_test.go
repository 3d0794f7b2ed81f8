package gateway

import (
	"context"
	"errors"
	"log/slog"
	"recall-game/domain/event"
	"recall-game/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHub_Dispatch(t *testing.T) {
	req := require.New(t)
	hub := NewHub(slog.Default(), NewRegistry(), nil, time.Second)

	var received event.Payload
	hub.RegisterHandler("ping", func(p event.Payload) bool {
		received = p
		return true
	})

	// When a known event arrives
	ok := hub.Dispatch("ping", event.Payload{event.SessionIDKey: "s1"})

	// Then its handler gets the payload
	req.True(ok)
	req.Equal("s1", received.SessionID())

	// And unknown events are dropped
	req.False(hub.Dispatch("pong", event.Payload{}))
}

func TestHub_RegisterHandler_LastWriteWins(t *testing.T) {
	req := require.New(t)
	hub := NewHub(slog.Default(), NewRegistry(), nil, time.Second)

	hub.RegisterHandler("ping", func(event.Payload) bool { return false })
	hub.RegisterHandler("ping", func(event.Payload) bool { return true })

	req.True(hub.Dispatch("ping", nil))
}

func TestHub_SendToSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	sink := mocks.NewMockEventSink(ctrl)

	// Given a connected session and an unknown one
	registry.EXPECT().GetSink("s1").Return(sink, true)
	registry.EXPECT().GetSink("ghost").Return(nil, false)
	sink.EXPECT().Consume(gomock.Any(), event.Outbound{Event: "hello", Data: 1}).Return(nil)

	hub := NewHub(slog.Default(), registry, nil, time.Second)

	// Then only the known session receives the event
	hub.SendToSession("s1", "hello", 1)
	hub.SendToSession("ghost", "hello", 1)
}

func TestHub_SendToSession_FailedDeliveryIsSwallowed(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	sink := mocks.NewMockEventSink(ctrl)

	registry.EXPECT().GetSink("s1").Return(sink, true)
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ event.Outbound) error {
			_, hasDeadline := ctx.Deadline()
			req.True(hasDeadline)
			return errors.New("slow client")
		})

	hub := NewHub(slog.Default(), registry, nil, 50*time.Millisecond)
	req.NotPanics(func() { hub.SendToSession("s1", "hello", nil) })
}

func TestHub_ConnectDisconnect(t *testing.T) {
	req := require.New(t)
	hub := NewHub(slog.Default(), NewRegistry(), nil, time.Second)

	first := hub.Connect(NewSessionSink(1))
	second := hub.Connect(NewSessionSink(1))

	req.NotEqual(first, second)
	req.ElementsMatch([]string{first, second}, hub.Sessions())

	hub.Disconnect(first)
	req.Equal([]string{second}, hub.Sessions())
}

func TestHub_Capabilities(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockRoomDirectory(ctrl)

	hub := NewHub(slog.Default(), NewRegistry(), directory, time.Second)

	req.Equal(directory, hub.RoomManager())
	req.Same(hub, hub.GetWebsocketManager())
	req.True(hub.Healthy())

	// When closed, sessions are forgotten and the hub reports unhealthy
	hub.Connect(NewSessionSink(1))
	hub.Close()
	req.False(hub.Healthy())
	req.Empty(hub.Sessions())
}
