package gateway

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Subscribe_One_Session(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID := uuid.NewString()
	sink := NewSessionSink(1)

	// Given no session is connected
	req.Empty(registry.Sessions())

	// When a session subscribes
	registry.Subscribe(sessionID, sink)

	// Then its sink is found
	got, ok := registry.GetSink(sessionID)
	req.True(ok)
	req.Equal(sink, got)
	req.Equal([]string{sessionID}, registry.Sessions())
}

func TestRegistry_Subscribe_Replaces(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	first, second := NewSessionSink(1), NewSessionSink(1)

	registry.Subscribe("s1", first)
	registry.Subscribe("s1", second)

	got, _ := registry.GetSink("s1")
	req.Same(second, got)
	req.Len(registry.Sessions(), 1)
}

func TestRegistry_Unsubscribe(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.Subscribe("b", NewSessionSink(1))
	registry.Subscribe("a", NewSessionSink(1))

	// When one session leaves
	registry.Unsubscribe("b")

	// Then the other one remains, unknown ids are ignored
	registry.Unsubscribe("unknown")
	req.Equal([]string{"a"}, registry.Sessions())
	_, ok := registry.GetSink("b")
	req.False(ok)
}
