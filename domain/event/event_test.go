package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPayload_WithSession(t *testing.T) {
	req := require.New(t)

	// Given a payload sent by a client with a forged session id
	original := Payload{"room_id": "r1", SessionIDKey: "forged"}

	// When the gateway stamps the real session
	stamped := original.WithSession("s1")

	// Then the copy carries it and the original is untouched
	req.Equal("s1", stamped.SessionID())
	req.Equal("r1", stamped["room_id"])
	req.Equal("forged", original.SessionID())
}

func TestPayload_SessionID_Missing(t *testing.T) {
	req := require.New(t)
	var nilPayload Payload
	req.Empty(nilPayload.SessionID())
	req.Empty(Payload{}.SessionID())
	req.Empty(Payload{SessionIDKey: 12}.SessionID())
	req.Equal("s1", nilPayload.WithSession("s1").SessionID())
}

func TestTimestamp(t *testing.T) {
	req := require.New(t)
	at := time.Unix(1700000000, 500_000_000)
	req.InDelta(1700000000.5, Timestamp(at), 1e-6)
}
