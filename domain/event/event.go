package event

import (
	"recall-game/domain"
	"time"
)

// Inbound event names.
const (
	JoinGame        = "recall_join_game"
	LeaveGame       = "recall_leave_game"
	PlayerAction    = "recall_player_action"
	CallRecall      = "recall_call_recall"
	PlayOutOfTurn   = "recall_play_out_of_turn"
	UseSpecialPower = "recall_use_special_power"
	GetPublicRooms  = "get_public_rooms"
)

// Outbound event names.
const (
	GetPublicRoomsSuccess = "get_public_rooms_success"
	RecallError           = "recall_error"
)

const SessionIDKey = "session_id"

// Payload is the decoded body of an inbound client event.
// The gateway sets session_id before dispatch.
type Payload map[string]any

func (p Payload) SessionID() string {
	if p == nil {
		return ""
	}
	s, _ := p[SessionIDKey].(string)
	return s
}

// WithSession returns a copy of p carrying the given session id.
func (p Payload) WithSession(sessionID string) Payload {
	out := make(Payload, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out[SessionIDKey] = sessionID
	return out
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type PublicRoomsPayload struct {
	Success   bool                 `json:"success"`
	Data      []domain.RoomSummary `json:"data"`
	Count     int                  `json:"count"`
	Timestamp float64              `json:"timestamp"`
}

// Timestamp renders t as fractional Unix seconds.
func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// Outbound is one frame delivered to a session.
type Outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}
