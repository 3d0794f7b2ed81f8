// Package domain contains core concepts of the Recall game backend.
// This file defines rooms as seen by the discovery layer.
// Room metadata is owned by the room directory and is read-only here.
package domain

const (
	PermissionPublic  = "public"
	PermissionPrivate = "private"

	DefaultMaxSize       = 4
	DefaultMinSize       = 2
	DefaultGameType      = "classic"
	DefaultTurnTimeLimit = 30
	DefaultAutoStart     = true
	DefaultCurrentSize   = 0
)

// RawRoom is one entry of the room directory, as stored.
// Metadata keys follow the wire names (permission, max_size, ...).
type RawRoom struct {
	ID       string
	Metadata map[string]any
}

// RoomSummary is the public-safe projection of a room sent to clients.
type RoomSummary struct {
	RoomID        string `json:"room_id"`
	RoomName      string `json:"room_name"`
	OwnerID       any    `json:"owner_id"`
	Permission    string `json:"permission"`
	CurrentSize   int    `json:"current_size"`
	MaxSize       int    `json:"max_size"`
	MinSize       int    `json:"min_size"`
	CreatedAt     any    `json:"created_at"`
	GameType      string `json:"game_type"`
	TurnTimeLimit int    `json:"turn_time_limit"`
	AutoStart     bool   `json:"auto_start"`
}

func (r RawRoom) Permission() string {
	s, _ := r.Metadata["permission"].(string)
	return s
}

func (r RawRoom) IsPublic() bool {
	return r.Permission() == PermissionPublic
}

// Summary projects the raw metadata, substituting defaults for missing fields.
func (r RawRoom) Summary() RoomSummary {
	return RoomSummary{
		RoomID:        r.ID,
		RoomName:      r.stringOr("room_name", r.ID),
		OwnerID:       r.Metadata["owner_id"],
		Permission:    r.Permission(),
		CurrentSize:   r.intOr("current_size", DefaultCurrentSize),
		MaxSize:       r.intOr("max_size", DefaultMaxSize),
		MinSize:       r.intOr("min_size", DefaultMinSize),
		CreatedAt:     r.Metadata["created_at"],
		GameType:      r.stringOr("game_type", DefaultGameType),
		TurnTimeLimit: r.intOr("turn_time_limit", DefaultTurnTimeLimit),
		AutoStart:     r.boolOr("auto_start", DefaultAutoStart),
	}
}

func (r RawRoom) stringOr(key, fallback string) string {
	if s, ok := r.Metadata[key].(string); ok {
		return s
	}
	return fallback
}

func (r RawRoom) boolOr(key string, fallback bool) bool {
	if b, ok := r.Metadata[key].(bool); ok {
		return b
	}
	return fallback
}

// intOr accepts the numeric shapes produced by JSON and structpb decoding.
func (r RawRoom) intOr(key string, fallback int) int {
	switch v := r.Metadata[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}
