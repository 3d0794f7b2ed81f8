package domain

import "time"

type GamePhase string

const (
	PhaseWaiting  GamePhase = "waiting"
	PhasePlaying  GamePhase = "playing"
	PhaseFinished GamePhase = "finished"
)

type GameState struct {
	RoomID    string
	Phase     GamePhase
	CreatedAt time.Time
}
