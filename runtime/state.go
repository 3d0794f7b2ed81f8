package runtime

import (
	"recall-game/domain"
	"sync"
	"time"
)

// GameStateManager keeps the in-memory state of running games, keyed by room.
// Nothing is persisted: state is lost on restart.
type GameStateManager struct {
	mu    sync.RWMutex
	games map[string]domain.GameState
}

func NewGameStateManager() *GameStateManager {
	return &GameStateManager{games: make(map[string]domain.GameState)}
}

// CreateGame registers a waiting game for the room, or returns the existing one.
func (m *GameStateManager) CreateGame(roomID string) domain.GameState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.games[roomID]; ok {
		return g
	}
	g := domain.GameState{RoomID: roomID, Phase: domain.PhaseWaiting, CreatedAt: time.Now().UTC()}
	m.games[roomID] = g
	return g
}

func (m *GameStateManager) GetGame(roomID string) (domain.GameState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[roomID]
	return g, ok
}

func (m *GameStateManager) RemoveGame(roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, roomID)
}

func (m *GameStateManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
