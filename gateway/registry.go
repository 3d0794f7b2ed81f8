package gateway

import (
	"recall-game/contract"
	"sort"
	"sync"

	"github.com/samber/lo"
)

var _ contract.IRegistry = (*Registry)(nil)

// Registry maps live session ids to their sinks.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]contract.EventSink
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]contract.EventSink),
	}
}

func (r *Registry) GetSink(sessionID string) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sink, ok := r.sessions[sessionID]
	return sink, ok
}

// Subscribe registers the connection of a session, replacing any previous one.
func (r *Registry) Subscribe(sessionID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = sink
}

func (r *Registry) Unsubscribe(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// Sessions returns the live session ids in lexical order.
func (r *Registry) Sessions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := lo.Keys(r.sessions)
	sort.Strings(ids)
	return ids
}
