package runtime

import (
	"fmt"
	"log/slog"
	"recall-game/contract"
	"recall-game/domain"
	"recall-game/errors"
	"reflect"
	"sync"
	"time"
)

const (
	componentGateway     = "websocket_manager"
	componentStateManage = "game_state_manager"
	componentLogicEngine = "game_logic_engine"
)

// Game is the lifecycle and health controller of the Recall backend.
// It starts Uninitialized and moves to Initialized once the gateway is
// obtained and every handler is bound. A failed Initialize leaves no state
// behind and may be retried.
//
// One Game is built by the process wiring and handed to whoever owns the
// gateway lifecycle; there is no package-level instance.
type Game struct {
	mu           sync.RWMutex
	log          *slog.Logger
	initialized  bool
	gateway      contract.Gateway
	stateManager *GameStateManager
	logicEngine  contract.RuleEngine
	registry     *HandlerRegistry
	ruleEngine   contract.RuleEngine
}

func NewGame(log *slog.Logger) *Game {
	return &Game{log: log}
}

// WithRuleEngine replaces the default rule engine used at Initialize.
func (g *Game) WithRuleEngine(engine contract.RuleEngine) *Game {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ruleEngine = engine
	return g
}

// InitializeGame builds a Game and initializes it against the provider.
func InitializeGame(log *slog.Logger, provider contract.GatewayProvider) (*Game, error) {
	game := NewGame(log)
	if err := game.Initialize(provider); err != nil {
		log.Error("Failed to initialize Recall game backend", "error", err)
		return nil, err
	}
	return game, nil
}

// Initialize obtains the gateway from the provider, builds the game components
// and registers every handler. Calling it on an initialized Game is a no-op.
func (g *Game) Initialize(provider contract.GatewayProvider) (err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.initialized {
		g.log.Debug("Recall game backend already initialized")
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrInitialization, r)
			g.log.Error("Failed to initialize Recall game backend", "error", err)
		}
	}()

	var gateway contract.Gateway
	if !isNil(provider) {
		gateway = provider.GetWebsocketManager()
	}
	if isNil(gateway) {
		g.log.Error("Messaging gateway not available for Recall game")
		return fmt.Errorf("%w: %w", errors.ErrInitialization, errors.ErrGatewayUnavailable)
	}

	stateManager := NewGameStateManager()
	engine := g.ruleEngine
	if engine == nil {
		engine = NewGameLogicEngine(g.log)
	}
	registry := NewHandlerRegistry(g.log, engine)
	if err := registry.RegisterHandlers(gateway); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInitialization, err)
	}

	g.gateway = gateway
	g.stateManager = stateManager
	g.logicEngine = engine
	g.registry = registry
	g.initialized = true
	g.log.Info("Recall game backend initialized successfully")
	return nil
}

func (g *Game) IsInitialized() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.initialized
}

func (g *Game) State() domain.LifecycleState {
	if g.IsInitialized() {
		return domain.Initialized
	}
	return domain.Uninitialized
}

// HealthCheck evaluates every component on demand. It never panics: a fault
// during evaluation is reported as an unhealthy record.
func (g *Game) HealthCheck() (record domain.HealthRecord) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	now := time.Now().UTC()
	if !g.initialized {
		return domain.HealthRecord{
			Status:    domain.NotInitialized,
			Component: domain.GameComponent,
			Message:   "Recall game backend not initialized",
			CheckedAt: now,
		}
	}

	defer func() {
		if r := recover(); r != nil {
			record = domain.HealthRecord{
				Status:    domain.Unhealthy,
				Component: domain.GameComponent,
				Message:   fmt.Sprintf("Health check failed: %v", r),
				CheckedAt: now,
			}
		}
	}()

	details := map[string]domain.HealthStatus{
		componentGateway:     domain.PresenceStatus(gatewayHealthy(g.gateway)),
		componentStateManage: domain.PresenceStatus(g.stateManager != nil),
		componentLogicEngine: domain.PresenceStatus(!isNil(g.logicEngine)),
	}
	return domain.HealthRecord{
		Status:    domain.Aggregate(details),
		Component: domain.GameComponent,
		Details:   details,
		CheckedAt: now,
	}
}

// gatewayHealthy reports presence, refined by the gateway's own report when it has one.
func gatewayHealthy(gateway contract.Gateway) bool {
	if isNil(gateway) {
		return false
	}
	if reporter, ok := gateway.(contract.HealthReporter); ok {
		return reporter.Healthy()
	}
	return true
}

// GetWebsocketManager returns the gateway, or nil when not initialized.
func (g *Game) GetWebsocketManager() contract.Gateway {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.initialized {
		return nil
	}
	return g.gateway
}

func (g *Game) GetGameStateManager() *GameStateManager {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.initialized {
		return nil
	}
	return g.stateManager
}

func (g *Game) GetGameLogicEngine() contract.RuleEngine {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.initialized {
		return nil
	}
	return g.logicEngine
}

// Bindings lists the event names bound on the gateway.
func (g *Game) Bindings() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.registry == nil {
		return nil
	}
	return g.registry.Bindings()
}

// DetachGateway drops the gateway reference, for a transport that shuts down
// before the game. Health reports degraded afterwards.
func (g *Game) DetachGateway() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gateway = nil
}

// Cleanup is a teardown notice. The gateway and room directory outlive the
// game, so nothing is released here.
func (g *Game) Cleanup() {
	g.log.Info("Recall game backend cleaned up successfully")
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
