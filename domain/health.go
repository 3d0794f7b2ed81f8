package domain

import "time"

type HealthStatus string

const (
	Healthy        HealthStatus = "healthy"
	Unhealthy      HealthStatus = "unhealthy"
	NotInitialized HealthStatus = "not_initialized"
	Degraded       HealthStatus = "degraded"
)

const GameComponent = "recall_game"

type LifecycleState string

const (
	Uninitialized LifecycleState = "Uninitialized"
	Initialized   LifecycleState = "Initialized"
)

// HealthRecord is a point-in-time snapshot, computed on demand.
type HealthRecord struct {
	Status    HealthStatus            `json:"status"`
	Component string                  `json:"component"`
	Details   map[string]HealthStatus `json:"details,omitempty"`
	Message   string                  `json:"message,omitempty"`
	CheckedAt time.Time               `json:"checked_at"`
}

func PresenceStatus(present bool) HealthStatus {
	if present {
		return Healthy
	}
	return Unhealthy
}

// Aggregate returns Healthy iff every component is Healthy, Degraded otherwise.
func Aggregate(details map[string]HealthStatus) HealthStatus {
	for _, s := range details {
		if s != Healthy {
			return Degraded
		}
	}
	return Healthy
}
