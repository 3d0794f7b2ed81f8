package observability

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"recall-game/contract"
	"recall-game/domain"
)

// HealthReport is what the /health endpoint serves.
type HealthReport struct {
	domain.HealthRecord
	Bindings []string      `json:"bindings"`
	Sessions int           `json:"sessions"`
	Process  *ProcessStats `json:"process,omitempty"`
}

// BindingsLister exposes the bound event names.
type BindingsLister interface {
	Bindings() []string
}

type SessionCounter interface {
	Sessions() []string
}

// HealthMonitor assembles health reports from the game and the gateway.
// Process stats are best-effort: a failed sample is omitted, never an error.
type HealthMonitor struct {
	log      *slog.Logger
	checker  contract.HealthChecker
	bindings BindingsLister
	sessions SessionCounter
}

func NewHealthMonitor(log *slog.Logger, checker contract.HealthChecker,
	bindings BindingsLister, sessions SessionCounter) *HealthMonitor {
	return &HealthMonitor{log: log, checker: checker, bindings: bindings, sessions: sessions}
}

func (m *HealthMonitor) Report() HealthReport {
	report := HealthReport{HealthRecord: m.checker.HealthCheck()}
	if m.bindings != nil {
		report.Bindings = m.bindings.Bindings()
	}
	if m.sessions != nil {
		report.Sessions = len(m.sessions.Sessions())
	}
	stats, err := CollectProcessStats()
	if err != nil {
		m.log.Debug("Process stats unavailable", "error", err)
	} else {
		report.Process = &stats
	}
	return report
}

// Stats flattens the report for the debug inspector.
func (m *HealthMonitor) Stats() map[string]any {
	report := m.Report()
	stats := map[string]any{
		"status":   report.Status,
		"sessions": report.Sessions,
		"bindings": len(report.Bindings),
	}
	if report.Process != nil {
		stats["cpu_percent"] = report.Process.CPUPercent
		stats["rss_bytes"] = report.Process.RSSBytes
		stats["goroutines"] = report.Process.NumGoroutine
	}
	return stats
}

// ServeHTTP answers 200 when healthy and 503 otherwise.
func (m *HealthMonitor) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	report := m.Report()
	w.Header().Set("Content-Type", "application/json")
	if report.Status != domain.Healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(report); err != nil {
		m.log.Error("Failed to encode health report", "error", err)
	}
}
