package workers

import (
	"context"
	"log/slog"
	"recall-game/contract"
	"recall-game/domain"
	"time"
)

var _ contract.Worker = (*HealthProbeWorker)(nil)

// HealthProbeWorker samples the game health on every tick and pushes the
// record to the publishers. Status transitions are logged once.
type HealthProbeWorker struct {
	log        *slog.Logger
	checker    contract.HealthChecker
	publishers []contract.StatusPublisher
	interval   time.Duration
	last       domain.HealthStatus
}

func NewHealthProbeWorker(log *slog.Logger, checker contract.HealthChecker, interval time.Duration,
	publishers ...contract.StatusPublisher) *HealthProbeWorker {
	return &HealthProbeWorker{
		log:        log,
		checker:    checker,
		publishers: publishers,
		interval:   interval,
	}
}

func (w *HealthProbeWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.probe()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health probe")
			return nil
		case <-ticker.C:
			w.probe()
		}
	}
}

func (w *HealthProbeWorker) probe() {
	record := w.checker.HealthCheck()
	if record.Status != w.last {
		if record.Status == domain.Healthy {
			w.log.Info("Recall game health changed", "from", w.last, "to", record.Status)
		} else {
			w.log.Warn("Recall game health changed", "from", w.last, "to", record.Status,
				"details", record.Details, "message", record.Message)
		}
		w.last = record.Status
	}
	for _, p := range w.publishers {
		p.Publish(record)
	}
}
