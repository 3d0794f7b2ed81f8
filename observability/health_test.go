package observability

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"recall-game/domain"
	"recall-game/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staticBindings []string

func (b staticBindings) Bindings() []string { return b }
func (b staticBindings) Sessions() []string { return b }

func TestHealthMonitor_ServeHTTP(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	checker := mocks.NewMockHealthChecker(ctrl)
	checker.EXPECT().HealthCheck().Return(domain.HealthRecord{
		Status:    domain.Healthy,
		Component: domain.GameComponent,
	})

	monitor := NewHealthMonitor(slog.Default(), checker, staticBindings{"a", "b"}, staticBindings{"s1"})
	rec := httptest.NewRecorder()

	// When probing /health on a healthy game
	monitor.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	// Then it answers 200 with the report
	req.Equal(http.StatusOK, rec.Code)
	var body map[string]any
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	req.Equal("healthy", body["status"])
	req.Equal("recall_game", body["component"])
	req.EqualValues(1, body["sessions"])
	req.Len(body["bindings"], 2)
}

func TestHealthMonitor_ServeHTTP_NotHealthy(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	checker := mocks.NewMockHealthChecker(ctrl)

	for _, status := range []domain.HealthStatus{domain.NotInitialized, domain.Degraded, domain.Unhealthy} {
		checker.EXPECT().HealthCheck().Return(domain.HealthRecord{Status: status})
		monitor := NewHealthMonitor(slog.Default(), checker, nil, nil)
		rec := httptest.NewRecorder()

		monitor.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		req.Equal(http.StatusServiceUnavailable, rec.Code, status)
	}
}

func TestHealthMonitor_Stats(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	checker := mocks.NewMockHealthChecker(ctrl)
	checker.EXPECT().HealthCheck().Return(domain.HealthRecord{Status: domain.Degraded})

	stats := NewHealthMonitor(slog.Default(), checker, staticBindings{"a"}, nil).Stats()

	req.Equal(domain.Degraded, stats["status"])
	req.Equal(1, stats["bindings"])
	req.Equal(0, stats["sessions"])
}
