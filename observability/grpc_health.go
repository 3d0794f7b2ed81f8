package observability

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"recall-game/contract"
	"recall-game/domain"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var (
	_ contract.Worker          = (*GRPCHealthServer)(nil)
	_ contract.StatusPublisher = (*GRPCHealthServer)(nil)
)

// GRPCHealthServer exposes the standard gRPC health service. Both the overall
// service ("") and the recall_game service report SERVING only when healthy.
type GRPCHealthServer struct {
	log    *slog.Logger
	addr   string
	server *grpc.Server
	health *health.Server
}

func NewGRPCHealthServer(log *slog.Logger, addr string) *GRPCHealthServer {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(log)))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(server, hs)
	s := &GRPCHealthServer{log: log, addr: addr, server: server, health: hs}
	s.Publish(domain.HealthRecord{Status: domain.NotInitialized})
	return s
}

// Publish maps a health record onto the gRPC serving status.
func (s *GRPCHealthServer) Publish(record domain.HealthRecord) {
	status := ToServingStatus(record.Status)
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(domain.GameComponent, status)
}

func ToServingStatus(status domain.HealthStatus) healthpb.HealthCheckResponse_ServingStatus {
	if status == domain.Healthy {
		return healthpb.HealthCheckResponse_SERVING
	}
	return healthpb.HealthCheckResponse_NOT_SERVING
}

// Run serves health checks until ctx is canceled.
func (s *GRPCHealthServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting gRPC health server", "address", s.addr)
		if err := s.server.Serve(listener); err != nil && !stderrors.Is(err, grpc.ErrServerStopped) {
			errChan <- err
			return
		}
		errChan <- nil
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.server.GracefulStop()
		return nil
	case err := <-errChan:
		return err
	}
}
