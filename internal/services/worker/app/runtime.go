// Package app runs the relay worker: it drains the assignment outbox feed
// and republishes submission.received events to the analysis broker.
package app

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	analysisv1 "github.com/ulms/assignment-service/api/gen/go/analysis/v1"
	assignmentv1 "github.com/ulms/assignment-service/api/gen/go/assignment/v1"
	platformgrpc "github.com/ulms/assignment-service/internal/platform/grpc"
	"github.com/ulms/assignment-service/internal/platform/timeouts"
	"github.com/ulms/assignment-service/internal/services/assignment/event"
	workerdomain "github.com/ulms/assignment-service/internal/services/worker/domain"
	workersqlite "github.com/ulms/assignment-service/internal/services/worker/storage/sqlite"
)

// RuntimeConfig controls worker startup, dependencies, and loop behavior.
type RuntimeConfig struct {
	Port               int
	AssignmentAddr     string
	AnalysisBrokerAddr string
	DBPath             string
	Consumer           string
	PollInterval       time.Duration
	LeaseTTL           time.Duration
	BatchSize          int32
	MaxAttempts        int
	RetryBackoff       time.Duration
	RetryMaxDelay      time.Duration
	GRPCDialTimeout    time.Duration
}

const defaultWorkerDB = "data/worker.db"

// Run starts worker runtime dependencies and the background delivery loop.
func Run(ctx context.Context, cfg RuntimeConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(cfg.AssignmentAddr) == "" {
		return fmt.Errorf("assignment address is required")
	}
	if strings.TrimSpace(cfg.AnalysisBrokerAddr) == "" {
		return fmt.Errorf("analysis broker address is required")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = defaultWorkerDB
	}
	if cfg.GRPCDialTimeout <= 0 {
		cfg.GRPCDialTimeout = timeouts.GRPCDial
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create worker storage dir: %w", err)
		}
	}
	workerStore, err := workersqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open worker sqlite store: %w", err)
	}
	defer func() {
		if closeErr := workerStore.Close(); closeErr != nil {
			log.Printf("close worker sqlite store: %v", closeErr)
		}
	}()

	assignmentConn, err := platformgrpc.DialWithHealth(
		ctx,
		nil,
		cfg.AssignmentAddr,
		cfg.GRPCDialTimeout,
		log.Printf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		return fmt.Errorf("dial assignment service: %w", err)
	}
	defer func() {
		if closeErr := assignmentConn.Close(); closeErr != nil {
			log.Printf("close assignment connection: %v", closeErr)
		}
	}()

	brokerConn, err := platformgrpc.DialWithHealth(
		ctx,
		nil,
		cfg.AnalysisBrokerAddr,
		cfg.GRPCDialTimeout,
		log.Printf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		return fmt.Errorf("dial analysis broker: %w", err)
	}
	defer func() {
		if closeErr := brokerConn.Close(); closeErr != nil {
			log.Printf("close analysis broker connection: %v", closeErr)
		}
	}()

	handler, err := workerdomain.NewAnalysisPublishHandler(analysisv1.NewAnalysisBrokerClient(brokerConn))
	if err != nil {
		return fmt.Errorf("create analysis publish handler: %w", err)
	}
	loop, err := New(
		assignmentv1.NewAssignmentServiceClient(assignmentConn),
		workerStore,
		map[string]workerdomain.EventHandler{
			event.TypeSubmissionReceived: handler,
		},
		Config{
			Consumer:      cfg.Consumer,
			PollInterval:  cfg.PollInterval,
			LeaseTTL:      cfg.LeaseTTL,
			BatchSize:     cfg.BatchSize,
			MaxAttempts:   cfg.MaxAttempts,
			RetryBackoff:  cfg.RetryBackoff,
			RetryMaxDelay: cfg.RetryMaxDelay,
		},
	)
	if err != nil {
		return fmt.Errorf("create delivery loop: %w", err)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on worker port %d: %w", cfg.Port, err)
	}
	defer listener.Close()

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("worker.runtime", grpc_health_v1.HealthCheckResponse_SERVING)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- grpcServer.Serve(listener)
	}()
	defer func() {
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		<-serveErr
	}()

	log.Printf("worker server listening at %v", listener.Addr())
	return loop.Run(ctx)
}
