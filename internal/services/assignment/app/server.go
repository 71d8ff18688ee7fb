// Package server wires the assignment runtime: gRPC surface, SQLite store,
// roster client, and the analysis-completed consumer loop.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	analysisv1 "github.com/ulms/assignment-service/api/gen/go/analysis/v1"
	assignmentv1 "github.com/ulms/assignment-service/api/gen/go/assignment/v1"
	coursev1 "github.com/ulms/assignment-service/api/gen/go/course/v1"
	"github.com/ulms/assignment-service/internal/platform/config"
	"github.com/ulms/assignment-service/internal/platform/discovery"
	platformgrpc "github.com/ulms/assignment-service/internal/platform/grpc"
	"github.com/ulms/assignment-service/internal/platform/timeouts"
	assignmentapi "github.com/ulms/assignment-service/internal/services/assignment/api/grpc/assignment"
	"github.com/ulms/assignment-service/internal/services/assignment/event"
	"github.com/ulms/assignment-service/internal/services/assignment/lifecycle"
	"github.com/ulms/assignment-service/internal/services/assignment/roster"
	assignmentsqlite "github.com/ulms/assignment-service/internal/services/assignment/storage/sqlite"
)

type serverEnv struct {
	DBPath             string `env:"ULMS_ASSIGNMENT_DB_PATH"`
	CourseAddr         string `env:"ULMS_COURSE_GRPC_ADDR"`
	AnalysisBrokerAddr string `env:"ULMS_ANALYSIS_BROKER_GRPC_ADDR"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "assignment.db")
	}
	cfg.CourseAddr = discovery.OrDefaultGRPCAddr(cfg.CourseAddr, discovery.ServiceCourse)
	cfg.AnalysisBrokerAddr = discovery.OrDefaultGRPCAddr(cfg.AnalysisBrokerAddr, discovery.ServiceAnalysisBroker)
	return cfg
}

// Server hosts the assignment gRPC API, its storage lifecycle, and the
// analysis-completed consumer.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *assignmentsqlite.Store
	courseConn *grpc.ClientConn
	brokerConn *grpc.ClientConn
	consumer   *event.Consumer
}

// New creates a configured assignment server listening on the provided port.
func New(ctx context.Context, port int) (*Server, error) {
	return NewWithAddr(ctx, fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured assignment server for the provided
// address. Dependencies are dialed here and failures abort startup; no
// component ever sees a not-yet-ready handle.
func NewWithAddr(ctx context.Context, addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	srvEnv := loadServerEnv()

	store, err := openAssignmentStore(srvEnv.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	courseConn, err := platformgrpc.DialWithHealth(ctx, nil, srvEnv.CourseAddr, timeouts.GRPCDial, log.Printf, platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("dial course service at %s: %w", srvEnv.CourseAddr, err)
	}
	brokerConn, err := platformgrpc.DialWithHealth(ctx, nil, srvEnv.AnalysisBrokerAddr, timeouts.GRPCDial, log.Printf, platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		_ = courseConn.Close()
		return nil, fmt.Errorf("dial analysis broker at %s: %w", srvEnv.AnalysisBrokerAddr, err)
	}

	resolver, err := roster.NewGRPCResolver(coursev1.NewCourseServiceClient(courseConn))
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		_ = courseConn.Close()
		_ = brokerConn.Close()
		return nil, fmt.Errorf("create roster resolver: %w", err)
	}
	manager, err := lifecycle.NewManager(store, resolver)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		_ = courseConn.Close()
		_ = brokerConn.Close()
		return nil, fmt.Errorf("create lifecycle manager: %w", err)
	}
	consumer, err := event.NewConsumer(analysisv1.NewAnalysisBrokerClient(brokerConn), manager, event.ConsumerConfig{})
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		_ = courseConn.Close()
		_ = brokerConn.Close()
		return nil, fmt.Errorf("create analysis consumer: %w", err)
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	apiService := assignmentapi.NewService(manager, store)
	healthServer := health.NewServer()
	assignmentv1.RegisterAssignmentServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("assignment.v1.AssignmentService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
		courseConn: courseConn,
		brokerConn: brokerConn,
		consumer:   consumer,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves an assignment server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(ctx, port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server and the consumer loop until context
// cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	consumerCtx, cancelConsumer := context.WithCancel(ctx)
	defer cancelConsumer()
	go func() {
		if err := s.consumer.Run(consumerCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("analysis consumer stopped: %v", err)
		}
	}()

	log.Printf("assignment server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		cancelConsumer()
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases assignment server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.courseConn != nil {
		_ = s.courseConn.Close()
	}
	if s.brokerConn != nil {
		_ = s.brokerConn.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close assignment store: %v", err)
		}
	}
}

func openAssignmentStore(path string) (*assignmentsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := assignmentsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open assignment sqlite store: %w", err)
	}
	return store, nil
}
