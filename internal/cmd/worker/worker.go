// Package worker parses worker command flags and launches the worker runtime.
package worker

import (
	"context"
	"flag"
	"time"

	entrypoint "github.com/ulms/assignment-service/internal/platform/cmd"
	"github.com/ulms/assignment-service/internal/platform/discovery"
	workerapp "github.com/ulms/assignment-service/internal/services/worker/app"
)

// Config holds worker command configuration.
type Config struct {
	Port               int           `env:"ULMS_WORKER_PORT" envDefault:"50056"`
	AssignmentAddr     string        `env:"ULMS_WORKER_ASSIGNMENT_ADDR"`
	AnalysisBrokerAddr string        `env:"ULMS_WORKER_ANALYSIS_BROKER_ADDR"`
	DBPath             string        `env:"ULMS_WORKER_DB_PATH" envDefault:"data/worker.db"`
	Consumer           string        `env:"ULMS_WORKER_CONSUMER" envDefault:"relay-worker"`
	PollInterval       time.Duration `env:"ULMS_WORKER_POLL_INTERVAL" envDefault:"1s"`
	LeaseTTL           time.Duration `env:"ULMS_WORKER_LEASE_TTL" envDefault:"30s"`
	BatchSize          int           `env:"ULMS_WORKER_BATCH_SIZE" envDefault:"16"`
	MaxAttempts        int           `env:"ULMS_WORKER_MAX_ATTEMPTS" envDefault:"8"`
	RetryBackoff       time.Duration `env:"ULMS_WORKER_RETRY_BACKOFF" envDefault:"2s"`
	RetryMaxDelay      time.Duration `env:"ULMS_WORKER_RETRY_MAX_DELAY" envDefault:"5m"`
	GRPCDialTimeout    time.Duration `env:"ULMS_WORKER_DIAL_TIMEOUT" envDefault:"2s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	cfg.AssignmentAddr = discovery.OrDefaultGRPCAddr(cfg.AssignmentAddr, discovery.ServiceAssignment)
	cfg.AnalysisBrokerAddr = discovery.OrDefaultGRPCAddr(cfg.AnalysisBrokerAddr, discovery.ServiceAnalysisBroker)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The worker health gRPC server port")
	fs.StringVar(&cfg.AssignmentAddr, "assignment-addr", cfg.AssignmentAddr, "The assignment gRPC server address")
	fs.StringVar(&cfg.AnalysisBrokerAddr, "analysis-broker-addr", cfg.AnalysisBrokerAddr, "The analysis broker gRPC server address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The worker SQLite database path")
	fs.StringVar(&cfg.Consumer, "consumer", cfg.Consumer, "Integration outbox consumer name")
	fs.DurationVar(&cfg.PollInterval, "poll-interval", cfg.PollInterval, "Integration outbox poll interval")
	fs.DurationVar(&cfg.LeaseTTL, "lease-ttl", cfg.LeaseTTL, "Integration outbox lease duration")
	fs.IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "Maximum events leased per poll")
	fs.IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "Maximum delivery attempts before dead-letter")
	fs.DurationVar(&cfg.RetryBackoff, "retry-backoff", cfg.RetryBackoff, "Base retry backoff delay")
	fs.DurationVar(&cfg.RetryMaxDelay, "retry-max-delay", cfg.RetryMaxDelay, "Maximum retry delay")
	fs.DurationVar(&cfg.GRPCDialTimeout, "dial-timeout", cfg.GRPCDialTimeout, "gRPC dependency dial timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the worker runtime.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWorker, func(context.Context) error {
		return workerapp.Run(ctx, workerapp.RuntimeConfig{
			Port:               cfg.Port,
			AssignmentAddr:     cfg.AssignmentAddr,
			AnalysisBrokerAddr: cfg.AnalysisBrokerAddr,
			DBPath:             cfg.DBPath,
			Consumer:           cfg.Consumer,
			PollInterval:       cfg.PollInterval,
			LeaseTTL:           cfg.LeaseTTL,
			BatchSize:          int32(cfg.BatchSize),
			MaxAttempts:        cfg.MaxAttempts,
			RetryBackoff:       cfg.RetryBackoff,
			RetryMaxDelay:      cfg.RetryMaxDelay,
			GRPCDialTimeout:    cfg.GRPCDialTimeout,
		})
	})
}
