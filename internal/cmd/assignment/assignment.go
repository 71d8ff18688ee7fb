// Package assignment parses assignment service flags and launches the service.
package assignment

import (
	"context"
	"flag"

	entrypoint "github.com/ulms/assignment-service/internal/platform/cmd"
	server "github.com/ulms/assignment-service/internal/services/assignment/app"
)

// Config holds assignment command configuration.
type Config struct {
	Port int `env:"ULMS_ASSIGNMENT_PORT" envDefault:"50054"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The assignment gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the assignment gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAssignment, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
