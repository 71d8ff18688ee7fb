// Package seed parses seed command flags and loads demo fixtures.
package seed

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	entrypoint "github.com/ulms/assignment-service/internal/platform/cmd"
	"github.com/ulms/assignment-service/internal/services/assignment/seed"
	"github.com/ulms/assignment-service/internal/services/assignment/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	DBPath string `env:"ULMS_SEED_DB_PATH" envDefault:"data/assignment.db"`
	List   bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The assignment SQLite database path")
	fs.BoolVar(&cfg.List, "list", false, "list fixtures without applying them")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run applies the demo assignment fixtures to the assignment database.
func Run(ctx context.Context, cfg Config) error {
	if cfg.List {
		for _, assignment := range seed.Assignments() {
			fmt.Printf("%s  %s\n", assignment.ID, assignment.Title)
		}
		return nil
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open assignment store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Printf("close assignment store: %v", closeErr)
		}
	}()

	if err := seed.Apply(ctx, store); err != nil {
		return fmt.Errorf("apply fixtures: %w", err)
	}
	log.Printf("seeded %d assignments into %s", len(seed.Assignments()), cfg.DBPath)
	return nil
}
