// Package seed parses seed command flags and loads the reference catalog
// into the local SQLite database.
package seed

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/molehunt/internal/catalog"
	catalogsqlite "github.com/louisbranch/molehunt/internal/catalog/sqlite"
	entrypoint "github.com/louisbranch/molehunt/internal/platform/cmd"
)

// Config holds seed command configuration.
type Config struct {
	DBPath string `env:"MOLEHUNT_DB_PATH" envDefault:"molehunt.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "catalog SQLite database path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run replaces the catalog contents with the built-in reference data.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(ctx context.Context) error {
		store, err := catalogsqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open catalog store: %w", err)
		}
		defer func() { _ = store.Close() }()

		items := catalog.SeedEvidence()
		pairs := catalog.SeedWouldYouRatherPairs()
		if err := store.ReplaceAll(ctx, items, pairs); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		log.Printf("catalog seeded db=%s evidence=%d pairs=%d", cfg.DBPath, len(items), len(pairs))
		return nil
	})
}
