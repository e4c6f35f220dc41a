// Package server parses server command flags and composes the game gateway.
package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/molehunt/internal/catalog"
	catalogsqlite "github.com/louisbranch/molehunt/internal/catalog/sqlite"
	"github.com/louisbranch/molehunt/internal/game/session"
	entrypoint "github.com/louisbranch/molehunt/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/molehunt/internal/platform/grpc"
	"github.com/louisbranch/molehunt/internal/transport/ws"
)

// Config holds server command configuration.
type Config struct {
	HTTPAddr   string `env:"MOLEHUNT_HTTP_ADDR"   envDefault:":8080"`
	HealthAddr string `env:"MOLEHUNT_HEALTH_ADDR" envDefault:":9090"`
	DBPath     string `env:"MOLEHUNT_DB_PATH"     envDefault:"molehunt.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "websocket gateway listen address")
	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "gRPC health listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "catalog SQLite database path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadSnapshot reads the evidence catalog from SQLite, falling back to the
// built-in seed set when the database has not been seeded yet.
func loadSnapshot(ctx context.Context, dbPath string) (*catalog.Snapshot, error) {
	store, err := catalogsqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}
	defer func() { _ = store.Close() }()

	items, err := store.ListEvidence(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(items) == 0 {
		log.Printf("catalog is empty db=%s, using built-in seed set", dbPath)
		items = catalog.SeedEvidence()
	}
	return catalog.NewSnapshot(items)
}

// Run builds the game gateway and serves until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(ctx context.Context) error {
		snapshot, err := loadSnapshot(ctx, cfg.DBPath)
		if err != nil {
			return err
		}

		manager, err := session.NewManager(snapshot)
		if err != nil {
			return err
		}
		gateway := ws.NewGateway(manager)

		healthErr := make(chan error, 1)
		go func() {
			healthErr <- platformgrpc.ServeHealth(ctx, cfg.HealthAddr)
		}()

		httpServer := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           gateway.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		serveErr := make(chan error, 1)
		go func() {
			serveErr <- httpServer.ListenAndServe()
		}()
		log.Printf("serving token=ws addr=%s health=%s", cfg.HTTPAddr, cfg.HealthAddr)

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown gateway: %w", err)
			}
			return nil
		case err := <-serveErr:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve gateway: %w", err)
			}
			return nil
		case err := <-healthErr:
			if err != nil {
				return fmt.Errorf("serve health: %w", err)
			}
			return nil
		}
	})
}
