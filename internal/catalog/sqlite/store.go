// Package sqlite provides a SQLite-backed evidence catalog store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/molehunt/internal/catalog"
	"github.com/louisbranch/molehunt/internal/catalog/sqlite/migrations"
	sqlitemigrate "github.com/louisbranch/molehunt/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store persists the evidence catalog in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite catalog store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ListEvidence returns every evidence row ordered by category, subtype, name.
func (s *Store) ListEvidence(ctx context.Context) ([]catalog.Evidence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT name, category, subtype FROM evidence ORDER BY category, subtype, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list evidence: %w", err)
	}
	defer rows.Close()

	var items []catalog.Evidence
	for rows.Next() {
		var item catalog.Evidence
		if err := rows.Scan(&item.Name, &item.Category, &item.Subtype); err != nil {
			return nil, fmt.Errorf("scan evidence row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evidence rows: %w", err)
	}
	return items, nil
}

// ListWouldYouRatherPairs returns every lobby prompt pair.
func (s *Store) ListWouldYouRatherPairs(ctx context.Context) ([]catalog.WouldYouRatherPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT option_a, option_b FROM would_you_rather_pairs ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list would-you-rather pairs: %w", err)
	}
	defer rows.Close()

	var pairs []catalog.WouldYouRatherPair
	for rows.Next() {
		var pair catalog.WouldYouRatherPair
		if err := rows.Scan(&pair.A, &pair.B); err != nil {
			return nil, fmt.Errorf("scan pair row: %w", err)
		}
		pairs = append(pairs, pair)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pair rows: %w", err)
	}
	return pairs, nil
}

// ReplaceAll replaces the catalog contents with the given evidence and prompt
// sets in a single transaction. Used by the seed command.
func (s *Store) ReplaceAll(ctx context.Context, items []catalog.Evidence, pairs []catalog.WouldYouRatherPair) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM evidence`); err != nil {
		return fmt.Errorf("clear evidence: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM would_you_rather_pairs`); err != nil {
		return fmt.Errorf("clear pairs: %w", err)
	}

	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("evidence name is required")
		}
		if !catalog.ValidCategory(item.Category) {
			return fmt.Errorf("evidence %q has unknown category %q", item.Name, item.Category)
		}
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO evidence (name, category, subtype) VALUES (?, ?, ?)`,
			item.Name, string(item.Category), string(item.Subtype),
		)
		if err != nil {
			return fmt.Errorf("insert evidence %q: %w", item.Name, err)
		}
	}

	for _, pair := range pairs {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO would_you_rather_pairs (option_a, option_b) VALUES (?, ?)`,
			pair.A, pair.B,
		)
		if err != nil {
			return fmt.Errorf("insert pair: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}
