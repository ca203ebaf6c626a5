package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"eventhub/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const (
	migrationsDir = "db/migrations"
	seedsDir      = "db/seeds"
)

// ErrDirtySchema means a previous migration stopped half way. The ledger
// tables are not touched again until an operator repairs the schema and
// runs `migrate force`.
var ErrDirtySchema = errors.New("schema is dirty after a failed migration")

var (
	readyAttempts = 30
	readyBackoff  = 2 * time.Second
)

// Migrator applies db/migrations and, when enabled, the db/seeds files
type Migrator struct {
	db     *sql.DB
	dir    string
	seeds  string
	seed   bool
	logger *slog.Logger
}

func NewMigrator(db *sql.DB, seed bool, logger *slog.Logger) *Migrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Migrator{
		db:     db,
		dir:    migrationsDir,
		seeds:  seedsDir,
		seed:   seed,
		logger: logger,
	}
}

// OpenSQL opens a plain database/sql handle through lib/pq, for running
// migrations without bringing up the ORM
func OpenSQL(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(2)
	return db, nil
}

// AwaitReady pings until the database answers, ctx ends or the attempts run out
func (m *Migrator) AwaitReady(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= readyAttempts; attempt++ {
		if err = m.db.PingContext(ctx); err == nil {
			return nil
		}
		m.logger.Warn("database not ready", "attempt", attempt, "max_attempts", readyAttempts, "error", err)
		if attempt == readyAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readyBackoff):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", readyAttempts, err)
}

func (m *Migrator) open() (*migrate.Migrate, error) {
	if _, err := os.Stat(m.dir); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("migrations directory %s not found", m.dir)
	}

	absPath, err := filepath.Abs(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	mig, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	return mig, nil
}

// Up applies every pending migration and returns the resulting version.
// A missing migrations directory is logged and treated as nothing to do.
func (m *Migrator) Up() (uint, error) {
	if _, err := os.Stat(m.dir); errors.Is(err, fs.ErrNotExist) {
		m.logger.Warn("migrations directory missing, schema left as is", "dir", m.dir)
		return 0, nil
	}

	mig, err := m.open()
	if err != nil {
		return 0, err
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("%w at version %d", ErrDirtySchema, version)
	}

	if err := mig.Up(); errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("schema up to date", "version", version)
		return version, nil
	} else if err != nil {
		return version, fmt.Errorf("migration failed: %w", err)
	}

	version, _, err = mig.Version()
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	m.logger.Info("schema migrated", "version", version)
	return version, nil
}

// Version reports the applied schema version
func (m *Migrator) Version() (uint, bool, error) {
	mig, err := m.open()
	if err != nil {
		return 0, false, err
	}
	return mig.Version()
}

// Seed runs every db/seeds/*.sql file in name order and returns how many
// succeeded. A failing file is logged and skipped so one stale seed does
// not block the rest.
func (m *Migrator) Seed(ctx context.Context) (int, error) {
	if !m.seed {
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(m.seeds, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to list seed files: %w", err)
	}
	if len(files) == 0 {
		m.logger.Info("no seed files found", "dir", m.seeds)
		return 0, nil
	}

	applied := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("failed to read seed file %s: %w", filepath.Base(file), err)
		}

		if _, err := m.db.ExecContext(ctx, string(content)); err != nil {
			m.logger.Warn("seed file failed", "file", filepath.Base(file), "error", err)
			continue
		}
		applied++
	}

	m.logger.Info("seed data loaded", "applied", applied, "files", len(files))
	return applied, nil
}

// Migrate waits for the database, applies pending migrations and loads seeds
func Migrate(ctx context.Context, db *sql.DB, seed bool, logger *slog.Logger) error {
	m := NewMigrator(db, seed, logger)

	if err := m.AwaitReady(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if _, err := m.Up(); err != nil {
		return err
	}

	if _, err := m.Seed(ctx); err != nil {
		m.logger.Warn("seed data loading failed", "error", err)
	}
	return nil
}
