package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventhub/internal/config"
	"eventhub/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// Models lists every table the service owns, parents first
func Models() []interface{} {
	return []interface{}{
		&models.Staff{},
		&models.StaffProfile{},
		&models.Event{},
		&models.EventFinancials{},
		&models.EventContact{},
		&models.LogisticsDetails{},
		&models.EventReport{},
		&models.StaffAssignment{},
		&models.SalesRecord{},
		&models.AuditLog{},
	}
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(Models()...)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateIndexes adds the lookup indexes the hub and archive screens lean on.
// A failing index is logged and skipped.
func (db *DB) CreateIndexes(logger *slog.Logger) {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_staff_role ON staff(role)",
		"CREATE INDEX IF NOT EXISTS idx_staff_email_lower ON staff(LOWER(email))",
		"CREATE INDEX IF NOT EXISTS idx_events_venue_lower ON events(LOWER(venue))",
		"CREATE INDEX IF NOT EXISTS idx_events_event_type ON events(event_type)",
		"CREATE INDEX IF NOT EXISTS idx_event_contacts_role ON event_contacts(event_id, role)",
		"CREATE INDEX IF NOT EXISTS idx_logistics_setup_type ON logistics_details(setup_type)",
		"CREATE INDEX IF NOT EXISTS idx_event_staffing_staff ON event_staffing(staff_name)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_actor ON audit_logs(actor_email)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			logger.Warn("failed to create index", "query", query, "error", err)
		}
	}
}

// SeedAdmin creates the first Admin login when it does not exist yet
func (db *DB) SeedAdmin(email, pinHash string) (*models.Staff, error) {
	email = models.NormalizeEmail(email)

	var existing models.Staff
	if err := db.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return &existing, nil
	}

	admin := &models.Staff{
		Email:   email,
		Name:    "Administrator",
		Role:    models.RoleAdmin,
		PinHash: pinHash,
	}

	if err := db.DB.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin login: %w", err)
	}

	return admin, nil
}

// Initialize connects to Postgres and brings the schema up to date. With
// AUTO_MIGRATE set the versioned migrations run first and GORM AutoMigrate
// only covers for a runner that could not start; a dirty schema is fatal.
func Initialize(ctx context.Context, cfg *config.Config, log *slog.Logger) (*DB, error) {
	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := New(&cfg.Database, logLevel)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}

		if err := Migrate(ctx, sqlDB, cfg.Database.Seed, log); err != nil {
			if errors.Is(err, ErrDirtySchema) {
				return nil, err
			}
			log.Warn("migration runner failed, falling back to AutoMigrate", "error", err)
			if err := db.AutoMigrate(); err != nil {
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
	}

	db.CreateIndexes(log)
	log.Info("database ready", "host", cfg.Database.Host, "name", cfg.Database.Name)

	return db, nil
}
