package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql

	"github.com/chinookhq/chinook-api/internal/logger"
	"github.com/chinookhq/chinook-api/internal/telemetry"
	"github.com/chinookhq/chinook-api/pkg/catalog/models"
	"github.com/chinookhq/chinook-api/pkg/catalog/store/migrations"
)

const migrationsTable = "schema_migrations"

// MigrationStatus reports the schema version after Migrate.
type MigrationStatus struct {
	Version uint
	Dirty   bool
	Applied bool
}

// Migrate bootstraps the Chinook schema on an empty database. PostgreSQL
// runs the embedded SQL migrations (existing tables are left untouched);
// SQLite uses GORM AutoMigrate on the mapped models.
func Migrate(ctx context.Context, config *Config) (*MigrationStatus, error) {
	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	ctx, span := telemetry.StartSpan(ctx, telemetry.SpanStoreMigrate)
	defer span.End()
	span.SetAttributes(telemetry.DBSystem(string(config.Type)))

	var (
		status *MigrationStatus
		err    error
	)
	switch config.Type {
	case DatabaseTypePostgres:
		status, err = migratePostgres(ctx, config.Postgres.DSN())
	case DatabaseTypeSQLite:
		status, err = migrateSQLite(ctx, config)
	default:
		err = fmt.Errorf("unsupported database type: %s", config.Type)
	}
	telemetry.RecordError(ctx, err)
	return status, err
}

func migratePostgres(ctx context.Context, dsn string) (*MigrationStatus, error) {
	logger.Info("Running database migrations...")

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	m, err := newMigrator(db)
	if err != nil {
		return nil, err
	}

	// golang-migrate takes a PostgreSQL advisory lock, so concurrent
	// instances do not race.
	status := &MigrationStatus{Applied: true}
	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		status.Applied = false
		logger.Info("No migrations to apply (database is up to date)")
	} else {
		logger.Info("Migrations completed successfully")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, fmt.Errorf("failed to get migration version: %w", err)
	}
	status.Version = version
	status.Dirty = dirty

	if dirty {
		logger.Warn("Database schema is in dirty state - manual intervention may be required",
			"version", version)
	}

	return status, nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to create source driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

func migrateSQLite(ctx context.Context, config *Config) (*MigrationStatus, error) {
	st, err := Open(config)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return &MigrationStatus{Applied: true}, nil
}

// EnsureSchema creates any missing mapped tables through GORM AutoMigrate.
// Intended for SQLite development databases and tests.
func (s *GORMStore) EnsureSchema(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("failed to run database migration: %w", err)
	}
	return nil
}
