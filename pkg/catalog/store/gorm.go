package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// PostgreSQL SQLSTATE codes the store maps to domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// GORMStore implements Store on top of GORM. It never creates or alters
// the schema on its own; see Migrate for bootstrapping.
type GORMStore struct {
	db     *gorm.DB
	config *Config
}

// Open connects to the configured database. For PostgreSQL the driver
// pings the server, so an unreachable database fails here.
func Open(config *Config) (*GORMStore, error) {
	if config == nil {
		config = &Config{}
	}

	config.ApplyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	dialector, err := dialectorFor(config)
	if err != nil {
		return nil, err
	}

	return openWithDialector(dialector, config)
}

func dialectorFor(config *Config) (gorm.Dialector, error) {
	switch config.Type {
	case DatabaseTypeSQLite:
		if err := os.MkdirAll(filepath.Dir(config.SQLite.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		// foreign_keys(1) makes SQLite enforce the same references as PostgreSQL.
		dsn := config.SQLite.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
		return sqlite.Open(dsn), nil

	case DatabaseTypePostgres:
		return postgres.Open(config.Postgres.DSN()), nil

	default:
		return nil, fmt.Errorf("unsupported database type: %s", config.Type)
	}
}

func openWithDialector(dialector gorm.Dialector, config *Config) (*GORMStore, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		// gorm.Open hands back a live pool even when the initial ping fails.
		if db != nil {
			closeDB(db)
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.SetupJoinTable(&models.Playlist{}, "Tracks", &models.PlaylistTrack{}); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to set up playlist join table: %w", err)
	}

	if config.Type == DatabaseTypePostgres {
		sqlDB, err := db.DB()
		if err != nil {
			closeDB(db)
			return nil, fmt.Errorf("failed to get underlying database: %w", err)
		}
		sqlDB.SetMaxOpenConns(config.Postgres.MaxOpenConns)
		sqlDB.SetMaxIdleConns(config.Postgres.MaxIdleConns)
	}

	return &GORMStore{db: db, config: config}, nil
}

// NewWithDB wraps an existing GORM handle. Used by tests that drive the
// store through a mocked connection.
func NewWithDB(db *gorm.DB, config *Config) (*GORMStore, error) {
	if config == nil {
		config = &Config{Type: DatabaseTypePostgres}
	}
	if err := db.SetupJoinTable(&models.Playlist{}, "Tracks", &models.PlaylistTrack{}); err != nil {
		return nil, fmt.Errorf("failed to set up playlist join table: %w", err)
	}
	return &GORMStore{db: db, config: config}, nil
}

// DB returns the underlying GORM database connection.
func (s *GORMStore) DB() *gorm.DB {
	return s.db
}

// Config returns the configuration the store was opened with.
func (s *GORMStore) Config() *Config {
	return s.config
}

func closeDB(db *gorm.DB) {
	if db == nil || db.Config == nil || db.ConnPool == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// isUniqueConstraintError checks if the error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "duplicate key value violates unique constraint")
}

// isForeignKeyError checks if the error is a foreign key violation.
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	errStr := err.Error()
	return strings.Contains(errStr, "FOREIGN KEY constraint failed") ||
		strings.Contains(errStr, "violates foreign key constraint")
}

// convertNotFoundError converts gorm.ErrRecordNotFound to the appropriate domain error.
func convertNotFoundError(err error, notFoundErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundErr
	}
	return err
}
