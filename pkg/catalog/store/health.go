package store

import (
	"context"
	"fmt"

	"github.com/chinookhq/chinook-api/internal/telemetry"
)

// Healthcheck pings the database through the pool.
func (s *GORMStore) Healthcheck(ctx context.Context) error {
	ctx, span := telemetry.StartSpan(ctx, telemetry.SpanStorePing)
	defer span.End()

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		telemetry.RecordError(ctx, err)
		return err
	}
	return nil
}

// Close releases every pooled connection.
func (s *GORMStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying database: %w", err)
	}
	return sqlDB.Close()
}

var _ Store = (*GORMStore)(nil)
