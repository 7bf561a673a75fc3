package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/chinookhq/chinook-api/internal/logger"
	"github.com/chinookhq/chinook-api/internal/telemetry"
	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// Connector opens the catalog store and verifies the mapping against the
// live schema. Its Probe method is the unit of work the readiness gate
// retries; a failed probe leaves no open connection behind.
type Connector struct {
	config *Config

	mu     sync.Mutex
	store  *GORMStore
	schema *Schema
}

// NewConnector creates a connector for the given configuration.
func NewConnector(config *Config) *Connector {
	return &Connector{config: config}
}

// Probe opens a connection, pings it, reflects the schema and verifies
// every mapped table. On success the store is retained for Store().
func (c *Connector) Probe(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store != nil {
		return nil
	}

	ctx, span := telemetry.StartSpan(ctx, telemetry.SpanStoreProbe)
	defer span.End()
	span.SetAttributes(telemetry.DBSystem(string(c.config.Type)))

	st, err := Open(c.config)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return err
	}

	schema, err := c.verify(ctx, st)
	if err != nil {
		telemetry.RecordError(ctx, err)
		if closeErr := st.Close(); closeErr != nil {
			logger.Debug("Failed to close probe connection", logger.KeyError, closeErr)
		}
		return err
	}

	c.store = st
	c.schema = schema

	logger.Debug("Catalog schema reflected",
		logger.KeyStoreType, string(c.config.Type),
		"tables", len(schema.Tables))

	return nil
}

func (c *Connector) verify(ctx context.Context, st *GORMStore) (*Schema, error) {
	if err := st.Healthcheck(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	schema, err := st.Reflect(ctx)
	if err != nil {
		return nil, err
	}

	if err := schema.Verify(st.db, models.AllModels()...); err != nil {
		return nil, err
	}

	return schema, nil
}

// Store returns the verified store, or nil before a successful probe.
func (c *Connector) Store() *GORMStore {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store
}

// Schema returns the schema reflected by the successful probe.
func (c *Connector) Schema() *Schema {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.schema
}

// IsSchemaMismatch reports whether err means the database is reachable
// but does not hold the Chinook tables.
func IsSchemaMismatch(err error) bool {
	return errors.Is(err, models.ErrSchemaMismatch)
}
