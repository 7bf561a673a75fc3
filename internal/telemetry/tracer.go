package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys for API and store operations.
// These follow OpenTelemetry semantic conventions where applicable.
const (
	// ========================================================================
	// Client attributes
	// ========================================================================
	AttrClientIP   = "client.ip"
	AttrClientAddr = "client.address"

	// ========================================================================
	// Catalog attributes
	// ========================================================================
	AttrCollection = "catalog.collection" // artists, albums, ...
	AttrOperation  = "catalog.operation"  // list, get, create, update, delete
	AttrEntityID   = "catalog.entity_id"
	AttrCount      = "catalog.count"
	AttrSkip       = "catalog.skip"
	AttrLimit      = "catalog.limit"

	// ========================================================================
	// Database attributes
	// ========================================================================
	AttrDBSystem = "db.system" // postgresql, sqlite
	AttrDBTable  = "db.sql.table"

	// ========================================================================
	// Readiness attributes
	// ========================================================================
	AttrAttempt     = "readiness.attempt"
	AttrMaxAttempts = "readiness.max_attempts"
)

// Span names.
// Format: <component>.<operation>
const (
	SpanReadinessProbe = "readiness.probe"
	SpanStoreProbe     = "store.probe"
	SpanStoreReflect   = "store.reflect"
	SpanStoreMigrate   = "store.migrate"
	SpanStorePing      = "store.ping"
	SpanCatalogPrefix  = "catalog."
)

// ClientIP returns an attribute for client IP address
func ClientIP(ip string) attribute.KeyValue {
	return attribute.String(AttrClientIP, ip)
}

// ClientAddr returns an attribute for full client address
func ClientAddr(addr string) attribute.KeyValue {
	return attribute.String(AttrClientAddr, addr)
}

// Collection returns an attribute for the catalog collection name
func Collection(name string) attribute.KeyValue {
	return attribute.String(AttrCollection, name)
}

// Operation returns an attribute for the catalog operation
func Operation(op string) attribute.KeyValue {
	return attribute.String(AttrOperation, op)
}

// EntityID returns an attribute for an entity primary key
func EntityID(id int64) attribute.KeyValue {
	return attribute.Int64(AttrEntityID, id)
}

// Count returns an attribute for a result count
func Count(n int) attribute.KeyValue {
	return attribute.Int(AttrCount, n)
}

// Page returns skip and limit attributes for a list request
func Page(skip, limit int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(AttrSkip, skip),
		attribute.Int(AttrLimit, limit),
	}
}

// DBSystem returns an attribute for the database system
func DBSystem(system string) attribute.KeyValue {
	return attribute.String(AttrDBSystem, system)
}

// DBTable returns an attribute for a table name
func DBTable(name string) attribute.KeyValue {
	return attribute.String(AttrDBTable, name)
}

// StartCatalogSpan starts a span for one catalog operation, e.g. "catalog.artists.get".
func StartCatalogSpan(ctx context.Context, collection, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := make([]attribute.KeyValue, 0, len(attrs)+2)
	allAttrs = append(allAttrs, Collection(collection), Operation(operation))
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, SpanCatalogPrefix+collection+"."+operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(allAttrs...),
	)
}
