package logger

import "log/slog"

// Standard field keys for structured logging. Use them consistently so
// log lines can be aggregated and queried.
const (
	// Tracing
	KeyTraceID = "trace_id"
	KeySpanID  = "span_id"

	// HTTP
	KeyRequestID  = "request_id"
	KeyMethod     = "method"
	KeyPath       = "path"
	KeyStatus     = "status"
	KeyBytes      = "bytes"
	KeyClientIP   = "client_ip"
	KeyDurationMs = "duration_ms"

	// Catalog
	KeyCollection = "collection"
	KeyEntityID   = "id"
	KeyCount      = "count"
	KeyTable      = "table"

	// Store
	KeyStoreType = "store_type"
	KeyDatabase  = "database"

	// Readiness
	KeyAttempt     = "attempt"
	KeyMaxAttempts = "max_attempts"
	KeyRetryDelay  = "retry_delay"
	KeyState       = "state"

	KeyError = "error"
)

// TraceID returns a slog.Attr for an OpenTelemetry trace ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for an OpenTelemetry span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// RequestID returns a slog.Attr for the HTTP request ID
func RequestID(id string) slog.Attr {
	return slog.String(KeyRequestID, id)
}

// Method returns a slog.Attr for the HTTP method
func Method(m string) slog.Attr {
	return slog.String(KeyMethod, m)
}

// Path returns a slog.Attr for the request path
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Status returns a slog.Attr for the HTTP status code
func Status(code int) slog.Attr {
	return slog.Int(KeyStatus, code)
}

// ClientIP returns a slog.Attr for the client IP address
func ClientIP(addr string) slog.Attr {
	return slog.String(KeyClientIP, addr)
}

// DurationMs returns a slog.Attr for a duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Collection returns a slog.Attr for a catalog collection name
func Collection(name string) slog.Attr {
	return slog.String(KeyCollection, name)
}

// EntityID returns a slog.Attr for an entity primary key
func EntityID(id int64) slog.Attr {
	return slog.Int64(KeyEntityID, id)
}

// Count returns a slog.Attr for a number of rows
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Table returns a slog.Attr for a database table name
func Table(name string) slog.Attr {
	return slog.String(KeyTable, name)
}

// StoreType returns a slog.Attr for the store backend (postgres, sqlite)
func StoreType(t string) slog.Attr {
	return slog.String(KeyStoreType, t)
}

// Attempt returns a slog.Attr for a retry attempt number
func Attempt(n int) slog.Attr {
	return slog.Int(KeyAttempt, n)
}

// MaxAttempts returns a slog.Attr for the retry budget
func MaxAttempts(n int) slog.Attr {
	return slog.Int(KeyMaxAttempts, n)
}

// State returns a slog.Attr for a state machine state
func State(s string) slog.Attr {
	return slog.String(KeyState, s)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}
