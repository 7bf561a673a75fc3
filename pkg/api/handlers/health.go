package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/chinookhq/chinook-api/pkg/readiness"
)

// ServiceName and ServiceVersion are reported by GET /.
const (
	ServiceName    = "Chinook Music API"
	ServiceVersion = "1.0.0"
)

// storeCheckTimeout bounds the store ping of GET /health/store.
const storeCheckTimeout = 5 * time.Second

// ReadinessReporter exposes the startup gate status.
type ReadinessReporter interface {
	Status() readiness.Status
}

// Pinger checks database connectivity.
type Pinger interface {
	Healthcheck(ctx context.Context) error
}

// HealthResponse is the body of the detailed health endpoints
// (/health/ready and /health/store).
type HealthResponse struct {
	Status    string    `json:"status"` // healthy or unhealthy
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
	Error     string    `json:"error,omitempty"`
}

func writeHealth(w http.ResponseWriter, healthy bool, data any, errMsg string) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Data:      data,
		Error:     errMsg,
	}
	status := http.StatusOK
	if !healthy {
		resp.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	}
	WriteJSON(w, status, resp)
}

// HealthHandler handles the service information and health endpoints.
//
// Health endpoints are unauthenticated and provide:
//   - Liveness probe: Is the server process running?
//   - Readiness probe: Did the database readiness gate succeed?
//   - Store health: Can the database be reached right now?
type HealthHandler struct {
	gate  ReadinessReporter
	store Pinger
}

// NewHealthHandler creates a new health handler. Either dependency may be
// nil, in which case the endpoints that need it report unhealthy.
func NewHealthHandler(gate ReadinessReporter, store Pinger) *HealthHandler {
	return &HealthHandler{gate: gate, store: store}
}

// RootResponse is the body of GET /.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// StatusResponse is the body of GET /health.
type StatusResponse struct {
	Status string `json:"status"`
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSONOK(w, RootResponse{Message: ServiceName, Version: ServiceVersion})
}

// Liveness handles GET /health. It never touches the database.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	WriteJSONOK(w, StatusResponse{Status: "healthy"})
}

// Readiness handles GET /health/ready.
//
// Returns 200 OK once the gate has confirmed the database, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.gate == nil {
		writeHealth(w, false, nil, "readiness gate not initialized")
		return
	}

	st := h.gate.Status()
	writeHealth(w, st.State == readiness.StateReady.String(), st, "")
}

// StoreHealth represents the health status of the catalog database.
type StoreHealth struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Store handles GET /health/store.
//
// Pings the database and returns 200 OK with the round-trip latency, or
// 503 Service Unavailable if the ping fails.
func (h *HealthHandler) Store(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeHealth(w, false, nil, "store not initialized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeCheckTimeout)
	defer cancel()

	start := time.Now()
	err := h.store.Healthcheck(ctx)
	health := StoreHealth{Latency: time.Since(start).String()}

	health.Status = "healthy"
	if err != nil {
		health.Status = "unhealthy"
		health.Error = err.Error()
	}
	writeHealth(w, err == nil, health, "")
}
