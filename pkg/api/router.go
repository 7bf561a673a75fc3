package api

import (
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/chinookhq/chinook-api/internal/logger"
	"github.com/chinookhq/chinook-api/internal/telemetry"
	"github.com/chinookhq/chinook-api/pkg/api/handlers"
	"github.com/chinookhq/chinook-api/pkg/catalog/store"
	prommetrics "github.com/chinookhq/chinook-api/pkg/metrics/prometheus"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	// Store backs the catalog collections and GET /health/store.
	Store store.Store

	// Gate reports the startup readiness state for GET /health/ready.
	// May be nil.
	Gate handlers.ReadinessReporter

	// HTTPMetrics records request metrics. Nil when metrics are disabled.
	HTTPMetrics *prommetrics.HTTPMetrics
}

// NewRouter creates and configures the chi router with all middleware and routes.
//
// The router is configured with:
//   - Request ID middleware for request tracking
//   - Real IP extraction for proper client identification
//   - Custom request logging using the internal logger
//   - Panic recovery to prevent server crashes
//   - CORS for browser clients
//   - Prometheus request metrics and OpenTelemetry spans
//   - Request timeout to prevent hung requests
//
// Routes:
//   - GET /                  Service name and version
//   - GET /health            Liveness probe
//   - GET /health/ready      Readiness gate status
//   - GET /health/store      Database ping
//   - GET /api/envvars       Public runtime settings
//   - /api/{collection}/*    CRUD for artists, albums, tracks, customers,
//     invoices, employees, genres and playlists
//   - PUT|DELETE /api/playlists/{id}/tracks/{track_id}  Playlist membership
func NewRouter(cfg APIConfig, deps Dependencies) http.Handler {
	cfg.ApplyDefaults()

	r := chi.NewRouter()

	// Middleware stack - order matters
	r.Use(middleware.RequestID)
	r.Use(responseRequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(cfg.CORS))
	r.Use(deps.HTTPMetrics.Middleware)
	r.Use(telemetry.HTTPMiddleware("chinook-api"))
	r.Use(traceLogContext)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	healthHandler := handlers.NewHealthHandler(deps.Gate, pinger(deps.Store))

	r.Get("/", healthHandler.Root)

	// Health routes
	r.Route("/health", func(r chi.Router) {
		r.Get("/", healthHandler.Liveness)
		r.Get("/ready", healthHandler.Readiness)
		r.Get("/store", healthHandler.Store)
	})

	envHandler := handlers.NewEnvHandler(cfg.ExposedEnv)

	r.Route("/api", func(r chi.Router) {
		r.Get("/envvars", envHandler.List)

		if deps.Store == nil {
			return
		}
		st := deps.Store

		mountResource(r, handlers.NewArtistHandler(st))
		mountResource(r, handlers.NewAlbumHandler(st))
		mountResource(r, handlers.NewTrackHandler(st))
		mountResource(r, handlers.NewCustomerHandler(st))
		mountResource(r, handlers.NewInvoiceHandler(st))
		mountResource(r, handlers.NewEmployeeHandler(st))
		mountResource(r, handlers.NewGenreHandler(st))

		playlists := handlers.NewPlaylistHandler(st)
		playlistTracks := handlers.NewPlaylistTrackHandler(st)
		mountResource(r, playlists, func(r chi.Router) {
			r.Put("/{id}/tracks/{track_id}", playlistTracks.Add)
			r.Delete("/{id}/tracks/{track_id}", playlistTracks.Remove)
		})
	})

	return r
}

// crudHandler is the surface every catalog resource exposes.
type crudHandler interface {
	Collection() string
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

func mountResource(r chi.Router, h crudHandler, extra ...func(chi.Router)) {
	collection := h.Collection()
	r.Route("/"+collection, func(r chi.Router) {
		r.Use(withCollection(collection))

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)

		for _, fn := range extra {
			fn(r)
		}
	})
}

// pinger avoids handing the health handler a typed nil.
func pinger(st store.Store) handlers.Pinger {
	if st == nil {
		return nil
	}
	return st
}

// corsMiddleware allows the configured origins with every method and
// header. A single "*" entry allows any origin.
func corsMiddleware(cfg CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Location", middleware.RequestIDHeader},
		AllowCredentials: cfg.CredentialsAllowed(),
		MaxAge:           int(cfg.MaxAge / time.Second),
	})
}

// requestLogger logs requests using the internal logger and seeds the
// request-scoped LogContext used by the *Ctx log helpers.
//
// It logs:
//   - Request start (DEBUG level): method, path, remote addr
//   - Request completion (INFO level): method, path, status, duration
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lc := logger.NewLogContext(
			middleware.GetReqID(r.Context()),
			r.Method,
			r.URL.Path,
			clientIP(r.RemoteAddr),
		)
		ctx := logger.WithContext(r.Context(), lc)

		logger.DebugCtx(ctx, "API request started", "remote_addr", r.RemoteAddr, logger.Path(r.URL.Path))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		logger.InfoCtx(ctx, "API request completed",
			logger.Path(r.URL.Path),
			logger.Status(ww.Status()),
			logger.KeyBytes, ww.BytesWritten(),
			logger.DurationMs(lc.DurationMs()),
		)
	})
}

// traceLogContext copies the active span identifiers into the LogContext so
// handler log lines can be joined with traces.
func traceLogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if traceID := telemetry.TraceID(ctx); traceID != "" {
			if lc := logger.FromContext(ctx); lc != nil {
				ctx = logger.WithContext(ctx, lc.WithTrace(traceID, telemetry.SpanID(ctx)))
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// responseRequestID echoes the request ID assigned by middleware.RequestID
// so clients can correlate responses with server logs.
func responseRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set(middleware.RequestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}

func withCollection(collection string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if lc := logger.FromContext(r.Context()); lc != nil {
				r = r.WithContext(logger.WithContext(r.Context(), lc.WithCollection(collection)))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from a RemoteAddr. RealIP has already replaced
// it with the forwarded address when one was present.
func clientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
