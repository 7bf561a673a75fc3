// Package readiness blocks process startup until the catalog database is
// reachable and its schema can be loaded.
//
// The gate runs a Probe under a constant-delay, bounded retry policy. It runs
// exactly once per process; the resulting State is exposed read-only so the
// health endpoints can report it.
package readiness

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/chinookhq/chinook-api/internal/logger"
	"github.com/chinookhq/chinook-api/internal/telemetry"
)

// ErrAlreadyRun is returned when Run is called on a gate that has already run.
var ErrAlreadyRun = errors.New("readiness gate already run")

// Probe performs one readiness check. It must release any resources it
// acquired when it fails.
type Probe interface {
	Probe(ctx context.Context) error
}

// ProbeFunc adapts a function to the Probe interface.
type ProbeFunc func(ctx context.Context) error

// Probe calls f(ctx).
func (f ProbeFunc) Probe(ctx context.Context) error { return f(ctx) }

// Metrics receives gate events. A nil Metrics disables collection.
type Metrics interface {
	ObserveAttempt(success bool)
	SetState(state State)
}

// Status is a point-in-time snapshot of the gate.
type Status struct {
	State       string `json:"state"`
	Attempts    int    `json:"attempts"`
	MaxAttempts int    `json:"max_attempts"`
	LastError   string `json:"last_error,omitempty"`
}

// Gate runs the startup probe loop.
type Gate struct {
	probe   Probe
	config  Config
	timer   backoff.Timer
	metrics Metrics

	started  atomic.Bool
	state    atomic.Int32
	attempts atomic.Int32

	mu      sync.RWMutex
	lastErr error
}

// Option customizes a Gate.
type Option func(*Gate)

// WithTimer replaces the wall-clock timer used between attempts.
func WithTimer(t backoff.Timer) Option {
	return func(g *Gate) { g.timer = t }
}

// WithMetrics attaches a metrics sink. Passing nil is allowed.
func WithMetrics(m Metrics) Option {
	return func(g *Gate) { g.metrics = m }
}

// New creates a gate in the NotStarted state.
func New(probe Probe, config Config, opts ...Option) (*Gate, error) {
	if probe == nil {
		return nil, errors.New("readiness probe is required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid readiness configuration: %w", err)
	}

	g := &Gate{
		probe:  probe,
		config: config,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.setState(StateNotStarted)
	return g, nil
}

// Run probes until success, exhaustion of the attempt budget, or ctx
// cancellation. On exhaustion it returns the last attempt's error.
func (g *Gate) Run(ctx context.Context) error {
	if !g.started.CompareAndSwap(false, true) {
		return ErrAlreadyRun
	}

	g.setState(StateProbing)

	var policy backoff.BackOff = backoff.NewConstantBackOff(g.config.RetryDelay)
	policy = backoff.WithMaxRetries(policy, uint64(g.config.MaxAttempts-1))
	policy = backoff.WithContext(policy, ctx)

	notify := func(err error, wait time.Duration) {
		logger.Debug("Retrying database probe", logger.KeyRetryDelay, wait.String())
	}

	err := backoff.RetryNotifyWithTimer(func() error {
		return g.attempt(ctx)
	}, policy, notify, g.timer)

	if err != nil {
		g.setState(StateFailed)
		if ctx.Err() != nil {
			logger.Warn("Database readiness aborted",
				logger.Attempt(int(g.attempts.Load())),
				logger.MaxAttempts(g.config.MaxAttempts),
				logger.Err(ctx.Err()))
			return ctx.Err()
		}
		logger.Error(fmt.Sprintf("Failed to connect to database after %d attempts", g.attempts.Load()),
			logger.Attempt(int(g.attempts.Load())),
			logger.MaxAttempts(g.config.MaxAttempts),
			logger.Err(err))
		return fmt.Errorf("database not ready after %d attempts: %w", g.attempts.Load(), err)
	}

	g.setState(StateReady)
	logger.Info("Database connection successful", logger.Attempt(int(g.attempts.Load())))
	return nil
}

func (g *Gate) attempt(ctx context.Context) error {
	n := int(g.attempts.Add(1))

	ctx, span := telemetry.StartSpan(ctx, telemetry.SpanReadinessProbe)
	defer span.End()
	span.SetAttributes(
		attribute.Int(telemetry.AttrAttempt, n),
		attribute.Int(telemetry.AttrMaxAttempts, g.config.MaxAttempts),
	)

	err := g.probe.Probe(ctx)
	if g.metrics != nil {
		g.metrics.ObserveAttempt(err == nil)
	}
	if err == nil {
		g.setLastError(nil)
		return nil
	}

	telemetry.RecordError(ctx, err)
	g.setLastError(err)

	if ctx.Err() != nil {
		return backoff.Permanent(err)
	}

	if n < g.config.MaxAttempts {
		logger.Warn(fmt.Sprintf("Database not ready yet (attempt %d/%d)", n, g.config.MaxAttempts),
			logger.Attempt(n),
			logger.MaxAttempts(g.config.MaxAttempts),
			logger.Err(err))
	}
	return err
}

// State returns the current lifecycle state.
func (g *Gate) State() State {
	return State(g.state.Load())
}

// Ready reports whether the gate completed successfully.
func (g *Gate) Ready() bool {
	return g.State() == StateReady
}

// Attempts returns the number of probe attempts made so far.
func (g *Gate) Attempts() int {
	return int(g.attempts.Load())
}

// LastError returns the error of the most recent failed attempt, if any.
func (g *Gate) LastError() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.lastErr
}

// Config returns the retry budget the gate was built with.
func (g *Gate) Config() Config {
	return g.config
}

// Status returns a snapshot suitable for a health response.
func (g *Gate) Status() Status {
	st := Status{
		State:       g.State().String(),
		Attempts:    g.Attempts(),
		MaxAttempts: g.config.MaxAttempts,
	}
	if err := g.LastError(); err != nil {
		st.LastError = err.Error()
	}
	return st
}

func (g *Gate) setState(s State) {
	g.state.Store(int32(s))
	if g.metrics != nil {
		g.metrics.SetState(s)
	}
	logger.Debug("Readiness state changed", logger.State(s.String()))
}

func (g *Gate) setLastError(err error) {
	g.mu.Lock()
	g.lastErr = err
	g.mu.Unlock()
}
