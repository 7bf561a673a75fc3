package readiness

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinookhq/chinook-api/internal/logger"
)

// fakeTimer fires immediately and records every requested wait.
type fakeTimer struct {
	mu    sync.Mutex
	waits []time.Duration
	c     chan time.Time
}

func (t *fakeTimer) Start(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.waits = append(t.waits, d)
	t.c = make(chan time.Time, 1)
	t.c <- time.Now()
}

func (t *fakeTimer) Stop() {}

func (t *fakeTimer) C() <-chan time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.c
}

func (t *fakeTimer) Waits() []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]time.Duration(nil), t.waits...)
}

type recordingMetrics struct {
	mu        sync.Mutex
	successes int
	failures  int
	states    []State
}

func (m *recordingMetrics) ObserveAttempt(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if success {
		m.successes++
	} else {
		m.failures++
	}
}

func (m *recordingMetrics) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states = append(m.states, s)
}

// failingProbe fails the first n calls with err, then succeeds.
func failingProbe(n int, err error) (Probe, *int) {
	calls := 0
	return ProbeFunc(func(ctx context.Context) error {
		calls++
		if calls <= n {
			return err
		}
		return nil
	}), &calls
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "DEBUG", "text", false)
	t.Cleanup(func() {
		logger.InitWithWriter(os.Stdout, "INFO", "text", false)
	})
	return &buf
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "not-started", StateNotStarted.String())
	assert.Equal(t, "probing", StateProbing.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown(9)", State(9).String())

	assert.False(t, StateProbing.IsTerminal())
	assert.True(t, StateReady.IsTerminal())
	assert.True(t, StateFailed.IsTerminal())
}

func TestConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 30, cfg.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.RetryDelay)
	assert.Equal(t, 58*time.Second, cfg.Budget())
	require.NoError(t, cfg.Validate())

	assert.Error(t, Config{MaxAttempts: 0}.Validate())
	assert.Error(t, Config{MaxAttempts: 1, RetryDelay: -time.Second}.Validate())
	assert.NoError(t, Config{MaxAttempts: 1}.Validate())
	assert.Equal(t, time.Duration(0), Config{MaxAttempts: 1, RetryDelay: time.Second}.Budget())
}

func TestNew(t *testing.T) {
	probe, _ := failingProbe(0, nil)

	_, err := New(nil, DefaultConfig())
	assert.Error(t, err)

	_, err = New(probe, Config{MaxAttempts: 0, RetryDelay: time.Second})
	assert.Error(t, err)

	g, err := New(probe, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, StateNotStarted, g.State())
	assert.Equal(t, 0, g.Attempts())
	assert.False(t, g.Ready())
}

func TestRunSucceedsFirstAttempt(t *testing.T) {
	buf := captureLogs(t)
	probe, calls := failingProbe(0, nil)
	timer := &fakeTimer{}

	g, err := New(probe, DefaultConfig(), WithTimer(timer))
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, 1, *calls)
	assert.Equal(t, StateReady, g.State())
	assert.True(t, g.Ready())
	assert.Empty(t, timer.Waits())
	assert.Contains(t, buf.String(), "Database connection successful")
	assert.NotContains(t, buf.String(), "not ready yet")
}

func TestRunRetriesWithFixedDelay(t *testing.T) {
	buf := captureLogs(t)
	probe, calls := failingProbe(2, errors.New("connection refused"))
	timer := &fakeTimer{}

	g, err := New(probe, Config{MaxAttempts: 5, RetryDelay: 1500 * time.Millisecond}, WithTimer(timer))
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, 3, *calls)
	assert.Equal(t, 3, g.Attempts())
	assert.Equal(t, []time.Duration{1500 * time.Millisecond, 1500 * time.Millisecond}, timer.Waits())
	assert.Nil(t, g.LastError())

	out := buf.String()
	assert.Contains(t, out, "Database not ready yet (attempt 1/5)")
	assert.Contains(t, out, "Database not ready yet (attempt 2/5)")
	assert.NotContains(t, out, "attempt 3/5")
	assert.Contains(t, out, "connection refused")
}

func TestRunExhaustsBudget(t *testing.T) {
	buf := captureLogs(t)
	probeErr := errors.New("no route to host")
	probe, calls := failingProbe(100, probeErr)
	timer := &fakeTimer{}

	g, err := New(probe, Config{MaxAttempts: 3, RetryDelay: time.Second}, WithTimer(timer))
	require.NoError(t, err)

	err = g.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, probeErr)
	assert.Equal(t, 3, *calls)
	assert.Len(t, timer.Waits(), 2)
	assert.Equal(t, StateFailed, g.State())
	assert.Equal(t, probeErr, g.LastError())

	out := buf.String()
	assert.Contains(t, out, "Database not ready yet (attempt 2/3)")
	assert.NotContains(t, out, "attempt 3/3")
	assert.Contains(t, out, "Failed to connect to database after 3 attempts")
}

func TestRunSingleAttempt(t *testing.T) {
	captureLogs(t)
	probe, calls := failingProbe(1, errors.New("down"))
	timer := &fakeTimer{}

	g, err := New(probe, Config{MaxAttempts: 1, RetryDelay: time.Hour}, WithTimer(timer))
	require.NoError(t, err)

	require.Error(t, g.Run(context.Background()))
	assert.Equal(t, 1, *calls)
	assert.Empty(t, timer.Waits())
}

func TestRunZeroDelay(t *testing.T) {
	captureLogs(t)
	probe, calls := failingProbe(2, errors.New("down"))
	timer := &fakeTimer{}

	g, err := New(probe, Config{MaxAttempts: 3, RetryDelay: 0}, WithTimer(timer))
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, 3, *calls)
	assert.Equal(t, []time.Duration{0, 0}, timer.Waits())
}

func TestRunZeroDelayRealTimer(t *testing.T) {
	captureLogs(t)
	probe, calls := failingProbe(3, errors.New("down"))

	g, err := New(probe, Config{MaxAttempts: 4})
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, 4, *calls)
}

func TestRunOnlyOnce(t *testing.T) {
	captureLogs(t)
	probe, calls := failingProbe(0, nil)

	g, err := New(probe, DefaultConfig(), WithTimer(&fakeTimer{}))
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))
	assert.ErrorIs(t, g.Run(context.Background()), ErrAlreadyRun)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, StateReady, g.State())
}

func TestRunContextCancelled(t *testing.T) {
	captureLogs(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	probe := ProbeFunc(func(ctx context.Context) error {
		calls++
		if calls == 2 {
			cancel()
			return ctx.Err()
		}
		return errors.New("down")
	})

	g, err := New(probe, Config{MaxAttempts: 10, RetryDelay: time.Millisecond}, WithTimer(&fakeTimer{}))
	require.NoError(t, err)

	err = g.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, calls)
	assert.Equal(t, StateFailed, g.State())
}

func TestRunCancelledDuringWait(t *testing.T) {
	captureLogs(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	probe, calls := failingProbe(100, errors.New("down"))

	g, err := New(probe, Config{MaxAttempts: 10, RetryDelay: time.Hour})
	require.NoError(t, err)

	start := time.Now()
	err = g.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, *calls)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestMetricsAndStatus(t *testing.T) {
	captureLogs(t)
	probe, _ := failingProbe(1, errors.New("starting up"))
	m := &recordingMetrics{}

	g, err := New(probe, Config{MaxAttempts: 3, RetryDelay: time.Second}, WithTimer(&fakeTimer{}), WithMetrics(m))
	require.NoError(t, err)

	st := g.Status()
	assert.Equal(t, "not-started", st.State)
	assert.Equal(t, 3, st.MaxAttempts)

	require.NoError(t, g.Run(context.Background()))

	assert.Equal(t, 1, m.successes)
	assert.Equal(t, 1, m.failures)
	assert.Equal(t, []State{StateNotStarted, StateProbing, StateReady}, m.states)

	st = g.Status()
	assert.Equal(t, "ready", st.State)
	assert.Equal(t, 2, st.Attempts)
	assert.Empty(t, st.LastError)
}
