package readiness

import (
	"fmt"
	"time"
)

const (
	// DefaultMaxAttempts is the number of probe attempts before giving up.
	DefaultMaxAttempts = 30

	// DefaultRetryDelay is the fixed wait between two failed attempts.
	DefaultRetryDelay = 2 * time.Second
)

// Config bounds the startup probe loop.
type Config struct {
	// MaxAttempts is the total number of probe attempts, including the first.
	// Env: DB_MAX_RETRIES
	MaxAttempts int `mapstructure:"max_attempts" validate:"min=1" yaml:"max_attempts"`

	// RetryDelay is the wait after each failed attempt except the last.
	// Zero means retry immediately.
	// Env: DB_RETRY_DELAY (seconds, fractional allowed)
	RetryDelay time.Duration `mapstructure:"retry_delay" validate:"gte=0" yaml:"retry_delay"`
}

// DefaultConfig returns the stock retry budget (30 attempts, 2s apart).
func DefaultConfig() Config {
	return Config{
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}

// Validate rejects budgets the gate cannot run with.
func (c Config) Validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must not be negative, got %s", c.RetryDelay)
	}
	return nil
}

// Budget is the worst-case time spent waiting between attempts.
func (c Config) Budget() time.Duration {
	if c.MaxAttempts <= 1 {
		return 0
	}
	return time.Duration(c.MaxAttempts-1) * c.RetryDelay
}
