package api

import (
	"time"
)

// DefaultExposedEnv lists the environment variables GET /api/envvars reports
// when no explicit list is configured. None of them carry credentials.
var DefaultExposedEnv = []string{"DB_MAX_RETRIES", "DB_RETRY_DELAY", "CORS_ORIGINS"}

// writeTimeoutMargin is the headroom WriteTimeout keeps over RequestTimeout.
const writeTimeoutMargin = 5 * time.Second

// APIConfig configures the catalog HTTP server.
type APIConfig struct {
	// Port is the HTTP port for the API endpoints.
	// Default: 8000
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535" yaml:"port"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body. A zero or negative value means there is no timeout.
	// Default: 10s
	ReadTimeout time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	// It is raised to at least RequestTimeout plus 5s.
	// Default: 35s
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 60s
	IdleTimeout time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`

	// RequestTimeout bounds handler execution, including store calls.
	// Default: 30s
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`

	// CORS configures cross-origin access for browser clients.
	CORS CORSConfig `mapstructure:"cors" yaml:"cors"`

	// ExposedEnv names the environment variables returned by GET /api/envvars.
	// Default: DB_MAX_RETRIES, DB_RETRY_DELAY, CORS_ORIGINS
	ExposedEnv []string `mapstructure:"exposed_env" yaml:"exposed_env"`
}

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins lists origins allowed to call the API. "*" allows any.
	// Env: CORS_ORIGINS (comma-separated)
	// Default: ["*"]
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"dive,required" yaml:"allowed_origins"`

	// AllowCredentials sets Access-Control-Allow-Credentials.
	// Default: true
	AllowCredentials *bool `mapstructure:"allow_credentials" yaml:"allow_credentials,omitempty"`

	// MaxAge is how long browsers may cache a preflight result.
	// Default: 10m
	MaxAge time.Duration `mapstructure:"max_age" yaml:"max_age"`
}

// CredentialsAllowed reports the effective AllowCredentials value.
func (c CORSConfig) CredentialsAllowed() bool {
	return c.AllowCredentials == nil || *c.AllowCredentials
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *APIConfig) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 8000
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 10 * time.Second
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60 * time.Second
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 30 * time.Second
	}
	// The server must outlive the handler timeout, otherwise the
	// connection is cut before the 503 from middleware.Timeout is written.
	if c.WriteTimeout < c.RequestTimeout+writeTimeoutMargin {
		c.WriteTimeout = c.RequestTimeout + writeTimeoutMargin
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if c.CORS.MaxAge == 0 {
		c.CORS.MaxAge = 10 * time.Minute
	}
	if c.ExposedEnv == nil {
		c.ExposedEnv = append([]string(nil), DefaultExposedEnv...)
	}
}
