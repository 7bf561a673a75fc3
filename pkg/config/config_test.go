package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/chinookhq/chinook-api/pkg/catalog/store"
)

// yamlSafePath converts a filesystem path to a YAML-safe representation.
// On Windows, backslashes in double-quoted YAML strings are interpreted as
// escape sequences (e.g. \U -> Unicode escape), causing parse errors.
func yamlSafePath(p string) string {
	return filepath.ToSlash(p)
}

// isolateConfigHome points the default config location at an empty temp dir
// so a developer's own config never leaks into a test.
func isolateConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_DefaultConfig(t *testing.T) {
	isolateConfigHome(t)
	tmpDir := t.TempDir()

	configPath := writeConfig(t, "config.yaml", `
logging:
  level: "INFO"

database:
  type: sqlite
  sqlite:
    path: "`+yamlSafePath(tmpDir)+`/chinook.db"

server:
  port: 8000
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Database.Type != store.DatabaseTypeSQLite {
		t.Errorf("Expected sqlite database, got %q", cfg.Database.Type)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Expected port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Readiness.MaxAttempts != 30 {
		t.Errorf("Expected default 30 attempts, got %d", cfg.Readiness.MaxAttempts)
	}
	if cfg.Readiness.RetryDelay != 2*time.Second {
		t.Errorf("Expected default retry delay 2s, got %v", cfg.Readiness.RetryDelay)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolateConfigHome(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected env-only load to succeed, got: %v", err)
	}

	if cfg.Database.Type != store.DatabaseTypePostgres {
		t.Errorf("Expected postgres by default, got %q", cfg.Database.Type)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Readiness.MaxAttempts != 30 || cfg.Readiness.RetryDelay != 2*time.Second {
		t.Errorf("Expected readiness defaults 30/2s, got %d/%v",
			cfg.Readiness.MaxAttempts, cfg.Readiness.RetryDelay)
	}
	if len(cfg.Server.CORS.AllowedOrigins) != 1 || cfg.Server.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("Expected CORS origins [*], got %v", cfg.Server.CORS.AllowedOrigins)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolateConfigHome(t)

	configPath := writeConfig(t, "config.yaml", `
logging:
  level: "INFO"
  invalid yaml here [[[
`)

	if _, err := Load(configPath); err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestLoad_TOML(t *testing.T) {
	isolateConfigHome(t)
	tmpDir := t.TempDir()

	configPath := writeConfig(t, "config.toml", `
[logging]
level = "DEBUG"

[database]
type = "sqlite"

[database.sqlite]
path = "`+yamlSafePath(tmpDir)+`/chinook.db"

[readiness]
max_attempts = 4
retry_delay = "250ms"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load TOML config: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected level 'DEBUG', got %q", cfg.Logging.Level)
	}
	if cfg.Readiness.MaxAttempts != 4 {
		t.Errorf("Expected 4 attempts, got %d", cfg.Readiness.MaxAttempts)
	}
	if cfg.Readiness.RetryDelay != 250*time.Millisecond {
		t.Errorf("Expected 250ms delay, got %v", cfg.Readiness.RetryDelay)
	}
}

func TestLoad_DurationAsSeconds(t *testing.T) {
	isolateConfigHome(t)

	configPath := writeConfig(t, "config.yaml", `
readiness:
  retry_delay: 1.5
shutdown_timeout: 45
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Readiness.RetryDelay != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s delay, got %v", cfg.Readiness.RetryDelay)
	}
	if cfg.ShutdownTimeout != 45*time.Second {
		t.Errorf("Expected 45s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_ZeroAttemptsRejected(t *testing.T) {
	isolateConfigHome(t)
	t.Setenv(EnvDBMaxRetries, "0")

	if _, err := Load(""); err == nil {
		t.Fatal("Expected validation error for zero attempts")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	isolateConfigHome(t)
	t.Setenv(EnvDBRetryDelay, "soon")

	if _, err := Load(""); err == nil {
		t.Fatal("Expected error for unparseable retry delay")
	}
}

func TestLoad_LegacyEnvironmentVariables(t *testing.T) {
	isolateConfigHome(t)
	t.Setenv(EnvDBMaxRetries, "5")
	t.Setenv(EnvDBRetryDelay, "0.5")
	t.Setenv(EnvCORSOrigins, "https://a.example.com, https://b.example.com")
	t.Setenv(EnvDatabaseURL, "postgres://chinook:secret@db:5432/chinook?sslmode=disable")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Readiness.MaxAttempts != 5 {
		t.Errorf("Expected 5 attempts from %s, got %d", EnvDBMaxRetries, cfg.Readiness.MaxAttempts)
	}
	if cfg.Readiness.RetryDelay != 500*time.Millisecond {
		t.Errorf("Expected 500ms from %s, got %v", EnvDBRetryDelay, cfg.Readiness.RetryDelay)
	}

	origins := cfg.Server.CORS.AllowedOrigins
	if len(origins) != 2 || origins[0] != "https://a.example.com" || origins[1] != "https://b.example.com" {
		t.Errorf("Expected two trimmed origins, got %v", origins)
	}

	if cfg.Database.Postgres.URL != "postgres://chinook:secret@db:5432/chinook?sslmode=disable" {
		t.Errorf("Expected database URL from %s, got %q", EnvDatabaseURL, cfg.Database.Postgres.URL)
	}
	if got := cfg.Database.Target(); got != "postgres://chinook:xxxxx@db:5432/chinook?sslmode=disable" {
		t.Errorf("Expected redacted target, got %q", got)
	}
}

func TestLoad_PrefixedEnvironmentTakesPrecedence(t *testing.T) {
	isolateConfigHome(t)
	t.Setenv(EnvDBMaxRetries, "5")
	t.Setenv("CHINOOK_READINESS_MAX_ATTEMPTS", "7")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Readiness.MaxAttempts != 7 {
		t.Errorf("Expected CHINOOK_READINESS_MAX_ATTEMPTS to win, got %d", cfg.Readiness.MaxAttempts)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	isolateConfigHome(t)
	t.Setenv("CHINOOK_LOGGING_LEVEL", "ERROR")
	t.Setenv("CHINOOK_SERVER_PORT", "9000")
	t.Setenv(EnvDBRetryDelay, "3")

	tmpDir := t.TempDir()
	configPath := writeConfig(t, "config.yaml", `
logging:
  level: "INFO"

database:
  type: sqlite
  sqlite:
    path: "`+yamlSafePath(tmpDir)+`/chinook.db"

readiness:
  retry_delay: 10s

server:
  port: 8000
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Logging.Level != "ERROR" {
		t.Errorf("Expected level 'ERROR' from env var, got %q", cfg.Logging.Level)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Expected port 9000 from env var, got %d", cfg.Server.Port)
	}
	if cfg.Readiness.RetryDelay != 3*time.Second {
		t.Errorf("Expected env var to override file retry delay, got %v", cfg.Readiness.RetryDelay)
	}
}

func TestMustLoad_MissingFile(t *testing.T) {
	isolateConfigHome(t)

	if _, err := MustLoad(""); err == nil {
		t.Error("Expected error when default config is missing")
	}
	if _, err := MustLoad(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing explicit config")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	isolateConfigHome(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := GetDefaultConfig()
	cfg.Readiness.RetryDelay = 750 * time.Millisecond
	cfg.Server.CORS.AllowedOrigins = []string{"https://shop.example.com"}

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to reload saved config: %v", err)
	}
	if loaded.Readiness.RetryDelay != 750*time.Millisecond {
		t.Errorf("Expected 750ms after round trip, got %v", loaded.Readiness.RetryDelay)
	}
	if len(loaded.Server.CORS.AllowedOrigins) != 1 || loaded.Server.CORS.AllowedOrigins[0] != "https://shop.example.com" {
		t.Errorf("Expected origins preserved, got %v", loaded.Server.CORS.AllowedOrigins)
	}
}

func TestGetDefaultConfigPath(t *testing.T) {
	isolateConfigHome(t)
	path := GetDefaultConfigPath()

	if !filepath.IsAbs(path) {
		t.Errorf("Expected absolute path, got %q", path)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("Expected filename 'config.yaml', got %q", filepath.Base(path))
	}
}

func TestGetConfigDir(t *testing.T) {
	home := isolateConfigHome(t)
	dir := GetConfigDir()

	if dir != filepath.Join(home, "chinook") {
		t.Errorf("Expected %q, got %q", filepath.Join(home, "chinook"), dir)
	}
	if DefaultConfigExists() {
		t.Error("Expected no config in a fresh config home")
	}
}

func TestConfigKeys(t *testing.T) {
	keys := map[string]bool{}
	for _, k := range configKeys(reflect.TypeOf(Config{}), "") {
		keys[k] = true
	}

	for _, want := range []string{
		"logging.level",
		"readiness.max_attempts",
		"readiness.retry_delay",
		"server.port",
		"server.cors.allowed_origins",
		"database.postgres.url",
		"metrics.enabled",
	} {
		if !keys[want] {
			t.Errorf("Expected config key %q to be bound", want)
		}
	}
	if keys["readiness"] {
		t.Error("Expected only leaf keys")
	}
	if envName("server.cors.allowed_origins") != "CHINOOK_SERVER_CORS_ALLOWED_ORIGINS" {
		t.Errorf("Unexpected env name %q", envName("server.cors.allowed_origins"))
	}
}
