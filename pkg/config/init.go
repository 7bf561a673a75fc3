package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configHeader = `# Chinook API Configuration File
#
# Every key can be overridden with an environment variable named
# CHINOOK_<SECTION>_<KEY>, e.g. CHINOOK_LOGGING_LEVEL=DEBUG.
# DB_MAX_RETRIES, DB_RETRY_DELAY, CORS_ORIGINS and DATABASE_URL are also
# honoured for compatibility.
#
# Durations accept Go syntax ("2s", "500ms") or plain seconds (2.0).

`

// InitConfig writes a sample configuration file to the default location.
// Returns the path of the created file.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	if err := InitConfigToPath(path, force); err != nil {
		return "", err
	}
	return path, nil
}

// InitConfigToPath writes a sample configuration file to path.
func InitConfigToPath(path string, force bool) error {
	return WriteConfigFile(GetDefaultConfig(), path, force)
}

// WriteConfigFile writes cfg as a commented YAML file. Unless force is set,
// an existing file is left untouched and an error is returned.
func WriteConfigFile(cfg *Config, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	body, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	buf.Write(body)

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
