package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinookhq/chinook-api/internal/cli/output"
	"github.com/chinookhq/chinook-api/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the Chinook API configuration file.

Checks for syntax errors, missing required fields, and invalid values.
Environment overrides are applied before validation.

Examples:
  # Validate default config
  chinook config validate

  # Validate specific config file
  chinook config validate --config /etc/chinook/config.yaml`,
	RunE: runConfigValidate,
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.MustLoad(configPath)
	if err != nil {
		return err
	}

	displayPath := configPath
	if displayPath == "" {
		displayPath = config.GetDefaultConfigPath()
	}

	var warnings []string
	if cfg.Database.Postgres.Password != "" {
		warnings = append(warnings, "database password stored in the config file; prefer DATABASE_URL or CHINOOK_DATABASE_POSTGRES_PASSWORD")
	}
	for _, origin := range cfg.Server.CORS.AllowedOrigins {
		if origin == "*" && cfg.Server.CORS.CredentialsAllowed() {
			warnings = append(warnings, "CORS allows any origin with credentials")
			break
		}
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Configuration file: %s\n", displayPath)
	_, _ = fmt.Fprintln(out, "Validation: OK")

	if len(warnings) > 0 {
		_, _ = fmt.Fprintln(out, "\nWarnings:")
		for _, w := range warnings {
			_, _ = fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	_, _ = fmt.Fprintln(out, "\nConfiguration summary:")
	return output.SimpleTable(out, [][2]string{
		{"Database", cfg.Database.Target()},
		{"API port", fmt.Sprint(cfg.Server.Port)},
		{"Connection attempts", fmt.Sprint(cfg.Readiness.MaxAttempts)},
		{"Retry delay", cfg.Readiness.RetryDelay.String()},
		{"Log level", cfg.Logging.Level},
	})
}
