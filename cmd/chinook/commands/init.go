package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chinookhq/chinook-api/internal/cli/prompt"
	"github.com/chinookhq/chinook-api/pkg/catalog/store"
	"github.com/chinookhq/chinook-api/pkg/config"
)

var (
	initForce       bool
	initInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Initialize a sample Chinook API configuration file.

By default, the configuration file is created at $XDG_CONFIG_HOME/chinook/config.yaml.
Use --config to specify a custom path.

Examples:
  # Initialize with default location
  chinook init

  # Answer a few questions about the database and server
  chinook init --interactive

  # Initialize with custom path, overwriting any existing file
  chinook init --config /etc/chinook/config.yaml --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "Prompt for database and server settings")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := GetConfigFile()
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	cfg := config.GetDefaultConfig()
	force := initForce

	if initInteractive {
		if _, err := os.Stat(configPath); err == nil && !force {
			overwrite, err := prompt.Confirm(fmt.Sprintf("%s exists. Overwrite", configPath), false)
			if err != nil {
				return err
			}
			if !overwrite {
				return prompt.ErrAborted
			}
			force = true
		}
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.WriteConfigFile(cfg, configPath, force); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Configuration file created at: %s\n", configPath)
	_, _ = fmt.Fprintln(out, "\nNext steps:")
	_, _ = fmt.Fprintln(out, "  1. Edit the configuration file to point at your Chinook database")
	_, _ = fmt.Fprintln(out, "  2. Create the schema if the database is empty: chinook migrate")
	_, _ = fmt.Fprintf(out, "  3. Start the server: chinook start --config %s\n", configPath)

	return nil
}

// promptConfig asks for the settings most deployments change.
func promptConfig(cfg *config.Config) error {
	dbType, err := prompt.Select("Database", []prompt.SelectOption{
		{Label: "PostgreSQL", Value: string(store.DatabaseTypePostgres), Description: "Production Chinook database"},
		{Label: "SQLite", Value: string(store.DatabaseTypeSQLite), Description: "Local file, for development"},
	})
	if err != nil {
		return err
	}
	cfg.Database.Type = store.DatabaseType(dbType)

	switch cfg.Database.Type {
	case store.DatabaseTypeSQLite:
		cfg.Database.ApplyDefaults()
		if cfg.Database.SQLite.Path, err = prompt.InputRequired("SQLite path", cfg.Database.SQLite.Path); err != nil {
			return err
		}
	case store.DatabaseTypePostgres:
		if err := promptPostgres(&cfg.Database.Postgres); err != nil {
			return err
		}
	}

	if cfg.Server.Port, err = prompt.InputPort("API port", cfg.Server.Port); err != nil {
		return err
	}

	origins, err := prompt.Input("Allowed CORS origins (comma-separated)", strings.Join(cfg.Server.CORS.AllowedOrigins, ","))
	if err != nil {
		return err
	}
	cfg.Server.CORS.AllowedOrigins = splitList(origins)

	if cfg.Readiness.MaxAttempts, err = prompt.InputInt("Database connection attempts", cfg.Readiness.MaxAttempts, 1); err != nil {
		return err
	}
	if cfg.Readiness.RetryDelay, err = prompt.InputDuration("Delay between attempts", cfg.Readiness.RetryDelay); err != nil {
		return err
	}

	return config.Validate(cfg)
}

func promptPostgres(pg *store.PostgresConfig) error {
	var err error
	if pg.Host, err = prompt.InputRequired("PostgreSQL host", pg.Host); err != nil {
		return err
	}
	if pg.Port, err = prompt.InputPort("PostgreSQL port", pg.Port); err != nil {
		return err
	}
	if pg.Database, err = prompt.InputRequired("Database name", pg.Database); err != nil {
		return err
	}
	if pg.User, err = prompt.InputRequired("User", pg.User); err != nil {
		return err
	}
	if pg.Password, err = prompt.Password("Password"); err != nil {
		return err
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
