package config

import (
	"github.com/spf13/cobra"

	"github.com/chinookhq/chinook-api/internal/cli/output"
	"github.com/chinookhq/chinook-api/pkg/config"
)

const redacted = "********"

var showOutput string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Display the configuration the server would run with, after
environment overrides and defaults. Database credentials are masked.

Examples:
  # Show as YAML
  chinook config show

  # Show as JSON
  chinook config show --output json`,
	RunE: runConfigShow,
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "yaml", "Output format (yaml|json)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(showOutput)
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		format = output.FormatYAML
	}

	masked := *cfg
	if masked.Database.Postgres.Password != "" {
		masked.Database.Postgres.Password = redacted
	}
	if masked.Database.Postgres.URL != "" {
		masked.Database.Postgres.URL = masked.Database.Postgres.Redacted()
	}

	return output.Print(cmd.OutOrStdout(), format, &masked)
}
