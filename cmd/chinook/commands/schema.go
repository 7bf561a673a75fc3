package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chinookhq/chinook-api/internal/cli/output"
	"github.com/chinookhq/chinook-api/pkg/catalog/store"
	"github.com/chinookhq/chinook-api/pkg/config"
)

var (
	schemaOutput string
	schemaTable  string
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the reflected database schema",
	Long: `Connect to the configured database once and print the tables and
columns the server would reflect at startup.

Examples:
  # List tables
  chinook schema

  # Show the columns of one table
  chinook schema --table track

  # Full schema as JSON
  chinook schema --output json`,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "table", "Output format (table|json|yaml)")
	schemaCmd.Flags().StringVarP(&schemaTable, "table", "t", "", "Show the columns of a single table")
}

// schemaTables renders one row per table.
type schemaTables struct {
	schema *store.Schema
}

func (s schemaTables) Headers() []string {
	return []string{"Table", "Columns", "Primary Key"}
}

func (s schemaTables) Rows() [][]string {
	rows := make([][]string, 0, len(s.schema.Tables))
	for _, name := range s.schema.TableNames() {
		table := s.schema.Tables[name]
		rows = append(rows, []string{table.Name, strconv.Itoa(len(table.Columns)), primaryKey(table)})
	}
	return rows
}

// tableColumns renders one row per column.
type tableColumns struct {
	table *store.Table
}

func (t tableColumns) Headers() []string {
	return []string{"Column", "Type", "Nullable", "Primary Key"}
}

func (t tableColumns) Rows() [][]string {
	rows := make([][]string, 0, len(t.table.Columns))
	for _, c := range t.table.Columns {
		rows = append(rows, []string{c.Name, c.Type, yesNo(c.Nullable), yesNo(c.PrimaryKey)})
	}
	return rows
}

func runSchema(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(schemaOutput)
	if err != nil {
		return err
	}

	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return err
	}
	if err := InitLogger(cfg); err != nil {
		return err
	}

	st, err := store.Open(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	schema, err := st.Reflect(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if schemaTable != "" {
		table, ok := schema.Table(schemaTable)
		if !ok {
			return fmt.Errorf("table %q not found (available: %s)", schemaTable, strings.Join(schema.TableNames(), ", "))
		}
		if format == output.FormatTable {
			return output.Print(out, format, tableColumns{table: table})
		}
		return output.Print(out, format, table)
	}

	if format == output.FormatTable {
		return output.Print(out, format, schemaTables{schema: schema})
	}
	return output.Print(out, format, schema)
}

func primaryKey(t *store.Table) string {
	var keys []string
	for _, c := range t.Columns {
		if c.PrimaryKey {
			keys = append(keys, c.Name)
		}
	}
	return strings.Join(keys, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
