package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/chinookhq/chinook-api/internal/telemetry"
	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// Column describes one reflected column.
type Column struct {
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	Nullable   bool   `json:"nullable" yaml:"nullable"`
	PrimaryKey bool   `json:"primary_key" yaml:"primary_key"`
}

// Table describes one reflected table.
type Table struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []Column `json:"columns" yaml:"columns"`
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// Schema is the structural metadata of the live database, loaded once at
// startup by the readiness probe.
type Schema struct {
	Tables map[string]*Table `json:"tables" yaml:"tables"`
}

// Table returns the named table.
func (s *Schema) Table(name string) (*Table, bool) {
	t, ok := s.Tables[strings.ToLower(name)]
	return t, ok
}

// TableNames returns the reflected table names in sorted order.
func (s *Schema) TableNames() []string {
	names := make([]string, 0, len(s.Tables))
	for name := range s.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reflect loads table and column metadata from the database.
func (s *GORMStore) Reflect(ctx context.Context) (*Schema, error) {
	ctx, span := telemetry.StartSpan(ctx, telemetry.SpanStoreReflect)
	defer span.End()

	schema, err := reflectSchema(s.db.WithContext(ctx))
	if err != nil {
		telemetry.RecordError(ctx, err)
		return nil, err
	}
	span.SetAttributes(telemetry.Count(len(schema.Tables)))
	return schema, nil
}

func reflectSchema(db *gorm.DB) (*Schema, error) {
	migrator := db.Migrator()

	tables, err := migrator.GetTables()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	schema := &Schema{Tables: make(map[string]*Table, len(tables))}
	for _, name := range tables {
		columnTypes, err := migrator.ColumnTypes(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read columns of %s: %w", name, err)
		}

		table := &Table{Name: name, Columns: make([]Column, 0, len(columnTypes))}
		for _, ct := range columnTypes {
			nullable, _ := ct.Nullable()
			primaryKey, _ := ct.PrimaryKey()
			table.Columns = append(table.Columns, Column{
				Name:       ct.Name(),
				Type:       strings.ToLower(ct.DatabaseTypeName()),
				Nullable:   nullable,
				PrimaryKey: primaryKey,
			})
		}
		schema.Tables[strings.ToLower(name)] = table
	}

	return schema, nil
}

// Verify checks that every table and column mapped by the given models
// exists in the schema. Missing items are reported together in an error
// wrapping models.ErrSchemaMismatch.
func (s *Schema) Verify(db *gorm.DB, mapped ...any) error {
	var missing []string

	for _, model := range mapped {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("failed to parse model %T: %w", model, err)
		}

		table, ok := s.Table(stmt.Schema.Table)
		if !ok {
			missing = append(missing, "table "+stmt.Schema.Table)
			continue
		}

		for _, column := range stmt.Schema.DBNames {
			if !table.HasColumn(column) {
				missing = append(missing, stmt.Schema.Table+"."+column)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", models.ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}
