package prometheus

import (
	"database/sql"
	"fmt"

	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/chinookhq/chinook-api/pkg/metrics"
)

// RegisterDBStats exposes connection pool statistics for db under
// go_sql_* with a db_name label. No-op when metrics are disabled.
func RegisterDBStats(db *sql.DB, name string) error {
	if !metrics.IsEnabled() {
		return nil
	}
	if err := metrics.GetRegistry().Register(collectors.NewDBStatsCollector(db, name)); err != nil {
		return fmt.Errorf("failed to register db stats collector: %w", err)
	}
	return nil
}
