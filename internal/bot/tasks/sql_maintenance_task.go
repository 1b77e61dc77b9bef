package tasks

import (
	"context"
	"fmt"
	"time"
)

// newSQLMaintenanceTask creates the task that prunes expired quiz results
// and runs database maintenance.
func newSQLMaintenanceTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "sql_maintenance")
	retention := deps.Config.Database.ResultRetention

	return func(ctx context.Context) error {
		start := time.Now()

		deleted, err := deps.Store.DeleteResultsBefore(ctx, time.Now().Add(-retention))
		if err != nil {
			return fmt.Errorf("result pruning failed: %w", err)
		}

		if err := deps.Store.RunSQLMaintenance(ctx); err != nil {
			return fmt.Errorf("sql maintenance failed: %w", err)
		}

		log.InfoContext(ctx, "SQL maintenance completed", "pruned", deleted, "duration", time.Since(start))
		return nil
	}
}
