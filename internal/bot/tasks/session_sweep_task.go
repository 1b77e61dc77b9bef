package tasks

import "context"

// newSessionSweepTask creates the task that drops idle sessions. Users whose
// session was swept get the stale-button hint on their next interaction.
func newSessionSweepTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "session_sweep")
	maxIdle := deps.Config.Session.IdleTimeout

	return func(ctx context.Context) error {
		removed := deps.Sessions.SweepIdle(maxIdle)
		log.InfoContext(ctx, "Session sweep completed", "removed", removed, "max_idle", maxIdle)
		return nil
	}
}
