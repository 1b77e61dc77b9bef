package database

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the database operations used by the bot. All methods accept
// a context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// SaveQuizResult inserts a finished quiz outcome.
	SaveQuizResult(ctx context.Context, result *QuizResult) error

	// GetRecentQuizResults retrieves the user's most recent results, newest first.
	GetRecentQuizResults(ctx context.Context, userID int64, limit int) ([]QuizResult, error)

	// GetUserStats aggregates the user's quiz history.
	GetUserStats(ctx context.Context, userID int64) (*UserStats, error)

	// DeleteResultsBefore removes results older than cutoff and reports how
	// many rows were deleted.
	DeleteResultsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// RunSQLMaintenance performs VACUUM and ANALYZE.
	RunSQLMaintenance(ctx context.Context) error
}

type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a Store implementation backed by sqlx.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) SaveQuizResult(ctx context.Context, result *QuizResult) error {
	if result == nil {
		return fmt.Errorf("cannot save nil quiz result")
	}
	if result.UserID == 0 {
		return fmt.Errorf("quiz result must have a non-zero user_id")
	}
	if result.Topic == "" {
		return fmt.Errorf("quiz result must have a topic")
	}

	result.CreatedAt = time.Now().UTC()

	query := `
        INSERT INTO quiz_results (user_id, topic, score, total, percent, created_at)
        VALUES (:user_id, :topic, :score, :total, :percent, :created_at);
    `
	res, err := s.db.NamedExecContext(ctx, query, result)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error saving quiz result", "user_id", result.UserID, "error", err)
		return fmt.Errorf("failed to save quiz result for user %d: %w", result.UserID, err)
	}

	if id, err := res.LastInsertId(); err == nil {
		result.ID = uint(id)
	}

	return nil
}

func (s *sqlxStore) GetRecentQuizResults(ctx context.Context, userID int64, limit int) ([]QuizResult, error) {
	if limit <= 0 {
		limit = 10
	}

	var results []QuizResult
	query := `
        SELECT id, created_at, user_id, topic, score, total, percent
        FROM quiz_results
        WHERE user_id = ?
        ORDER BY created_at DESC
        LIMIT ?;
    `
	if err := s.db.SelectContext(ctx, &results, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to get quiz results for user %d: %w", userID, err)
	}

	return results, nil
}

func (s *sqlxStore) GetUserStats(ctx context.Context, userID int64) (*UserStats, error) {
	stats := &UserStats{}
	query := `
        SELECT COUNT(*) AS quizzes,
               COALESCE(SUM(score), 0) AS total_score,
               COALESCE(SUM(total), 0) AS total_asked
        FROM quiz_results
        WHERE user_id = ?;
    `
	if err := s.db.GetContext(ctx, stats, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get stats for user %d: %w", userID, err)
	}

	return stats, nil
}

func (s *sqlxStore) DeleteResultsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quiz_results WHERE created_at < ?;`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old quiz results: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		s.logger.WarnContext(ctx, "Could not determine deleted row count", "error", err)
		return 0, nil
	}

	return deleted, nil
}

func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "VACUUM;"); err != nil {
		return fmt.Errorf("vacuum failed: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "ANALYZE;"); err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	s.logger.InfoContext(ctx, "SQL maintenance completed")
	return nil
}
