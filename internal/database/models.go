package database

import "time"

// QuizResult is one finished quiz run. Only completed outcomes are
// persisted; live session state never touches the database.
type QuizResult struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	UserID  int64  `db:"user_id"`
	Topic   string `db:"topic"`
	Score   int    `db:"score"`
	Total   int    `db:"total"`
	Percent int    `db:"percent"`
}

// UserStats aggregates a user's quiz history.
type UserStats struct {
	Quizzes    int `db:"quizzes"`
	TotalScore int `db:"total_score"`
	TotalAsked int `db:"total_asked"`
}
