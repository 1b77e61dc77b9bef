// Package tasks implements the bot's scheduled background tasks.
package tasks

import (
	"log/slog"

	"github.com/avdeyev/umnikbot/internal/config"
	"github.com/avdeyev/umnikbot/internal/database"
	"github.com/avdeyev/umnikbot/internal/session"
)

// TaskDeps contains the dependencies available to scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Store    database.Store
	Sessions *session.Manager
}
