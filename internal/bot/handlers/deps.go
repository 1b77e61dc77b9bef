package handlers

import (
	"log/slog"

	"github.com/avdeyev/umnikbot/internal/config"
	"github.com/avdeyev/umnikbot/internal/database"
	"github.com/avdeyev/umnikbot/internal/gemini"
	"github.com/avdeyev/umnikbot/internal/session"
)

// HandlerDeps provides dependencies for the dialogue handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Store    database.Store
	Gemini   gemini.Client
	Sessions *session.Manager
}
