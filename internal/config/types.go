// Package config provides configuration loading and validation for the bot.
// Values come from defaults, an optional config.yaml, and BOT_* environment
// variables, in that order of precedence.
package config

import (
	"errors"
	"time"

	"github.com/go-telegram/bot/models"
)

// ErrConfiguration is returned when loading or validating configuration fails.
var ErrConfiguration = errors.New("configuration error")

// Config defines the full application configuration.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Session   SessionConfig   `mapstructure:"session"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// TelegramConfig holds gateway settings. BotInfo is populated at startup
// from GetMe and is not read from the config file.
type TelegramConfig struct {
	Token    string `mapstructure:"token"     validate:"required"`
	ImageDir string `mapstructure:"image_dir"`

	BotInfo *models.User `mapstructure:"-"`
}

// GeminiConfig holds settings for the text-completion service. Each call mode
// carries its own sampling temperature; see the gemini package for the mode
// to instruction mapping.
type GeminiConfig struct {
	APIKey  string        `mapstructure:"api_key" validate:"required"`
	Model   string        `mapstructure:"model"   validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"required,min=1s,max=10m"`

	TempDefault   float32 `mapstructure:"temp_default"   validate:"min=0,max=2"`
	TempTranslate float32 `mapstructure:"temp_translate" validate:"min=0,max=2"`
	TempFact      float32 `mapstructure:"temp_fact"      validate:"min=0,max=2"`
	TempPersona   float32 `mapstructure:"temp_persona"   validate:"min=0,max=2"`
}

// DatabaseConfig holds SQLite settings for the quiz result store.
type DatabaseConfig struct {
	Path            string        `mapstructure:"path" validate:"required"`
	ResultRetention time.Duration `mapstructure:"result_retention" validate:"min=1h"`
}

// SessionConfig controls the in-memory session store.
type SessionConfig struct {
	IdleTimeout time.Duration `mapstructure:"idle_timeout" validate:"required,min=1m"`
}

// SchedulerConfig defines the scheduled task table.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig enables a single named task with a cron schedule.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// MessagesConfig holds user-facing message strings. Defaults are Russian to
// match the generation prompts and answer markers, which are Russian-localized.
type MessagesConfig struct {
	Welcome          string `mapstructure:"welcome"           validate:"required"`
	StartOver        string `mapstructure:"start_over"        validate:"required"`
	GeneralError     string `mapstructure:"general_error"     validate:"required"`
	NotFound         string `mapstructure:"not_found"         validate:"required"`
	GenerationFailed string `mapstructure:"generation_failed" validate:"required"`
	FlowInterrupted  string `mapstructure:"flow_interrupted"  validate:"required"`
}
