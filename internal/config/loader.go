package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load loads and validates configuration from:
// 1. Default values
// 2. config.yaml file (optional)
// 3. BOT_* environment variables
func Load(path string) (*Config, error) {
	setDefaults()

	if err := readConfig(path); err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrConfiguration, err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return cfg, nil
}

// readConfig initializes viper with the config file and environment overrides.
// A missing config file is not an error; defaults and environment take over.
func readConfig(path string) error {
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("BOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")

	viper.SetDefault("telegram.image_dir", "assets/images")

	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.timeout", 2*time.Minute)
	viper.SetDefault("gemini.temp_default", 0.7)
	viper.SetDefault("gemini.temp_translate", 0.3)
	viper.SetDefault("gemini.temp_fact", 0.3)
	viper.SetDefault("gemini.temp_persona", 0.8)

	viper.SetDefault("database.path", "storage.db")
	viper.SetDefault("database.result_retention", 90*24*time.Hour)

	viper.SetDefault("session.idle_timeout", 2*time.Hour)

	viper.SetDefault("scheduler.tasks.session_sweep.enabled", true)
	viper.SetDefault("scheduler.tasks.session_sweep.schedule", "*/15 * * * *")
	viper.SetDefault("scheduler.tasks.sql_maintenance.enabled", true)
	viper.SetDefault("scheduler.tasks.sql_maintenance.schedule", "0 4 * * *")

	viper.SetDefault("messages.welcome",
		"🎉 <b>Добро пожаловать!</b>\n\nВыберите функцию из меню ниже:")
	viper.SetDefault("messages.start_over",
		"🤷 Эта кнопка больше не активна. Используйте /start, чтобы начать заново.")
	viper.SetDefault("messages.general_error",
		"😔 Произошла ошибка. Попробуйте ещё раз.")
	viper.SetDefault("messages.not_found",
		"❌ Ошибка: вариант не найден.")
	viper.SetDefault("messages.generation_failed",
		"⚠️ Не удалось получить ответ. Попробуйте позже.")
	viper.SetDefault("messages.flow_interrupted",
		"❌ Данные диалога не найдены. Используйте /start для начала.")
}
