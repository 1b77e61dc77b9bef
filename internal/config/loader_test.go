package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/avdeyev/umnikbot/internal/config"
)

// Load works on shared viper state, so these tests run sequentially.

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
telegram:
  token: "123456:test-token"
gemini:
  api_key: "test-api-key"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Telegram.Token != "123456:test-token" {
		t.Errorf("Telegram.Token = %q", cfg.Telegram.Token)
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("Gemini.Model = %q, want default", cfg.Gemini.Model)
	}
	if cfg.Gemini.TempDefault != 0.7 {
		t.Errorf("Gemini.TempDefault = %v, want 0.7", cfg.Gemini.TempDefault)
	}
	if cfg.Gemini.TempTranslate != 0.3 {
		t.Errorf("Gemini.TempTranslate = %v, want 0.3", cfg.Gemini.TempTranslate)
	}
	if cfg.Gemini.TempPersona != 0.8 {
		t.Errorf("Gemini.TempPersona = %v, want 0.8", cfg.Gemini.TempPersona)
	}
	if cfg.Session.IdleTimeout != 2*time.Hour {
		t.Errorf("Session.IdleTimeout = %v, want 2h", cfg.Session.IdleTimeout)
	}
	if cfg.Messages.Welcome == "" {
		t.Error("Messages.Welcome default is empty")
	}

	sweep, ok := cfg.Scheduler.Tasks["session_sweep"]
	if !ok {
		t.Fatal("session_sweep task missing from defaults")
	}
	if !sweep.Enabled || sweep.Schedule == "" {
		t.Errorf("session_sweep task = %+v", sweep)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
log:
  level: debug
  format: text
telegram:
  token: "123456:test-token"
gemini:
  api_key: "test-api-key"
  model: gemini-2.5-pro
session:
  idle_timeout: 30m
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("Gemini.Model = %q, want override", cfg.Gemini.Model)
	}
	if cfg.Session.IdleTimeout != 30*time.Minute {
		t.Errorf("Session.IdleTimeout = %v, want 30m", cfg.Session.IdleTimeout)
	}
}

func TestLoadRejectsMissingToken(t *testing.T) {
	path := writeConfigFile(t, `
telegram:
  token: ""
gemini:
  api_key: "test-api-key"
`)

	if _, err := config.Load(path); !errors.Is(err, config.ErrConfiguration) {
		t.Errorf("Load() error = %v, want ErrConfiguration", err)
	}
}
