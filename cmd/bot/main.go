// Command bot runs the Telegram assistant bot.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tgbot "github.com/go-telegram/bot"

	"github.com/avdeyev/umnikbot/internal/bot"
	"github.com/avdeyev/umnikbot/internal/bot/handlers"
	"github.com/avdeyev/umnikbot/internal/bot/tasks"
	"github.com/avdeyev/umnikbot/internal/config"
	"github.com/avdeyev/umnikbot/internal/database"
	"github.com/avdeyev/umnikbot/internal/gemini"
	"github.com/avdeyev/umnikbot/internal/logger"
	"github.com/avdeyev/umnikbot/internal/session"
	"github.com/avdeyev/umnikbot/internal/telegram"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if exitCode := run(ctx, *configPath); exitCode != 0 {
		os.Exit(exitCode)
	}
}

func run(ctx context.Context, configPath string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 1
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info("Starting bot", "config", configPath)

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to initialize database", "error", err)
		return 1
	}
	defer database.CloseDB(db)

	store := database.NewStore(db, log)
	if err := store.Ping(ctx); err != nil {
		log.Error("Database ping failed", "error", err)
		return 1
	}

	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini, log)
	if err != nil {
		log.Error("Failed to initialize Gemini client", "error", err)
		return 1
	}

	sessions := session.NewManager(log)

	deps := handlers.HandlerDeps{
		Logger:   log,
		Config:   cfg,
		Store:    store,
		Gemini:   geminiClient,
		Sessions: sessions,
	}

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log), handlers.AckCallback(log)),
		tgbot.WithDefaultHandler(handlers.NewRouter(deps)),
	}

	tgBot, err := telegram.NewBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	me, err := tgBot.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info from Telegram", "error", err)
		return 1
	}
	cfg.Telegram.BotInfo = me
	log.Info("Authenticated with Telegram", "bot_username", me.Username, "bot_id", me.ID)

	if err := telegram.RegisterHandlers(tgBot, log, handlers.RegisterAll(deps)); err != nil {
		log.Error("Failed to register handlers", "error", err)
		return 1
	}

	taskDeps := tasks.TaskDeps{
		Logger:   log,
		Config:   cfg,
		Store:    store,
		Sessions: sessions,
	}
	scheduler, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(taskDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.New(log, cfg, db, store, geminiClient, sessions, tgBot, scheduler)
	if err := app.Run(ctx); err != nil {
		return 1
	}

	return 0
}
