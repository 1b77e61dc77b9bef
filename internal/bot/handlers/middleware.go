package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// AckCallback answers every callback query before the handler runs, so the
// button stops spinning even when the handler takes a long time or fails.
// Handlers never answer callbacks themselves.
func AckCallback(logger *slog.Logger) bot.Middleware {
	log := logger.With("component", "callback_ack")

	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update != nil && update.CallbackQuery != nil {
				_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
					CallbackQueryID: update.CallbackQuery.ID,
				})
				if err != nil {
					log.WarnContext(ctx, "Failed to answer callback query", "error", err)
				}
			}
			next(ctx, b, update)
		}
	}
}
