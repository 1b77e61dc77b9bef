package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avdeyev/umnikbot/internal/registry"
)

const recentResultsShown = 5

// statsHandler serves /stats: aggregate quiz figures plus the latest
// results.
type statsHandler struct {
	deps HandlerDeps
	log  *slog.Logger
}

func newStatsHandler(deps HandlerDeps) *statsHandler {
	return &statsHandler{deps: deps, log: deps.Logger.With("handler", "stats")}
}

// HandleCommand handles /stats.
func (h *statsHandler) HandleCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, userID, ok := messageOrigin(update)
	if !ok {
		return
	}

	stats, err := h.deps.Store.GetUserStats(ctx, userID)
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to load user stats", "user_id", userID, "error", err)
		h.deps.sendText(ctx, b, chatID, h.deps.Config.Messages.GeneralError, mainMenuKeyboard())
		return
	}

	if stats.Quizzes == 0 {
		h.deps.sendText(ctx, b, chatID, "📊 Вы ещё не прошли ни одного квиза. Самое время начать!", mainMenuKeyboard())
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 <b>Ваша статистика</b>\n\nКвизов пройдено: %d\nПравильных ответов: %d из %d",
		stats.Quizzes, stats.TotalScore, stats.TotalAsked)

	recent, err := h.deps.Store.GetRecentQuizResults(ctx, userID, recentResultsShown)
	if err != nil {
		h.log.WarnContext(ctx, "Failed to load recent results", "user_id", userID, "error", err)
	} else if len(recent) > 0 {
		sb.WriteString("\n\n<b>Последние квизы:</b>")
		for _, r := range recent {
			name := r.Topic
			if topic, err := registry.TopicByKey(r.Topic); err == nil {
				name = topic.Name
			}
			fmt.Fprintf(&sb, "\n• %s — %d/%d (%d%%)", name, r.Score, r.Total, r.Percent)
		}
	}

	h.deps.sendText(ctx, b, chatID, sb.String(), mainMenuKeyboard())
}
