package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avdeyev/umnikbot/internal/gemini"
)

// factHandler serves random facts. The flow is stateless: no session is
// created, and a fact button pressed days later still works.
type factHandler struct {
	deps HandlerDeps
	log  *slog.Logger
}

func newFactHandler(deps HandlerDeps) *factHandler {
	return &factHandler{deps: deps, log: deps.Logger.With("handler", "fact")}
}

func factKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			buttonRow(button("🎲 Хочу ещё факт", cbFactMore), button("🏠 В меню", cbFactFinish)),
		},
	}
}

// HandleCommand handles /random.
func (h *factHandler) HandleCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, _, ok := messageOrigin(update)
	if !ok {
		return
	}
	h.sendFact(ctx, b, chatID)
}

// HandleCallback handles the fact_* buttons.
func (h *factHandler) HandleCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, _, _, ok := callbackOrigin(update)
	if !ok {
		return
	}

	switch update.CallbackQuery.Data {
	case cbFactMore:
		h.sendFact(ctx, b, chatID)
	case cbFactFinish:
		h.deps.sendText(ctx, b, chatID, h.deps.Config.Messages.Welcome, mainMenuKeyboard())
	default:
		h.log.WarnContext(ctx, "Unknown fact callback", "data", update.CallbackQuery.Data)
	}
}

// sendFact generates and sends one fact. A failed generation degrades to the
// configured placeholder with the same buttons, so the user can just retry.
func (h *factHandler) sendFact(ctx context.Context, b *bot.Bot, chatID int64) {
	h.deps.sendTyping(ctx, b, chatID)

	fact, err := h.deps.Gemini.Complete(ctx, gemini.ModeFact, gemini.FactPrompt)
	if err != nil {
		h.log.WarnContext(ctx, "Fact generation failed", "error", err)
		fact = h.deps.Config.Messages.GenerationFailed
	}

	h.deps.sendText(ctx, b, chatID, "🎲 <b>Случайный факт</b>\n\n"+fact, factKeyboard())
}
