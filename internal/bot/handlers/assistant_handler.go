package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avdeyev/umnikbot/internal/gemini"
	"github.com/avdeyev/umnikbot/internal/session"
)

// assistantHandler runs the free-form question flow. Messages that look like
// translation requests are routed to the translator instruction so the model
// does not answer the text instead of translating it.
type assistantHandler struct {
	deps HandlerDeps
	log  *slog.Logger
}

func newAssistantHandler(deps HandlerDeps) *assistantHandler {
	return &assistantHandler{deps: deps, log: deps.Logger.With("handler", "assistant")}
}

// translationMarkers flag a message as a translation request.
var translationMarkers = []string{"переведи", "перевод", "как будет", "translate"}

func looksLikeTranslation(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range translationMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func assistantKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			buttonRow(button("💬 Новый вопрос", cbAssistantNew), button("🏠 В меню", cbMenuMain)),
		},
	}
}

// HandleCommand handles /gpt.
func (h *assistantHandler) HandleCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, userID, ok := messageOrigin(update)
	if !ok {
		return
	}
	h.enter(ctx, b, chatID, userID)
}

func (h *assistantHandler) enter(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	h.deps.Sessions.Enter(userID, session.FlowAssistant, session.StateAwaitingQuestion)

	caption := "🤖 <b>Вопрос ассистенту</b>\n\nЗадайте любой вопрос, и я постараюсь ответить."
	h.deps.sendMenuImage(ctx, b, chatID, "assistant.jpg", caption, nil)
}

// HandleCallback handles the gpt_* buttons.
func (h *assistantHandler) HandleCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, _, userID, ok := callbackOrigin(update)
	if !ok {
		return
	}

	switch update.CallbackQuery.Data {
	case cbAssistantNew:
		sess := h.deps.Sessions.Get(userID)
		if sess == nil || sess.Flow != session.FlowAssistant {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.deps.sendText(ctx, b, chatID, "💬 Задайте следующий вопрос:", nil)
	default:
		h.log.WarnContext(ctx, "Unknown assistant callback", "data", update.CallbackQuery.Data)
	}
}

// HandleQuestion answers the user's message. Called by the router in the
// awaiting-question state. A failed model call degrades to the configured
// placeholder: the dialogue itself keeps going.
func (h *assistantHandler) HandleQuestion(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, _, ok := messageOrigin(update)
	if !ok {
		return
	}

	mode := gemini.ModeDefault
	if looksLikeTranslation(update.Message.Text) {
		mode = gemini.ModeTranslate
	}

	h.deps.sendTyping(ctx, b, chatID)
	answer, err := h.deps.Gemini.Complete(ctx, mode, update.Message.Text)
	if err != nil {
		h.log.WarnContext(ctx, "Assistant answer generation failed", "error", err)
		answer = h.deps.Config.Messages.GenerationFailed
	}

	h.deps.sendText(ctx, b, chatID, answer, assistantKeyboard())
}
