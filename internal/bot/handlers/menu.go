package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// menuHandler serves /start and the main menu buttons. The main menu is the
// single entry point into every flow and also the universal escape hatch:
// pressing "В меню" from anywhere abandons the current dialogue.
type menuHandler struct {
	deps      HandlerDeps
	quiz      *quizHandler
	persona   *personaHandler
	translate *translateHandler
	recommend *recommendHandler
	assistant *assistantHandler
	fact      *factHandler
}

func newMenuHandler(deps HandlerDeps) *menuHandler {
	return &menuHandler{
		deps:      deps,
		quiz:      newQuizHandler(deps),
		persona:   newPersonaHandler(deps),
		translate: newTranslateHandler(deps),
		recommend: newRecommendHandler(deps),
		assistant: newAssistantHandler(deps),
		fact:      newFactHandler(deps),
	}
}

func mainMenuKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			buttonRow(button("🎯 Квиз", cbMenuQuiz), button("🎭 Диалог с личностью", cbMenuTalk)),
			buttonRow(button("🌍 Переводчик", cbMenuTranslate), button("💡 Рекомендации", cbMenuRecommend)),
			buttonRow(button("🤖 Вопрос ассистенту", cbMenuAssistant), button("🎲 Случайный факт", cbMenuFact)),
		},
	}
}

// HandleStart handles /start. It abandons any dialogue in progress and shows
// the welcome menu.
func (h *menuHandler) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, userID, ok := messageOrigin(update)
	if !ok {
		return
	}

	h.deps.Sessions.Clear(userID)
	h.deps.sendMenuImage(ctx, b, chatID, "welcome.jpg", h.deps.Config.Messages.Welcome, mainMenuKeyboard())
}

// HandleCallback handles the menu_* buttons.
func (h *menuHandler) HandleCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, _, userID, ok := callbackOrigin(update)
	if !ok {
		return
	}

	switch update.CallbackQuery.Data {
	case cbMenuMain:
		h.deps.Sessions.Clear(userID)
		h.deps.sendText(ctx, b, chatID, h.deps.Config.Messages.Welcome, mainMenuKeyboard())
	case cbMenuQuiz:
		h.quiz.enter(ctx, b, chatID, userID)
	case cbMenuTalk:
		h.persona.enter(ctx, b, chatID, userID)
	case cbMenuTranslate:
		h.translate.enter(ctx, b, chatID, userID)
	case cbMenuRecommend:
		h.recommend.enter(ctx, b, chatID, userID)
	case cbMenuAssistant:
		h.assistant.enter(ctx, b, chatID, userID)
	case cbMenuFact:
		h.fact.sendFact(ctx, b, chatID)
	default:
		h.deps.Logger.WarnContext(ctx, "Unknown menu callback", "data", update.CallbackQuery.Data)
	}
}
