package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avdeyev/umnikbot/internal/registry"
	"github.com/avdeyev/umnikbot/internal/session"
)

// personaHandler runs the persona-chat flow. Every user message is answered
// with the persona's fixed instruction and only that message as the prompt;
// the model never sees earlier turns, so each reply stands alone.
type personaHandler struct {
	deps HandlerDeps
	log  *slog.Logger
}

func newPersonaHandler(deps HandlerDeps) *personaHandler {
	return &personaHandler{deps: deps, log: deps.Logger.With("handler", "persona")}
}

func personaKeyboard() *models.InlineKeyboardMarkup {
	personas := registry.Personas()
	rows := make([][]models.InlineKeyboardButton, 0, len(personas)+1)
	for _, p := range personas {
		rows = append(rows, buttonRow(button(p.Name, cbPersonaPickPrefix+p.Key)))
	}
	rows = append(rows, buttonRow(button("🏠 В меню", cbMenuMain)))
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func personaChatKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			buttonRow(button("💬 Продолжить диалог", cbPersonaContinue)),
			buttonRow(button("🎭 Сменить личность", cbPersonaChange), button("🏁 Завершить", cbPersonaFinish)),
		},
	}
}

// HandleCommand handles /talk.
func (h *personaHandler) HandleCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, userID, ok := messageOrigin(update)
	if !ok {
		return
	}
	h.enter(ctx, b, chatID, userID)
}

func (h *personaHandler) enter(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	h.deps.Sessions.Enter(userID, session.FlowPersona, session.StateSelectingPersona)

	caption := "🎭 <b>Диалог с известной личностью</b>\n\nВыберите, с кем хотите поговорить:"
	h.deps.sendMenuImage(ctx, b, chatID, "talk.jpg", caption, personaKeyboard())
}

// HandleCallback handles the persona_* buttons.
func (h *personaHandler) HandleCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, userID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	data := update.CallbackQuery.Data
	sess := h.deps.Sessions.Get(userID)

	switch {
	case strings.HasPrefix(data, cbPersonaPickPrefix):
		if sess == nil || sess.Flow != session.FlowPersona || sess.State != session.StateSelectingPersona {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		key := strings.TrimPrefix(data, cbPersonaPickPrefix)
		persona, err := registry.PersonaByKey(key)
		if err != nil {
			h.log.WarnContext(ctx, "Persona lookup failed", "persona", key, "error", err)
			h.deps.Sessions.ClearFlow(userID, session.FlowPersona)
			h.deps.sendText(ctx, b, chatID, h.deps.Config.Messages.NotFound, mainMenuKeyboard())
			return
		}

		ok := h.deps.Sessions.UpdateFlow(userID, session.FlowPersona, func(s *session.Session) {
			s.State = session.StateChatting
			s.Persona.Persona = key
		})
		if !ok {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		text := fmt.Sprintf("%s Вы говорите с <b>%s</b>.\n\nНапишите сообщение, и я отвечу от его имени.", persona.Emoji, persona.Name)
		h.deps.sendText(ctx, b, chatID, text, nil)

	case data == cbPersonaContinue:
		if sess == nil || sess.Flow != session.FlowPersona || sess.State != session.StateChatting {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.deps.sendText(ctx, b, chatID, "💬 Напишите следующее сообщение:", nil)

	case data == cbPersonaChange:
		if sess == nil || sess.Flow != session.FlowPersona {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		ok := h.deps.Sessions.UpdateFlow(userID, session.FlowPersona, func(s *session.Session) {
			s.State = session.StateSelectingPersona
			s.Persona.Persona = ""
		})
		if !ok {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.deps.editText(ctx, b, chatID, messageID, "🎭 Выберите новую личность:", personaKeyboard())

	case data == cbPersonaFinish:
		h.deps.Sessions.ClearFlow(userID, session.FlowPersona)
		h.deps.sendText(ctx, b, chatID, "🎭 Диалог завершён. Было приятно поговорить!", mainMenuKeyboard())

	default:
		h.log.WarnContext(ctx, "Unknown persona callback", "data", data)
	}
}

// HandleMessage replies to the user's message in the selected persona's
// voice. Called by the router in the chatting state.
func (h *personaHandler) HandleMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, userID, ok := messageOrigin(update)
	if !ok {
		return
	}

	var personaKey string
	ok = h.deps.Sessions.UpdateFlow(userID, session.FlowPersona, func(s *session.Session) {
		personaKey = s.Persona.Persona
	})
	if !ok {
		h.deps.sendStaleHint(ctx, b, chatID)
		return
	}
	if personaKey == "" {
		h.deps.sendText(ctx, b, chatID, "🎭 Сначала выберите личность кнопкой 👆", nil)
		return
	}

	persona, err := registry.PersonaByKey(personaKey)
	if err != nil {
		h.log.WarnContext(ctx, "Persona lookup failed", "persona", personaKey, "error", err)
		h.deps.Sessions.ClearFlow(userID, session.FlowPersona)
		h.deps.sendText(ctx, b, chatID, h.deps.Config.Messages.NotFound, mainMenuKeyboard())
		return
	}

	h.deps.sendTyping(ctx, b, chatID)
	reply, err := h.deps.Gemini.CompleteAs(ctx, persona.Prompt, update.Message.Text)
	if err != nil {
		// The dialogue survives a failed turn; the user just retries.
		h.log.WarnContext(ctx, "Persona reply generation failed", "persona", persona.Key, "error", err)
		reply = h.deps.Config.Messages.GenerationFailed
	}

	text := fmt.Sprintf("%s <b>%s отвечает:</b>\n\n%s", persona.Emoji, persona.Name, reply)
	h.deps.sendText(ctx, b, chatID, text, personaChatKeyboard())
}
