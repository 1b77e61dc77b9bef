package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avdeyev/umnikbot/internal/gemini"
	"github.com/avdeyev/umnikbot/internal/registry"
	"github.com/avdeyev/umnikbot/internal/session"
)

// translateHandler runs the translation flow. A translation is the whole
// point of the exchange, so a failed model call produces an explicit error
// with a retry button instead of a placeholder.
type translateHandler struct {
	deps HandlerDeps
	log  *slog.Logger
}

func newTranslateHandler(deps HandlerDeps) *translateHandler {
	return &translateHandler{deps: deps, log: deps.Logger.With("handler", "translate")}
}

func languageKeyboard() *models.InlineKeyboardMarkup {
	languages := registry.Languages()
	rows := make([][]models.InlineKeyboardButton, 0, len(languages)/2+2)
	for i := 0; i < len(languages); i += 2 {
		row := buttonRow(button(languages[i].Name, cbLangPrefix+languages[i].Code))
		if i+1 < len(languages) {
			row = append(row, button(languages[i+1].Name, cbLangPrefix+languages[i+1].Code))
		}
		rows = append(rows, row)
	}
	rows = append(rows, buttonRow(button("🏠 В меню", cbMenuMain)))
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func translateResultKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			buttonRow(button("📝 Новый текст", cbTrNewText)),
			buttonRow(button("🌍 Сменить язык", cbTrChangeLang), button("🏁 Завершить", cbTrCancel)),
		},
	}
}

// HandleCommand handles /translate.
func (h *translateHandler) HandleCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, userID, ok := messageOrigin(update)
	if !ok {
		return
	}
	h.enter(ctx, b, chatID, userID)
}

func (h *translateHandler) enter(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	h.deps.Sessions.Enter(userID, session.FlowTranslate, session.StateSelectingLanguage)

	caption := "🌍 <b>Переводчик</b>\n\nВыберите язык, на который перевести:"
	h.deps.sendMenuImage(ctx, b, chatID, "translate.jpg", caption, languageKeyboard())
}

// HandleCallback handles the lang_* and tr_* buttons.
func (h *translateHandler) HandleCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, userID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	data := update.CallbackQuery.Data
	sess := h.deps.Sessions.Get(userID)

	switch {
	case strings.HasPrefix(data, cbLangPrefix):
		if sess == nil || sess.Flow != session.FlowTranslate || sess.State != session.StateSelectingLanguage {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		code := strings.TrimPrefix(data, cbLangPrefix)
		lang, err := registry.LanguageByCode(code)
		if err != nil {
			h.log.WarnContext(ctx, "Language lookup failed", "code", code, "error", err)
			h.deps.Sessions.ClearFlow(userID, session.FlowTranslate)
			h.deps.sendText(ctx, b, chatID, h.deps.Config.Messages.NotFound, mainMenuKeyboard())
			return
		}

		ok := h.deps.Sessions.UpdateFlow(userID, session.FlowTranslate, func(s *session.Session) {
			s.State = session.StateAwaitingText
			s.Translate.TargetLang = code
		})
		if !ok {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.deps.sendText(ctx, b, chatID, fmt.Sprintf("Перевожу на <b>%s</b>.\n\n📝 Отправьте текст для перевода:", lang.Name), nil)

	case data == cbTrNewText:
		if sess == nil || sess.Flow != session.FlowTranslate || sess.State != session.StateAwaitingText {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.deps.sendText(ctx, b, chatID, "📝 Отправьте текст для перевода:", nil)

	case data == cbTrChangeLang:
		if sess == nil || sess.Flow != session.FlowTranslate {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		ok := h.deps.Sessions.UpdateFlow(userID, session.FlowTranslate, func(s *session.Session) {
			s.State = session.StateSelectingLanguage
			s.Translate.TargetLang = ""
		})
		if !ok {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.deps.editText(ctx, b, chatID, messageID, "🌍 Выберите язык, на который перевести:", languageKeyboard())

	case data == cbTrCancel:
		h.deps.Sessions.ClearFlow(userID, session.FlowTranslate)
		h.deps.sendText(ctx, b, chatID, "🌍 Перевод завершён.", mainMenuKeyboard())

	default:
		h.log.WarnContext(ctx, "Unknown translate callback", "data", data)
	}
}

// HandleText translates the user's message into the selected language.
// Called by the router in the awaiting-text state.
func (h *translateHandler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, userID, ok := messageOrigin(update)
	if !ok {
		return
	}

	var code string
	ok = h.deps.Sessions.UpdateFlow(userID, session.FlowTranslate, func(s *session.Session) {
		code = s.Translate.TargetLang
	})
	if !ok {
		h.deps.sendStaleHint(ctx, b, chatID)
		return
	}
	if code == "" {
		h.deps.sendText(ctx, b, chatID, "🌍 Сначала выберите язык кнопкой 👆", nil)
		return
	}

	lang, err := registry.LanguageByCode(code)
	if err != nil {
		h.log.WarnContext(ctx, "Language lookup failed", "code", code, "error", err)
		h.deps.Sessions.ClearFlow(userID, session.FlowTranslate)
		h.deps.sendText(ctx, b, chatID, h.deps.Config.Messages.NotFound, mainMenuKeyboard())
		return
	}

	h.deps.sendTyping(ctx, b, chatID)
	prompt := fmt.Sprintf("Переведи следующий текст на %s. В ответе укажи только перевод, без пояснений.\n\n%s",
		lang.Name, update.Message.Text)
	translation, err := h.deps.Gemini.Complete(ctx, gemini.ModeTranslate, prompt)
	if err != nil {
		h.log.ErrorContext(ctx, "Translation failed", "lang", lang.Code, "error", err)
		h.deps.sendText(ctx, b, chatID, h.deps.Config.Messages.GenerationFailed, translateResultKeyboard())
		return
	}

	text := fmt.Sprintf("<b>Перевод (%s):</b>\n\n%s", lang.Name, translation)
	h.deps.sendText(ctx, b, chatID, text, translateResultKeyboard())
}
