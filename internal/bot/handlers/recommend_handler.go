package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avdeyev/umnikbot/internal/gemini"
	"github.com/avdeyev/umnikbot/internal/registry"
	"github.com/avdeyev/umnikbot/internal/session"
)

// recommendHandler runs the recommendation flow: category, then genre, then
// a generated list. Genres travel in callbacks as indexes into the category's
// genre list, which keeps payloads short and ASCII-safe.
type recommendHandler struct {
	deps HandlerDeps
	log  *slog.Logger
}

func newRecommendHandler(deps HandlerDeps) *recommendHandler {
	return &recommendHandler{deps: deps, log: deps.Logger.With("handler", "recommend")}
}

func categoryKeyboard() *models.InlineKeyboardMarkup {
	categories := registry.Categories()
	rows := make([][]models.InlineKeyboardButton, 0, len(categories)/2+2)
	for i := 0; i < len(categories); i += 2 {
		row := buttonRow(button(categories[i].Name, cbRecCatPrefix+categories[i].Key))
		if i+1 < len(categories) {
			row = append(row, button(categories[i+1].Name, cbRecCatPrefix+categories[i+1].Key))
		}
		rows = append(rows, row)
	}
	rows = append(rows, buttonRow(button("🏠 В меню", cbMenuMain)))
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func genreKeyboard(c registry.Category) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(c.Genres)/2+2)
	for i := 0; i < len(c.Genres); i += 2 {
		row := buttonRow(button(c.Genres[i], cbRecGenrePrefix+strconv.Itoa(i)))
		if i+1 < len(c.Genres) {
			row = append(row, button(c.Genres[i+1], cbRecGenrePrefix+strconv.Itoa(i+1)))
		}
		rows = append(rows, row)
	}
	rows = append(rows, buttonRow(button("🔙 Другие категории", cbRecBack)))
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func recommendResultKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			buttonRow(button("🔄 Ещё варианты", cbRecAgain)),
			buttonRow(button("🎨 Другой жанр", cbRecGenres), button("🔙 Другие категории", cbRecBack)),
			buttonRow(button("🏁 Завершить", cbRecCancel)),
		},
	}
}

// HandleCommand handles /recommend.
func (h *recommendHandler) HandleCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, userID, ok := messageOrigin(update)
	if !ok {
		return
	}
	h.enter(ctx, b, chatID, userID)
}

func (h *recommendHandler) enter(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	h.deps.Sessions.Enter(userID, session.FlowRecommend, session.StateSelectingCategory)

	caption := "💡 <b>Рекомендации</b>\n\nЧто будем искать?"
	h.deps.sendMenuImage(ctx, b, chatID, "recommend.jpg", caption, categoryKeyboard())
}

// HandleCallback handles the rec_* buttons. The flow lives entirely in
// buttons, so transitions edit the menu message in place.
func (h *recommendHandler) HandleCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, userID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	data := update.CallbackQuery.Data
	sess := h.deps.Sessions.Get(userID)

	if sess == nil || sess.Flow != session.FlowRecommend || sess.Recommend == nil {
		h.deps.sendStaleHint(ctx, b, chatID)
		return
	}

	switch {
	case strings.HasPrefix(data, cbRecCatPrefix):
		if sess.State != session.StateSelectingCategory {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		key := strings.TrimPrefix(data, cbRecCatPrefix)
		category, err := registry.CategoryByKey(key)
		if err != nil {
			h.log.WarnContext(ctx, "Category lookup failed", "category", key, "error", err)
			h.deps.Sessions.ClearFlow(userID, session.FlowRecommend)
			h.deps.sendText(ctx, b, chatID, h.deps.Config.Messages.NotFound, mainMenuKeyboard())
			return
		}
		ok := h.deps.Sessions.UpdateFlow(userID, session.FlowRecommend, func(s *session.Session) {
			s.State = session.StateSelectingGenre
			s.Recommend.Category = key
			s.Recommend.Genre = ""
		})
		if !ok {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.deps.editText(ctx, b, chatID, messageID, fmt.Sprintf("%s\n\nВыберите жанр:", category.Name), genreKeyboard(category))

	case strings.HasPrefix(data, cbRecGenrePrefix):
		if sess.State != session.StateSelectingGenre || sess.Recommend.Category == "" {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		index, err := strconv.Atoi(strings.TrimPrefix(data, cbRecGenrePrefix))
		if err != nil {
			h.log.WarnContext(ctx, "Bad genre index", "data", data, "error", err)
			return
		}
		genre, err := registry.GenreByIndex(sess.Recommend.Category, index)
		if err != nil {
			h.log.WarnContext(ctx, "Genre lookup failed", "category", sess.Recommend.Category, "index", index, "error", err)
			h.deps.sendText(ctx, b, chatID, h.deps.Config.Messages.NotFound, categoryKeyboard())
			return
		}
		ok := h.deps.Sessions.UpdateFlow(userID, session.FlowRecommend, func(s *session.Session) {
			s.Recommend.Genre = genre
			s.Recommend.GenreIndex = index
		})
		if !ok {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.recommend(ctx, b, chatID, messageID, sess.Recommend.Category, genre)

	case data == cbRecAgain:
		if sess.State != session.StateSelectingGenre || sess.Recommend.Genre == "" {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.recommend(ctx, b, chatID, messageID, sess.Recommend.Category, sess.Recommend.Genre)

	case data == cbRecGenres:
		if sess.State != session.StateSelectingGenre || sess.Recommend.Category == "" {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		category, err := registry.CategoryByKey(sess.Recommend.Category)
		if err != nil {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.deps.editText(ctx, b, chatID, messageID, fmt.Sprintf("%s\n\nВыберите жанр:", category.Name), genreKeyboard(category))

	case data == cbRecBack:
		ok := h.deps.Sessions.UpdateFlow(userID, session.FlowRecommend, func(s *session.Session) {
			s.State = session.StateSelectingCategory
			s.Recommend.Category = ""
			s.Recommend.Genre = ""
		})
		if !ok {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.deps.editText(ctx, b, chatID, messageID, "💡 Что будем искать?", categoryKeyboard())

	case data == cbRecCancel:
		h.deps.Sessions.ClearFlow(userID, session.FlowRecommend)
		h.deps.sendText(ctx, b, chatID, "💡 Надеюсь, что-то приглянулось!", mainMenuKeyboard())

	default:
		h.log.WarnContext(ctx, "Unknown recommend callback", "data", data)
	}
}

// recommend generates a recommendation list for the genre and edits it into
// the menu message. The list is the whole point of the flow, so a failure
// shows an error with a retry button.
func (h *recommendHandler) recommend(ctx context.Context, b *bot.Bot, chatID int64, messageID int, categoryKey, genre string) {
	prompt, err := registry.RecommendationPrompt(categoryKey, genre)
	if err != nil {
		h.log.WarnContext(ctx, "Recommendation prompt build failed", "category", categoryKey, "error", err)
		h.deps.sendText(ctx, b, chatID, h.deps.Config.Messages.NotFound, categoryKeyboard())
		return
	}

	h.deps.sendTyping(ctx, b, chatID)
	recommendation, err := h.deps.Gemini.Complete(ctx, gemini.ModeDefault, prompt)
	if err != nil {
		h.log.ErrorContext(ctx, "Recommendation generation failed", "category", categoryKey, "genre", genre, "error", err)
		kb := &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				buttonRow(button("🔁 Попробовать ещё раз", cbRecAgain)),
				buttonRow(button("🔙 Другие категории", cbRecBack)),
			},
		}
		h.deps.editText(ctx, b, chatID, messageID, h.deps.Config.Messages.GenerationFailed, kb)
		return
	}

	text := fmt.Sprintf("<b>%s</b>\n\n%s", genre, recommendation)
	h.deps.editText(ctx, b, chatID, messageID, text, recommendResultKeyboard())
}
