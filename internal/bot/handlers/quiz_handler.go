package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avdeyev/umnikbot/internal/database"
	"github.com/avdeyev/umnikbot/internal/gemini"
	"github.com/avdeyev/umnikbot/internal/quiz"
	"github.com/avdeyev/umnikbot/internal/registry"
	"github.com/avdeyev/umnikbot/internal/session"
)

// quizHandler runs the quiz flow: topic selection, question generation,
// free-text answer grading with an explanation, and a persisted final score.
type quizHandler struct {
	deps HandlerDeps
	log  *slog.Logger
}

func newQuizHandler(deps HandlerDeps) *quizHandler {
	return &quizHandler{deps: deps, log: deps.Logger.With("handler", "quiz")}
}

func topicKeyboard() *models.InlineKeyboardMarkup {
	topics := registry.Topics()
	rows := make([][]models.InlineKeyboardButton, 0, len(topics)/2+2)
	for i := 0; i < len(topics); i += 2 {
		row := buttonRow(button(topics[i].Name, cbQuizTopicPrefix+topics[i].Key))
		if i+1 < len(topics) {
			row = append(row, button(topics[i+1].Name, cbQuizTopicPrefix+topics[i+1].Key))
		}
		rows = append(rows, row)
	}
	rows = append(rows, buttonRow(button("🏠 В меню", cbMenuMain)))
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func quizContinueKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			buttonRow(button("➡️ Следующий вопрос", cbQuizContinue)),
			buttonRow(button("🔄 Сменить тему", cbQuizChangeTopic), button("🏁 Завершить квиз", cbQuizFinish)),
		},
	}
}

// HandleCommand handles /quiz.
func (h *quizHandler) HandleCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, userID, ok := messageOrigin(update)
	if !ok {
		return
	}
	h.enter(ctx, b, chatID, userID)
}

// enter starts a fresh quiz with zeroed counters and shows the topic menu.
func (h *quizHandler) enter(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	h.deps.Sessions.Enter(userID, session.FlowQuiz, session.StateSelectingTopic)

	caption := "🎯 <b>Квиз!</b>\n\nВыберите тему, и я буду задавать вопросы. Отвечайте буквой: A, B, C или D."
	h.deps.sendMenuImage(ctx, b, chatID, "quiz.jpg", caption, topicKeyboard())
}

// HandleCallback handles the quiz_* buttons.
func (h *quizHandler) HandleCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, userID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	data := update.CallbackQuery.Data
	sess := h.deps.Sessions.Get(userID)

	switch {
	case strings.HasPrefix(data, cbQuizTopicPrefix):
		if sess == nil || sess.Flow != session.FlowQuiz || sess.State != session.StateSelectingTopic {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.askQuestion(ctx, b, chatID, userID, strings.TrimPrefix(data, cbQuizTopicPrefix))

	case data == cbQuizContinue:
		if sess == nil || sess.Flow != session.FlowQuiz || sess.Quiz == nil || sess.Quiz.Topic == "" {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.askQuestion(ctx, b, chatID, userID, sess.Quiz.Topic)

	case data == cbQuizChangeTopic:
		if sess == nil || sess.Flow != session.FlowQuiz || sess.Quiz == nil {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		// Counters survive a topic change within one quiz run.
		ok := h.deps.Sessions.UpdateFlow(userID, session.FlowQuiz, func(s *session.Session) {
			s.State = session.StateSelectingTopic
			s.Quiz.Question = ""
			s.Quiz.CorrectAnswer = ""
		})
		if !ok {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.deps.editText(ctx, b, chatID, messageID, "🔄 Выберите новую тему:", topicKeyboard())

	case data == cbQuizFinish:
		if sess == nil || sess.Flow != session.FlowQuiz {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		h.finish(ctx, b, chatID, userID)

	default:
		h.log.WarnContext(ctx, "Unknown quiz callback", "data", data)
	}
}

// askQuestion generates one question for the topic and moves the session to
// the answering state. A generation failure keeps the user in topic selection
// with a retry button: without a question there is nothing to answer.
func (h *quizHandler) askQuestion(ctx context.Context, b *bot.Bot, chatID, userID int64, topicKey string) {
	topic, err := registry.TopicByKey(topicKey)
	if err != nil {
		h.log.WarnContext(ctx, "Quiz topic lookup failed", "topic", topicKey, "error", err)
		h.deps.Sessions.ClearFlow(userID, session.FlowQuiz)
		h.deps.sendText(ctx, b, chatID, h.deps.Config.Messages.NotFound, mainMenuKeyboard())
		return
	}

	h.deps.sendTyping(ctx, b, chatID)
	question, err := h.deps.Gemini.CompleteAs(ctx, topic.Prompt, gemini.QuestionPrompt)
	if err != nil {
		h.log.ErrorContext(ctx, "Question generation failed", "topic", topicKey, "error", err)
		ok := h.deps.Sessions.UpdateFlow(userID, session.FlowQuiz, func(s *session.Session) {
			s.State = session.StateSelectingTopic
		})
		if !ok {
			h.deps.sendStaleHint(ctx, b, chatID)
			return
		}
		kb := &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				buttonRow(button("🔁 Попробовать ещё раз", cbQuizTopicPrefix+topicKey)),
				buttonRow(button("🏠 В меню", cbMenuMain)),
			},
		}
		h.deps.sendText(ctx, b, chatID, h.deps.Config.Messages.GenerationFailed, kb)
		return
	}

	correct := quiz.ExtractCorrectLetter(question)

	var score, total int
	ok := h.deps.Sessions.UpdateFlow(userID, session.FlowQuiz, func(s *session.Session) {
		s.State = session.StateAnsweringQuestion
		s.Quiz.Topic = topicKey
		s.Quiz.Question = question
		s.Quiz.CorrectAnswer = correct
		score, total = s.Quiz.Score, s.Quiz.Total
	})
	if !ok {
		// The user left the quiz while the question was generating.
		h.deps.sendStaleHint(ctx, b, chatID)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s</b>\n\n%s", topic.Name, question)
	if total > 0 {
		fmt.Fprintf(&sb, "\n\n📊 Счёт: %d/%d", score, total)
	}
	sb.WriteString("\n\n✍️ Напишите букву ответа: A, B, C или D")
	h.deps.sendText(ctx, b, chatID, sb.String(), nil)
}

// HandleAnswer grades the user's free-text answer. Called by the router when
// the quiz flow is in the answering state.
func (h *quizHandler) HandleAnswer(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, userID, ok := messageOrigin(update)
	if !ok {
		return
	}

	var (
		pending       bool
		correct       bool
		correctLetter string
		question      string
		score, total  int
	)
	ok = h.deps.Sessions.UpdateFlow(userID, session.FlowQuiz, func(s *session.Session) {
		if s.Quiz.CorrectAnswer == "" {
			return
		}
		pending = true
		correctLetter = s.Quiz.CorrectAnswer
		question = s.Quiz.Question
		correct = s.Quiz.RecordAnswer(update.Message.Text)
		s.Quiz.Question = ""
		s.Quiz.CorrectAnswer = ""
		score, total = s.Quiz.Score, s.Quiz.Total
	})
	if !ok {
		// The quiz ended or was replaced before this answer arrived.
		h.deps.sendStaleHint(ctx, b, chatID)
		return
	}
	if !pending {
		// The previous question was already graded.
		h.deps.sendText(ctx, b, chatID, "Сначала возьмите следующий вопрос 👇", quizContinueKeyboard())
		return
	}

	explanation := h.explainAnswer(ctx, question, correctLetter)

	var sb strings.Builder
	if correct {
		sb.WriteString("✅ <b>Правильно!</b>")
	} else {
		fmt.Fprintf(&sb, "❌ <b>Неправильно.</b> Правильный ответ: %s", correctLetter)
	}
	if explanation != "" {
		sb.WriteString("\n\n")
		sb.WriteString(explanation)
	}
	fmt.Fprintf(&sb, "\n\n📊 Счёт: %d/%d", score, total)
	h.deps.sendText(ctx, b, chatID, sb.String(), quizContinueKeyboard())
}

// explainAnswer asks the model for a short explanation of the correct answer.
// Explanations are decoration on top of the verdict, so a failure degrades to
// the configured placeholder instead of interrupting the quiz.
func (h *quizHandler) explainAnswer(ctx context.Context, question, correctLetter string) string {
	prompt := fmt.Sprintf(
		"Вопрос квиза:\n%s\n\nПравильный ответ: %s\nОбъясни кратко (2-3 предложения), почему это правильный ответ.",
		question, correctLetter,
	)
	explanation, err := h.deps.Gemini.CompleteAs(ctx, gemini.ExplanationInstruction, prompt)
	if err != nil {
		h.log.WarnContext(ctx, "Explanation generation failed", "error", err)
		return h.deps.Config.Messages.GenerationFailed
	}
	return explanation
}

// finish reports the final score with a verdict, persists the result and
// returns the user to the main menu.
func (h *quizHandler) finish(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	var q session.QuizState
	ok := h.deps.Sessions.UpdateFlow(userID, session.FlowQuiz, func(s *session.Session) {
		q = *s.Quiz
	})
	if !ok {
		h.deps.sendStaleHint(ctx, b, chatID)
		return
	}

	percent, verdict := quiz.Grade(q.Score, q.Total)

	if q.Total > 0 {
		topic := q.Topic
		if topic == "" {
			topic = "mixed"
		}
		result := &database.QuizResult{
			UserID:  userID,
			Topic:   topic,
			Score:   q.Score,
			Total:   q.Total,
			Percent: percent,
		}
		if err := h.deps.Store.SaveQuizResult(ctx, result); err != nil {
			h.log.ErrorContext(ctx, "Failed to save quiz result", "user_id", userID, "error", err)
		}
	}

	h.deps.Sessions.ClearFlow(userID, session.FlowQuiz)

	text := fmt.Sprintf("🏁 <b>Квиз завершён!</b>\n\n📊 Ваш результат: %d из %d (%d%%)\n\n%s",
		q.Score, q.Total, percent, verdict)
	h.deps.sendText(ctx, b, chatID, text, mainMenuKeyboard())
}
