package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avdeyev/umnikbot/internal/session"
)

// routeKey addresses one cell of the text dispatch table.
type routeKey struct {
	flow  session.Flow
	state session.State
}

// router dispatches plain text messages by the sender's current flow and
// state. The table below is the complete list of (flow, state) pairs in
// which free text means anything; everything else gets the start-over hint.
type router struct {
	deps   HandlerDeps
	log    *slog.Logger
	routes map[routeKey]bot.HandlerFunc
}

// NewRouter builds the default handler installed for messages no command or
// callback pattern matched.
func NewRouter(deps HandlerDeps) bot.HandlerFunc {
	return newRouter(deps).Handle
}

func newRouter(deps HandlerDeps) *router {
	quiz := newQuizHandler(deps)
	persona := newPersonaHandler(deps)
	translate := newTranslateHandler(deps)
	assistant := newAssistantHandler(deps)

	return &router{
		deps: deps,
		log:  deps.Logger.With("component", "text_router"),
		routes: map[routeKey]bot.HandlerFunc{
			{session.FlowQuiz, session.StateAnsweringQuestion}:     quiz.HandleAnswer,
			{session.FlowPersona, session.StateChatting}:           persona.HandleMessage,
			{session.FlowTranslate, session.StateAwaitingText}:     translate.HandleText,
			{session.FlowAssistant, session.StateAwaitingQuestion}: assistant.HandleQuestion,
		},
	}
}

// Handle routes one incoming text message.
func (r *router) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, userID, ok := messageOrigin(update)
	if !ok || update.Message.Text == "" {
		return
	}
	// Unknown commands fall through to the default handler; they are not
	// flow input.
	if strings.HasPrefix(update.Message.Text, "/") {
		r.deps.sendText(ctx, b, chatID, r.deps.Config.Messages.StartOver, mainMenuKeyboard())
		return
	}

	sess := r.deps.Sessions.Get(userID)
	if sess == nil {
		r.deps.sendText(ctx, b, chatID, r.deps.Config.Messages.StartOver, mainMenuKeyboard())
		return
	}

	handler, ok := r.routes[routeKey{sess.Flow, sess.State}]
	if !ok {
		// Text arrived in a button-only state, e.g. while picking a quiz
		// topic. The session stays as it is; the menus are still on screen.
		r.log.DebugContext(ctx, "Text in button-only state", "flow", sess.Flow, "state", sess.State)
		r.deps.sendText(ctx, b, chatID, "Пожалуйста, выберите вариант кнопкой 👆", nil)
		return
	}

	handler(ctx, b, update)
}

// routeFor reports whether free text is meaningful in the given flow and
// state.
func (r *router) routeFor(flow session.Flow, state session.State) (bot.HandlerFunc, bool) {
	h, ok := r.routes[routeKey{flow, state}]
	return h, ok
}
