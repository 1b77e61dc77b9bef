// Package handlers implements the bot's dialogue flows: quiz, persona chat,
// translation, recommendations, free-form questions and random facts. Button
// presses are dispatched by callback prefix; plain text is dispatched by the
// router according to the user's current flow and state.
package handlers

import (
	"github.com/go-telegram/bot"
)

// RegisteredHandler bundles a handler function with its registration
// parameters and per-handler middleware chain.
type RegisteredHandler struct {
	HandlerType bot.HandlerType
	Pattern     string
	Handler     bot.HandlerFunc
	Middleware  []bot.Middleware
	MatchType   bot.MatchType
}

// RegisterAll returns the map of all command and callback handlers keyed by a
// descriptive name. Plain text messages are handled separately by the router
// installed as the bot's default handler.
func RegisterAll(deps HandlerDeps) map[string]RegisteredHandler {
	menu := newMenuHandler(deps)
	quiz := newQuizHandler(deps)
	persona := newPersonaHandler(deps)
	translate := newTranslateHandler(deps)
	recommend := newRecommendHandler(deps)
	assistant := newAssistantHandler(deps)
	fact := newFactHandler(deps)
	stats := newStatsHandler(deps)

	commands := map[string]RegisteredHandler{
		"cmd_start":     command("start", menu.HandleStart),
		"cmd_quiz":      command("quiz", quiz.HandleCommand),
		"cmd_talk":      command("talk", persona.HandleCommand),
		"cmd_translate": command("translate", translate.HandleCommand),
		"cmd_recommend": command("recommend", recommend.HandleCommand),
		"cmd_gpt":       command("gpt", assistant.HandleCommand),
		"cmd_random":    command("random", fact.HandleCommand),
		"cmd_stats":     command("stats", stats.HandleCommand),

		"cb_menu":      callbackPrefix("menu_", menu.HandleCallback),
		"cb_quiz":      callbackPrefix("quiz_", quiz.HandleCallback),
		"cb_persona":   callbackPrefix("persona_", persona.HandleCallback),
		"cb_lang":      callbackPrefix("lang_", translate.HandleCallback),
		"cb_translate": callbackPrefix("tr_", translate.HandleCallback),
		"cb_recommend": callbackPrefix("rec_", recommend.HandleCallback),
		"cb_fact":      callbackPrefix("fact_", fact.HandleCallback),
		"cb_assistant": callbackPrefix("gpt_", assistant.HandleCallback),
	}

	deps.Logger.Info("Initialized dialogue handlers", "count", len(commands))
	return commands
}

func command(name string, h bot.HandlerFunc) RegisteredHandler {
	return RegisteredHandler{
		HandlerType: bot.HandlerTypeMessageText,
		Pattern:     "/" + name,
		Handler:     h,
		MatchType:   bot.MatchTypeCommandStartOnly,
	}
}

func callbackPrefix(prefix string, h bot.HandlerFunc) RegisteredHandler {
	return RegisteredHandler{
		HandlerType: bot.HandlerTypeCallbackQueryData,
		Pattern:     prefix,
		Handler:     h,
		MatchType:   bot.MatchTypePrefix,
	}
}
