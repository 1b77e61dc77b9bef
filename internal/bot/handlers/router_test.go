// In-package tests: the dispatch table, keyboard builders, and handler
// constructors are unexported.
package handlers

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avdeyev/umnikbot/internal/config"
	"github.com/avdeyev/umnikbot/internal/registry"
	"github.com/avdeyev/umnikbot/internal/session"
)

func testDeps() HandlerDeps {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return HandlerDeps{
		Logger:   log,
		Config:   &config.Config{},
		Sessions: session.NewManager(log),
	}
}

func TestRouterDispatchTable(t *testing.T) {
	t.Parallel()

	r := newRouter(testDeps())

	textStates := []struct {
		flow  session.Flow
		state session.State
	}{
		{session.FlowQuiz, session.StateAnsweringQuestion},
		{session.FlowPersona, session.StateChatting},
		{session.FlowTranslate, session.StateAwaitingText},
		{session.FlowAssistant, session.StateAwaitingQuestion},
	}
	for _, rt := range textStates {
		if _, ok := r.routeFor(rt.flow, rt.state); !ok {
			t.Errorf("no text route for flow %q state %q", rt.flow, rt.state)
		}
	}

	buttonOnlyStates := []struct {
		flow  session.Flow
		state session.State
	}{
		{session.FlowQuiz, session.StateSelectingTopic},
		{session.FlowPersona, session.StateSelectingPersona},
		{session.FlowTranslate, session.StateSelectingLanguage},
		{session.FlowRecommend, session.StateSelectingCategory},
		{session.FlowRecommend, session.StateSelectingGenre},
		{session.FlowNone, session.StateNone},
	}
	for _, rt := range buttonOnlyStates {
		if _, ok := r.routeFor(rt.flow, rt.state); ok {
			t.Errorf("unexpected text route for flow %q state %q", rt.flow, rt.state)
		}
	}
}

// collectButtons flattens a keyboard into its callback payloads.
func collectButtons(kb *models.InlineKeyboardMarkup) []string {
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			out = append(out, btn.CallbackData)
		}
	}
	return out
}

func TestEveryButtonHasARegisteredHandler(t *testing.T) {
	t.Parallel()

	registered := RegisterAll(testDeps())

	var prefixes []string
	for _, reg := range registered {
		if reg.HandlerType == bot.HandlerTypeCallbackQueryData {
			prefixes = append(prefixes, reg.Pattern)
		}
	}
	if len(prefixes) == 0 {
		t.Fatal("no callback handlers registered")
	}

	keyboards := map[string]*models.InlineKeyboardMarkup{
		"main menu":        mainMenuKeyboard(),
		"quiz topics":      topicKeyboard(),
		"quiz continue":    quizContinueKeyboard(),
		"personas":         personaKeyboard(),
		"persona chat":     personaChatKeyboard(),
		"languages":        languageKeyboard(),
		"translate result": translateResultKeyboard(),
		"categories":       categoryKeyboard(),
		"recommend result": recommendResultKeyboard(),
		"assistant":        assistantKeyboard(),
		"fact":             factKeyboard(),
	}
	for _, c := range registry.Categories() {
		keyboards["genres "+c.Key] = genreKeyboard(c)
	}

	for name, kb := range keyboards {
		for _, data := range collectButtons(kb) {
			if data == "" {
				t.Errorf("%s keyboard has a button with empty callback data", name)
				continue
			}
			matched := false
			for _, prefix := range prefixes {
				if strings.HasPrefix(data, prefix) {
					matched = true
					break
				}
			}
			if !matched {
				t.Errorf("%s keyboard button %q matches no registered callback prefix", name, data)
			}
		}
	}
}
