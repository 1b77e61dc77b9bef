package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/avdeyev/umnikbot/internal/gemini"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Complete(_ context.Context, _ gemini.Mode, _ string) (string, error) {
	return s.reply, s.err
}

func (s stubCompleter) CompleteAs(_ context.Context, _, _ string) (string, error) {
	return s.reply, s.err
}

func TestExplainAnswerDegradesToPlaceholder(t *testing.T) {
	t.Parallel()

	const placeholder = "⚠️ Не удалось получить ответ."

	tests := []struct {
		name     string
		client   stubCompleter
		expected string
	}{
		{
			name:     "Generation succeeds",
			client:   stubCompleter{reply: "Потому что B."},
			expected: "Потому что B.",
		},
		{
			name:     "Generation fails",
			client:   stubCompleter{err: errors.New("quota exceeded")},
			expected: placeholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deps := testDeps()
			deps.Gemini = tt.client
			deps.Config.Messages.GenerationFailed = placeholder

			h := newQuizHandler(deps)
			got := h.explainAnswer(context.Background(), "Вопрос?", "B")
			if got != tt.expected {
				t.Errorf("explainAnswer() = %q, want %q", got, tt.expected)
			}
		})
	}
}
