package quiz_test

import (
	"testing"

	"github.com/avdeyev/umnikbot/internal/quiz"
)

func TestExtractCorrectLetter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "Marker line with letter",
			input: "Вопрос: Что такое горутина?\n" +
				"A) Поток ОС\nB) Легковесный поток\nC) Процесс\nD) Канал\n" +
				"Правильный ответ: B",
			expected: "B",
		},
		{
			name:     "Marker line lowercase",
			input:    "правильный ответ: c",
			expected: "C",
		},
		{
			name:     "Marker line with parenthesis",
			input:    "Вопрос\nПравильный ответ: D) Канал",
			expected: "D",
		},
		{
			name:     "Marker line with bold markup",
			input:    "Вопрос\n**Правильный ответ:** A",
			expected: "A",
		},
		{
			name:     "Marker in middle of text block",
			input:    "Вопрос: ...\nA) один\nB) два\nПравильный ответ: C\nПояснение: потому что.",
			expected: "C",
		},
		{
			name:     "No marker, answer prefix fallback",
			input:    "Вопрос: ...\nОтвет: D",
			expected: "D",
		},
		{
			name:     "Answer prefix without space",
			input:    "ответ:B",
			expected: "B",
		},
		{
			name:     "No marker at all falls back to A",
			input:    "Вопрос без указания ответа.",
			expected: "A",
		},
		{
			name:     "Marker line without any letter falls back",
			input:    "Правильный ответ: смотри ниже\nОтвет: C",
			expected: "C",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "A",
		},
		{
			name: "First marker line wins",
			input: "Правильный ответ: B\n" +
				"Правильный ответ: D",
			expected: "B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := quiz.ExtractCorrectLetter(tt.input)
			if got != tt.expected {
				t.Errorf("ExtractCorrectLetter() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		answer   string
		correct  string
		expected bool
	}{
		{name: "Exact match", answer: "B", correct: "B", expected: true},
		{name: "Lowercase answer", answer: "b", correct: "B", expected: true},
		{name: "Surrounding whitespace", answer: "  c\n", correct: "C", expected: true},
		{name: "Wrong letter", answer: "A", correct: "D", expected: false},
		{name: "Letter inside a word", answer: "Вариант B", correct: "B", expected: false},
		{name: "Empty answer", answer: "", correct: "A", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := quiz.Evaluate(tt.answer, tt.correct); got != tt.expected {
				t.Errorf("Evaluate(%q, %q) = %v, want %v", tt.answer, tt.correct, got, tt.expected)
			}
		})
	}
}

func TestGrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		score       int
		total       int
		wantPercent int
		wantVerdict string
	}{
		{name: "Perfect score", score: 5, total: 5, wantPercent: 100, wantVerdict: "🏆 Отлично!"},
		{name: "Exactly 80 percent", score: 4, total: 5, wantPercent: 80, wantVerdict: "🏆 Отлично!"},
		{name: "Good band", score: 3, total: 5, wantPercent: 60, wantVerdict: "🥈 Хорошо!"},
		{name: "Fair band", score: 2, total: 5, wantPercent: 40, wantVerdict: "🥉 Неплохо!"},
		{name: "Half rounds into fair band", score: 1, total: 2, wantPercent: 50, wantVerdict: "🥉 Неплохо!"},
		{name: "Low band", score: 1, total: 5, wantPercent: 20, wantVerdict: "📚 Есть куда расти!"},
		{name: "Zero score", score: 0, total: 3, wantPercent: 0, wantVerdict: "📚 Есть куда расти!"},
		{name: "Rounding up", score: 2, total: 3, wantPercent: 67, wantVerdict: "🥈 Хорошо!"},
		{name: "No questions answered", score: 0, total: 0, wantPercent: 0, wantVerdict: "🤔 Попробуйте еще раз!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			percent, verdict := quiz.Grade(tt.score, tt.total)
			if percent != tt.wantPercent {
				t.Errorf("Grade() percent = %d, want %d", percent, tt.wantPercent)
			}
			if verdict != tt.wantVerdict {
				t.Errorf("Grade() verdict = %q, want %q", verdict, tt.wantVerdict)
			}
		})
	}
}
