package registry

// topicOrder fixes the menu ordering; map iteration order would shuffle
// the keyboard between renders.
var topicOrder = []string{"programming", "history", "science", "geography", "movies"}

var topics = map[string]Topic{
	"programming": {
		Key:   "programming",
		Name:  "💻 Программирование",
		Emoji: "💻",
		Prompt: `Ты создаешь вопросы для квиза по программированию.
Создай один интересный вопрос средней сложности с 4 вариантами ответа (A, B, C, D).
Укажи правильный ответ в конце.
Формат:
Вопрос: [твой вопрос]
A) [вариант 1]
B) [вариант 2]
C) [вариант 3]
D) [вариант 4]
Правильный ответ: [буква]`,
	},
	"history": {
		Key:   "history",
		Name:  "🏛️ История",
		Emoji: "🏛️",
		Prompt: `Ты создаешь вопросы для квиза по истории.
Создай один интересный вопрос средней сложности с 4 вариантами ответа (A, B, C, D).
Укажи правильный ответ в конце.
Формат:
Вопрос: [твой вопрос]
A) [вариант 1]
B) [вариант 2]
C) [вариант 3]
D) [вариант 4]
Правильный ответ: [буква]`,
	},
	"science": {
		Key:   "science",
		Name:  "🔬 Наука",
		Emoji: "🔬",
		Prompt: `Ты создаешь вопросы для квиза по науке: физика, химия, биология.
Создай один интересный вопрос средней сложности с 4 вариантами ответа (A, B, C, D).
Укажи правильный ответ в конце.
Формат:
Вопрос: [твой вопрос]
A) [вариант 1]
B) [вариант 2]
C) [вариант 3]
D) [вариант 4]
Правильный ответ: [буква]`,
	},
	"geography": {
		Key:   "geography",
		Name:  "🌍 География",
		Emoji: "🌍",
		Prompt: `Ты создаешь вопросы для квиза по географии: страны, столицы, природа.
Создай один интересный вопрос средней сложности с 4 вариантами ответа (A, B, C, D).
Укажи правильный ответ в конце.
Формат:
Вопрос: [твой вопрос]
A) [вариант 1]
B) [вариант 2]
C) [вариант 3]
D) [вариант 4]
Правильный ответ: [буква]`,
	},
	"movies": {
		Key:   "movies",
		Name:  "🎬 Кино",
		Emoji: "🎬",
		Prompt: `Ты создаешь вопросы для квиза о кино: фильмы, актеры, режиссеры.
Создай один интересный вопрос средней сложности с 4 вариантами ответа (A, B, C, D).
Укажи правильный ответ в конце.
Формат:
Вопрос: [твой вопрос]
A) [вариант 1]
B) [вариант 2]
C) [вариант 3]
D) [вариант 4]
Правильный ответ: [буква]`,
	},
}

// Topics returns the quiz topics in menu order.
func Topics() []Topic {
	out := make([]Topic, 0, len(topicOrder))
	for _, key := range topicOrder {
		out = append(out, topics[key])
	}
	return out
}
