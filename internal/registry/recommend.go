package registry

var categoryOrder = []string{"movies", "books", "music", "games"}

var categories = map[string]Category{
	"movies": {
		Key:      "movies",
		Name:     "🎬 Фильмы",
		Genres:   []string{"🔫 Боевик", "😂 Комедия", "🎭 Драма", "🚀 Фантастика", "💘 Мелодрама"},
		Template: "Дай 3 рекомендации фильмов в жанре %s. Укажи год выпуска и краткое описание.",
	},
	"books": {
		Key:      "books",
		Name:     "📚 Книги",
		Genres:   []string{"🧙 Фэнтези", "🕵️ Детектив", "🚀 Научная фантастика", "💔 Роман", "📖 Классика"},
		Template: "Предложи 3 книги в жанре %s. Укажи автора, год издания и краткое описание.",
	},
	"music": {
		Key:      "music",
		Name:     "🎵 Музыка",
		Genres:   []string{"🎤 Поп", "🎸 Рок", "🎷 Джаз", "🎹 Электроника", "🎶 Хип-хоп"},
		Template: "Порекомендуй 3 музыкальных альбома или исполнителей в жанре %s. Укажи год выпуска.",
	},
	"games": {
		Key:      "games",
		Name:     "🎮 Игры",
		Genres:   []string{"🎮 Экшен", "🧩 Головоломки", "🌍 Открытый мир", "👾 RPG", "🏎️ Гонки"},
		Template: "Назови 3 игры в жанре %s. Укажи платформы, год выхода и краткое описание.",
	},
}

// Categories returns the recommendation categories in menu order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryOrder))
	for _, key := range categoryOrder {
		out = append(out, categories[key])
	}
	return out
}
