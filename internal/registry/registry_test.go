package registry_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/avdeyev/umnikbot/internal/registry"
)

func TestTopicByKey(t *testing.T) {
	t.Parallel()

	topic, err := registry.TopicByKey("science")
	if err != nil {
		t.Fatalf("TopicByKey() error = %v", err)
	}
	if topic.Key != "science" {
		t.Errorf("Key = %q, want %q", topic.Key, "science")
	}
	if !strings.Contains(topic.Prompt, "Правильный ответ") {
		t.Error("topic prompt does not request an answer marker")
	}

	if _, err := registry.TopicByKey("astrology"); !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("TopicByKey(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestTopicsOrderIsStable(t *testing.T) {
	t.Parallel()

	first := registry.Topics()
	second := registry.Topics()

	if len(first) == 0 {
		t.Fatal("no topics registered")
	}
	for i := range first {
		if first[i].Key != second[i].Key {
			t.Fatalf("topic order changed between calls: %q vs %q", first[i].Key, second[i].Key)
		}
	}
}

func TestPersonaByKey(t *testing.T) {
	t.Parallel()

	persona, err := registry.PersonaByKey("einstein")
	if err != nil {
		t.Fatalf("PersonaByKey() error = %v", err)
	}
	if persona.Prompt == "" {
		t.Error("persona has an empty instruction")
	}

	if _, err := registry.PersonaByKey("unknown"); !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("PersonaByKey(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestLanguageByCode(t *testing.T) {
	t.Parallel()

	lang, err := registry.LanguageByCode("ja")
	if err != nil {
		t.Fatalf("LanguageByCode() error = %v", err)
	}
	if !strings.Contains(lang.Name, "Японский") {
		t.Errorf("Name = %q, want Japanese", lang.Name)
	}

	if _, err := registry.LanguageByCode("xx"); !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("LanguageByCode(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestGenreByIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category string
		index    int
		wantErr  bool
	}{
		{name: "First genre", category: "movies", index: 0},
		{name: "Last genre", category: "movies", index: 4},
		{name: "Index out of range", category: "movies", index: 99, wantErr: true},
		{name: "Negative index", category: "movies", index: -1, wantErr: true},
		{name: "Unknown category", category: "podcasts", index: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			genre, err := registry.GenreByIndex(tt.category, tt.index)
			if tt.wantErr {
				if !errors.Is(err, registry.ErrNotFound) {
					t.Errorf("GenreByIndex() error = %v, want ErrNotFound", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GenreByIndex() error = %v", err)
			}
			if genre == "" {
				t.Error("GenreByIndex() returned an empty genre")
			}
		})
	}
}

func TestRecommendationPrompt(t *testing.T) {
	t.Parallel()

	genre, err := registry.GenreByIndex("movies", 0)
	if err != nil {
		t.Fatalf("GenreByIndex() error = %v", err)
	}

	prompt, err := registry.RecommendationPrompt("movies", genre)
	if err != nil {
		t.Fatalf("RecommendationPrompt() error = %v", err)
	}
	if !strings.Contains(prompt, genre) {
		t.Errorf("prompt %q does not mention genre %q", prompt, genre)
	}
	if strings.Contains(prompt, "%s") {
		t.Errorf("prompt %q still contains a format verb", prompt)
	}

	if _, err := registry.RecommendationPrompt("podcasts", "что-нибудь"); !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("RecommendationPrompt(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestCategoriesHaveGenresAndTemplates(t *testing.T) {
	t.Parallel()

	categories := registry.Categories()
	if len(categories) == 0 {
		t.Fatal("no categories registered")
	}

	for _, c := range categories {
		if len(c.Genres) == 0 {
			t.Errorf("category %q has no genres", c.Key)
		}
		if !strings.Contains(c.Template, "%s") {
			t.Errorf("category %q template has no genre placeholder", c.Key)
		}
	}
}
