// Package registry holds the static catalogs backing the dialogue flows:
// quiz topics, chat personas, translation target languages, and
// recommendation categories with their genres. All catalogs are read-only
// after initialization; lookups by unknown key return ErrNotFound rather
// than a silent default.
package registry

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a catalog lookup fails.
var ErrNotFound = errors.New("not found")

// Topic is one quiz topic with its question-generation prompt.
type Topic struct {
	Key    string
	Name   string
	Emoji  string
	Prompt string
}

// Persona is one chat persona with its fixed system instruction.
type Persona struct {
	Key    string
	Name   string
	Emoji  string
	Prompt string
}

// Language is one translation target.
type Language struct {
	Code string
	Name string
}

// Category is one recommendation category with its genres and prompt
// template (one %s verb for the genre name).
type Category struct {
	Key      string
	Name     string
	Genres   []string
	Template string
}

// TopicByKey returns the quiz topic for key.
func TopicByKey(key string) (Topic, error) {
	t, ok := topics[key]
	if !ok {
		return Topic{}, fmt.Errorf("quiz topic %q: %w", key, ErrNotFound)
	}
	return t, nil
}

// PersonaByKey returns the persona for key.
func PersonaByKey(key string) (Persona, error) {
	p, ok := personas[key]
	if !ok {
		return Persona{}, fmt.Errorf("persona %q: %w", key, ErrNotFound)
	}
	return p, nil
}

// LanguageByCode returns the translation target for code.
func LanguageByCode(code string) (Language, error) {
	l, ok := languages[code]
	if !ok {
		return Language{}, fmt.Errorf("language %q: %w", code, ErrNotFound)
	}
	return l, nil
}

// CategoryByKey returns the recommendation category for key.
func CategoryByKey(key string) (Category, error) {
	c, ok := categories[key]
	if !ok {
		return Category{}, fmt.Errorf("recommendation category %q: %w", key, ErrNotFound)
	}
	return c, nil
}

// GenreByIndex returns the genre at index within the category.
func GenreByIndex(categoryKey string, index int) (string, error) {
	c, err := CategoryByKey(categoryKey)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(c.Genres) {
		return "", fmt.Errorf("genre index %d in category %q: %w", index, categoryKey, ErrNotFound)
	}
	return c.Genres[index], nil
}

// RecommendationPrompt builds the generation prompt for a category's genre.
func RecommendationPrompt(categoryKey, genre string) (string, error) {
	c, err := CategoryByKey(categoryKey)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(c.Template, genre), nil
}
