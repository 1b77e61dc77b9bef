package registry

var languageOrder = []string{"en", "es", "fr", "de", "ja", "zh"}

var languages = map[string]Language{
	"en": {Code: "en", Name: "🇬🇧 Английский"},
	"es": {Code: "es", Name: "🇪🇸 Испанский"},
	"fr": {Code: "fr", Name: "🇫🇷 Французский"},
	"de": {Code: "de", Name: "🇩🇪 Немецкий"},
	"ja": {Code: "ja", Name: "🇯🇵 Японский"},
	"zh": {Code: "zh", Name: "🇨🇳 Китайский"},
}

// Languages returns the translation targets in menu order.
func Languages() []Language {
	out := make([]Language, 0, len(languageOrder))
	for _, code := range languageOrder {
		out = append(out, languages[code])
	}
	return out
}
