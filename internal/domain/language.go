package domain

// Language is an ISO 639-1 code of a supported conversation language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSinhala Language = "si"
	LanguageTamil   Language = "ta"
	LanguageChinese Language = "zh"
	LanguageFrench  Language = "fr"
)

// DefaultLanguage is used for new sessions and as the detection fallback.
const DefaultLanguage = LanguageEnglish

var languageNames = map[Language]string{
	LanguageEnglish: "English",
	LanguageSinhala: "Sinhala",
	LanguageTamil:   "Tamil",
	LanguageChinese: "Chinese",
	LanguageFrench:  "French",
}

// SupportedLanguages returns the closed set of languages in a stable order.
func SupportedLanguages() []Language {
	return []Language{LanguageEnglish, LanguageSinhala, LanguageTamil, LanguageChinese, LanguageFrench}
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := languageNames[l]
	return ok
}

// Name returns the English display name, or "Unknown" for codes outside the set.
func (l Language) Name() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "Unknown"
}
