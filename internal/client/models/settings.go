package models

// Language is a user interface language preference.
type Language string

// Theme is a user interface theme preference.
type Theme string

// Wire values match the REST contract exactly.
const (
	LanguageEnglish Language = "ENGLISH"
	LanguageSpanish Language = "SPANISH"

	ThemeLight Theme = "LIGHT"
	ThemeDark  Theme = "DARK"
)

// ValidLanguage reports whether l is a known wire value.
func ValidLanguage(l Language) bool {
	return l == LanguageEnglish || l == LanguageSpanish
}

// ValidTheme reports whether t is a known wire value.
func ValidTheme(t Theme) bool {
	return t == ThemeLight || t == ThemeDark
}

// Settings is the nullable preference pair. A nil field means "not set"
// on read and "leave unchanged" on update, so an empty Settings is a
// no-op partial update.
type Settings struct {
	Language *Language `json:"language"`
	Theme    *Theme    `json:"theme"`
}
