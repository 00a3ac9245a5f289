// Package models defines server-side persistence models for the todo service.
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

// User is an account row. Language and Theme are nil until the user sets
// them; they read back as null over the wire.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Language     *Language
	Theme        *Theme
}
