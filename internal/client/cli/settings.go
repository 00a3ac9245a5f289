package cli

import (
	"context"
	"strings"

	"github.com/sam-ezra/todo/internal/client/models"
)

// Language changes the interface language: lang <ENGLISH|SPANISH>.
// The preference persists in the active engine, so an anonymous choice
// stays local and an authenticated one follows the account.
func (a *App) Language(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: lang <ENGLISH|SPANISH>")
		return nil
	}
	lang := models.Language(strings.ToUpper(args[0]))
	if !models.ValidLanguage(lang) {
		printlnFn("Unknown language:", args[0])
		return nil
	}

	if err := a.api.UpdateSettings(ctx, &models.Settings{Language: &lang}); err != nil {
		a.printErr(err)
		return err
	}
	a.lang = lang
	printlnFn("Language set to", string(lang))
	return nil
}

// Theme changes the interface theme: theme <LIGHT|DARK>.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: theme <LIGHT|DARK>")
		return nil
	}
	theme := models.Theme(strings.ToUpper(args[0]))
	if !models.ValidTheme(theme) {
		printlnFn("Unknown theme:", args[0])
		return nil
	}

	if err := a.api.UpdateSettings(ctx, &models.Settings{Theme: &theme}); err != nil {
		a.printErr(err)
		return err
	}
	printlnFn("Theme set to", string(theme))
	return nil
}
