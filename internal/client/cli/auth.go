package cli

import (
	"context"
	"os"
)

// Register interactively creates an account on the server. The user still
// has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email:", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.Register(ctx, email, string(password)); err != nil {
		a.printErr(err)
		return err
	}
	printlnFn("Registered. You can log in now.")
	return nil
}

// Login authenticates against the server and switches the data commands to
// the remote engine. Anonymous local data stays on disk untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email:", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.Login(ctx, email, string(password)); err != nil {
		a.printErr(err)
		return err
	}

	printlnFn("Logged in.")
	return a.Lists(ctx)
}

// Logout drops the session and switches back to the local engine.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		a.printErr(err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the account the session belongs to.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		printlnFn("Anonymous (local data only)")
		return nil
	}
	email, err := a.api.UserInfo(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	printlnFn("Logged in as", email)
	return nil
}
