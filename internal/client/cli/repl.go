package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Lists(ctx context.Context) error
	More(ctx context.Context) error
	AddList(ctx context.Context, args []string) error
	RenameList(ctx context.Context, args []string) error
	RemoveList(ctx context.Context, args []string) error
	MoveList(ctx context.Context, args []string) error
	AddItem(ctx context.Context, args []string) error
	ToggleItem(ctx context.Context, args []string) error
	RemoveItem(ctx context.Context, args []string) error
	MoveItem(ctx context.Context, args []string) error
	Language(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop for the todo CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The same data commands work anonymously (against the local database) and
// logged in (against the server); register/login/logout switch between the
// two. Any errors returned by command handlers are ignored here; handlers
// print their own errors. This keeps the REPL loop resilient and focused on
// I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("todo> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Data:  (l)ists, more, addlist <name>, renamelist <id> <name>, rmlist <id>,")
			printlnFn("       add <listId> <text>, toggle <listId> <todoId>, rm <listId> <todoId>,")
			printlnFn("       movelist <from> <to>, move <listId> <from> <to>")
			printlnFn("Prefs: lang <ENGLISH|SPANISH>, theme <LIGHT|DARK>")
			if a.isLoggedIn(ctx) {
				printlnFn("Auth:  whoami, logout, exit")
			} else {
				printlnFn("Auth:  register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "lists":
			_ = a.Lists(ctx)

		case "more":
			_ = a.More(ctx)

		case "addlist":
			_ = a.AddList(ctx, args)

		case "renamelist":
			_ = a.RenameList(ctx, args)

		case "rmlist":
			_ = a.RemoveList(ctx, args)

		case "movelist":
			_ = a.MoveList(ctx, args)

		case "add":
			_ = a.AddItem(ctx, args)

		case "toggle":
			_ = a.ToggleItem(ctx, args)

		case "rm":
			_ = a.RemoveItem(ctx, args)

		case "move":
			_ = a.MoveItem(ctx, args)

		case "lang":
			_ = a.Language(ctx, args)

		case "theme":
			_ = a.Theme(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
