package cli

import (
	"context"
	"fmt"
	"strings"
)

// Lists reloads the first page and prints everything currently shown.
func (a *App) Lists(ctx context.Context) error {
	if err := a.vm.Load(ctx); err != nil {
		a.printErr(err)
		return err
	}
	a.render()
	return nil
}

// More fetches the next page, if there is one, and re-renders.
func (a *App) More(ctx context.Context) error {
	if !a.vm.HasMore() {
		printlnFn("Nothing more to load.")
		return nil
	}
	if err := a.vm.LoadMore(ctx); err != nil {
		a.printErr(err)
		return err
	}
	a.render()
	return nil
}

func (a *App) render() {
	lists := a.vm.Lists()
	if len(lists) == 0 {
		printlnFn("No lists yet. Create one with: addlist <name>")
		return
	}
	for _, list := range lists {
		printlnFn(fmt.Sprintf("[%d] %s", list.ID, list.Name))
		for _, todo := range list.Todos {
			mark := " "
			if todo.IsCompleted {
				mark = "x"
			}
			printlnFn(fmt.Sprintf("  [%d] [%s] %s", todo.ID, mark, todo.Value))
		}
	}
	printlnFn(fmt.Sprintf("Showing %d of %d lists", len(lists), a.vm.TotalCount()))
}

// AddList creates a list named by the remaining words of the command line.
func (a *App) AddList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: addlist <name>")
		return nil
	}
	if err := a.vm.CreateList(ctx, strings.Join(args, " ")); err != nil {
		a.printErr(err)
		return err
	}
	a.render()
	return nil
}

// RenameList renames the list with the given id.
func (a *App) RenameList(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: renamelist <id> <name>")
		return nil
	}
	id, ok := parseID(args[0])
	if !ok {
		printlnFn("Invalid list id:", args[0])
		return nil
	}
	if err := a.vm.RenameList(ctx, id, strings.Join(args[1:], " ")); err != nil {
		a.printErr(err)
		return err
	}
	a.render()
	return nil
}

// RemoveList deletes the list with the given id together with its todos.
func (a *App) RemoveList(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: rmlist <id>")
		return nil
	}
	id, ok := parseID(args[0])
	if !ok {
		printlnFn("Invalid list id:", args[0])
		return nil
	}
	if err := a.vm.DeleteList(ctx, id); err != nil {
		a.printErr(err)
		return err
	}
	a.render()
	return nil
}

// MoveList moves a list between 1-based display positions.
func (a *App) MoveList(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: movelist <from> <to>")
		return nil
	}
	from, okFrom := parseIndex(args[0])
	to, okTo := parseIndex(args[1])
	if !okFrom || !okTo {
		printlnFn("Positions must be positive numbers")
		return nil
	}
	if err := a.vm.MoveList(ctx, from-1, to-1); err != nil {
		a.printErr(err)
		return err
	}
	a.render()
	return nil
}
