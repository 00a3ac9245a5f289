package cli

import (
	"context"
	"strings"
)

// AddItem appends a todo to a list: add <listId> <text>.
func (a *App) AddItem(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: add <listId> <text>")
		return nil
	}
	listID, ok := parseID(args[0])
	if !ok {
		printlnFn("Invalid list id:", args[0])
		return nil
	}
	if err := a.vm.CreateItem(ctx, listID, strings.Join(args[1:], " ")); err != nil {
		a.printErr(err)
		return err
	}
	a.render()
	return nil
}

// ToggleItem flips a todo's completion: toggle <listId> <todoId>.
func (a *App) ToggleItem(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: toggle <listId> <todoId>")
		return nil
	}
	listID, okList := parseID(args[0])
	itemID, okItem := parseID(args[1])
	if !okList || !okItem {
		printlnFn("Ids must be positive numbers")
		return nil
	}
	if err := a.vm.ToggleItem(ctx, listID, itemID); err != nil {
		a.printErr(err)
		return err
	}
	a.render()
	return nil
}

// RemoveItem deletes a todo: rm <listId> <todoId>.
func (a *App) RemoveItem(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: rm <listId> <todoId>")
		return nil
	}
	listID, okList := parseID(args[0])
	itemID, okItem := parseID(args[1])
	if !okList || !okItem {
		printlnFn("Ids must be positive numbers")
		return nil
	}
	if err := a.vm.DeleteItem(ctx, listID, itemID); err != nil {
		a.printErr(err)
		return err
	}
	a.render()
	return nil
}

// MoveItem moves a todo between 1-based positions in its list:
// move <listId> <from> <to>.
func (a *App) MoveItem(ctx context.Context, args []string) error {
	if len(args) != 3 {
		printlnFn("Usage: move <listId> <from> <to>")
		return nil
	}
	listID, okList := parseID(args[0])
	from, okFrom := parseIndex(args[1])
	to, okTo := parseIndex(args[2])
	if !okList || !okFrom || !okTo {
		printlnFn("Arguments must be positive numbers")
		return nil
	}
	if err := a.vm.MoveItem(ctx, listID, from-1, to-1); err != nil {
		a.printErr(err)
		return err
	}
	a.render()
	return nil
}
