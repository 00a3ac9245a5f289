// Package viewmodel keeps the UI's in-memory picture of the todo data and
// mediates every mutation through the storage facade. Writes are
// confirm-then-patch except reorders, which apply optimistically and roll
// back to a snapshot if the engine rejects them.
package viewmodel

import (
	"context"
	"errors"
	"sync"

	"github.com/sam-ezra/todo/internal/client/facade"
	"github.com/sam-ezra/todo/internal/client/i18n"
	"github.com/sam-ezra/todo/internal/client/models"
	"github.com/sam-ezra/todo/internal/common"
)

const defaultPageSize = 10

// ViewModel is safe for concurrent use. Accessors return copies so the
// caller can never mutate internal state.
type ViewModel struct {
	api facade.API

	mu          sync.Mutex
	lists       []models.TodoList
	errKey      string
	loading     bool
	totalCount  int
	currentPage int
	pageSize    int
}

// New returns an empty ViewModel over the given API.
func New(api facade.API) *ViewModel {
	return &ViewModel{api: api, pageSize: defaultPageSize}
}

func cloneLists(src []models.TodoList) []models.TodoList {
	if src == nil {
		return nil
	}
	out := make([]models.TodoList, len(src))
	copy(out, src)
	for i := range out {
		if out[i].Todos != nil {
			todos := make([]models.TodoItem, len(out[i].Todos))
			copy(todos, out[i].Todos)
			out[i].Todos = todos
		}
	}
	return out
}

// Lists returns a deep copy of the loaded lists in display order.
func (vm *ViewModel) Lists() []models.TodoList {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return cloneLists(vm.lists)
}

// ErrKey returns the message key of the last failed operation, empty when
// the last operation succeeded. Translate with i18n.T.
func (vm *ViewModel) ErrKey() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.errKey
}

// Loading reports whether a page fetch is in flight.
func (vm *ViewModel) Loading() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.loading
}

// TotalCount returns the engine's unpaginated list count from the last
// fetch.
func (vm *ViewModel) TotalCount() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.totalCount
}

// HasMore reports whether another page can be fetched.
func (vm *ViewModel) HasMore() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return len(vm.lists) < vm.totalCount
}

// fail records the error under the operation's message key, with transport
// failures reported as connection errors regardless of operation.
func (vm *ViewModel) fail(key string, err error) error {
	if errors.Is(err, common.ErrorConnection) {
		key = i18n.KeyConnectionError
	}
	vm.mu.Lock()
	vm.errKey = key
	vm.mu.Unlock()
	return err
}

func (vm *ViewModel) clearErr() {
	vm.mu.Lock()
	vm.errKey = ""
	vm.mu.Unlock()
}

// Load fetches the first page, replacing whatever is shown.
func (vm *ViewModel) Load(ctx context.Context) error {
	vm.mu.Lock()
	if vm.loading {
		vm.mu.Unlock()
		return nil
	}
	vm.loading = true
	pageSize := vm.pageSize
	vm.mu.Unlock()

	result, err := vm.api.GetAllLists(ctx, 1, pageSize)

	vm.mu.Lock()
	vm.loading = false
	if err == nil {
		vm.lists = result.Items
		vm.totalCount = result.TotalCount
		vm.currentPage = 1
		vm.errKey = ""
	}
	vm.mu.Unlock()

	if err != nil {
		return vm.fail(i18n.KeyLoadFailed, err)
	}
	return nil
}

// LoadMore appends the next page. It is a no-op while a fetch is in flight
// or when every list is already shown.
func (vm *ViewModel) LoadMore(ctx context.Context) error {
	vm.mu.Lock()
	if vm.loading || len(vm.lists) >= vm.totalCount {
		vm.mu.Unlock()
		return nil
	}
	vm.loading = true
	page := vm.currentPage + 1
	pageSize := vm.pageSize
	vm.mu.Unlock()

	result, err := vm.api.GetAllLists(ctx, page, pageSize)

	vm.mu.Lock()
	vm.loading = false
	if err == nil {
		vm.lists = append(vm.lists, result.Items...)
		vm.totalCount = result.TotalCount
		vm.currentPage = page
		vm.errKey = ""
	}
	vm.mu.Unlock()

	if err != nil {
		return vm.fail(i18n.KeyLoadFailed, err)
	}
	return nil
}

// CreateList appends the created list once the engine confirms it.
func (vm *ViewModel) CreateList(ctx context.Context, name string) error {
	created, err := vm.api.CreateList(ctx, name)
	if err != nil {
		return vm.fail(i18n.KeyCreateFailed, err)
	}

	vm.mu.Lock()
	if created.Todos == nil {
		created.Todos = []models.TodoItem{}
	}
	vm.lists = append(vm.lists, *created)
	vm.totalCount++
	vm.errKey = ""
	vm.mu.Unlock()
	return nil
}

// RenameList patches the shown name once the engine confirms it.
func (vm *ViewModel) RenameList(ctx context.Context, id int64, name string) error {
	updated, err := vm.api.UpdateList(ctx, id, name)
	if err != nil {
		return vm.fail(i18n.KeyUpdateFailed, err)
	}

	vm.mu.Lock()
	for i := range vm.lists {
		if vm.lists[i].ID == id {
			vm.lists[i].Name = updated.Name
			break
		}
	}
	vm.errKey = ""
	vm.mu.Unlock()
	return nil
}

// DeleteList drops the list from view once the engine confirms it.
func (vm *ViewModel) DeleteList(ctx context.Context, id int64) error {
	if err := vm.api.DeleteList(ctx, id); err != nil {
		return vm.fail(i18n.KeyDeleteFailed, err)
	}

	vm.mu.Lock()
	for i := range vm.lists {
		if vm.lists[i].ID == id {
			vm.lists = append(vm.lists[:i], vm.lists[i+1:]...)
			vm.totalCount--
			break
		}
	}
	vm.errKey = ""
	vm.mu.Unlock()
	return nil
}

// CreateItem appends the created item to its list once the engine confirms
// it.
func (vm *ViewModel) CreateItem(ctx context.Context, listID int64, value string) error {
	created, err := vm.api.CreateItem(ctx, listID, value)
	if err != nil {
		return vm.fail(i18n.KeyCreateFailed, err)
	}

	vm.mu.Lock()
	for i := range vm.lists {
		if vm.lists[i].ID == listID {
			vm.lists[i].Todos = append(vm.lists[i].Todos, *created)
			break
		}
	}
	vm.errKey = ""
	vm.mu.Unlock()
	return nil
}

func (vm *ViewModel) findItem(listID, itemID int64) (*models.TodoItem, bool) {
	for i := range vm.lists {
		if vm.lists[i].ID != listID {
			continue
		}
		for j := range vm.lists[i].Todos {
			if vm.lists[i].Todos[j].ID == itemID {
				return &vm.lists[i].Todos[j], true
			}
		}
	}
	return nil, false
}

// ToggleItem flips an item's completion and patches the view once the
// engine confirms it.
func (vm *ViewModel) ToggleItem(ctx context.Context, listID, itemID int64) error {
	vm.mu.Lock()
	current, ok := vm.findItem(listID, itemID)
	if !ok {
		vm.mu.Unlock()
		return vm.fail(i18n.KeyToggleFailed, common.ErrorNotFound)
	}
	snapshot := *current
	snapshot.ListID = listID
	vm.mu.Unlock()

	updated, err := vm.api.ToggleItem(ctx, &snapshot)
	if err != nil {
		return vm.fail(i18n.KeyToggleFailed, err)
	}

	vm.mu.Lock()
	if current, ok := vm.findItem(listID, itemID); ok {
		current.IsCompleted = updated.IsCompleted
	}
	vm.errKey = ""
	vm.mu.Unlock()
	return nil
}

// UpdateItem replaces an item's text and patches the view once the engine
// confirms it.
func (vm *ViewModel) UpdateItem(ctx context.Context, listID, itemID int64, value string) error {
	vm.mu.Lock()
	current, ok := vm.findItem(listID, itemID)
	if !ok {
		vm.mu.Unlock()
		return vm.fail(i18n.KeyUpdateFailed, common.ErrorNotFound)
	}
	draft := *current
	draft.ListID = listID
	draft.Value = value
	vm.mu.Unlock()

	updated, err := vm.api.UpdateItem(ctx, &draft)
	if err != nil {
		return vm.fail(i18n.KeyUpdateFailed, err)
	}

	vm.mu.Lock()
	if current, ok := vm.findItem(listID, itemID); ok {
		current.Value = updated.Value
		current.IsCompleted = updated.IsCompleted
	}
	vm.errKey = ""
	vm.mu.Unlock()
	return nil
}

// DeleteItem drops the item from its list once the engine confirms it.
func (vm *ViewModel) DeleteItem(ctx context.Context, listID, itemID int64) error {
	if err := vm.api.DeleteItem(ctx, itemID); err != nil {
		return vm.fail(i18n.KeyDeleteFailed, err)
	}

	vm.mu.Lock()
	for i := range vm.lists {
		if vm.lists[i].ID != listID {
			continue
		}
		for j := range vm.lists[i].Todos {
			if vm.lists[i].Todos[j].ID == itemID {
				vm.lists[i].Todos = append(vm.lists[i].Todos[:j], vm.lists[i].Todos[j+1:]...)
				break
			}
		}
		break
	}
	vm.errKey = ""
	vm.mu.Unlock()
	return nil
}

// MoveList moves a list from one position to another, optimistically. On
// engine failure the previous order is restored.
func (vm *ViewModel) MoveList(ctx context.Context, from, to int) error {
	vm.mu.Lock()
	if from < 0 || from >= len(vm.lists) || to < 0 || to >= len(vm.lists) || from == to {
		vm.mu.Unlock()
		return nil
	}
	snapshot := cloneLists(vm.lists)
	moved := vm.lists[from]
	vm.lists = append(vm.lists[:from], vm.lists[from+1:]...)
	vm.lists = append(vm.lists[:to], append([]models.TodoList{moved}, vm.lists[to:]...)...)
	reordered := cloneLists(vm.lists)
	vm.mu.Unlock()

	if err := vm.api.ReorderLists(ctx, reordered); err != nil {
		vm.mu.Lock()
		vm.lists = snapshot
		vm.mu.Unlock()
		return vm.fail(i18n.KeyReorderFailed, err)
	}
	vm.clearErr()
	return nil
}

// MoveItem moves an item within its list, optimistically. On engine failure
// the previous order is restored.
func (vm *ViewModel) MoveItem(ctx context.Context, listID int64, from, to int) error {
	vm.mu.Lock()
	idx := -1
	for i := range vm.lists {
		if vm.lists[i].ID == listID {
			idx = i
			break
		}
	}
	if idx < 0 {
		vm.mu.Unlock()
		return vm.fail(i18n.KeyReorderFailed, common.ErrorNotFound)
	}
	todos := vm.lists[idx].Todos
	if from < 0 || from >= len(todos) || to < 0 || to >= len(todos) || from == to {
		vm.mu.Unlock()
		return nil
	}
	snapshot := make([]models.TodoItem, len(todos))
	copy(snapshot, todos)

	moved := todos[from]
	todos = append(todos[:from], todos[from+1:]...)
	todos = append(todos[:to], append([]models.TodoItem{moved}, todos[to:]...)...)
	vm.lists[idx].Todos = todos

	reordered := make([]models.TodoItem, len(todos))
	copy(reordered, todos)
	vm.mu.Unlock()

	if err := vm.api.ReorderItems(ctx, listID, reordered); err != nil {
		vm.mu.Lock()
		for i := range vm.lists {
			if vm.lists[i].ID == listID {
				vm.lists[i].Todos = snapshot
				break
			}
		}
		vm.mu.Unlock()
		return vm.fail(i18n.KeyReorderFailed, err)
	}
	vm.clearErr()
	return nil
}
