// Package facade is the single entry point the UI layer talks to. It picks
// the storage engine per call based on the current session: anonymous work
// stays in the local SQLite engine, authenticated work goes to the server.
// Login, logout and token expiry therefore switch engines without any
// caller-side coordination.
package facade

import (
	"context"
	"strings"

	"github.com/sam-ezra/todo/internal/client/backend"
	"github.com/sam-ezra/todo/internal/client/models"
	"github.com/sam-ezra/todo/internal/client/remote"
	"github.com/sam-ezra/todo/internal/client/session"
	"github.com/sam-ezra/todo/internal/common"
)

// API is the full surface the UI consumes.
type API interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	IsAnonymous(ctx context.Context) (bool, error)
	UserInfo(ctx context.Context) (string, error)

	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, settings *models.Settings) error

	GetAllLists(ctx context.Context, page, pageSize int) (*models.PagedResult, error)
	CreateList(ctx context.Context, name string) (*models.TodoList, error)
	UpdateList(ctx context.Context, id int64, name string) (*models.TodoList, error)
	DeleteList(ctx context.Context, id int64) error
	ReorderLists(ctx context.Context, lists []models.TodoList) error

	CreateItem(ctx context.Context, listID int64, value string) (*models.TodoItem, error)
	UpdateItem(ctx context.Context, item *models.TodoItem) (*models.TodoItem, error)
	ToggleItem(ctx context.Context, item *models.TodoItem) (*models.TodoItem, error)
	DeleteItem(ctx context.Context, id int64) error
	ReorderItems(ctx context.Context, listID int64, items []models.TodoItem) error
}

// Facade implements API over a local and a remote engine.
type Facade struct {
	local   backend.Backend
	remote  *remote.Client
	session *session.Session
}

// New wires the two engines and the session together.
func New(local backend.Backend, remote *remote.Client, s *session.Session) *Facade {
	return &Facade{local: local, remote: remote, session: s}
}

// backend resolves the engine for this call. Resolution happens on every
// call, never cached, so a session change takes effect immediately.
func (f *Facade) backend(ctx context.Context) (backend.Backend, error) {
	anonymous, err := f.session.IsAnonymous(ctx)
	if err != nil {
		return nil, err
	}
	if anonymous {
		return f.local, nil
	}
	return f.remote, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return common.NewValidationError("name", "name must not be empty")
	}
	if len(name) > common.MaxListNameLength {
		return common.NewValidationError("name", "name is too long")
	}
	return nil
}

func validateValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return common.NewValidationError("value", "value must not be empty")
	}
	if len(value) > common.MaxItemValueLength {
		return common.NewValidationError("value", "value is too long")
	}
	return nil
}

func (f *Facade) Register(ctx context.Context, email, password string) error {
	return f.remote.Register(ctx, email, password)
}

func (f *Facade) Login(ctx context.Context, email, password string) error {
	return f.remote.Login(ctx, email, password)
}

// Logout drops the session token. Local anonymous data is left untouched.
func (f *Facade) Logout(ctx context.Context) error {
	return f.session.SetAnonymous(ctx)
}

func (f *Facade) IsAnonymous(ctx context.Context) (bool, error) {
	return f.session.IsAnonymous(ctx)
}

func (f *Facade) UserInfo(ctx context.Context) (string, error) {
	return f.remote.UserInfo(ctx)
}

func (f *Facade) GetSettings(ctx context.Context) (*models.Settings, error) {
	b, err := f.backend(ctx)
	if err != nil {
		return nil, err
	}
	return b.GetSettings(ctx)
}

func (f *Facade) UpdateSettings(ctx context.Context, settings *models.Settings) error {
	if settings.Language != nil && !models.ValidLanguage(*settings.Language) {
		return common.NewValidationError("language", "unknown language")
	}
	if settings.Theme != nil && !models.ValidTheme(*settings.Theme) {
		return common.NewValidationError("theme", "unknown theme")
	}

	b, err := f.backend(ctx)
	if err != nil {
		return err
	}
	return b.UpdateSettings(ctx, settings)
}

func (f *Facade) GetAllLists(ctx context.Context, page, pageSize int) (*models.PagedResult, error) {
	b, err := f.backend(ctx)
	if err != nil {
		return nil, err
	}
	return b.GetAllLists(ctx, page, pageSize)
}

func (f *Facade) CreateList(ctx context.Context, name string) (*models.TodoList, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	b, err := f.backend(ctx)
	if err != nil {
		return nil, err
	}
	return b.CreateList(ctx, name)
}

func (f *Facade) UpdateList(ctx context.Context, id int64, name string) (*models.TodoList, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	b, err := f.backend(ctx)
	if err != nil {
		return nil, err
	}
	return b.UpdateList(ctx, id, name)
}

func (f *Facade) DeleteList(ctx context.Context, id int64) error {
	b, err := f.backend(ctx)
	if err != nil {
		return err
	}
	return b.DeleteList(ctx, id)
}

func (f *Facade) ReorderLists(ctx context.Context, lists []models.TodoList) error {
	ids := make([]int64, 0, len(lists))
	for i := range lists {
		ids = append(ids, lists[i].ID)
	}

	b, err := f.backend(ctx)
	if err != nil {
		return err
	}
	return b.ReorderLists(ctx, ids)
}

func (f *Facade) CreateItem(ctx context.Context, listID int64, value string) (*models.TodoItem, error) {
	if listID <= 0 {
		return nil, common.NewValidationError("listId", "listId must be positive")
	}
	if err := validateValue(value); err != nil {
		return nil, err
	}
	b, err := f.backend(ctx)
	if err != nil {
		return nil, err
	}
	return b.CreateItem(ctx, listID, value)
}

func (f *Facade) UpdateItem(ctx context.Context, item *models.TodoItem) (*models.TodoItem, error) {
	if err := validateValue(item.Value); err != nil {
		return nil, err
	}
	b, err := f.backend(ctx)
	if err != nil {
		return nil, err
	}
	return b.UpdateItem(ctx, item)
}

// ToggleItem flips completion and persists the full item in one update.
func (f *Facade) ToggleItem(ctx context.Context, item *models.TodoItem) (*models.TodoItem, error) {
	flipped := *item
	flipped.IsCompleted = !item.IsCompleted

	b, err := f.backend(ctx)
	if err != nil {
		return nil, err
	}
	return b.UpdateItem(ctx, &flipped)
}

func (f *Facade) DeleteItem(ctx context.Context, id int64) error {
	b, err := f.backend(ctx)
	if err != nil {
		return err
	}
	return b.DeleteItem(ctx, id)
}

func (f *Facade) ReorderItems(ctx context.Context, listID int64, items []models.TodoItem) error {
	if listID <= 0 {
		return common.NewValidationError("listId", "listId must be positive")
	}

	ids := make([]int64, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}

	b, err := f.backend(ctx)
	if err != nil {
		return err
	}
	return b.ReorderItems(ctx, listID, ids)
}
