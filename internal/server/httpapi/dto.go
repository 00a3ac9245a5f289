package httpapi

import "github.com/sam-ezra/todo/internal/server/models"

// Wire DTOs. Shapes are part of the REST contract; the list DTO carries no
// order field (ordering is conveyed by slice position), items carry theirs.

type todoDto struct {
	ID          int64  `json:"id"`
	Value       string `json:"value"`
	IsCompleted bool   `json:"isCompleted"`
	Order       int    `json:"order"`
}

type todoListDto struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Todos []todoDto `json:"todos"`
}

type pagedResultDto struct {
	Items      []todoListDto `json:"items"`
	TotalCount int           `json:"totalCount"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type infoResponse struct {
	Email string `json:"email"`
}

type listRequest struct {
	Name string `json:"name"`
}

type createTodoRequest struct {
	Value  string `json:"value"`
	ListID int64  `json:"listId"`
}

type updateTodoRequest struct {
	Value       string `json:"value"`
	IsCompleted bool   `json:"isCompleted"`
	Order       int    `json:"order"`
}

type settingsDto struct {
	Language *models.Language `json:"language"`
	Theme    *models.Theme    `json:"theme"`
}

type errorResponse struct {
	Title  string              `json:"title,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func mapTodo(t *models.TodoItem) todoDto {
	return todoDto{ID: t.ID, Value: t.Value, IsCompleted: t.IsCompleted, Order: t.Order}
}

func mapList(l *models.TodoList) todoListDto {
	todos := make([]todoDto, 0, len(l.Items))
	for i := range l.Items {
		todos = append(todos, mapTodo(&l.Items[i]))
	}
	return todoListDto{ID: l.ID, Name: l.Name, Todos: todos}
}
