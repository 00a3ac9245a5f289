package models

// TodoList is a named, ordered collection of todo items owned by one user.
// Order defines display position among the owner's lists; it is not
// required to be contiguous except immediately after a reorder.
type TodoList struct {
	ID     int64
	UserID string
	Name   string
	Order  int
	Items  []TodoItem
}

// TodoItem is a single todo entry. Order positions it within its parent
// list; ListID is immutable after creation.
type TodoItem struct {
	ID          int64
	UserID      string
	ListID      int64
	Value       string
	IsCompleted bool
	Order       int
}
