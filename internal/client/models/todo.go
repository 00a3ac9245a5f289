// Package models defines client-side data models shared by the local and
// remote storage engines. JSON tags match the REST wire contract; fields
// the wire omits (list order, item listId) are tagged omitempty and only
// populated by the local engine.
package models

// TodoItem is a single todo entry.
type TodoItem struct {
	ID          int64  `json:"id"`
	ListID      int64  `json:"listId,omitempty"`
	Value       string `json:"value"`
	IsCompleted bool   `json:"isCompleted"`
	Order       int    `json:"order"`
}

// TodoList is a named ordered collection of items. Over the wire, list
// ordering is conveyed by slice position; Order is local-engine state.
type TodoList struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Order int        `json:"order,omitempty"`
	Todos []TodoItem `json:"todos"`
}

// PagedResult is one page of lists plus the unpaginated total.
type PagedResult struct {
	Items      []TodoList `json:"items"`
	TotalCount int        `json:"totalCount"`
}
