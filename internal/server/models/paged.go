package models

// PagedResult is one page of lists plus the unpaginated total for the user.
type PagedResult struct {
	Items      []TodoList
	TotalCount int
}
