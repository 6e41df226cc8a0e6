package view

import "github.com/swaggest/todomvc/internal/domain/todo"

// Link navigates to a filter route.
type Link struct {
	Title    string
	Path     string
	Selected bool
}

// Footer shows counter, filter links and clear completed control.
type Footer struct {
	ActiveCount    int
	CompletedCount int
	Links          []Link

	total int
}

// NewFooter creates footer of unfiltered todos.
func NewFooter(todos []todo.Todo, f todo.Filter) Footer {
	if f == "" {
		f = todo.FilterAll
	}

	active := todo.ActiveCount(todos)

	ft := Footer{
		ActiveCount:    active,
		CompletedCount: len(todos) - active,
		total:          len(todos),
	}

	for _, lf := range []struct {
		title  string
		filter todo.Filter
	}{
		{"All", todo.FilterAll},
		{"Active", todo.FilterActive},
		{"Completed", todo.FilterCompleted},
	} {
		ft.Links = append(ft.Links, Link{
			Title:    lf.title,
			Path:     lf.filter.Path(),
			Selected: lf.filter == f,
		})
	}

	return ft
}

// Hidden is true when there are no todos at all.
func (f Footer) Hidden() bool {
	return f.total == 0
}

// ItemsLeft is the counter caption.
func (f Footer) ItemsLeft() string {
	if f.ActiveCount == 1 {
		return "item left"
	}

	return "items left"
}
