package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/swaggest/todomvc/internal/domain/todo"
)

//go:embed templates/*.html
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/*.html"))

// Page is the whole todo app for a route.
type Page struct {
	Header Header
	List   List
	Footer Footer
	Return string
}

// NewPage creates page of todos for route filter.
func NewPage(todos []todo.Todo, f todo.Filter) Page {
	return Page{
		List:   NewList(todos, f),
		Footer: NewFooter(todos, f),
		Return: f.Path(),
	}
}

// Render writes HTML document.
func (p Page) Render(w io.Writer) error {
	return page.ExecuteTemplate(w, "index.html", &p)
}
