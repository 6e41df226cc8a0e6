package todo

import "github.com/swaggest/jsonschema-go"

// Filter selects todos by completion, it is derived from the current route.
type Filter string

// Available filters.
const (
	FilterAll       = Filter("all")
	FilterActive    = Filter("active")
	FilterCompleted = Filter("completed")
)

var _ jsonschema.Exposer = Filter("")

// JSONSchema exposes Filter JSON schema, implements jsonschema.Exposer.
func (Filter) JSONSchema() (jsonschema.Schema, error) {
	s := jsonschema.Schema{}
	s.
		WithType(jsonschema.String.Type()).
		WithTitle("Todo Filter").
		WithDescription("Route filter, empty value is the same as all.").
		WithEnum(FilterAll, FilterActive, FilterCompleted, "")

	return s, nil
}

// FilterFromPath maps route path to filter, unknown paths pass all todos.
func FilterFromPath(path string) Filter {
	switch path {
	case "/active":
		return FilterActive
	case "/completed":
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Path returns route path of the filter.
func (f Filter) Path() string {
	switch f {
	case FilterActive:
		return "/active"
	case FilterCompleted:
		return "/completed"
	default:
		return "/"
	}
}

// Match is the filter predicate.
func (f Filter) Match(t Todo) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Apply returns todos that match the filter, order is preserved.
func (f Filter) Apply(todos []Todo) []Todo {
	res := make([]Todo, 0, len(todos))

	for _, t := range todos {
		if f.Match(t) {
			res = append(res, t)
		}
	}

	return res
}
