package todo

import "slices"

// QueryKey identifies the todo collection in the cache.
const QueryKey = "todos"

// Identity identifies todo in request path.
type Identity struct {
	ID int `path:"id" minimum:"0"`
}

// Value is a todo value.
type Value struct {
	Text string `json:"text" description:"Todo text, empty text is accepted."`
}

// Todo is an identified task record.
type Todo struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Snapshot is the whole state of the store, replaced as one value on every write.
type Snapshot struct {
	Todos  []Todo `json:"todos"`
	NextID int    `json:"nextId"`
}

// Clone returns a copy that shares no backing array with s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Todos:  slices.Clone(s.Todos),
		NextID: s.NextID,
	}
}

// Result is returned by a resolved mutation.
type Result struct {
	Todos []Todo `json:"todos"`
	Todo  *Todo  `json:"todo,omitempty"`
}

// AllCompleted reports whether every todo is completed, false for empty list.
func AllCompleted(todos []Todo) bool {
	if len(todos) == 0 {
		return false
	}

	for _, t := range todos {
		if !t.Completed {
			return false
		}
	}

	return true
}

// ActiveCount counts todos that are not completed.
func ActiveCount(todos []Todo) int {
	n := 0

	for _, t := range todos {
		if !t.Completed {
			n++
		}
	}

	return n
}
