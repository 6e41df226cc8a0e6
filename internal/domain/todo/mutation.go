package todo

import (
	"errors"
	"fmt"
)

// Operation names as seen on the wire.
const (
	OperationTodos            = "todos"
	OperationAddTodo          = "addTodo"
	OperationToggleTodo       = "toggleTodo"
	OperationCompleteAllTodos = "completeAllTodos"
	OperationRemoveTodo       = "removeTodo"
)

// ErrUnknownOperation is returned for an operation name that has no handler.
var ErrUnknownOperation = errors.New("unknown operation")

// Resolver computes a new snapshot for every mutation variant.
//
// Adding a variant to Mutation requires a method here, so a resolver table that misses
// a variant does not compile.
type Resolver interface {
	AddTodo(s Snapshot, m AddTodo) (Snapshot, Result)
	ToggleTodo(s Snapshot, m ToggleTodo) (Snapshot, Result)
	CompleteAllTodos(s Snapshot, m CompleteAllTodos) (Snapshot, Result)
	RemoveTodo(s Snapshot, m RemoveTodo) (Snapshot, Result)
}

// Mutation is one of AddTodo, ToggleTodo, CompleteAllTodos or RemoveTodo.
type Mutation interface {
	// Name is the operation name.
	Name() string

	// Variables returns the transport variables record.
	Variables() Variables

	// Resolve applies the mutation to s with the matching resolver method.
	Resolve(r Resolver, s Snapshot) (Snapshot, Result)

	mutation()
}

// Variables is the variables record of a named operation.
type Variables struct {
	ID   int    `json:"id"`
	Text string `json:"text,omitempty"`
}

// Operation is a named query or mutation with its variables.
type Operation struct {
	OperationName string    `json:"operationName" required:"true" description:"Query or mutation name."`
	Variables     Variables `json:"variables"`
}

// AddTodo appends a new todo.
type AddTodo struct {
	Text string
}

// ToggleTodo flips completion of a todo.
type ToggleTodo struct {
	ID int
}

// CompleteAllTodos completes every todo, or un-completes every todo if all are completed.
type CompleteAllTodos struct{}

// RemoveTodo removes a todo.
type RemoveTodo struct {
	ID int
}

var (
	_ Mutation = AddTodo{}
	_ Mutation = ToggleTodo{}
	_ Mutation = CompleteAllTodos{}
	_ Mutation = RemoveTodo{}
)

func (AddTodo) Name() string          { return OperationAddTodo }
func (ToggleTodo) Name() string       { return OperationToggleTodo }
func (CompleteAllTodos) Name() string { return OperationCompleteAllTodos }
func (RemoveTodo) Name() string       { return OperationRemoveTodo }

func (m AddTodo) Variables() Variables        { return Variables{Text: m.Text} }
func (m ToggleTodo) Variables() Variables     { return Variables{ID: m.ID} }
func (CompleteAllTodos) Variables() Variables { return Variables{} }
func (m RemoveTodo) Variables() Variables     { return Variables{ID: m.ID} }

func (m AddTodo) Resolve(r Resolver, s Snapshot) (Snapshot, Result) { return r.AddTodo(s, m) }

func (m ToggleTodo) Resolve(r Resolver, s Snapshot) (Snapshot, Result) { return r.ToggleTodo(s, m) }

func (m CompleteAllTodos) Resolve(r Resolver, s Snapshot) (Snapshot, Result) {
	return r.CompleteAllTodos(s, m)
}

func (m RemoveTodo) Resolve(r Resolver, s Snapshot) (Snapshot, Result) { return r.RemoveTodo(s, m) }

func (AddTodo) mutation()          {}
func (ToggleTodo) mutation()       {}
func (CompleteAllTodos) mutation() {}
func (RemoveTodo) mutation()       {}

// ParseMutation decodes a mutation from operation name and variables.
func ParseMutation(name string, vars Variables) (Mutation, error) {
	switch name {
	case OperationAddTodo:
		return AddTodo{Text: vars.Text}, nil
	case OperationToggleTodo:
		return ToggleTodo{ID: vars.ID}, nil
	case OperationCompleteAllTodos:
		return CompleteAllTodos{}, nil
	case OperationRemoveTodo:
		return RemoveTodo{ID: vars.ID}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
}
