package core

import "context"

type Pinger interface {
	Ping(ctx context.Context) error
}

// DB is the persistence port. Implementations return ErrNoteNotFound /
// ErrTodoNotFound for missing rows and wrap everything else in ErrDatastore.
type DB interface {
	Pinger

	// notes
	ListNotes(ctx context.Context) ([]Note, error)
	CreateNote(ctx context.Context, title, content string) (Note, error)
	GetNote(ctx context.Context, id int64) (Note, error)
	UpdateNote(ctx context.Context, id int64, p NotePatch) (Note, error)
	DeleteNote(ctx context.Context, id int64) error

	// todos
	ListTodos(ctx context.Context) ([]Todo, error)
	CreateTodo(ctx context.Context, task string) (Todo, error)
	GetTodo(ctx context.Context, id int64) (Todo, error)
	UpdateTodo(ctx context.Context, id int64, p TodoPatch) (Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
}

type Notes interface {
	ListNotes(ctx context.Context) ([]Note, error)
	CreateNote(ctx context.Context, title, content string) (Note, error)
	GetNote(ctx context.Context, id int64) (Note, error)
	UpdateNote(ctx context.Context, id int64, p NotePatch) (Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

type Todos interface {
	ListTodos(ctx context.Context) ([]Todo, error)
	CreateTodo(ctx context.Context, task string) (Todo, error)
	GetTodo(ctx context.Context, id int64) (Todo, error)
	UpdateTodo(ctx context.Context, id int64, p TodoPatch) (Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
}

// Deps is what the REST layer needs to serve requests.
type Deps struct {
	DB    Pinger
	Notes Notes
	Todos Todos
}
