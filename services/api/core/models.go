package core

import "time"

type Note struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Todo.Completed is stored and serialized as 0 or 1.
type Todo struct {
	ID        int64     `json:"id" db:"id"`
	Task      string    `json:"task" db:"task"`
	Completed int       `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (t Todo) Done() bool {
	return t.Completed == 1
}

// CompletedFlag converts a boolean into the stored 0/1 representation.
func CompletedFlag(done bool) int {
	if done {
		return 1
	}
	return 0
}

// NotePatch holds the optional fields of a note update. Nil means "not supplied".
type NotePatch struct {
	Title   *string
	Content *string
}

func (p NotePatch) Empty() bool {
	return p.Title == nil && p.Content == nil
}

type TodoPatch struct {
	Task      *string
	Completed *bool
}

func (p TodoPatch) Empty() bool {
	return p.Task == nil && p.Completed == nil
}
