package db

import (
	"context"
	"fmt"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
)

const todoColumns = `id, task, completed, created_at, updated_at`

// ListTodos returns pending todos before completed ones, newest first within each group.
func (db *DB) ListTodos(ctx context.Context) ([]core.Todo, error) {
	const q = `SELECT ` + todoColumns + ` FROM todos ORDER BY completed ASC, created_at DESC, id DESC`

	out := []core.Todo{}
	if err := db.Query(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return out, nil
}

func (db *DB) CreateTodo(ctx context.Context, task string) (core.Todo, error) {
	const q = `INSERT INTO todos (task, completed, created_at, updated_at) VALUES (?, 0, ?, ?)`

	now := db.now()
	id, err := db.insert(ctx, q, task, now, now)
	if err != nil {
		return core.Todo{}, fmt.Errorf("insert todo: %w", err)
	}
	return db.GetTodo(ctx, id)
}

func (db *DB) GetTodo(ctx context.Context, id int64) (core.Todo, error) {
	const q = `SELECT ` + todoColumns + ` FROM todos WHERE id = ?`

	var rows []core.Todo
	if err := db.Query(ctx, &rows, q, id); err != nil {
		return core.Todo{}, fmt.Errorf("get todo: %w", err)
	}
	if len(rows) == 0 {
		return core.Todo{}, core.ErrTodoNotFound
	}
	return rows[0], nil
}

func (db *DB) UpdateTodo(ctx context.Context, id int64, p core.TodoPatch) (core.Todo, error) {
	var u update
	if p.Task != nil {
		u.set("task", *p.Task)
	}
	if p.Completed != nil {
		u.set("completed", core.CompletedFlag(*p.Completed))
	}
	if u.empty() {
		return core.Todo{}, core.ErrNoFieldsToUpdate
	}
	u.set("updated_at", db.now())

	q, args := u.build("todos", id)
	res, err := db.Execute(ctx, q, args...)
	if err != nil {
		return core.Todo{}, fmt.Errorf("update todo: %w", err)
	}
	if !res.OK {
		return core.Todo{}, core.ErrTodoNotFound
	}
	return db.GetTodo(ctx, id)
}

func (db *DB) DeleteTodo(ctx context.Context, id int64) error {
	const q = `DELETE FROM todos WHERE id = ?`

	res, err := db.Execute(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if !res.OK {
		return core.ErrTodoNotFound
	}
	return nil
}

var _ core.DB = (*DB)(nil)
