package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
)

type createTodoReq struct {
	Task string `json:"task"`
}

type updateTodoReq struct {
	Task      *string `json:"task,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

func (c *Client) ListTodos(ctx context.Context) ([]core.Todo, error) {
	out := []core.Todo{}
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTodo(ctx context.Context, task string) (core.Todo, error) {
	var out core.Todo
	err := c.do(ctx, http.MethodPost, "/todos", createTodoReq{Task: task}, &out)
	return out, err
}

func (c *Client) GetTodo(ctx context.Context, id int64) (core.Todo, error) {
	var out core.Todo
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/todos/%d", id), nil, &out)
	return out, err
}

func (c *Client) UpdateTodo(ctx context.Context, id int64, p core.TodoPatch) (core.Todo, error) {
	var out core.Todo
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/todos/%d", id), updateTodoReq{Task: p.Task, Completed: p.Completed}, &out)
	return out, err
}

// SetCompleted is the toggle used by the todo views.
func (c *Client) SetCompleted(ctx context.Context, id int64, done bool) (core.Todo, error) {
	return c.UpdateTodo(ctx, id, core.TodoPatch{Completed: &done})
}

func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil, nil)
}

var _ core.Todos = (*Client)(nil)
