package web

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
)

type todosView struct {
	Flash     *Flash
	Pending   []core.Todo
	Completed []core.Todo
	EditID    int64
}

func (ui *UI) todoList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ui.timeout)
	defer cancel()

	v := todosView{Flash: popFlash(w, r)}
	v.EditID, _ = strconv.ParseInt(r.URL.Query().Get("edit"), 10, 64)

	todos, err := ui.todos.ListTodos(ctx)
	if err != nil {
		ui.log.Error("load todos", "error", err)
		v.Flash = &Flash{Kind: "error", Message: "failed to load todos, please try again"}
	}
	for _, t := range todos {
		if t.Done() {
			v.Completed = append(v.Completed, t)
		} else {
			v.Pending = append(v.Pending, t)
		}
	}

	ui.render(w, "todos.html", v)
}

func (ui *UI) createTodo(w http.ResponseWriter, r *http.Request) {
	task := r.FormValue("task")
	if strings.TrimSpace(task) == "" {
		failure(w, "task is required")
		back(w, r, "/todos")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ui.timeout)
	defer cancel()

	if _, err := ui.todos.CreateTodo(ctx, task); err != nil {
		ui.log.Warn("create todo", "error", err)
		failure(w, userMessage(err, "failed to create todo"))
	} else {
		success(w, "todo created")
	}
	back(w, r, "/todos")
}

func (ui *UI) toggleTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		failure(w, "invalid todo id")
		back(w, r, "/todos")
		return
	}
	done := r.FormValue("completed") == "1"

	ctx, cancel := context.WithTimeout(r.Context(), ui.timeout)
	defer cancel()

	if _, err := ui.todos.UpdateTodo(ctx, id, core.TodoPatch{Completed: &done}); err != nil {
		ui.log.Warn("toggle todo", "id", id, "error", err)
		failure(w, userMessage(err, "failed to update todo"))
	} else if done {
		success(w, "todo completed")
	} else {
		success(w, "todo reopened")
	}
	back(w, r, "/todos")
}

func (ui *UI) editTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		failure(w, "invalid todo id")
		back(w, r, "/todos")
		return
	}
	task := r.FormValue("task")
	if strings.TrimSpace(task) == "" {
		failure(w, "task cannot be empty")
		back(w, r, "/todos")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ui.timeout)
	defer cancel()

	if _, err := ui.todos.UpdateTodo(ctx, id, core.TodoPatch{Task: &task}); err != nil {
		ui.log.Warn("edit todo", "id", id, "error", err)
		failure(w, userMessage(err, "failed to update todo"))
	} else {
		success(w, "todo updated")
	}
	back(w, r, "/todos")
}

func (ui *UI) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		failure(w, "invalid todo id")
		back(w, r, "/todos")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ui.timeout)
	defer cancel()

	if err := ui.todos.DeleteTodo(ctx, id); err != nil {
		ui.log.Warn("delete todo", "id", id, "error", err)
		failure(w, userMessage(err, "failed to delete todo"))
	} else {
		success(w, "todo deleted")
	}
	back(w, r, "/todos")
}
