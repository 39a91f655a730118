package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/adapters/rest"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/pkg/res"
)

func NewListTodosHandler(log *slog.Logger, svc core.Todos, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.ListTodos(ctx)
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, items, http.StatusOK)
	}
}

func NewCreateTodoHandler(log *slog.Logger, svc core.Todos, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CreateTodoIn
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.CreateTodo(ctx, in.Task)
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, t, http.StatusCreated)
	}
}

func NewGetTodoHandler(log *slog.Logger, svc core.Todos, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			rest.WriteErr(w, log, core.ErrTodoInvalidID)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.GetTodo(ctx, id)
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, t, http.StatusOK)
	}
}

func NewUpdateTodoHandler(log *slog.Logger, svc core.Todos, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			rest.WriteErr(w, log, core.ErrTodoInvalidID)
			return
		}

		var in rest.UpdateTodoIn
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var p core.TodoPatch
		p.Task = in.Task
		if in.Completed != nil {
			done := bool(*in.Completed)
			p.Completed = &done
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.UpdateTodo(ctx, id, p)
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, t, http.StatusOK)
	}
}

func NewDeleteTodoHandler(log *slog.Logger, svc core.Todos, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			rest.WriteErr(w, log, core.ErrTodoInvalidID)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := svc.DeleteTodo(ctx, id); err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, nil, http.StatusOK)
	}
}
