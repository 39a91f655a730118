package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/adapters/rest"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
)

const maxBodyBytes = 1 << 20

func Register(mux *http.ServeMux, log *slog.Logger, deps core.Deps, timeout time.Duration) {
	// ping
	mux.Handle("GET /api/ping", NewPingHandler(log, map[string]core.Pinger{"db": deps.DB}, timeout))
	mux.HandleFunc("/api/ping", rest.MethodNotAllowed)

	// notes
	mux.Handle("GET /api/notes", NewListNotesHandler(log, deps.Notes, timeout))
	mux.Handle("POST /api/notes", NewCreateNoteHandler(log, deps.Notes, timeout))
	mux.Handle("GET /api/notes/{id}", NewGetNoteHandler(log, deps.Notes, timeout))
	mux.Handle("PUT /api/notes/{id}", NewUpdateNoteHandler(log, deps.Notes, timeout))
	mux.Handle("DELETE /api/notes/{id}", NewDeleteNoteHandler(log, deps.Notes, timeout))
	mux.HandleFunc("/api/notes", rest.MethodNotAllowed)
	mux.HandleFunc("/api/notes/{id}", rest.MethodNotAllowed)

	// todos
	mux.Handle("GET /api/todos", NewListTodosHandler(log, deps.Todos, timeout))
	mux.Handle("POST /api/todos", NewCreateTodoHandler(log, deps.Todos, timeout))
	mux.Handle("GET /api/todos/{id}", NewGetTodoHandler(log, deps.Todos, timeout))
	mux.Handle("PUT /api/todos/{id}", NewUpdateTodoHandler(log, deps.Todos, timeout))
	mux.Handle("DELETE /api/todos/{id}", NewDeleteTodoHandler(log, deps.Todos, timeout))
	mux.HandleFunc("/api/todos", rest.MethodNotAllowed)
	mux.HandleFunc("/api/todos/{id}", rest.MethodNotAllowed)
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
