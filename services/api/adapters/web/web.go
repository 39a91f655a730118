// Package web serves the browser UI: the home overview, the todo list and the
// note editor. Views talk to the API only through core.Notes and core.Todos,
// which in production are backed by the HTTP client facade.
package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
)

//go:embed templates static
var assets embed.FS

type UI struct {
	log     *slog.Logger
	notes   core.Notes
	todos   core.Todos
	timeout time.Duration
	pages   map[string]*template.Template
}

func New(log *slog.Logger, notes core.Notes, todos core.Todos, timeout time.Duration) (*UI, error) {
	pages := map[string]*template.Template{}
	for _, name := range []string{"home.html", "todos.html", "note.html"} {
		t, err := template.New(name).Funcs(funcs).ParseFS(assets, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, err
		}
		pages[name] = t
	}

	return &UI{log: log, notes: notes, todos: todos, timeout: timeout, pages: pages}, nil
}

func (ui *UI) Register(mux *http.ServeMux) {
	static, _ := fs.Sub(assets, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	mux.HandleFunc("GET /{$}", ui.home)

	mux.HandleFunc("POST /notes", ui.createNote)
	mux.HandleFunc("GET /notes/{id}", ui.editNote)
	mux.HandleFunc("POST /notes/{id}", ui.saveNote)
	mux.HandleFunc("POST /notes/{id}/delete", ui.deleteNote)

	mux.HandleFunc("GET /todos", ui.todoList)
	mux.HandleFunc("POST /todos", ui.createTodo)
	mux.HandleFunc("POST /todos/{id}/toggle", ui.toggleTodo)
	mux.HandleFunc("POST /todos/{id}/edit", ui.editTodo)
	mux.HandleFunc("POST /todos/{id}/delete", ui.deleteTodo)
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Local().Format("Jan 2, 2006")
	},
	"datetime": func(t time.Time) string {
		return t.Local().Format("Jan 2, 2006 15:04")
	},
	"dict": func(kv ...any) (map[string]any, error) {
		if len(kv)%2 != 0 {
			return nil, errors.New("dict: odd number of arguments")
		}
		m := make(map[string]any, len(kv)/2)
		for i := 0; i < len(kv); i += 2 {
			k, ok := kv[i].(string)
			if !ok {
				return nil, errors.New("dict: keys must be strings")
			}
			m[k] = kv[i+1]
		}
		return m, nil
	},
}

func (ui *UI) render(w http.ResponseWriter, page string, data any) {
	ui.renderStatus(w, http.StatusOK, page, data)
}

func (ui *UI) renderStatus(w http.ResponseWriter, status int, page string, data any) {
	var buf bytes.Buffer
	if err := ui.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		ui.log.Error("render page", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// back redirects to the page named in the "return" form field. Only local
// view paths are honoured.
func back(w http.ResponseWriter, r *http.Request, fallback string) {
	target := fallback
	switch ret := r.FormValue("return"); ret {
	case "/", "/todos":
		target = ret
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
