package web

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/pkg/client"
)

const recentLimit = 3

type homeView struct {
	Flash       *Flash
	Notes       []core.Note
	RecentNotes []core.Note
	RecentTodos []core.Todo
	Todos       []core.Todo
	TodoCount   int
	Pending     int
	Completed   int
}

func (ui *UI) home(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ui.timeout)
	defer cancel()

	v := homeView{Flash: popFlash(w, r)}

	var todos []core.Todo
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		v.Notes, err = ui.notes.ListNotes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		todos, err = ui.todos.ListTodos(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		ui.log.Error("load home", "error", err)
		v.Notes, todos = nil, nil
		v.Flash = &Flash{Kind: "error", Message: "failed to load data, please try again"}
	}

	v.RecentNotes = head(v.Notes, recentLimit)
	v.Todos = todos
	v.RecentTodos = head(todos, recentLimit)
	v.TodoCount = len(todos)
	for _, t := range todos {
		if t.Done() {
			v.Completed++
		} else {
			v.Pending++
		}
	}

	ui.render(w, "home.html", v)
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// userMessage picks the text shown for a failed action. Client errors carry a
// server message worth showing; anything else gets the fallback.
func userMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Message
	}
	var ce *core.Error
	if errors.As(err, &ce) {
		return ce.Msg
	}
	return fallback
}

// Progress is the share of completed todos, in percent.
func (v homeView) Progress() int {
	if v.TodoCount == 0 {
		return 0
	}
	return v.Completed * 100 / v.TodoCount
}
