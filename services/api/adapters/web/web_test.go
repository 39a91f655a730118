package web

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/adapters/db"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/adapters/rest/handlers"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/pkg/client"
)

type fixture struct {
	mux *http.ServeMux
	api *client.Client
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	storage, err := db.New(log, db.DriverSQLite, filepath.Join(t.TempDir(), "web.db"))
	require.NoError(t, err)
	require.NoError(t, storage.Migrate())

	svc := core.NewService(storage)
	apiMux := http.NewServeMux()
	handlers.Register(apiMux, log, core.Deps{DB: storage, Notes: svc, Todos: svc}, 5*time.Second)
	srv := httptest.NewServer(apiMux)
	t.Cleanup(func() {
		srv.Close()
		_ = storage.Close()
	})

	api := client.New(srv.URL+"/api", client.WithHTTPClient(srv.Client()))
	ui, err := New(log, api, api, 5*time.Second)
	require.NoError(t, err)

	mux := http.NewServeMux()
	ui.Register(mux)
	return fixture{mux: mux, api: api}
}

func (f fixture) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func (f fixture) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func flashOf(t *testing.T, rec *httptest.ResponseRecorder) *Flash {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name != flashCookie || c.MaxAge < 0 {
			continue
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(c)
		return popFlash(httptest.NewRecorder(), req)
	}
	return nil
}

func TestHomeEmpty(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Create your first note above.")
	assert.Contains(t, rec.Body.String(), "<strong>0</strong> of 0 done")
}

func TestCreateNoteFromHome(t *testing.T) {
	f := newFixture(t)

	rec := f.post("/notes", url.Values{"title": {"Groceries"}, "content": {"milk"}, "return": {"/"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, &Flash{Kind: "success", Message: "note created"}, flashOf(t, rec))

	body := f.get("/").Body.String()
	assert.Contains(t, body, "Groceries")
}

func TestCreateNoteEmptyTitle(t *testing.T) {
	f := newFixture(t)

	rec := f.post("/notes", url.Values{"title": {"   "}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, &Flash{Kind: "error", Message: "title is required"}, flashOf(t, rec))

	notes, err := f.api.ListNotes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestEditMissingNote(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/notes/999")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, &Flash{Kind: "error", Message: "note not found"}, flashOf(t, rec))
}

func TestSaveNote(t *testing.T) {
	f := newFixture(t)
	n, err := f.api.CreateNote(context.Background(), "Draft", "first")
	require.NoError(t, err)
	path := "/notes/" + strconv.FormatInt(n.ID, 10)

	rec := f.get(path)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Last updated")
	assert.Contains(t, rec.Body.String(), "first")

	rec = f.post(path, url.Values{"title": {"Draft"}, "content": {"second"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, path, rec.Header().Get("Location"))

	got, err := f.api.GetNote(context.Background(), n.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Content)
}

func TestSaveNoteKeepsEditsOnFailure(t *testing.T) {
	f := newFixture(t)
	n, err := f.api.CreateNote(context.Background(), "Draft", "first")
	require.NoError(t, err)

	rec := f.post("/notes/"+strconv.FormatInt(n.ID, 10), url.Values{"title": {""}, "content": {"unsaved words"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsaved words")
	assert.Contains(t, rec.Body.String(), "title is required")
	assert.Contains(t, rec.Body.String(), `data-dirty="1"`)

	got, err := f.api.GetNote(context.Background(), n.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Content)
}

func TestDeleteNote(t *testing.T) {
	f := newFixture(t)
	n, err := f.api.CreateNote(context.Background(), "Old", "")
	require.NoError(t, err)

	rec := f.post("/notes/"+strconv.FormatInt(n.ID, 10)+"/delete", url.Values{"return": {"/"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, &Flash{Kind: "success", Message: "note deleted"}, flashOf(t, rec))

	rec = f.post("/notes/"+strconv.FormatInt(n.ID, 10)+"/delete", nil)
	assert.Equal(t, &Flash{Kind: "error", Message: "note not found"}, flashOf(t, rec))
}

func TestTodoFlow(t *testing.T) {
	f := newFixture(t)

	rec := f.post("/todos", url.Values{"task": {"write docs"}, "return": {"/todos"}})
	assert.Equal(t, "/todos", rec.Header().Get("Location"))
	assert.Equal(t, &Flash{Kind: "success", Message: "todo created"}, flashOf(t, rec))

	todos, err := f.api.ListTodos(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 1)
	id := strconv.FormatInt(todos[0].ID, 10)

	rec = f.post("/todos/"+id+"/toggle", url.Values{"completed": {"1"}})
	assert.Equal(t, &Flash{Kind: "success", Message: "todo completed"}, flashOf(t, rec))

	body := f.get("/todos").Body.String()
	assert.Contains(t, body, "Pending (0)")
	assert.Contains(t, body, "Completed (1)")

	rec = f.post("/todos/"+id+"/toggle", url.Values{"completed": {"0"}})
	assert.Equal(t, &Flash{Kind: "success", Message: "todo reopened"}, flashOf(t, rec))

	rec = f.post("/todos/"+id+"/edit", url.Values{"task": {"write better docs"}})
	assert.Equal(t, &Flash{Kind: "success", Message: "todo updated"}, flashOf(t, rec))

	body = f.get("/todos?edit=" + id).Body.String()
	assert.Contains(t, body, `value="write better docs"`)

	rec = f.post("/todos/"+id+"/delete", nil)
	assert.Equal(t, &Flash{Kind: "success", Message: "todo deleted"}, flashOf(t, rec))
}

func TestMissingTodoActionsShowServerMessage(t *testing.T) {
	f := newFixture(t)

	rec := f.post("/todos/999/toggle", url.Values{"completed": {"1"}})
	assert.Equal(t, &Flash{Kind: "error", Message: "todo not found"}, flashOf(t, rec))

	rec = f.post("/todos/999/delete", nil)
	assert.Equal(t, &Flash{Kind: "error", Message: "todo not found"}, flashOf(t, rec))
}

func TestHomeTodoActions(t *testing.T) {
	f := newFixture(t)
	todo, err := f.api.CreateTodo(context.Background(), "water plants")
	require.NoError(t, err)
	id := strconv.FormatInt(todo.ID, 10)

	body := f.get("/").Body.String()
	assert.Contains(t, body, `action="/todos/`+id+`/toggle"`)
	assert.Contains(t, body, `action="/todos/`+id+`/delete"`)

	rec := f.post("/todos/"+id+"/toggle", url.Values{"completed": {"1"}, "return": {"/"}})
	assert.Equal(t, "/", rec.Header().Get("Location"))

	got, err := f.api.GetTodo(context.Background(), todo.ID)
	require.NoError(t, err)
	assert.True(t, got.Done())
}

func TestEditTodoEmptyTask(t *testing.T) {
	f := newFixture(t)
	todo, err := f.api.CreateTodo(context.Background(), "keep me")
	require.NoError(t, err)

	rec := f.post("/todos/"+strconv.FormatInt(todo.ID, 10)+"/edit", url.Values{"task": {" "}})
	assert.Equal(t, &Flash{Kind: "error", Message: "task cannot be empty"}, flashOf(t, rec))

	got, err := f.api.GetTodo(context.Background(), todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep me", got.Task)
}

func TestHomeProgress(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.api.CreateTodo(ctx, "a")
	require.NoError(t, err)
	_, err = f.api.CreateTodo(ctx, "b")
	require.NoError(t, err)
	_, err = f.api.SetCompleted(ctx, a.ID, true)
	require.NoError(t, err)

	body := f.get("/").Body.String()
	assert.Contains(t, body, "<strong>1</strong> of 2 done, 1 pending")
	assert.Contains(t, body, "width: 50%")
}

func TestFlashShownOnce(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/todos", &http.Cookie{Name: flashCookie, Value: url.QueryEscape("success:all good")})
	assert.Contains(t, rec.Body.String(), "all good")

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestBackRejectsForeignTargets(t *testing.T) {
	f := newFixture(t)

	rec := f.post("/todos", url.Values{"task": {"x"}, "return": {"https://example.com"}})
	assert.Equal(t, "/todos", rec.Header().Get("Location"))
}

func TestStaticAssets(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/static/app.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "beforeunload")
}
