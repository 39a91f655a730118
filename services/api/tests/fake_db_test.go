package tests

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
)

// fakeDB is an in-memory core.DB. Its clock advances one second per write so
// timestamp ordering is deterministic.
type fakeDB struct {
	mu sync.RWMutex

	clock time.Time

	nextNoteID int64
	nextTodoID int64

	notes map[int64]core.Note
	todos map[int64]core.Todo

	writes int
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		clock:      time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		nextNoteID: 1,
		nextTodoID: 1,
		notes:      make(map[int64]core.Note),
		todos:      make(map[int64]core.Todo),
	}
}

func (db *fakeDB) tick() time.Time {
	db.clock = db.clock.Add(time.Second)
	db.writes++
	return db.clock
}

func (db *fakeDB) Ping(context.Context) error {
	return nil
}

func (db *fakeDB) ListNotes(context.Context) ([]core.Note, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]core.Note, 0, len(db.notes))
	for _, n := range db.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (db *fakeDB) CreateNote(_ context.Context, title, content string) (core.Note, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	now := db.tick()
	n := core.Note{
		ID:        db.nextNoteID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	db.nextNoteID++
	db.notes[n.ID] = n
	return n, nil
}

func (db *fakeDB) GetNote(_ context.Context, id int64) (core.Note, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	n, ok := db.notes[id]
	if !ok {
		return core.Note{}, core.ErrNoteNotFound
	}
	return n, nil
}

func (db *fakeDB) UpdateNote(_ context.Context, id int64, p core.NotePatch) (core.Note, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	n, ok := db.notes[id]
	if !ok {
		return core.Note{}, core.ErrNoteNotFound
	}
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	n.UpdatedAt = db.tick()
	db.notes[id] = n
	return n, nil
}

func (db *fakeDB) DeleteNote(_ context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.notes[id]; !ok {
		return core.ErrNoteNotFound
	}
	db.writes++
	delete(db.notes, id)
	return nil
}

func (db *fakeDB) ListTodos(context.Context) ([]core.Todo, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]core.Todo, 0, len(db.todos))
	for _, t := range db.todos {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return out[i].Completed < out[j].Completed
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (db *fakeDB) CreateTodo(_ context.Context, task string) (core.Todo, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	now := db.tick()
	t := core.Todo{
		ID:        db.nextTodoID,
		Task:      task,
		CreatedAt: now,
		UpdatedAt: now,
	}
	db.nextTodoID++
	db.todos[t.ID] = t
	return t, nil
}

func (db *fakeDB) GetTodo(_ context.Context, id int64) (core.Todo, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	t, ok := db.todos[id]
	if !ok {
		return core.Todo{}, core.ErrTodoNotFound
	}
	return t, nil
}

func (db *fakeDB) UpdateTodo(_ context.Context, id int64, p core.TodoPatch) (core.Todo, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	t, ok := db.todos[id]
	if !ok {
		return core.Todo{}, core.ErrTodoNotFound
	}
	if p.Task != nil {
		t.Task = *p.Task
	}
	if p.Completed != nil {
		t.Completed = core.CompletedFlag(*p.Completed)
	}
	t.UpdatedAt = db.tick()
	db.todos[id] = t
	return t, nil
}

func (db *fakeDB) DeleteTodo(_ context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.todos[id]; !ok {
		return core.ErrTodoNotFound
	}
	db.writes++
	delete(db.todos, id)
	return nil
}

func (db *fakeDB) writeCount() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.writes
}

var _ core.DB = (*fakeDB)(nil)
