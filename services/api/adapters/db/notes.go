package db

import (
	"context"
	"fmt"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
)

const noteColumns = `id, title, content, created_at, updated_at`

func (db *DB) ListNotes(ctx context.Context) ([]core.Note, error) {
	const q = `SELECT ` + noteColumns + ` FROM notes ORDER BY created_at DESC, id DESC`

	out := []core.Note{}
	if err := db.Query(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return out, nil
}

func (db *DB) CreateNote(ctx context.Context, title, content string) (core.Note, error) {
	const q = `INSERT INTO notes (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)`

	now := db.now()
	id, err := db.insert(ctx, q, title, content, now, now)
	if err != nil {
		return core.Note{}, fmt.Errorf("insert note: %w", err)
	}
	return db.GetNote(ctx, id)
}

func (db *DB) GetNote(ctx context.Context, id int64) (core.Note, error) {
	const q = `SELECT ` + noteColumns + ` FROM notes WHERE id = ?`

	var rows []core.Note
	if err := db.Query(ctx, &rows, q, id); err != nil {
		return core.Note{}, fmt.Errorf("get note: %w", err)
	}
	if len(rows) == 0 {
		return core.Note{}, core.ErrNoteNotFound
	}
	return rows[0], nil
}

func (db *DB) UpdateNote(ctx context.Context, id int64, p core.NotePatch) (core.Note, error) {
	var u update
	if p.Title != nil {
		u.set("title", *p.Title)
	}
	if p.Content != nil {
		u.set("content", *p.Content)
	}
	if u.empty() {
		return core.Note{}, core.ErrNoFieldsToUpdate
	}
	u.set("updated_at", db.now())

	q, args := u.build("notes", id)
	res, err := db.Execute(ctx, q, args...)
	if err != nil {
		return core.Note{}, fmt.Errorf("update note: %w", err)
	}
	if !res.OK {
		return core.Note{}, core.ErrNoteNotFound
	}
	return db.GetNote(ctx, id)
}

func (db *DB) DeleteNote(ctx context.Context, id int64) error {
	const q = `DELETE FROM notes WHERE id = ?`

	res, err := db.Execute(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if !res.OK {
		return core.ErrNoteNotFound
	}
	return nil
}
