package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
)

type noteView struct {
	Flash *Flash
	Note  core.Note
	// Form holds the values being edited; they differ from Note after a failed save.
	Form struct {
		Title   string
		Content string
	}
	HasChanges bool
}

func (ui *UI) createNote(w http.ResponseWriter, r *http.Request) {
	title, content := r.FormValue("title"), r.FormValue("content")
	if strings.TrimSpace(title) == "" {
		failure(w, "title is required")
		back(w, r, "/")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ui.timeout)
	defer cancel()

	if _, err := ui.notes.CreateNote(ctx, title, content); err != nil {
		ui.log.Warn("create note", "error", err)
		failure(w, userMessage(err, "failed to create note"))
	} else {
		success(w, "note created")
	}
	back(w, r, "/")
}

func (ui *UI) editNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		failure(w, "invalid note id")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ui.timeout)
	defer cancel()

	n, err := ui.notes.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			failure(w, "note not found")
		} else {
			ui.log.Warn("load note", "id", id, "error", err)
			failure(w, "failed to load note")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	v := noteView{Flash: popFlash(w, r), Note: n}
	v.Form.Title, v.Form.Content = n.Title, n.Content
	ui.render(w, "note.html", v)
}

// saveNote keeps the submitted form on failure so unsaved edits are not lost.
func (ui *UI) saveNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		failure(w, "invalid note id")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ui.timeout)
	defer cancel()

	title, content := r.FormValue("title"), r.FormValue("content")

	fail := func(msg string) {
		n, err := ui.notes.GetNote(ctx, id)
		if err != nil {
			failure(w, msg)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		v := noteView{Flash: &Flash{Kind: "error", Message: msg}, Note: n, HasChanges: true}
		v.Form.Title, v.Form.Content = title, content
		ui.renderStatus(w, http.StatusUnprocessableEntity, "note.html", v)
	}

	if strings.TrimSpace(title) == "" {
		fail("title is required")
		return
	}

	if _, err := ui.notes.UpdateNote(ctx, id, core.NotePatch{Title: &title, Content: &content}); err != nil {
		ui.log.Warn("save note", "id", id, "error", err)
		fail(userMessage(err, "failed to save note"))
		return
	}

	success(w, "note saved")
	http.Redirect(w, r, fmt.Sprintf("/notes/%d", id), http.StatusSeeOther)
}

func (ui *UI) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		failure(w, "invalid note id")
		back(w, r, "/")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ui.timeout)
	defer cancel()

	if err := ui.notes.DeleteNote(ctx, id); err != nil {
		ui.log.Warn("delete note", "id", id, "error", err)
		failure(w, userMessage(err, "failed to delete note"))
	} else {
		success(w, "note deleted")
	}
	back(w, r, "/")
}
