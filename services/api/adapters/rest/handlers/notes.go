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

func NewListNotesHandler(log *slog.Logger, svc core.Notes, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.ListNotes(ctx)
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, items, http.StatusOK)
	}
}

func NewCreateNoteHandler(log *slog.Logger, svc core.Notes, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CreateNoteIn
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		n, err := svc.CreateNote(ctx, in.Title, in.Content)
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, n, http.StatusCreated)
	}
}

func NewGetNoteHandler(log *slog.Logger, svc core.Notes, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			rest.WriteErr(w, log, core.ErrNoteInvalidID)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		n, err := svc.GetNote(ctx, id)
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, n, http.StatusOK)
	}
}

func NewUpdateNoteHandler(log *slog.Logger, svc core.Notes, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			rest.WriteErr(w, log, core.ErrNoteInvalidID)
			return
		}

		var in rest.UpdateNoteIn
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		n, err := svc.UpdateNote(ctx, id, core.NotePatch{Title: in.Title, Content: in.Content})
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, n, http.StatusOK)
	}
}

func NewDeleteNoteHandler(log *slog.Logger, svc core.Notes, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			rest.WriteErr(w, log, core.ErrNoteInvalidID)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := svc.DeleteNote(ctx, id); err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, nil, http.StatusOK)
	}
}
