package core

import "errors"

// Error kinds. Every error returned by Service unwraps to one of these
// (or is an unexpected failure that the transport maps to an internal error).
var (
	ErrValidation = errors.New("validation failed")
	ErrInvalidID  = errors.New("invalid id")
	ErrNotFound   = errors.New("not found")
	ErrDatastore  = errors.New("datastore unavailable")
)

// Error is a client-facing message attached to an error kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// Notes errors
var (
	ErrNoteNotFound      = &Error{Kind: ErrNotFound, Msg: "note not found"}
	ErrNoteInvalidID     = &Error{Kind: ErrInvalidID, Msg: "invalid note id"}
	ErrNoteTitleRequired = &Error{Kind: ErrValidation, Msg: "title is required"}
	ErrNoteTitleEmpty    = &Error{Kind: ErrValidation, Msg: "title cannot be empty"}
)

// Todos errors
var (
	ErrTodoNotFound     = &Error{Kind: ErrNotFound, Msg: "todo not found"}
	ErrTodoInvalidID    = &Error{Kind: ErrInvalidID, Msg: "invalid todo id"}
	ErrTodoTaskRequired = &Error{Kind: ErrValidation, Msg: "task is required"}
	ErrTodoTaskEmpty    = &Error{Kind: ErrValidation, Msg: "task cannot be empty"}
)

var ErrNoFieldsToUpdate = &Error{Kind: ErrValidation, Msg: "no fields to update"}
