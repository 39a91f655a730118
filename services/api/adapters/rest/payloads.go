package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type CreateNoteIn struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateNoteIn struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

type CreateTodoIn struct {
	Task string `json:"task"`
}

type UpdateTodoIn struct {
	Task      *string `json:"task,omitempty"`
	Completed *Flag   `json:"completed,omitempty"`
}

// Flag decodes a JSON boolean or the numbers 0 and 1.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "true", "1":
		*f = true
	case "false", "0":
		*f = false
	default:
		return fmt.Errorf("completed must be a boolean or 0/1, got %s", b)
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}
