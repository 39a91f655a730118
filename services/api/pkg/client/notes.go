package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
)

type createNoteReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type updateNoteReq struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

func (c *Client) ListNotes(ctx context.Context) ([]core.Note, error) {
	out := []core.Note{}
	if err := c.do(ctx, http.MethodGet, "/notes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateNote(ctx context.Context, title, content string) (core.Note, error) {
	var out core.Note
	err := c.do(ctx, http.MethodPost, "/notes", createNoteReq{Title: title, Content: content}, &out)
	return out, err
}

func (c *Client) GetNote(ctx context.Context, id int64) (core.Note, error) {
	var out core.Note
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/notes/%d", id), nil, &out)
	return out, err
}

func (c *Client) UpdateNote(ctx context.Context, id int64, p core.NotePatch) (core.Note, error) {
	var out core.Note
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/notes/%d", id), updateNoteReq{Title: p.Title, Content: p.Content}, &out)
	return out, err
}

func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d", id), nil, nil)
}

var _ core.Notes = (*Client)(nil)
