package core

import (
	"context"
	"strings"
)

type Service struct {
	db DB
}

func NewService(db DB) *Service {
	return &Service{
		db: db,
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Notes

func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	return s.db.ListNotes(ctx)
}

func (s *Service) CreateNote(ctx context.Context, title, content string) (Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Note{}, ErrNoteTitleRequired
	}
	return s.db.CreateNote(ctx, title, strings.TrimSpace(content))
}

func (s *Service) GetNote(ctx context.Context, id int64) (Note, error) {
	if id <= 0 {
		return Note{}, ErrNoteInvalidID
	}
	return s.db.GetNote(ctx, id)
}

// UpdateNote applies only the supplied fields. A blank title is rejected
// before the row is looked up; an empty patch is only rejected once the row
// is known to exist.
func (s *Service) UpdateNote(ctx context.Context, id int64, p NotePatch) (Note, error) {
	if id <= 0 {
		return Note{}, ErrNoteInvalidID
	}

	var clean NotePatch
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return Note{}, ErrNoteTitleEmpty
		}
		clean.Title = &title
	}
	if p.Content != nil {
		content := strings.TrimSpace(*p.Content)
		clean.Content = &content
	}

	if _, err := s.db.GetNote(ctx, id); err != nil {
		return Note{}, err
	}
	if clean.Empty() {
		return Note{}, ErrNoFieldsToUpdate
	}

	return s.db.UpdateNote(ctx, id, clean)
}

func (s *Service) DeleteNote(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNoteInvalidID
	}
	if _, err := s.db.GetNote(ctx, id); err != nil {
		return err
	}
	return s.db.DeleteNote(ctx, id)
}

// Todos

func (s *Service) ListTodos(ctx context.Context) ([]Todo, error) {
	return s.db.ListTodos(ctx)
}

func (s *Service) CreateTodo(ctx context.Context, task string) (Todo, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return Todo{}, ErrTodoTaskRequired
	}
	return s.db.CreateTodo(ctx, task)
}

func (s *Service) GetTodo(ctx context.Context, id int64) (Todo, error) {
	if id <= 0 {
		return Todo{}, ErrTodoInvalidID
	}
	return s.db.GetTodo(ctx, id)
}

func (s *Service) UpdateTodo(ctx context.Context, id int64, p TodoPatch) (Todo, error) {
	if id <= 0 {
		return Todo{}, ErrTodoInvalidID
	}

	var clean TodoPatch
	if p.Task != nil {
		task := strings.TrimSpace(*p.Task)
		if task == "" {
			return Todo{}, ErrTodoTaskEmpty
		}
		clean.Task = &task
	}
	clean.Completed = p.Completed

	if _, err := s.db.GetTodo(ctx, id); err != nil {
		return Todo{}, err
	}
	if clean.Empty() {
		return Todo{}, ErrNoFieldsToUpdate
	}

	return s.db.UpdateTodo(ctx, id, clean)
}

func (s *Service) DeleteTodo(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrTodoInvalidID
	}
	if _, err := s.db.GetTodo(ctx, id); err != nil {
		return err
	}
	return s.db.DeleteTodo(ctx, id)
}

var (
	_ Notes = (*Service)(nil)
	_ Todos = (*Service)(nil)
)
