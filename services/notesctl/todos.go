package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
)

func (a *app) todosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "todos",
		Aliases: []string{"todo", "t"},
		Short:   "List, create, edit, complete and delete todos",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List todos, pending first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			todos, err := a.api.ListTodos(ctx)
			if err != nil {
				return err
			}
			printTodos(a.out, todos)
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add TASK",
		Short: "Create a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			t, err := a.api.CreateTodo(ctx, args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("todo created", zap.Int64("id", t.ID))
			fmt.Fprintf(a.out, "created todo %d\n", t.ID)
			return nil
		},
	}

	edit := &cobra.Command{
		Use:   "edit ID TASK",
		Short: "Change the task text of a todo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			task := args[1]
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			if _, err := a.api.UpdateTodo(ctx, id, core.TodoPatch{Task: &task}); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "updated todo %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, add, edit,
		a.setCompletedCmd("done", "Mark a todo as completed", true),
		a.setCompletedCmd("undo", "Mark a todo as pending again", false),
		a.deleteTodoCmd(),
	)
	return cmd
}

func (a *app) setCompletedCmd(use, short string, done bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			t, err := a.api.SetCompleted(ctx, id, done)
			if err != nil {
				return err
			}
			state := "pending"
			if t.Done() {
				state = "completed"
			}
			fmt.Fprintf(a.out, "todo %d %s\n", id, state)
			return nil
		},
	}
}

func (a *app) deleteTodoCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a todo",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			if err := a.api.DeleteTodo(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted todo %d\n", id)
			return nil
		},
	}
}
