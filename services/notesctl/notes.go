package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
)

func (a *app) notesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"note", "n"},
		Short:   "List, show, create, edit and delete notes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			notes, err := a.api.ListNotes(ctx)
			if err != nil {
				return err
			}
			printNotes(a.out, notes)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Print a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			n, err := a.api.GetNote(ctx, id)
			if err != nil {
				return err
			}
			printNote(a.out, n)
			return nil
		},
	}

	var content string
	add := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			n, err := a.api.CreateNote(ctx, args[0], content)
			if err != nil {
				return err
			}
			a.logger.Debug("note created", zap.Int64("id", n.ID))
			fmt.Fprintf(a.out, "created note %d\n", n.ID)
			return nil
		},
	}
	add.Flags().StringVarP(&content, "content", "c", "", "note body")

	edit := &cobra.Command{
		Use:   "edit ID",
		Short: "Change the title and/or content of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var p core.NotePatch
			if cmd.Flags().Changed("title") {
				v, _ := cmd.Flags().GetString("title")
				p.Title = &v
			}
			if cmd.Flags().Changed("content") {
				v, _ := cmd.Flags().GetString("content")
				p.Content = &v
			}
			if p.Empty() {
				return errors.New("nothing to change: pass --title and/or --content")
			}
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			n, err := a.api.UpdateNote(ctx, id, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "updated note %d\n", n.ID)
			return nil
		},
	}
	edit.Flags().StringP("title", "t", "", "new title")
	edit.Flags().StringP("content", "c", "", "new content")

	rm := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			if err := a.api.DeleteNote(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted note %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, show, add, edit, rm)
	return cmd
}
