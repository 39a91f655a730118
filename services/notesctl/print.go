package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
)

const timeLayout = "2006-01-02 15:04"

func printNotes(w io.Writer, notes []core.Note) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tUPDATED")
	for _, n := range notes {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", n.ID, oneLine(n.Title, 50), n.UpdatedAt.Local().Format(timeLayout))
	}
	_ = tw.Flush()
}

func printNote(w io.Writer, n core.Note) {
	fmt.Fprintf(w, "#%d %s\n", n.ID, n.Title)
	fmt.Fprintf(w, "created %s, updated %s\n", stamp(n.CreatedAt), stamp(n.UpdatedAt))
	if n.Content != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, n.Content)
	}
}

func printTodos(w io.Writer, todos []core.Todo) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tTASK")
	for _, t := range todos {
		mark := " "
		if t.Done() {
			mark = "x"
		}
		fmt.Fprintf(tw, "%d\t[%s]\t%s\n", t.ID, mark, oneLine(t.Task, 60))
	}
	_ = tw.Flush()
}

func stamp(t time.Time) string {
	return t.Local().Format(timeLayout)
}

func oneLine(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > max {
		return string(r[:max-1]) + "…"
	}
	return s
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
