package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	model "todo-tracker.com/todo-tracker/pkg/models"
)

func printTodos(w io.Writer, todos []model.Todo) error {
	if len(todos) == 0 {
		_, err := fmt.Fprintln(w, "No todos found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tPRIORITY\tDUE\tCATEGORY\tTITLE")
	for _, t := range todos {
		done := " "
		if t.Completed {
			done = "x"
		}
		due := t.DueDate.String()
		if due == "" {
			due = "-"
		}
		category := t.Category
		if category == "" {
			category = "-"
		}
		fmt.Fprintf(tw, "%s\t[%s]\t%s\t%s\t%s\t%s\n", t.ID, done, t.Priority, due, category, t.Title)
	}
	return tw.Flush()
}
