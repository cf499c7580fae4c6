package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	filter "todo-tracker.com/todo-tracker/internal/filters"
)

func newCategoriesCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List category filter options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			todoService, _, closeStore, err := rt.openTodoService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			for _, c := range filter.Categories(todoService.Todos()) {
				if c == "" {
					c = strconv.Quote(c) + " (uncategorized)"
				}
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newStatsCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show todo counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			todoService, _, closeStore, err := rt.openTodoService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			s := filter.Summarize(todoService.Todos())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total tasks:    %d\n", s.Total)
			fmt.Fprintf(out, "Completed:      %d\n", s.Completed)
			fmt.Fprintf(out, "Pending:        %d\n", s.Pending)
			fmt.Fprintf(out, "High priority:  %d\n", s.HighPriority)
			return nil
		},
	}
}
