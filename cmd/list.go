package cmd

import (
	"github.com/spf13/cobra"

	filter "todo-tracker.com/todo-tracker/internal/filters"
)

func newListCommand(rt Runtime) *cobra.Command {
	var (
		search   string
		status   string
		category string
		highOnly bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List todos, high priority first then by due date",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var categoryFilter *string
			if cmd.Flags().Changed("category") {
				categoryFilter = &category
			}

			criteria, err := filter.ParseCriteria(search, status, categoryFilter, highOnly)
			if err != nil {
				return err
			}

			todoService, _, closeStore, err := rt.openTodoService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			return printTodos(cmd.OutOrStdout(), filter.Apply(todoService.Todos(), criteria))
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive text in title or description")
	cmd.Flags().StringVar(&status, "status", "all", "all, active or completed")
	cmd.Flags().StringVarP(&category, "category", "c", "", `exact category; "" selects uncategorized`)
	cmd.Flags().BoolVar(&highOnly, "high", false, "only high priority todos")

	return cmd
}
