package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	dto "todo-tracker.com/todo-tracker/internal/data_models"
	"todo-tracker.com/todo-tracker/internal/validators"
)

func newAddCommand(rt Runtime) *cobra.Command {
	var req dto.CreateTodoRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a todo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := validators.ValidateCreateTodoRequest(&req)
			if err != nil {
				return err
			}

			todoService, _, closeStore, err := rt.openTodoService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			todo, err := todoService.Add(cmd.Context(), draft)
			if err != nil {
				return fmt.Errorf("todo added but not saved: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", todo.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Title, "title", "t", "", "todo title (required)")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "longer description")
	cmd.Flags().StringVarP(&req.Priority, "priority", "p", "medium", "low, medium or high")
	cmd.Flags().StringVarP(&req.Category, "category", "c", "", "free-text category")
	cmd.Flags().StringVar(&req.DueDate, "due", "", "due date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
