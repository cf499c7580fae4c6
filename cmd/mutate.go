package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	dto "todo-tracker.com/todo-tracker/internal/data_models"
	"todo-tracker.com/todo-tracker/internal/validators"
	"todo-tracker.com/todo-tracker/pkg/exceptions"
)

func notFound(id string) error {
	return fmt.Errorf("%w: %s", exceptions.ErrTodoNotFound, id)
}

func newToggleCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a todo between pending and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todoService, _, closeStore, err := rt.openTodoService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			todo, found, err := todoService.Toggle(cmd.Context(), args[0])
			if !found {
				return notFound(args[0])
			}
			if err != nil {
				return err
			}

			state := "pending"
			if todo.Completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", todo.ID, state)
			return nil
		},
	}
}

func newUpdateCommand(rt Runtime) *cobra.Command {
	var (
		title       string
		description string
		priority    string
		category    string
		due         string
		completed   bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a todo; only the flags given are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req dto.UpdateTodoRequest
			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = &title
			}
			if flags.Changed("description") {
				req.Description = &description
			}
			if flags.Changed("priority") {
				req.Priority = &priority
			}
			if flags.Changed("category") {
				req.Category = &category
			}
			if flags.Changed("due") {
				req.DueDate = &due
			}
			if flags.Changed("completed") {
				req.Completed = &completed
			}

			patch, err := validators.ValidateUpdateTodoRequest(&req)
			if err != nil {
				return err
			}
			if patch.Empty() {
				return errors.New("nothing to update: pass at least one field flag")
			}

			todoService, _, closeStore, err := rt.openTodoService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			todo, found, err := todoService.Update(cmd.Context(), args[0], patch)
			if !found {
				return notFound(args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", todo.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "low, medium or high")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category")
	cmd.Flags().StringVar(&due, "due", "", "new due date, YYYY-MM-DD")
	cmd.Flags().BoolVar(&completed, "completed", false, "set the completed flag")

	return cmd
}

func newDeleteCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a todo permanently",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todoService, _, closeStore, err := rt.openTodoService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			found, err := todoService.Delete(cmd.Context(), args[0])
			if !found {
				return notFound(args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
