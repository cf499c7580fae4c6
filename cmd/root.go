package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	config "todo-tracker.com/todo-tracker/internal/configs"
	repository "todo-tracker.com/todo-tracker/internal/repositories"
	"todo-tracker.com/todo-tracker/internal/services"
	"todo-tracker.com/todo-tracker/internal/snapshot"
)

// Runtime supplies configuration and the snapshot backend to commands.
type Runtime struct {
	LoadConfig func() (config.Config, error)
	OpenStore  func(ctx context.Context, cfg config.Config) (snapshot.Store, func(), error)
}

func DefaultRuntime() Runtime {
	return Runtime{
		LoadConfig: config.Load,
		OpenStore:  config.OpenSnapshotStore,
	}
}

// openTodoService restores the todo store from the configured backend.
// The returned close function must be called when the command is done.
func (rt Runtime) openTodoService(ctx context.Context) (*services.TodoService, config.Config, func(), error) {
	cfg, err := rt.LoadConfig()
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	store, closeStore, err := rt.OpenStore(ctx, cfg)
	if err != nil {
		return nil, config.Config{}, nil, fmt.Errorf("open %s snapshot store: %w", cfg.SnapshotDriver, err)
	}

	repo := repository.NewTodoRepository(store, cfg.SnapshotKey)
	return services.NewTodoService(ctx, repo), cfg, closeStore, nil
}

func NewRootCommand(rt Runtime) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "todo",
		Short:         "Track, filter and complete todos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newAddCommand(rt),
		newListCommand(rt),
		newToggleCommand(rt),
		newUpdateCommand(rt),
		newDeleteCommand(rt),
		newCategoriesCommand(rt),
		newStatsCommand(rt),
		newServeCommand(rt),
	)

	return rootCmd
}

func Execute() {
	if err := NewRootCommand(DefaultRuntime()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
