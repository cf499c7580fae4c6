package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	httpapi "todo-tracker.com/todo-tracker/internal/http"
)

func newServeCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Serves the todo list over a JSON HTTP API for the browser front end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			todoService, cfg, closeStore, err := rt.openTodoService(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			e := echo.New()
			e.HideBanner = true
			httpapi.Register(e, httpapi.NewHandler(todoService), cfg.RateLimit, cfg.CORSAllowedOrigins)

			go func() {
				log.Printf("HTTP server listening on %s (snapshot driver %s)", cfg.AppURL, cfg.SnapshotDriver)
				if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Printf("server stopped: %v", err)
					stop()
				}
			}()

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
			defer cancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				log.Printf("shutdown: %v", err)
			}

			log.Println("HTTP server shut down gracefully")
			return nil
		},
	}
}
