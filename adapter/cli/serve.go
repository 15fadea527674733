package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/todolist/adapter/api"
	"github.com/felixgeelhaar/todolist/internal/app"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the todo API server",
	Long: `Run the HTTP API for todos.

The store is chosen from DATABASE_DRIVER or the DATABASE_URL scheme
(mongodb, postgres, redis, sqlite, memory).

Examples:
  todolist serve
  todolist serve --addr :8080
  DATABASE_URL=mongodb://localhost:27017/todoapp todolist serve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cliApp := GetApp()
		if cliApp == nil {
			return fmt.Errorf("app not initialized")
		}
		cfg := cliApp.Config
		if cmd.Flags().Changed("addr") {
			cfg.HTTPAddr = serveAddr
		}

		ctx := cmd.Context()
		log := Logger()

		container, err := app.NewContainer(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer container.Close()

		handler := api.NewTodoHandler(api.TodoHandlerConfig{
			ListTodos:     container.ListTodosHandler,
			CreateTodo:    container.CreateTodoHandler,
			SetCompletion: container.SetCompletionHandler,
			DeleteTodo:    container.DeleteTodoHandler,
			Logger:        log,
		})
		server := api.NewServer(api.ServerConfig{
			Addr:           cfg.HTTPAddr,
			ReadTimeout:    cfg.HTTPReadTimeout,
			WriteTimeout:   cfg.HTTPWriteTimeout,
			IdleTimeout:    cfg.HTTPIdleTimeout,
			AllowedOrigins: cfg.CORSAllowedOrigins,
		}, handler, container.Health, container.Metrics, log)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return <-errCh
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides HTTP_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
