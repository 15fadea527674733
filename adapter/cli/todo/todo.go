package todo

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/todolist/adapter/cli"
	"github.com/felixgeelhaar/todolist/pkg/todoclient"
)

// Cmd is the todo command group
var Cmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage todos through the API",
	Long:  `List, add, complete, reopen and remove todos on a running API server.`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(doneCmd)
	Cmd.AddCommand(undoCmd)
	Cmd.AddCommand(rmCmd)
}

func client() (*todoclient.Client, error) {
	app := cli.GetApp()
	if app == nil || app.Client == nil {
		return nil, errors.New("application not initialized")
	}
	return app.Client, nil
}

// describe turns API errors into the server's message.
func describe(action string, err error) error {
	var apiErr *todoclient.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("failed to %s: %s", action, apiErr.Message)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
