package todo

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <task>",
	Short: "Add a todo",
	Long: `Add a todo. Multiple arguments are joined with spaces.

Examples:
  todolist todo add "Buy milk"
  todolist todo add Walk the dog`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task := strings.Join(args, " ")
		if strings.TrimSpace(task) == "" {
			return fmt.Errorf("task must not be empty")
		}

		c, err := client()
		if err != nil {
			return err
		}

		created, err := c.Create(cmd.Context(), task)
		if err != nil {
			return describe("create todo", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Todo created!")
		fmt.Fprintf(out, "  ID:   %s\n", created.ID)
		fmt.Fprintf(out, "  Task: %s\n", created.Task)
		return nil
	},
}
