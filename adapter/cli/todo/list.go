package todo

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	page  int
	limit int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	Long: `List one page of todos in store order.

Examples:
  todolist todo list
  todolist todo list --page 2
  todolist todo list --page 1 --limit 25`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client()
		if err != nil {
			return err
		}

		result, err := c.List(cmd.Context(), page, limit)
		if err != nil {
			return describe("list todos", err)
		}

		out := cmd.OutOrStdout()
		if len(result.Todos) == 0 {
			fmt.Fprintln(out, "No todos found.")
		}
		for _, t := range result.Todos {
			fmt.Fprintf(out, "%s %s  %s\n", checkbox(t.Completed), t.ID, t.Task)
		}
		pages := result.TotalPages
		if pages < 1 {
			pages = 1
		}
		fmt.Fprintf(out, "\nPage %d of %d (%d todos)\n", result.CurrentPage, pages, result.TotalTodos)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	listCmd.Flags().IntVarP(&limit, "limit", "l", 10, "todos per page")
}
